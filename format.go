package essence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/gogpu/essence/internal/numfmt"
)

// Culture carries the number symbols used by the text format.
//
// The zero Culture behaves like Invariant.
type Culture struct {
	name    string
	decimal rune
	group   rune
}

// Invariant is the culture-neutral format: "." decimal symbol, "," list
// separator.
var Invariant = Culture{name: "invariant", decimal: '.', group: ','}

// NewCulture returns the culture of tag, deriving its decimal and group
// symbols from CLDR data.
func NewCulture(tag language.Tag) Culture {
	s := numfmt.Lookup(tag)
	return Culture{name: tag.String(), decimal: s.Decimal, group: s.Group}
}

// ParseCulture parses a BCP 47 tag such as "de-DE" and returns its culture.
func ParseCulture(name string) (Culture, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return Culture{}, fmt.Errorf("essence: culture %q: %w", name, err)
	}
	return NewCulture(tag), nil
}

func (c Culture) resolved() Culture {
	if c.decimal == 0 {
		return Invariant
	}
	return c
}

// Name returns the tag the culture was built from.
func (c Culture) Name() string { return c.resolved().name }

// DecimalSymbol returns the symbol between integer and fraction digits.
func (c Culture) DecimalSymbol() rune { return c.resolved().decimal }

// GroupSymbol returns the thousands separator, or 0 if the culture has none.
func (c Culture) GroupSymbol() rune { return c.resolved().group }

// ListSeparator returns the symbol between components: "," unless the
// culture already uses "," as its decimal symbol, then ";".
func (c Culture) ListSeparator() rune {
	if c.resolved().decimal == ',' {
		return ';'
	}
	return ','
}

// String returns the culture name.
func (c Culture) String() string { return c.Name() }

var (
	errEmptyInput       = errors.New("empty input")
	errUnbalanced       = errors.New("unbalanced brackets")
	errComponentCount   = errors.New("wrong number of components")
	errUnsupportedShape = errors.New("unsupported shape")
)

// brackets maps each accepted opening bracket to its closing partner.
var brackets = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

// Format renders t as "x, y[, z[, w]]" using the options.
func Format(t Tuple, opts ...FormatOption) string {
	return formatComponents(t.Components(), resolveFormatOptions(opts))
}

func formatComponents(c Components, o formatOptions) string {
	culture := o.culture.resolved()
	var b strings.Builder
	if o.open != 0 {
		b.WriteRune(o.open)
	}
	for i, v := range c.Slice() {
		if i > 0 {
			b.WriteRune(culture.ListSeparator())
			b.WriteByte(' ')
		}
		b.WriteString(formatScalar(v, c.Shape.Kind, culture, o.precision))
	}
	if o.close != 0 {
		b.WriteRune(o.close)
	}
	return b.String()
}

func formatScalar(v float64, k Kind, culture Culture, precision int) string {
	var s string
	switch k {
	case KindFloat64, KindFloat32:
		bits := 64
		if k == KindFloat32 {
			bits = 32
		}
		if precision < 0 {
			s = strconv.FormatFloat(v, 'g', -1, bits)
		} else {
			s = strconv.FormatFloat(v, 'f', precision, bits)
		}
	default:
		return strconv.FormatInt(int64(v), 10)
	}
	if culture.decimal != '.' {
		s = strings.Replace(s, ".", string(culture.decimal), 1)
	}
	return s
}

// Parse reads a value of type T from s.
//
// The grammar is the output of Format: optional surrounding whitespace, an
// optional bracket pair ("()", "[]", "{}" or "<>"), and exactly Dim
// components separated by the culture's list separator. Each component
// follows the textual grammar of T's numeric kind; group symbols are
// ignored. T may be a concrete type or a capability interface. Failures
// are returned as *ParseError.
func Parse[T Tuple](s string, opts ...FormatOption) (T, error) {
	var zero T
	shape, err := targetShape[T]()
	if err != nil {
		return zero, &ParseError{Input: s, Err: err}
	}
	c, err := parseComponents(s, shape, resolveFormatOptions(opts))
	if err != nil {
		return zero, err
	}
	t, ok := constructors[shape](c).(T)
	if !ok {
		return zero, &ParseError{Input: s, Shape: shape, Err: errUnsupportedShape}
	}
	return t, nil
}

// TryParse is Parse without the error detail.
func TryParse[T Tuple](s string, opts ...FormatOption) (T, bool) {
	t, err := Parse[T](s, opts...)
	return t, err == nil
}

// MustParse is like Parse but panics on error. It is meant for literals in
// tests and initializers.
func MustParse[T Tuple](s string, opts ...FormatOption) T {
	t, err := Parse[T](s, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func parseComponents(s string, shape Shape, o formatOptions) (Components, error) {
	fail := func(err error) (Components, error) {
		if debugEnabled() {
			Logger().Debug("essence: parse rejected", "input", s, "shape", shape.String(), "err", err)
		}
		return Components{}, &ParseError{Input: s, Shape: shape, Err: err}
	}

	if !shape.Valid() {
		return fail(errUnsupportedShape)
	}
	body := strings.TrimSpace(s)
	if body == "" {
		return fail(errEmptyInput)
	}
	if closing, ok := brackets[body[0]]; ok {
		if len(body) < 2 || body[len(body)-1] != closing {
			return fail(errUnbalanced)
		}
		body = body[1 : len(body)-1]
	}

	culture := o.culture.resolved()
	parts := strings.Split(body, string(culture.ListSeparator()))
	if len(parts) != shape.Dim {
		return fail(fmt.Errorf("%w: got %d, want %d", errComponentCount, len(parts), shape.Dim))
	}

	c := Components{Shape: shape}
	for i, part := range parts {
		v, err := parseScalar(part, shape.Kind, culture)
		if err != nil {
			return fail(fmt.Errorf("component %d: %w", i, err))
		}
		c.V[i] = v
	}
	return c, nil
}

func parseScalar(s string, k Kind, culture Culture) (float64, error) {
	s = strings.TrimSpace(s)
	if g := culture.group; g != 0 && g != culture.ListSeparator() {
		s = strings.ReplaceAll(s, string(g), "")
	}
	if culture.decimal != '.' {
		s = strings.Replace(s, string(culture.decimal), ".", 1)
	}
	switch k {
	case KindFloat64:
		return strconv.ParseFloat(s, 64)
	case KindFloat32:
		return strconv.ParseFloat(s, 32)
	case KindInt32:
		v, err := strconv.ParseInt(s, 10, 32)
		return float64(v), err
	case KindUint8:
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
		return float64(v), err
	default:
		return 0, errUnsupportedShape
	}
}
