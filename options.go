package essence

// FormatOption configures Format, Parse and TryParse.
// Use functional options to customize the text representation.
//
// Example:
//
//	// Invariant culture, shortest round-trip digits
//	s := essence.Format(essence.V2(1.5, 2.0))
//
//	// German decimal comma, bracketed, two fraction digits
//	de := essence.NewCulture(language.German)
//	s = essence.Format(v, essence.WithCulture(de), essence.WithPrecision(2),
//	    essence.WithBrackets('(', ')'))
type FormatOption func(*formatOptions)

// formatOptions holds the resolved text configuration.
type formatOptions struct {
	culture   Culture
	precision int // fraction digits; -1 means shortest round-trip
	open      rune
	close     rune
}

// defaultFormatOptions returns the invariant, unbracketed configuration.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		culture:   Invariant,
		precision: -1,
	}
}

func resolveFormatOptions(opts []FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCulture selects the decimal symbol, group symbol and list separator.
func WithCulture(c Culture) FormatOption {
	return func(o *formatOptions) {
		o.culture = c
	}
}

// WithPrecision formats floating components with exactly n fraction digits.
// A negative n restores the shortest representation that parses back to
// the same value. Integer kinds ignore the precision.
func WithPrecision(n int) FormatOption {
	return func(o *formatOptions) {
		if n < 0 {
			n = -1
		}
		o.precision = n
	}
}

// WithBrackets wraps formatted output in the given pair. Parse accepts any
// supported pair regardless of this option.
func WithBrackets(open, close rune) FormatOption {
	return func(o *formatOptions) {
		o.open, o.close = open, close
	}
}

// WithoutBrackets removes a previously configured bracket pair.
func WithoutBrackets() FormatOption {
	return func(o *formatOptions) {
		o.open, o.close = 0, 0
	}
}
