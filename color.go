package essence

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/essence/mathutil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/vmihailenco/msgpack/v5"
)

// Color3 is an opaque RGB color. Float channels span [0, 1], byte channels
// span [0, 255]; converting between the two kinds rescales by 255.
type Color3[T Channel] struct {
	R, G, B T
}

// Color4 is an RGBA color with straight (non-premultiplied) alpha.
type Color4[T Channel] struct {
	R, G, B, A T
}

// Color aliases by channel kind.
type (
	Color3f = Color3[float32]
	Color3b = Color3[uint8]
	Color4f = Color4[float32]
	Color4b = Color4[uint8]
)

// RGB creates an opaque color from its channels.
func RGB[T Channel](r, g, b T) Color3[T] {
	return Color3[T]{R: r, G: g, B: b}
}

// RGBA creates a color from its channels.
func RGBA[T Channel](r, g, b, a T) Color4[T] {
	return Color4[T]{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Black       = RGBA[float32](0, 0, 0, 1)
	White       = RGBA[float32](1, 1, 1, 1)
	Red         = RGBA[float32](1, 0, 0, 1)
	Green       = RGBA[float32](0, 1, 0, 1)
	Blue        = RGBA[float32](0, 0, 1, 1)
	Yellow      = RGBA[float32](1, 1, 0, 1)
	Cyan        = RGBA[float32](0, 1, 1, 1)
	Magenta     = RGBA[float32](1, 0, 1, 1)
	Transparent = RGBA[float32](0, 0, 0, 0)
)

// channelUnit maps a channel to [0, 1].
func channelUnit[T Channel](v T) float64 {
	if KindOf[T]() == KindUint8 {
		return float64(v) / 255
	}
	return float64(v)
}

// unitChannel maps a [0, 1] value to a channel, rounding for bytes.
func unitChannel[T Channel](v float64) T {
	if KindOf[T]() == KindUint8 {
		return T(mathutil.Clamp01(v)*255 + 0.5)
	}
	return T(v)
}

func unit16(v float64) uint16 {
	return uint16(mathutil.Clamp01(v)*0xffff + 0.5)
}

// ColorFromHex parses "#rgb" or "#rrggbb".
func ColorFromHex[T Channel](s string) (Color3[T], error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color3[T]{}, &ParseError{Input: s, Shape: shapeOf[T](3, RoleColor), Err: err}
	}
	return fromColorful[T](c), nil
}

// ColorFromHSV creates a color from hue in degrees [0, 360), saturation
// and value in [0, 1].
func ColorFromHSV[T Channel](h, s, v float64) Color3[T] {
	return fromColorful[T](colorful.Hsv(normalizeHue(h), s, v))
}

// ColorFromHSL creates a color from hue in degrees [0, 360), saturation
// and lightness in [0, 1].
func ColorFromHSL[T Channel](h, s, l float64) Color3[T] {
	return fromColorful[T](colorful.Hsl(normalizeHue(h), s, l))
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ColorFrom converts a standard color.Color.
func ColorFrom[T Channel](c color.Color) Color4[T] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color4[T]{
		R: unitChannel[T](float64(n.R) / 0xffff),
		G: unitChannel[T](float64(n.G) / 0xffff),
		B: unitChannel[T](float64(n.B) / 0xffff),
		A: unitChannel[T](float64(n.A) / 0xffff),
	}
}

func fromColorful[T Channel](c colorful.Color) Color3[T] {
	c = c.Clamped()
	return Color3[T]{R: unitChannel[T](c.R), G: unitChannel[T](c.G), B: unitChannel[T](c.B)}
}

func (c Color3[T]) isColor() {}

// RGBValues returns the channels.
func (c Color3[T]) RGBValues() (T, T, T) { return c.R, c.G, c.B }

// Colorful returns the color as a go-colorful value.
func (c Color3[T]) Colorful() colorful.Color {
	return colorful.Color{R: channelUnit(c.R), G: channelUnit(c.G), B: channelUnit(c.B)}
}

// RGBA implements color.Color.
func (c Color3[T]) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: unit16(channelUnit(c.R)),
		G: unit16(channelUnit(c.G)),
		B: unit16(channelUnit(c.B)),
		A: 0xffff,
	}.RGBA()
}

// Hex returns the "#rrggbb" form.
func (c Color3[T]) Hex() string { return c.Colorful().Clamped().Hex() }

// HSV returns hue in degrees, saturation and value.
func (c Color3[T]) HSV() (h, s, v float64) { return c.Colorful().Hsv() }

// HSL returns hue in degrees, saturation and lightness.
func (c Color3[T]) HSL() (h, s, l float64) { return c.Colorful().Hsl() }

// Lerp blends from c (t=0) to other (t=1) in sRGB.
func (c Color3[T]) Lerp(other Color3[T], t float64) Color3[T] {
	return fromColorful[T](c.Colorful().BlendRgb(other.Colorful(), t))
}

// WithAlpha returns c with the given alpha channel.
func (c Color3[T]) WithAlpha(a T) Color4[T] {
	return Color4[T]{R: c.R, G: c.G, B: c.B, A: a}
}

func (c Color4[T]) isColor() {}

// RGBAValues returns the channels.
func (c Color4[T]) RGBAValues() (T, T, T, T) { return c.R, c.G, c.B, c.A }

// RGB drops the alpha channel.
func (c Color4[T]) RGB() Color3[T] {
	return Color3[T]{R: c.R, G: c.G, B: c.B}
}

// RGBA implements color.Color. The result is alpha-premultiplied as the
// interface requires.
func (c Color4[T]) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: unit16(channelUnit(c.R)),
		G: unit16(channelUnit(c.G)),
		B: unit16(channelUnit(c.B)),
		A: unit16(channelUnit(c.A)),
	}.RGBA()
}

// Hex returns the "#rrggbbaa" form.
func (c Color4[T]) Hex() string {
	return fmt.Sprintf("%s%02x", c.RGB().Hex(), unitChannel[uint8](channelUnit(c.A)))
}

// Premultiply returns the color with R, G and B scaled by alpha.
func (c Color4[T]) Premultiply() Color4[T] {
	a := channelUnit(c.A)
	return Color4[T]{
		R: unitChannel[T](channelUnit(c.R) * a),
		G: unitChannel[T](channelUnit(c.G) * a),
		B: unitChannel[T](channelUnit(c.B) * a),
		A: c.A,
	}
}

// Unpremultiply reverses Premultiply. Fully transparent colors become
// transparent black.
func (c Color4[T]) Unpremultiply() Color4[T] {
	a := channelUnit(c.A)
	if a == 0 {
		return Color4[T]{}
	}
	return Color4[T]{
		R: unitChannel[T](channelUnit(c.R) / a),
		G: unitChannel[T](channelUnit(c.G) / a),
		B: unitChannel[T](channelUnit(c.B) / a),
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors, alpha included.
func (c Color4[T]) Lerp(other Color4[T], t float64) Color4[T] {
	rgb := c.RGB().Lerp(other.RGB(), t)
	return rgb.WithAlpha(unitChannel[T](mathutil.Lerp(channelUnit(c.A), channelUnit(other.A), t)))
}

func color3From[T Channel](c Components) Color3[T] {
	return Color3[T]{R: T(c.V[0]), G: T(c.V[1]), B: T(c.V[2])}
}

func (c Color3[T]) Shape() Shape { return shapeOf[T](3, RoleColor) }

func (c Color3[T]) Len() int { return 3 }

func (c Color3[T]) Index(i int) (float64, error) { return c.Components().Index(i) }

// Components returns the plain data of c.
func (c Color3[T]) Components() Components {
	return components3[T](c.Shape(), c.R, c.G, c.B)
}

// Equal reports whether other has the same shape and component values.
func (c Color3[T]) Equal(other Tuple) bool { return equalComponents(c.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of c,
// is within eps of c in every component.
func (c Color3[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(c.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (c Color3[T]) Hash() uint64 { return hashComponents(c.Components()) }

func (c Color3[T]) String() string {
	return formatComponents(c.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (c Color3[T]) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color3[T]) UnmarshalText(text []byte) error {
	v, err := unmarshalText(text, c.Shape())
	if err != nil {
		return err
	}
	*c = color3From[T](v)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (c Color3[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, c.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (c *Color3[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := decodeComponents(dec, c.Shape())
	if err != nil {
		return err
	}
	*c = color3From[T](v)
	return nil
}

func color4From[T Channel](c Components) Color4[T] {
	return Color4[T]{R: T(c.V[0]), G: T(c.V[1]), B: T(c.V[2]), A: T(c.V[3])}
}

func (c Color4[T]) Shape() Shape { return shapeOf[T](4, RoleColor) }

func (c Color4[T]) Len() int { return 4 }

func (c Color4[T]) Index(i int) (float64, error) { return c.Components().Index(i) }

// Components returns the plain data of c.
func (c Color4[T]) Components() Components {
	return components4[T](c.Shape(), c.R, c.G, c.B, c.A)
}

// Equal reports whether other has the same shape and component values.
func (c Color4[T]) Equal(other Tuple) bool { return equalComponents(c.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of c,
// is within eps of c in every component.
func (c Color4[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(c.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (c Color4[T]) Hash() uint64 { return hashComponents(c.Components()) }

func (c Color4[T]) String() string {
	return formatComponents(c.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (c Color4[T]) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color4[T]) UnmarshalText(text []byte) error {
	v, err := unmarshalText(text, c.Shape())
	if err != nil {
		return err
	}
	*c = color4From[T](v)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (c Color4[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, c.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (c *Color4[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := decodeComponents(dec, c.Shape())
	if err != nil {
		return err
	}
	*c = color4From[T](v)
	return nil
}
