// Package numfmt derives the decimal and grouping symbols of a locale.
//
// The symbols are read back from a probe number rendered by
// golang.org/x/text/message, so they follow CLDR without essence carrying
// its own locale tables. Results are cached per tag.
package numfmt

import (
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbols are the number symbols of a locale.
type Symbols struct {
	// Decimal separates the integer and fraction parts.
	Decimal rune
	// Group separates thousands. Zero when the locale does not group.
	Group rune
}

// Invariant is the culture-neutral symbol set.
var Invariant = Symbols{Decimal: '.', Group: ','}

// cacheSize bounds the number of distinct tags remembered.
const cacheSize = 64

var cache *lru.Cache[string, Symbols]

func init() {
	c, err := lru.New[string, Symbols](cacheSize)
	if err != nil {
		panic(err)
	}
	cache = c
}

// probe has a group boundary and a single fraction digit.
const probe = 1234567.5

// Lookup returns the symbols of tag.
func Lookup(tag language.Tag) Symbols {
	key := tag.String()
	if s, ok := cache.Get(key); ok {
		return s
	}
	s := derive(tag)
	cache.Add(key, s)
	return s
}

func derive(tag language.Tag) Symbols {
	p := message.NewPrinter(tag)
	out := p.Sprintf("%v", number.Decimal(probe,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var seps []rune
	for _, r := range out {
		if unicode.IsDigit(r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		seps = append(seps, r)
	}
	switch len(seps) {
	case 0:
		return Invariant
	case 1:
		return Symbols{Decimal: seps[0]}
	}
	s := Symbols{Decimal: seps[len(seps)-1], Group: seps[0]}
	if s.Group == s.Decimal {
		s.Group = 0
	}
	return s
}
