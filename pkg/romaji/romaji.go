// Package romaji normalizes the romanized name and address of a provider listing.
// Missing romaji is transliterated to modified Hepburn, kanji is read with the IPA dictionary first.
package romaji

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/umputun/freshness/pkg/domain"
)

// Normalizer brings romaji fields to one canonical form
type Normalizer struct {
	reader *reader
}

// NewNormalizer makes a romaji normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{reader: &reader{}}
}

// Process fills and normalizes NameRomaji and AddressRomaji and marks the provider consistent.
// The provider is returned unchanged with an error if either field can't be produced.
func (n *Normalizer) Process(p domain.Provider) (domain.Provider, error) {
	if n.Consistent(p) {
		p.RomajiConsistent = true
		return p, nil
	}
	name, err := n.field(p.NameRomaji, p.Name)
	if err != nil {
		return p, fmt.Errorf("name romaji: %w", err)
	}
	address, err := n.field(p.AddressRomaji, p.Address)
	if err != nil {
		return p, fmt.Errorf("address romaji: %w", err)
	}
	p.NameRomaji, p.AddressRomaji = name, address
	p.RomajiConsistent = true
	return p, nil
}

// Consistent reports whether both romaji fields are present, Latin and already normalized
func (n *Normalizer) Consistent(p domain.Provider) bool {
	for _, s := range []string{p.NameRomaji, p.AddressRomaji} {
		if s == "" || !IsLatin(s) || Normalize(s) != s {
			return false
		}
	}
	return true
}

func (n *Normalizer) field(romaji, source string) (string, error) {
	if strings.TrimSpace(romaji) == "" {
		tr, err := n.transliterate(source)
		if err != nil {
			return "", err
		}
		romaji = tr
	}
	res := Normalize(romaji)
	if res == "" {
		return "", fmt.Errorf("empty after normalization")
	}
	if !IsLatin(res) {
		return "", fmt.Errorf("%q is not latin", res)
	}
	return res, nil
}

// transliterate converts kana directly and falls back to the dictionary reading for kanji
func (n *Normalizer) transliterate(source string) (string, error) {
	if tr, ok := Transliterate(source); ok {
		return tr, nil
	}
	reading, err := n.reader.Read(source)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", source, err)
	}
	tr, ok := Transliterate(reading)
	if !ok {
		return "", fmt.Errorf("missing and %q can't be transliterated", source)
	}
	return tr, nil
}

// Normalize folds full-width forms, strips macrons and other diacritics, collapses spaces
// and title-cases words. Existing capitals are kept.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "・", " ")
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = stripped
	}
	s = strings.Join(strings.Fields(s), " ")
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// IsLatin checks that s has at least one letter and every letter is latin
func IsLatin(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.Is(unicode.Latin, r) {
			return false
		}
		letters++
	}
	return letters > 0
}
