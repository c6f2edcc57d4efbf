package romaji

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/unicode/norm"
)

// reader turns Japanese text with kanji into katakana readings split into words.
// The dictionary is large, it is loaded on first use and shared afterwards.
type reader struct {
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

// Read returns the katakana reading of s, words separated by spaces. Tokens without
// a dictionary reading (latin, digits, unknown words) keep their surface form.
func (r *reader) Read(s string) (string, error) {
	r.once.Do(func() {
		r.tok, r.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	if r.err != nil {
		return "", fmt.Errorf("load tokenizer: %w", r.err)
	}

	var words []string
	for _, tok := range r.tok.Tokenize(norm.NFKC.String(s)) {
		text := tok.Surface
		if reading, ok := tok.Reading(); ok && reading != "" && reading != "*" {
			text = reading
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if len(words) > 0 && attaches(tok.Features()) {
			words[len(words)-1] += text
			continue
		}
		words = append(words, text)
	}
	return strings.Join(words, " "), nil
}

// attaches reports whether the token is glued to the previous word: particles, auxiliaries and suffixes
func attaches(features []string) bool {
	if len(features) == 0 {
		return false
	}
	if features[0] == "助詞" || features[0] == "助動詞" {
		return true
	}
	return len(features) > 1 && features[1] == "接尾"
}
