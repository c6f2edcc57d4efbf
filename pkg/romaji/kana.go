package romaji

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// katakana syllables, hiragana is shifted to katakana before lookup
var kana = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヲ': "o", 'ン': "n", 'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
}

// small ya/yu/yo merge into the preceding i-row syllable
var smallY = map[rune]string{'ャ': "a", 'ュ': "u", 'ョ': "o"}

const (
	sokuon     = 'ッ'
	longVowel  = 'ー'
	middleDot  = '・'
	hiraToKata = 'ァ' - 'ぁ'
)

// Transliterate converts kana text to lower-case Hepburn romaji. Latin letters, digits,
// spaces and common punctuation pass through. It returns false if s has anything else, e.g. kanji.
func Transliterate(s string) (string, bool) {
	s = norm.NFKC.String(s)
	var sb strings.Builder
	double := false
	for _, r := range s {
		if r >= 'ぁ' && r <= 'ゖ' {
			r += hiraToKata
		}
		switch {
		case r == sokuon:
			double = true
			continue
		case r == longVowel:
			continue
		case r == middleDot || unicode.IsSpace(r):
			sb.WriteRune(' ')
		case smallY[r] != "":
			if !mergeSmallY(&sb, smallY[r]) {
				return "", false
			}
		case kana[r] != "":
			syl := kana[r]
			if double {
				syl = doubled(syl)
			}
			sb.WriteString(syl)
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)):
			sb.WriteRune(r)
		default:
			return "", false
		}
		double = false
	}
	res := strings.TrimSpace(sb.String())
	return res, res != ""
}

// mergeSmallY turns "ki"+"a" into "kya" and "shi"+"a" into "sha"
func mergeSmallY(sb *strings.Builder, vowel string) bool {
	prev := sb.String()
	if !strings.HasSuffix(prev, "i") || len(prev) < 2 {
		return false
	}
	stem := prev[:len(prev)-1]
	sb.Reset()
	sb.WriteString(stem)
	if strings.HasSuffix(stem, "sh") || strings.HasSuffix(stem, "ch") || strings.HasSuffix(stem, "j") {
		sb.WriteString(vowel)
		return true
	}
	sb.WriteString("y" + vowel)
	return true
}

// doubled adds the geminate consonant, "chi" becomes "tchi"
func doubled(syl string) string {
	if strings.HasPrefix(syl, "ch") {
		return "t" + syl
	}
	if c := syl[0]; !strings.ContainsRune("aiueon", rune(c)) {
		return string(c) + syl
	}
	return syl
}
