package romaji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
)

func TestTransliterate(t *testing.T) {
	tbl := []struct {
		in   string
		want string
		ok   bool
	}{
		{"やまだ", "yamada", true},
		{"やまだクリニック", "yamadakurinikku", true},
		{"さっぽろ", "sapporo", true},
		{"とうきょう", "toukyou", true},
		{"しゃしん", "shashin", true},
		{"マッチャ", "matcha", true},
		{"ｻｸﾗ", "sakura", true}, // half-width katakana
		{"ｸﾞﾘｰﾝ", "gurin", true},
		{"スズキ・デンタル", "suzuki dentaru", true},
		{"ABC クリニック 2", "ABC kurinikku 2", true},
		{"ＡＢＣ", "ABC", true}, // full-width latin
		{"山田医院", "", false},
		{"", "", false},
		{"ャ", "", false},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Transliterate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	tbl := []struct {
		in, want string
	}{
		{"yamada clinic", "Yamada Clinic"},
		{"  Yamada   Clinic ", "Yamada Clinic"},
		{"Ｙａｍａｄａ　Ｃｌｉｎｉｃ", "Yamada Clinic"},
		{"Tōkyō", "Tokyo"},
		{"ABC dental", "ABC Dental"},
		{"1-2-3 shibuya", "1-2-3 Shibuya"},
		{"", ""},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestIsLatin(t *testing.T) {
	assert.True(t, IsLatin("Yamada Clinic"))
	assert.True(t, IsLatin("Tōkyō 1-2"))
	assert.False(t, IsLatin("山田 Clinic"))
	assert.False(t, IsLatin("123-456"), "needs at least one letter")
	assert.False(t, IsLatin(""))
}

func TestNormalizer_Process(t *testing.T) {
	n := NewNormalizer()

	t.Run("normalizes existing romaji", func(t *testing.T) {
		p := domain.Provider{ID: "p1", Name: "山田医院", NameRomaji: "yamada  iin", Address: "東京都", AddressRomaji: "tōkyō  shibuya"}
		res, err := n.Process(p)
		require.NoError(t, err)
		assert.Equal(t, "Yamada Iin", res.NameRomaji)
		assert.Equal(t, "Tokyo Shibuya", res.AddressRomaji)
		assert.True(t, res.RomajiConsistent)
		assert.True(t, n.Consistent(res))
	})

	t.Run("transliterates missing kana romaji", func(t *testing.T) {
		p := domain.Provider{ID: "p2", Name: "さくらクリニック", Address: "Sapporo", AddressRomaji: "sapporo"}
		res, err := n.Process(p)
		require.NoError(t, err)
		assert.Equal(t, "Sakurakurinikku", res.NameRomaji)
		assert.Equal(t, "Sapporo", res.AddressRomaji)
	})

	t.Run("reads kanji without romaji", func(t *testing.T) {
		p := domain.Provider{ID: "p3", Name: "山田", Address: "東京"}
		res, err := n.Process(p)
		require.NoError(t, err)
		assert.Equal(t, "Yamada", res.NameRomaji)
		assert.Equal(t, "Toukyou", res.AddressRomaji)
		assert.True(t, res.RomajiConsistent)
	})

	t.Run("unreadable name", func(t *testing.T) {
		p := domain.Provider{ID: "p3", Name: "🏥", AddressRomaji: "Tokyo"}
		res, err := n.Process(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name romaji")
		assert.Equal(t, p, res, "provider returned unchanged")
	})

	t.Run("consistent provider kept as is", func(t *testing.T) {
		p := domain.Provider{ID: "p5", Name: "山田医院", NameRomaji: "Yamada Iin", AddressRomaji: "Tokyo"}
		res, err := n.Process(p)
		require.NoError(t, err)
		assert.Equal(t, "Yamada Iin", res.NameRomaji)
		assert.True(t, res.RomajiConsistent)
	})

	t.Run("non-latin romaji", func(t *testing.T) {
		p := domain.Provider{ID: "p4", NameRomaji: "Yamada", AddressRomaji: "東京"}
		_, err := n.Process(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address romaji")
	})
}

func TestReader_Read(t *testing.T) {
	r := &reader{}
	tbl := []struct {
		in, want string
	}{
		{"山田", "ヤマダ"},
		{"東京", "トウキョウ"},
		{"ABC", "ABC"},
		{"", ""},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			got, err := r.Read(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_Consistent(t *testing.T) {
	n := NewNormalizer()
	tbl := []struct {
		name string
		p    domain.Provider
		want bool
	}{
		{"normalized", domain.Provider{NameRomaji: "Yamada Iin", AddressRomaji: "Tokyo"}, true},
		{"missing name", domain.Provider{AddressRomaji: "Tokyo"}, false},
		{"lower case", domain.Provider{NameRomaji: "yamada iin", AddressRomaji: "Tokyo"}, false},
		{"extra spaces", domain.Provider{NameRomaji: "Yamada  Iin", AddressRomaji: "Tokyo"}, false},
		{"kanji", domain.Provider{NameRomaji: "山田", AddressRomaji: "Tokyo"}, false},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Consistent(tt.p))
		})
	}
}
