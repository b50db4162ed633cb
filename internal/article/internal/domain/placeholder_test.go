package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsPlaceholder(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want bool
	}{
		{name: "空地址", url: "", want: true},
		{name: "只有空白", url: "   ", want: true},
		{name: "站点logo", url: "https://cdn.example.com/assets/logo.png", want: true},
		{name: "雪碧图", url: "https://cdn.example.com/img/sprite-icons.png", want: true},
		{name: "favicon", url: "https://example.com/favicon.ico", want: true},
		{name: "矢量图标", url: "https://example.com/icon.svg", want: true},
		{name: "正常配图", url: "https://images.example.com/photo-123.jpg", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NeedsPlaceholder(tc.url))
		})
	}
}

func TestPlaceholderFor(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	t.Run("已知类目从类目组里选", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			img := PlaceholderFor("leadership", r)
			assert.Contains(t, PlaceholderSet("leadership"), img)
		}
	})
	t.Run("未知类目用默认组", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			img := PlaceholderFor("no-such-category", r)
			assert.Contains(t, PlaceholderSet("no-such-category"), img)
		}
	})
	t.Run("固定种子可复现", func(t *testing.T) {
		r1 := rand.New(rand.NewSource(1))
		r2 := rand.New(rand.NewSource(1))
		for i := 0; i < 10; i++ {
			assert.Equal(t, PlaceholderFor("growth", r1), PlaceholderFor("growth", r2))
		}
	})
}

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantOk  bool
	}{
		{name: "内部标识", input: "work_life_balance", want: "work_life_balance", wantOk: true},
		{name: "展示叫法", input: "Balance", want: "work_life_balance", wantOk: true},
		{name: "大小写不敏感", input: "bAlAnCe", want: "work_life_balance", wantOk: true},
		{name: "源站别名", input: "career-advice", want: "career_clarity", wantOk: true},
		{name: "带空白", input: "  Leadership ", want: "leadership", wantOk: true},
		{name: "不认识", input: "astrology", wantOk: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := CategoryOf(tc.input)
			assert.Equal(t, tc.wantOk, ok)
			if ok {
				assert.Equal(t, tc.want, c.Name)
			}
		})
	}
}
