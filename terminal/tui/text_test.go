package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "日…", Truncate("日本語", 4))

	assert.Equal(t, "…llo", TruncateLeft("hello", 4))
	assert.Equal(t, "hello", TruncateLeft("hello", 9))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, " ab  ", PadCenter("ab", 5))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
	assert.Equal(t, "toolong", PadCenter("toolong", 3))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"a\nb c", 10, []string{"a", "b c"}},
		{"", 5, []string{""}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"日本語テキスト", 4, []string{"日本", "語テ", "キス", "ト"}},
		{"one  two", 3, []string{"one", "two"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WrapText(tt.in, tt.width), "wrap %q at %d", tt.in, tt.width)
	}
	assert.Nil(t, WrapText("x", 0))

	for _, line := range WrapText("lorem ipsum dolor sit amet consectetur", 7) {
		assert.LessOrEqual(t, Width(line), 7)
	}
}

func TestScrollHelpers(t *testing.T) {
	assert.Equal(t, 0, AdjustScroll(3, 0, 10, 5))
	assert.Equal(t, 2, AdjustScroll(2, 5, 4, 20))
	assert.Equal(t, 6, AdjustScroll(9, 0, 4, 20))
	assert.Equal(t, 16, ClampScroll(30, 4, 20))
	assert.Equal(t, 0, ClampCursor(-1, 3))
	assert.Equal(t, 2, ClampCursor(7, 3))
	assert.Equal(t, "Top", ScrollLabel(0, 5, 20))
	assert.Equal(t, "Bot", ScrollLabel(15, 5, 20))
	assert.Equal(t, "50%", ScrollLabel(5, 10, 20))
}
