package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HELLO WORLD", "Hello world"},
		{"Hello World", "Hello World"},
		{"hello world", "hello world"},
		{"123", "123"},
		{"", ""},
		{"!!! WOW 2024 !!!", "!!! wow 2024 !!!"},
		{"ÜBER ALLES", "Über alles"},
		{"I", "I"},
		{"NASA launches", "NASA launches"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.in))
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	for _, in := range []string{"HELLO WORLD", "Hello World", "123", "MIXED case", "ÉTÉ 2024"} {
		once := NormalizeTitle(in)
		assert.Equal(t, once, NormalizeTitle(once), in)
	}
}
