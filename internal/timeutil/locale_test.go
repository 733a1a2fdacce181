package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected Locale
	}{
		{"en", English},
		{"en-US", English},
		{"zh", Chinese},
		{"zh-CN", Chinese},
		{"fr-FR", English},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := ParseLocale(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Tag(), l.Tag())
		})
	}
}

func TestParseLocale_Malformed(t *testing.T) {
	_, err := ParseLocale("not a locale!")
	assert.Error(t, err)
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, Chinese.Tag(), LocaleFor(language.SimplifiedChinese).Tag())
	assert.Equal(t, "zh", Chinese.String())
	assert.Equal(t, "en", English.String())
}
