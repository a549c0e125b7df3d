package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "known language", in: "french", want: "fr"},
		{name: "case insensitive", in: "FRENCH", want: "fr"},
		{name: "surrounding whitespace", in: "  korean ", want: "ko"},
		{name: "unknown falls back to english", in: "klingon", want: "en"},
		{name: "empty falls back to english", in: "", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageCode(tt.in))
		})
	}
}

func TestRegionCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "known country", in: "france", want: "FR"},
		{name: "uk maps to GB", in: "UK", want: "GB"},
		{name: "long form", in: "united states of america", want: "US"},
		{name: "unknown falls back to US", in: "atlantis", want: "US"},
		{name: "empty falls back to US", in: "", want: "US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegionCode(tt.in))
		})
	}
}
