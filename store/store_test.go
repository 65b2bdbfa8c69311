package store

import (
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		v        string
		expected string
	}{
		{"a.png", "a.png"},
		{"o'reilly.png", `o\'reilly.png`},
		{`back\slash.png`, `back\\slash.png`},
		{`both\'.png`, `both\\\'.png`},
	}

	for _, test := range tests {
		if escaped := escape(test.v); escaped != test.expected {
			t.Errorf("Incorrectly escaped '%s' - expected:%s, got:%s", test.v, test.expected, escaped)
		}
	}
}

func TestLink(t *testing.T) {
	if link := Link("1BxiMVs0XRA"); link != "https://drive.google.com/uc?id=1BxiMVs0XRA" {
		t.Errorf("Incorrect link - expected:%v, got:%v", "https://drive.google.com/uc?id=1BxiMVs0XRA", link)
	}
}
