package util

import (
	"testing"
)

func TestFoldSearchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "accented lower", input: "Panadería", expected: "panaderia"},
		{name: "upper case", input: "PANADERIA", expected: "panaderia"},
		{name: "enye", input: "Diseño Ñandú", expected: "diseno nandu"},
		{name: "cafe", input: "Café X", expected: "cafe x"},
		{name: "decomposed input", input: "Cafe\u0301", expected: "cafe"},
		{name: "trims spaces", input: "  Tecnología  ", expected: "tecnologia"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FoldSearchText(tt.input); got != tt.expected {
				t.Fatalf("FoldSearchText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "cafe", expected: "cafe"},
		{input: "100%", expected: `100\%`},
		{input: "a_b", expected: `a\_b`},
		{input: `c:\x`, expected: `c:\\x`},
	}

	for _, tt := range tests {
		if got := EscapeLike(tt.input); got != tt.expected {
			t.Fatalf("EscapeLike(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "upload limit", bytes: 5 << 20, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}
