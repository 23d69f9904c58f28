package encoding

import (
	"bytes"
	"io"
	"testing"
)

func TestNewTextReader(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("v 1 2 3\n"), "v 1 2 3\n"},
		{"utf8 bom", []byte("\xef\xbb\xbfv 1 2 3\n"), "v 1 2 3\n"},
		{"utf16le bom", []byte{0xff, 0xfe, 'v', 0, ' ', 0, '1', 0}, "v 1"},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'f', 0, ' ', 0, '2'}, "f 2"},
		{"empty", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(NewTextReader(bytes.NewReader(tt.in)))
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFixedString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		size int
		want string
	}{
		{"padded", "abc", 6, "abc   "},
		{"exact", "abcdef", 6, "abcdef"},
		{"truncated", "abcdefgh", 6, "abcdef"},
		{"empty", "", 3, "   "},
		{"multibyte cut", "abé", 3, "ab "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixedString(tt.s, tt.size, ' ')
			if len(got) != tt.size {
				t.Fatalf("length: got %d, want %d", len(got), tt.size)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
