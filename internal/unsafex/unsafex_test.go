package unsafex

import (
	"testing"
	"unsafe"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nil", nil, ""},
		{"empty", []byte{}, ""},
		{"short", []byte("abc"), "abc"},
		{"binary", []byte{0x00, 0xff, 0x7f}, "\x00\xff\x7f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", nil},
		{"short", "abc", []byte("abc")},
		{"binary", "\x00\xff\x7f", []byte{0x00, 0xff, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bytes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Bytes(%q) length = %d, want %d", tt.in, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Bytes(%q)[%d] = %#x, want %#x", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestString_Aliases(t *testing.T) {
	b := []byte("mutable")
	s := String(b)

	if unsafe.StringData(s) != &b[0] {
		t.Error("String should alias the input slice, not copy it")
	}
}

func TestBytes_Aliases(t *testing.T) {
	s := "constant"
	b := Bytes(s)

	if unsafe.SliceData(b) != unsafe.StringData(s) {
		t.Error("Bytes should alias the input string, not copy it")
	}
}

func TestRoundTrip(t *testing.T) {
	in := "round trip content"
	if got := String(Bytes(in)); got != in {
		t.Errorf("String(Bytes(%q)) = %q", in, got)
	}
}
