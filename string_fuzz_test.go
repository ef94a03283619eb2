package german

import (
	"bytes"
	"testing"
)

func FuzzNew(f *testing.F) {
	// Seeds around the inline threshold
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("Hello World"))
	f.Add([]byte("abcdefghijkl"))
	f.Add([]byte("abcdefghijklm"))
	f.Add([]byte(longSentence))
	f.Add([]byte{0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		s, err := New(data)
		if err != nil {
			t.Fatalf("New(%d bytes): %v", len(data), err)
		}
		if s.Len() != len(data) {
			t.Errorf("Len() = %d, want %d", s.Len(), len(data))
		}
		if s.IsShort() != (len(data) <= MaxInline) {
			t.Errorf("IsShort() = %v for %d bytes", s.IsShort(), len(data))
		}
		if s.IsShort() == s.IsLong() {
			t.Error("IsShort and IsLong must be mutually exclusive")
		}
		if !bytes.Equal(s.Bytes(), data) {
			t.Errorf("Bytes() = %q, want %q", s.Bytes(), data)
		}
		if s.String() != string(data) {
			t.Errorf("String() = %q, want %q", s.String(), data)
		}
		if !s.Equal(&s) {
			t.Error("value not equal to itself")
		}
	})
}

func FuzzEqual(f *testing.F) {
	f.Add([]byte("Hello World"), []byte("Hello World"))
	f.Add([]byte("Hello World"), []byte("Hello Worldz"))
	f.Add([]byte(longSentence), []byte(longSentence))
	f.Add([]byte("ABCDEFGHIJKLMNOPQRST"), []byte("ABCDEFgHIJKLMNOPQRST"))
	f.Add([]byte{}, []byte{})

	f.Fuzz(func(t *testing.T, a, b []byte) {
		va, err := New(a)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := New(b)
		if err != nil {
			t.Fatal(err)
		}

		want := bytes.Equal(a, b)
		if got := va.Equal(&vb); got != want {
			t.Errorf("Equal(%q, %q) = %v, want %v", a, b, got, want)
		}
		if got := vb.Equal(&va); got != want {
			t.Errorf("Equal(%q, %q) = %v, want %v (symmetry)", b, a, got, want)
		}
	})
}

func FuzzHasPrefix(f *testing.F) {
	f.Add([]byte(longSentence), []byte("This"))
	f.Add([]byte(longSentence), []byte("Thiz"))
	f.Add([]byte(longSentence), []byte("This sentence"))
	f.Add([]byte("Hello World"), []byte("Hello"))
	f.Add([]byte{}, []byte{})

	f.Fuzz(func(t *testing.T, content, prefix []byte) {
		s, err := New(content)
		if err != nil {
			t.Fatal(err)
		}

		want := bytes.HasPrefix(content, prefix)
		if got := s.HasPrefix(prefix); got != want {
			t.Errorf("HasPrefix(%q, %q) = %v, want %v", content, prefix, got, want)
		}
	})
}
