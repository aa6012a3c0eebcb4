package token

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	t.Run("url safe without padding", func(t *testing.T) {
		tok := Generate(DefaultByteLength)
		if tok == "" {
			t.Fatal("token should not be empty")
		}
		if strings.ContainsAny(tok, "+/=") {
			t.Errorf("token contains URL-unsafe characters: %s", tok)
		}
	})

	t.Run("length scales with byte length", func(t *testing.T) {
		short := Generate(16)
		long := Generate(32)
		if len(long) <= len(short) {
			t.Errorf("32-byte token (%d chars) should be longer than 16-byte token (%d chars)", len(long), len(short))
		}
	})

	t.Run("non-positive length falls back to default", func(t *testing.T) {
		tok := Generate(0)
		want := Generate(DefaultByteLength)
		if len(tok) != len(want) {
			t.Errorf("fallback token length mismatch: got %d, want %d", len(tok), len(want))
		}
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			tok := Generate(32)
			if seen[tok] {
				t.Fatalf("duplicate token generated: %s", tok)
			}
			seen[tok] = true
		}
	})
}

func TestHashSHA256Hex(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		h1 := HashSHA256Hex("some-token")
		h2 := HashSHA256Hex("some-token")
		if h1 != h2 {
			t.Errorf("hash not deterministic: %s != %s", h1, h2)
		}
	})

	t.Run("fixed length hex", func(t *testing.T) {
		h := HashSHA256Hex("x")
		if len(h) != 64 {
			t.Errorf("digest length: got %d, want 64", len(h))
		}
		for _, c := range h {
			if !strings.ContainsRune("0123456789abcdef", c) {
				t.Fatalf("digest contains non-hex character %q", c)
			}
		}
	})

	t.Run("distinct inputs produce distinct digests", func(t *testing.T) {
		if HashSHA256Hex("a") == HashSHA256Hex("b") {
			t.Error("different tokens produced the same digest")
		}
	})

	t.Run("known vector", func(t *testing.T) {
		// sha256("") is a fixed, well-known value.
		got := HashSHA256Hex("")
		want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
		if got != want {
			t.Errorf("sha256(\"\"): got %s, want %s", got, want)
		}
	})
}
