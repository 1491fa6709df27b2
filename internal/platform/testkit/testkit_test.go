package testkit

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, "alpha beta gamma", "beta")
}

func TestSigner_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSigner(t)
	if len(s.PubHex()) != 64 {
		t.Fatalf("PubHex len = %d, want 64", len(s.PubHex()))
	}
	body := []byte(`{"type":1}`)
	sig, err := hex.DecodeString(s.Sign("1700000000", body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ed25519.Verify(s.Pub, append([]byte("1700000000"), body...), sig) {
		t.Fatalf("signature did not verify")
	}
	if ed25519.Verify(s.Pub, append([]byte("1700000001"), body...), sig) {
		t.Fatalf("signature verified over a different timestamp")
	}
}
