package testkit

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"
)

// Signer holds a throwaway Ed25519 keypair for signing webhook fixtures
type Signer struct {
	Pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

// NewSigner generates a fresh keypair or fails the test
func NewSigner(t *testing.T) Signer {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return Signer{Pub: pub, priv: priv}
}

// PubHex is the public key in the form it is configured (64 hex chars)
func (s Signer) PubHex() string { return hex.EncodeToString(s.Pub) }

// Sign returns the hex signature over timestamp||body, as sent in X-Signature-Ed25519
func (s Signer) Sign(timestamp string, body []byte) string {
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return hex.EncodeToString(ed25519.Sign(s.priv, msg))
}
