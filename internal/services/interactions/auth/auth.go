// Package auth verifies the Ed25519 signature the platform attaches to every webhook delivery
package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"net/http"

	perr "chrozone/internal/platform/errors"
)

const (
	// HeaderSignature carries the hex encoded detached signature
	HeaderSignature = "X-Signature-Ed25519"

	// HeaderTimestamp carries the timestamp that prefixes the signed message
	HeaderTimestamp = "X-Signature-Timestamp"
)

// Verifier is bound to the one method, path and public key the webhook accepts
type Verifier struct {
	Method string
	Path   string
	Key    ed25519.PublicKey
}

// Route rejects requests that are not aimed at the webhook
func (v Verifier) Route(method, path string) error {
	if method != v.Method {
		return perr.WithOp(perr.MethodNotAllowedf("method %s not allowed", method), "auth.route")
	}
	if path != v.Path {
		return perr.WithOp(perr.NotFoundf("no route for %s", path), "auth.route")
	}
	return nil
}

// Verify checks the signature headers against timestamp||body and returns body on success
func (v Verifier) Verify(header http.Header, body []byte) ([]byte, error) {
	sigHex := header.Get(HeaderSignature)
	if sigHex == "" {
		return nil, perr.WithField(perr.Unauthorizedf("missing signature"), HeaderSignature)
	}
	ts := header.Get(HeaderTimestamp)
	if ts == "" {
		return nil, perr.WithField(perr.Unauthorizedf("missing timestamp"), HeaderTimestamp)
	}

	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "signature is not hex"), HeaderSignature)
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, perr.WithField(perr.Validationf("signature must be %d bytes", ed25519.SignatureSize), HeaderSignature)
	}

	// ed25519.Verify panics on a malformed key
	if len(v.Key) != ed25519.PublicKeySize {
		return nil, perr.Unauthorizedf("invalid signature")
	}

	msg := make([]byte, 0, len(ts)+len(body))
	msg = append(msg, ts...)
	msg = append(msg, body...)
	if !ed25519.Verify(v.Key, msg, sig) {
		return nil, perr.Unauthorizedf("invalid signature")
	}
	return body, nil
}

// Authenticate runs Route then Verify for a single request
func Authenticate(method, path string, header http.Header, body []byte, v Verifier) ([]byte, error) {
	if err := v.Route(method, path); err != nil {
		return nil, err
	}
	return v.Verify(header, body)
}

// ParseKey decodes a hex public key as configured
func ParseKey(s string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "public key is not hex"), "PUB_KEY")
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, perr.WithField(perr.Validationf("public key must be %d bytes", ed25519.PublicKeySize), "PUB_KEY")
	}
	return ed25519.PublicKey(b), nil
}
