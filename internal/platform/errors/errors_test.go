package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeTransport, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad hex")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeTransport, "read failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if got := e3.Error(); got != "read failed: root" {
		t.Fatalf("Wrap().Error = %q", got)
	}
	e4 := Wrapf(src, ErrorCodeUnauthorized, "verify %s", "sig")
	if CodeOf(e4) != ErrorCodeUnauthorized {
		t.Fatalf("Wrapf code = %v", CodeOf(e4))
	}
	if Root(fmt.Errorf("outer: %w", e4)) != src {
		t.Fatalf("Root should return the deepest cause")
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeValidation, "bad")
	withField := WithField(base, "X-Signature-Ed25519")
	withOp := WithOp(withField, "auth.verify")

	be, _ := As(base)
	if be.Field() != "" || be.Op() != "" {
		t.Fatalf("base mutated: field=%q op=%q", be.Field(), be.Op())
	}
	oe, ok := As(withOp)
	if !ok {
		t.Fatalf("As(withOp) failed")
	}
	if oe.Field() != "X-Signature-Ed25519" || oe.Op() != "auth.verify" {
		t.Fatalf("field=%q op=%q", oe.Field(), oe.Op())
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "f") != foreign || WithOp(foreign, "o") != foreign {
		t.Fatalf("foreign errors should pass through unchanged")
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("no %s", "route"), ErrorCodeNotFound},
		{MethodNotAllowedf("GET"), ErrorCodeMethodNotAllowed},
		{Validationf("v"), ErrorCodeValidation},
		{JSONErrf("j"), ErrorCodeJSON},
		{PanicErrf("p"), ErrorCodePanic},
		{Unauthorizedf("u"), ErrorCodeUnauthorized},
		{Transportf("t"), ErrorCodeTransport},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.want) {
			t.Fatalf("%v: code = %v, want %v", c.err, CodeOf(c.err), c.want)
		}
	}
}

func TestWireAndHTTP(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
	w := WireFrom(stderrs.New("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}
	status, wire := HTTP(WithField(Unauthorizedf("bad signature"), "sig"))
	if status != http.StatusUnauthorized || wire.Field != "sig" || wire.Message != "bad signature" {
		t.Fatalf("HTTP() = %d %+v", status, wire)
	}
	if status, _ := HTTP(nil); status != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", status)
	}
}
