package config

import (
	"testing"
	"time"

	kit "chrozone/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	c := New().Prefix("CHROZONE_")
	if got := c.key("PORT"); got != "CHROZONE_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CHROZONE_PORT")
	}
	nested := c.Prefix("DISCORD_")
	if got := nested.key("PUB_KEY"); got != "CHROZONE_DISCORD_PUB_KEY" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_PUB_KEY", "  abcd ")
	if got := c.MustString("PUB_KEY"); got != "abcd" {
		t.Fatalf("MustString = %q, want %q", got, "abcd")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "/discord"); got != "/discord" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("S_PATH", " /hook ")
	if got := c.MayString("PATH", "x"); got != "/hook" {
		t.Fatalf("MayString value = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	t.Setenv("I_OK", " 7 ")
	t.Setenv("I_BAD", "x")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"MISSING", 9, 9},
		{"OK", 0, 7},
		{"BAD", 3, 3},
	}
	for _, tt := range tests {
		if got := c.MayInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("MayInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if !c.MayBool("T", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 3*time.Second); got != 3*time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("DUR_OK", "250ms")
	if got := c.MayDuration("OK", 0); got != 250*time.Millisecond {
		t.Fatalf("MayDuration ok = %v", got)
	}
	t.Setenv("DUR_BAD", "soon")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration bad -> default = %v", got)
	}
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("P_")
	if got := c.MayPort("MISSING", 3000); got != ":3000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("P_PORT", "8080")
	if got := c.MayPort("PORT", 3000); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("P_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MayPort("BAD", 3000) })
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("OOB", 3000) })
}
