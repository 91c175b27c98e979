package launcher

import (
	"context"
	"strings"
	"testing"
)

func TestParseEnv(t *testing.T) {
	out := "PATH=/usr/bin:/bin\nEDITOR=vim\n\nnot a pair\nEMPTY=\n"

	pairs := parseEnv(out)
	want := []string{"PATH=/usr/bin:/bin", "EDITOR=vim", "EMPTY="}
	if len(pairs) != len(want) {
		t.Fatalf("Expected %d pairs, got %v", len(want), pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("Expected pair %q, got %q", want[i], pairs[i])
		}
	}
}

func TestOverlayEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/u", "TERM=xterm"}
	overlay := []string{"PATH=/opt/bin:/usr/bin", "LANG=en_US.UTF-8"}

	merged := overlayEnv(base, overlay)

	got := make(map[string]string, len(merged))
	for _, kv := range merged {
		key, val, _ := strings.Cut(kv, "=")
		got[key] = val
	}

	if got["PATH"] != "/opt/bin:/usr/bin" {
		t.Errorf("Expected overlay PATH to win, got %q", got["PATH"])
	}
	if got["HOME"] != "/home/u" {
		t.Errorf("Expected base HOME to survive, got %q", got["HOME"])
	}
	if got["LANG"] != "en_US.UTF-8" {
		t.Errorf("Expected overlay-only LANG, got %q", got["LANG"])
	}
}

func TestResolveFallsBackOnFailure(t *testing.T) {
	t.Setenv("SHELL", "/nonexistent/shell")

	var r envResolver
	env := r.Resolve(context.Background())
	if len(env) == 0 {
		t.Error("Expected current environ as fallback, got empty")
	}
}

func TestOpenMissingBinary(t *testing.T) {
	l := New("definitely-not-a-real-editor-binary")

	if err := l.Open(context.Background(), t.TempDir()); err == nil {
		t.Error("Expected error for missing editor binary")
	}
}
