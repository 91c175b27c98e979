package launcher

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// envResolver resolves the user's interactive shell environment once and
// caches it. Login shells can be slow to start, so callers run Resolve off
// the UI loop and should bound it with a context deadline.
type envResolver struct {
	mu     sync.Mutex
	cached []string
}

// Resolve returns os.Environ overlaid with the variables exported by the
// user's login shell. On any failure the current process environment is
// returned unchanged; a stale PATH beats no editor launch at all.
func (r *envResolver) Resolve(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != nil {
		return r.cached
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	out, err := exec.CommandContext(ctx, shell, "-ilc", "env").Output()
	if err != nil {
		log.Warn().Err(err).Str("shell", shell).Msg("shell environment resolution failed")
		return os.Environ()
	}

	r.cached = overlayEnv(os.Environ(), parseEnv(string(out)))
	return r.cached
}

// parseEnv parses `env` output into KEY=VALUE pairs, ignoring continuation
// lines from multi-line values.
func parseEnv(out string) []string {
	var pairs []string
	for _, line := range strings.Split(out, "\n") {
		if line == "" || !strings.Contains(line, "=") {
			continue
		}
		pairs = append(pairs, line)
	}
	return pairs
}

// overlayEnv merges overlay onto base, later keys winning.
func overlayEnv(base, overlay []string) []string {
	merged := make(map[string]string, len(base)+len(overlay))
	var order []string
	for _, pairs := range [][]string{base, overlay} {
		for _, kv := range pairs {
			key, _, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			if _, seen := merged[key]; !seen {
				order = append(order, key)
			}
			merged[key] = kv
		}
	}

	out := make([]string, 0, len(order))
	for _, key := range order {
		out = append(out, merged[key])
	}
	return out
}
