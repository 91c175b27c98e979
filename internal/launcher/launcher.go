// Package launcher performs the side effects of picking a project: spawning
// the editor, revealing the directory in the file browser and copying paths.
package launcher

import (
	"context"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
)

// Launcher spawns the configured editor command.
type Launcher struct {
	editor string
	env    envResolver
}

// New creates a Launcher for the given editor command.
func New(editor string) *Launcher {
	return &Launcher{editor: editor}
}

// Open starts the editor with path as its only argument, detached from the
// picker: the process inherits stdio and the resolved shell environment, and
// its exit is never observed. The returned error covers spawn failures only,
// a missing editor binary included.
func (l *Launcher) Open(ctx context.Context, path string) error {
	cmd := exec.Command(l.editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = l.env.Resolve(ctx)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		log.Error().Err(err).Str("editor", l.editor).Str("path", path).Msg("editor launch failed")
		return err
	}
	log.Info().Str("editor", l.editor).Str("path", path).Msg("editor launched")
	return nil
}

// CopyPath puts path on the system clipboard.
func CopyPath(path string) error {
	return clipboard.WriteAll(path)
}
