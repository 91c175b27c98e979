package project

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher notifies when the contents of the currently watched directory
// change, so an open picker can refresh its listing live.
type Watcher struct {
	fw      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	current string
}

// NewWatcher creates a watcher with no directory attached yet.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel that receives a signal per batch of
// directory mutations.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Watch switches the watcher to dir, dropping the previous directory.
// A directory that cannot be watched (e.g. it does not exist yet) is
// logged and ignored; listing already degrades to empty for it.
func (w *Watcher) Watch(dir string) {
	if dir == w.current {
		return
	}
	if w.current != "" {
		_ = w.fw.Remove(w.current)
		w.current = ""
	}
	if err := w.fw.Add(dir); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
		return
	}
	w.current = dir
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}
