// Package watch recompiles the asset tree when i18n sources change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// watchedExts are the file types whose changes trigger a rebuild.
var watchedExts = map[string]bool{
	".i18n":       true,
	".properties": true,
	".xml":        true,
	".toml":       true,
}

// Watcher observes a source tree and invokes a callback after changes
// settle for a debounce interval.
type Watcher struct {
	debounce time.Duration
	onChange func()
}

// New creates a Watcher calling onChange after each settled burst of
// changes. A non-positive debounce defaults to 300ms.
func New(debounce time.Duration, onChange func()) *Watcher {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &Watcher{debounce: debounce, onChange: onChange}
}

// Run watches root recursively until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, root string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, root); err != nil {
		return err
	}

	log.Info().Str("root", root).Dur("debounce", w.debounce).Msg("Watching for changes")

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(w.debounce)
		timerC = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case <-timerC:
			timerC = nil
			w.onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")

		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories join the watch set.
			if evt.Op&fsnotify.Create != 0 {
				if fi, statErr := os.Stat(evt.Name); statErr == nil && fi.IsDir() {
					if addErr := addRecursive(watcher, evt.Name); addErr != nil {
						log.Warn().Err(addErr).Str("path", evt.Name).Msg("Cannot watch new directory")
					}
					continue
				}
			}
			if shouldTrigger(evt) {
				resetTimer()
			}
		}
	}
}

func shouldTrigger(evt fsnotify.Event) bool {
	if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return watchedExts[filepath.Ext(evt.Name)]
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
