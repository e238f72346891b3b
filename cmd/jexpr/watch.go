package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/HyperLuna/jexpr"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// watchDebounce coalesces the write bursts editors produce on save.
const watchDebounce = 100 * time.Millisecond

// watchCheck re-runs certification whenever the input file changes.
// The parent directory is watched rather than the file itself, so
// rename-based atomic saves keep working.
func watchCheck(ctx context.Context, out, errOut io.Writer, path string, params []string, opts []jexpr.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)

	run := func() {
		if err := checkOnce(out, path, params, opts); err != nil {
			fmt.Fprintln(errOut, renderError(err))
		}
	}

	log.Info().Str("path", path).Msg("watching for changes")
	run()

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Msg("input changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}
