// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoorjson/jsonio"
	"github.com/katalvlaran/indoorjson/logging"
)

// debounceDelay coalesces the burst of events editors emit for one save.
const debounceDelay = 200 * time.Millisecond

// deriveFile reads the document at in and writes its hypergraph to out.
func deriveFile(in, out, indent string) (int, error) {
	g, err := jsonio.ReadGraph(in)
	if err != nil {
		return 0, err
	}
	h, err := g.Hypergraph()
	if err != nil {
		return 0, err
	}
	if err = jsonio.WriteHypergraph(out, h, indent); err != nil {
		return 0, err
	}

	return len(h.HyperEdges), nil
}

func runWatch(ctx context.Context, args []string, _ io.Writer) error {
	f, err := parseIO("watch", args, true)
	if err != nil {
		return err
	}
	logger, err := logging.New("info", logging.FormatConsole)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return watchFile(ctx, f, logger)
}

// watchFile derives once, then again after every change to f.in, until ctx ends.
// The parent directory is watched so that editors replacing the file are seen.
// A failed derivation is logged and the previous output is kept.
func watchFile(ctx context.Context, f ioFlags, logger *zap.Logger) error {
	in, err := filepath.Abs(f.in)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err = w.Add(filepath.Dir(in)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(in), err)
	}

	derive := func() {
		n, err := deriveFile(in, f.out, f.indent)
		if err != nil {
			logger.Warn("derivation failed", zap.String("in", in), zap.Error(err))
			return
		}
		logger.Info("hypergraph written",
			zap.String("in", in),
			zap.String("out", f.out),
			zap.Int("hyperedges", n),
		)
	}
	derive()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != in {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				debounce = time.After(debounceDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-debounce:
			debounce = nil
			derive()
		}
	}
}
