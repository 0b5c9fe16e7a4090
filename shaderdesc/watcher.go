// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaderdesc

import (
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glmodel/glmodel"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a description file and its stage files for changes.
// The directories are watched rather than the files, as editors often
// save by renaming a new file over the old one.
//
// The event goroutine only raises a flag: the render thread polls
// [Watcher.Changed] and rebuilds with [Watcher.Reload], so that all
// GL calls stay on that thread.
type Watcher struct {

	// File is the description file.
	File string

	watcher   *fsnotify.Watcher
	done      chan bool
	closeOnce sync.Once

	mu    sync.Mutex
	files map[string]bool

	changed atomic.Bool
}

// NewWatcher starts watching the description file and the stage files
// it names.
func NewWatcher(file string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{File: file, watcher: fw, done: make(chan bool), files: map[string]bool{}}
	files := []string{file}
	if pd, err := Open(file); err == nil {
		files = append(files, pd.StageFiles()...)
	} else {
		errors.Log(err)
	}
	if err := w.watch(files); err != nil {
		fw.Close()
		return nil, err
	}
	go w.run()
	return w, nil
}

// watch adds the files to the watched set.
func (w *Watcher) watch(files []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		w.files[abs] = true
		if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) isWatched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if w.isWatched(event.Name) {
				slog.Debug("shaderdesc: file changed", "file", event.Name, "op", event.Op)
				w.changed.Store(true)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shaderdesc: watcher error", "err", err)
		}
	}
}

// Changed reports whether a watched file changed since the last call.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

// Reload rebuilds the program from the description. On failure the
// error is logged and current is returned with false; on success the
// new program is returned with true, and the caller is responsible for
// deleting current once nothing draws with it.
func (w *Watcher) Reload(c *glmodel.Context, current *glmodel.Program) (*glmodel.Program, bool) {
	pd, err := Open(w.File)
	if err != nil {
		errors.Log(err)
		return current, false
	}
	errors.Log(w.watch(pd.StageFiles()))
	pr, err := pd.Build(c)
	if err != nil {
		slog.Error("shaderdesc: keeping previous program", "program", pd.Name, "err", err)
		return current, false
	}
	slog.Info("shaderdesc: reloaded program", "program", pd.Name)
	return pr, true
}

// Close stops watching. Closing again does nothing.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
