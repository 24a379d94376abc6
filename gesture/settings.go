// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/sanihaq/left-press-draggable/base/errors"
)

// Settings are the tunable drag recognition parameters.
type Settings struct {

	// TouchSlop is the distance in pixels a touch contact must travel
	// before it counts as a drag.
	TouchSlop float32 `default:"18"`

	// MouseSlop is the distance in pixels a mouse pointer must travel
	// before it counts as a drag.
	MouseSlop float32 `default:"1"`

	// DragStartDelay is how long a contact must be held down before
	// its movement can start a drag. Zero starts drags on movement
	// alone.
	DragStartDelay time.Duration `default:"0"`
}

// Defaults sets standard values.
func (s *Settings) Defaults() {
	s.TouchSlop = TouchSlop
	s.MouseSlop = MouseSlop
	s.DragStartDelay = 0
}

var (
	// current is the active settings, guarded by currentMu because
	// [Watch] updates it from another goroutine.
	current   Settings
	currentMu sync.RWMutex
)

func init() {
	current.Defaults()
}

// Current returns the active settings.
func Current() Settings {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent makes the given settings active.
func SetCurrent(s Settings) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = s
}

// Open reads settings from the given TOML file and makes them active.
// Fields missing from the file keep their default values.
func Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var s Settings
	s.Defaults()
	if err := toml.Unmarshal(b, &s); err != nil {
		return err
	}
	SetCurrent(s)
	return nil
}

// Save writes the active settings to the given TOML file.
func Save(filename string) error {
	s := Current()
	b, err := toml.Marshal(&s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Watch makes the active settings follow the given TOML file, calling
// [Open] whenever it changes, until the returned stop function is
// called. Reload errors are logged and watching continues.
func Watch(filename string) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors typically replace the file on save, so watch its directory
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	name := filepath.Clean(filename)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name {
					continue
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					errors.Log(Open(name))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return func() { w.Close() }, nil
}
