// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

const (
	// DefaultBackupCount is the number of rotated log files kept.
	DefaultBackupCount = 4

	// DefaultRolloverDay is the weekday at whose midnight the file rotates.
	DefaultRolloverDay = time.Sunday

	backupSuffixLayout = "2006-01-02"
)

// RotatingFile is an io.WriteCloser appending to a log file that is rotated
// once a week at midnight of the rollover day. Rotated files get a
// ".YYYY-MM-DD" suffix and only the newest backups are kept.
type RotatingFile struct {
	mu       sync.Mutex
	path     string
	backups  int
	day      time.Weekday
	clock    clock.PassiveClock
	file     *os.File
	rollover time.Time
}

// RotatingFileOption configures a RotatingFile.
type RotatingFileOption func(*RotatingFile)

// WithBackupCount sets how many rotated files are kept. Zero keeps all.
func WithBackupCount(n int) RotatingFileOption {
	return func(r *RotatingFile) {
		if n >= 0 {
			r.backups = n
		}
	}
}

// WithRolloverDay sets the weekday on which the file rotates.
func WithRolloverDay(day time.Weekday) RotatingFileOption {
	return func(r *RotatingFile) {
		r.day = day
	}
}

// WithClock sets the clock used to decide when to rotate.
func WithClock(c clock.PassiveClock) RotatingFileOption {
	return func(r *RotatingFile) {
		if c != nil {
			r.clock = c
		}
	}
}

// NewRotatingFile opens (or creates) path for appending.
// The parent directory is created when missing. The first rollover is
// computed from the modification time of an existing file.
func NewRotatingFile(path string, opts ...RotatingFileOption) (*RotatingFile, error) {
	r := &RotatingFile{
		path:    path,
		backups: DefaultBackupCount,
		day:     DefaultRolloverDay,
		clock:   clock.RealClock{},
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// An existing file belongs to the week it was last written in, so a
	// process started after that week's rollover rotates on its first write.
	now := r.clock.Now()
	start := now
	if fi, err := os.Stat(path); err == nil {
		if mod := fi.ModTime().In(now.Location()); mod.Before(now) {
			start = mod
		}
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	r.rollover = nextRollover(start, r.day)
	return r, nil
}

// Path returns the path of the active log file.
func (r *RotatingFile) Path() string {
	return r.path
}

// Write appends p to the log file, rotating first when the rollover time has
// passed.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	if now := r.clock.Now(); !now.Before(r.rollover) {
		if err := r.rotate(now); err != nil {
			return 0, err
		}
	}

	return r.file.Write(p)
}

// Close closes the active log file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", r.path, err)
	}
	r.file = f
	return nil
}

func (r *RotatingFile) rotate(now time.Time) error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	// The suffix names the start of the period the file covers.
	suffix := r.rollover.AddDate(0, 0, -7).Format(backupSuffixLayout)
	backup := r.path + "." + suffix
	if err := os.Rename(r.path, backup); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if err := r.prune(); err != nil {
		return err
	}
	if err := r.open(); err != nil {
		return err
	}
	r.rollover = nextRollover(now, r.day)
	return nil
}

// prune removes the oldest backups beyond the configured count.
func (r *RotatingFile) prune() error {
	if r.backups == 0 {
		return nil
	}
	matches, err := filepath.Glob(r.path + ".*")
	if err != nil {
		return fmt.Errorf("failed to list log backups: %w", err)
	}

	backups := make([]string, 0, len(matches))
	prefix := len(r.path) + 1
	for _, m := range matches {
		if _, perr := time.Parse(backupSuffixLayout, m[prefix:]); perr == nil {
			backups = append(backups, m)
		}
	}
	if len(backups) <= r.backups {
		return nil
	}

	sort.Strings(backups)
	for _, old := range backups[:len(backups)-r.backups] {
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove log backup %s: %w", old, err)
		}
	}
	return nil
}

// nextRollover returns the first midnight on day strictly after now.
func nextRollover(now time.Time, day time.Weekday) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := (int(day) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return midnight.AddDate(0, 0, days)
}
