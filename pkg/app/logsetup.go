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

package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"k8s.io/utils/clock"

	"github.com/winkit-dev/winkit/pkg/logging"
)

// LogOptions configures the console and file logging of the run command.
type LogOptions struct {
	// Level is a level name such as INFO or DEBUG.
	Level string
	// Format is the console format, text or json.
	Format string
	// Console receives console output. Defaults to stdout.
	Console io.Writer
	// File enables the weekly rotating log file.
	File bool
	// Dir holds the log file. Defaults to DefaultLogDir(Company, Name).
	Dir string
	// Company and Name build the default log directory and file name.
	Company string
	Name    string
	// Clock drives log rotation.
	Clock clock.PassiveClock
}

// DefaultLogDir returns <user config dir>/<company>/<name>.
func DefaultLogDir(company, name string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, company, name), nil
}

// Logging is the logger built by NewLogging together with its log file.
type Logging struct {
	Logger *slog.Logger
	// File is nil when file logging is disabled.
	File *logging.RotatingFile
}

// Close closes the log file, if any.
func (l *Logging) Close() error {
	if l.File == nil {
		return nil
	}
	return l.File.Close()
}

// NewLogging creates a logger writing to the console and, when enabled, to
// <dir>/<name>.log rotated every Sunday with four backups kept. File records
// carry source locations.
func NewLogging(opts LogOptions) (*Logging, error) {
	level := logging.ParseLogLevel(opts.Level)
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = logging.FormatText
	}

	handlers := []slog.Handler{logging.NewHandler(console, format, level, false)}
	out := &Logging{}

	if opts.File {
		dir := opts.Dir
		if dir == "" {
			d, err := DefaultLogDir(opts.Company, opts.Name)
			if err != nil {
				return nil, err
			}
			dir = d
		}
		rf, err := logging.NewRotatingFile(filepath.Join(dir, opts.Name+".log"),
			logging.WithBackupCount(logging.DefaultBackupCount),
			logging.WithRolloverDay(logging.DefaultRolloverDay),
			logging.WithClock(opts.Clock),
		)
		if err != nil {
			return nil, err
		}
		out.File = rf
		handlers = append(handlers, logging.NewHandler(rf, logging.FormatText, level, true))
	}

	out.Logger = slog.New(logging.NewFanoutHandler(handlers...))
	return out, nil
}

// LogStart writes the start banner of the run command.
func LogStart(logger *slog.Logger, name, version string, toFile bool) {
	logger.Info(fmt.Sprintf("starting '%s' V%s", name, version))
	if runtime.GOOS == "windows" {
		host, _ := os.Hostname()
		account := os.Getenv("USERNAME")
		if u, err := user.Current(); err == nil {
			account = u.Username
		}
		logger.Info(fmt.Sprintf("running on '%s' as user '%s'", host, account))
	}
	if toFile {
		logger.Info("logging to console and file")
	} else {
		logger.Info("logging to console only")
	}
}
