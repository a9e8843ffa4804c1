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

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/winkit-dev/winkit/pkg/logging"
)

const (
	name           = "winkit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	if stderrors.As(err, &ue) {
		return ExitUsage
	}
	var ec cli.ExitCoder
	if stderrors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitError
}

func newRootCmd(stdout, stderr io.Writer) *cli.Command {
	cmd := &cli.Command{
		Name:                  name,
		Usage:                 "Windows desktop project toolkit",
		EnableShellCompletion: true,
		HideVersion:           true,
		Writer:                stdout,
		ErrWriter:             stderr,
		Description: fmt.Sprintf(`winkit - Windows desktop project toolkit

Version: %s
Commit:  %s
Built:   %s

Generates Windows version resource files, normalizes version strings,
renders project templates and keeps their .gitignore files current.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(envVar("log-level"), logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   logging.FormatText,
				Usage:   "log format (text, json)",
				Sources: cli.EnvVars(envVar("log-format")),
			},
			&cli.BoolFlag{
				Name:  "version",
				Usage: "print the version and exit",
			},
		},
		Commands: []*cli.Command{
			versionInfoCmd(),
			normalizeCmd(),
			gitignoreCmd(),
			scaffoldCmd(),
			runCmd(),
		},
		Before:         initLogger,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				_, err := fmt.Fprintf(cmd.Root().Writer, "%s V%s\n", name, version)
				return err
			}
			if cmd.Args().Present() {
				return usageErrorf("unknown command %q", cmd.Args().First())
			}
			return cli.ShowAppHelp(cmd)
		},
	}
	setUsageErrorHandler(cmd)
	return cmd
}

func setUsageErrorHandler(cmd *cli.Command) {
	cmd.OnUsageError = onUsageError
	for _, sub := range cmd.Commands {
		setUsageErrorHandler(sub)
	}
}

// initLogger configures slog after flags are parsed so --log-level and
// --log-format take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	format := cmd.String("log-format")
	if format != logging.FormatText && format != logging.FormatJSON {
		return ctx, usageErrorf("invalid --log-format %q (must be text or json)", format)
	}

	w := cmd.Root().ErrWriter
	if w == nil {
		w = os.Stderr
	}
	level := logging.ParseLogLevel(cmd.String("log-level"))
	slog.SetDefault(slog.New(logging.NewHandler(w, format, level, false)).
		With("module", name, "version", version))

	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logging.LevelName(level))
	return ctx, nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newRootCmd(stdout, stderr).Run(ctx, args)
	if err != nil && err.Error() != "" {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// Execute runs the CLI with the process arguments, canceling on SIGINT or
// SIGTERM, and returns the exit code for main.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, os.Args, os.Stdout, os.Stderr)
}
