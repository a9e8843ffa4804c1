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
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"

	"github.com/winkit-dev/winkit/pkg/errors"
	"github.com/winkit-dev/winkit/pkg/logging"
)

// Exit codes returned by Main.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ErrDivisionByZero is returned by Run for a zero divisor.
var ErrDivisionByZero = errors.New(errors.ErrCodeInvalidRequest, "division by zero")

// App is the demonstration application driven by the run command.
type App struct {
	log *slog.Logger
}

// New creates an App logging to logger, or to the slog default when nil.
func New(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{log: logger}
}

// Run logs one message per level and returns 1 / divisor.
func (a *App) Run(ctx context.Context, divisor int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeTimeout, "run cancelled", err)
	}

	a.log.Log(ctx, logging.LevelCritical, "we are in main (CRITICAL)")
	a.log.ErrorContext(ctx, "we are in main (ERROR)")
	a.log.WarnContext(ctx, "we are in main (WARNING)")
	a.log.InfoContext(ctx, "we are in main (INFO)")
	a.log.DebugContext(ctx, "we are in main (DEBUG)")

	if divisor == 0 {
		return 0, ErrDivisionByZero
	}
	res := 1 / float64(divisor)
	a.log.InfoContext(ctx, fmt.Sprintf("1 / %d = %s", divisor, strconv.FormatFloat(res, 'f', -1, 64)))
	return res, nil
}

// Main runs the application and converts the outcome into an exit code.
// Errors and panics are logged as critical and yield ExitError.
func (a *App) Main(ctx context.Context, divisor int) (code int) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Log(ctx, logging.LevelCritical, "caught unhandled exception",
				"panic", r,
				"stack", string(debug.Stack()),
			)
			code = ExitError
		}

		msg := fmt.Sprintf("exit with returncode=%d", code)
		if code == ExitOK {
			a.log.InfoContext(ctx, msg)
		} else {
			a.log.ErrorContext(ctx, msg)
		}
	}()

	if _, err := a.Run(ctx, divisor); err != nil {
		a.log.Log(ctx, logging.LevelCritical, "caught unhandled exception", "error", err)
		return ExitError
	}
	return ExitOK
}
