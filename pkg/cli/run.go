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
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/winkit-dev/winkit/pkg/app"
)

// runLogLevels are accepted by run --loglevel.
var runLogLevels = []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}

// runCompany is the directory under the user config dir holding run logs.
const runCompany = "winkit-dev"

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the logging skeleton application",
		Description: `Runs the demonstration application of the standalone executable
template: logs a message at every level, then logs 1 / DIVISOR.
A divisor of 0 shows how errors are reported and mapped to exit code 1.

Logs go to the console and, unless --no-logfile is given, to a log file
rotated every Sunday with four backups kept.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "divisor",
				Aliases: []string{"d"},
				Value:   1,
				Usage:   "divisor used by the application",
				Sources: cli.EnvVars(envVar("divisor")),
			},
			&cli.BoolFlag{
				Name:    "logfile",
				Value:   true,
				Usage:   "log to a file in addition to the console",
				Sources: cli.EnvVars(envVar("logfile")),
			},
			&cli.BoolFlag{
				Name:  "no-logfile",
				Usage: "log to the console only",
			},
			&cli.StringFlag{
				Name:    "logdir",
				Usage:   "directory for the log files (default: <user config dir>/" + runCompany + "/" + name + ")",
				Sources: cli.EnvVars(envVar("logdir")),
			},
			&cli.StringFlag{
				Name:    "loglevel",
				Aliases: []string{"l"},
				Value:   "INFO",
				Usage:   "log level (" + strings.Join(runLogLevels, ", ") + ")",
				Sources: cli.EnvVars(envVar("loglevel")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level := strings.ToUpper(cmd.String("loglevel"))
			if !slices.Contains(runLogLevels, level) {
				return usageErrorf("invalid --loglevel %q (must be one of %s)",
					cmd.String("loglevel"), strings.Join(runLogLevels, ", "))
			}
			toFile := cmd.Bool("logfile") && !cmd.Bool("no-logfile")

			lg, err := app.NewLogging(app.LogOptions{
				Level:   level,
				Format:  cmd.String("log-format"),
				Console: cmd.Root().Writer,
				File:    toFile,
				Dir:     cmd.String("logdir"),
				Company: runCompany,
				Name:    name,
			})
			if err != nil {
				return err
			}
			defer lg.Close()

			app.LogStart(lg.Logger, name, version, toFile)
			if code := app.New(lg.Logger).Main(ctx, cmd.Int("divisor")); code != app.ExitOK {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

