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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/winkit-dev/winkit/pkg/gitignore"
	"github.com/winkit-dev/winkit/pkg/serializer"
)

func gitignoreCmd() *cli.Command {
	return &cli.Command{
		Name:  "gitignore",
		Usage: "Regenerate the .gitignore files of the project templates",
		Description: `Downloads the upstream gitignore sources, renders them through the
gitignore template and overwrites every target file.

Without --config the bundled configuration is used: the GitHub Python and
Visual Studio Code gitignore files combined into the four project templates.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or JSON file with template, sources and targets",
				Sources: cli.EnvVars(envVar("config")),
			},
			&cli.StringFlag{
				Name:    "template",
				Usage:   "template file, overrides the configured one",
				Sources: cli.EnvVars(envVar("template")),
			},
			&cli.StringFlag{
				Name:    "root",
				Value:   ".",
				Usage:   "directory the template and targets are relative to",
				Sources: cli.EnvVars(envVar("root")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := gitignore.DefaultConfig()
			if path := cmd.String("config"); path != "" {
				loaded, err := gitignore.LoadConfig(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if tmpl := cmd.String("template"); tmpl != "" {
				cfg.Template = tmpl
			}

			slog.Info("updating gitignore files",
				"root", cmd.String("root"),
				"sources", len(cfg.Sources),
				"targets", len(cfg.Targets))

			u := gitignore.NewUpdater(cfg,
				gitignore.WithRoot(cmd.String("root")),
				gitignore.WithFetcher(serializer.NewHTTPReader(serializer.WithUserAgent(name+"/"+version))),
			)
			res, err := u.Run(ctx)
			if res != nil {
				fmt.Fprintln(cmd.Root().Writer, res.Summary())
			}
			return err
		},
	}
}
