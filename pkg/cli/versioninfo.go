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
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/mod/semver"

	"github.com/winkit-dev/winkit/pkg/errors"
	"github.com/winkit-dev/winkit/pkg/serializer"
	"github.com/winkit-dev/winkit/pkg/versioninfo"
)

func versionInfoCmd() *cli.Command {
	return &cli.Command{
		Name:      "versioninfo",
		Usage:     "Create a Windows version resource file for pyi-set_version",
		ArgsUsage: "SCRIPT",
		Description: `Reads the version assigned to __version__ in SCRIPT and writes a
version resource file usable with pyi-set_version (pyinstaller).

The product name is the base name of SCRIPT without its extension. The
file version appends the current hour and minute to the product version.

Output may be a file path, - for stdout, or a ConfigMap URI
(cm://namespace/name).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "company",
				Value:   versioninfo.DefaultCompany,
				Usage:   "company for the version resource",
				Sources: cli.EnvVars(envVar("company")),
			},
			&cli.StringFlag{
				Name:    "copyright-years",
				Usage:   "years for the copyright statement (default: 2020-<current year>)",
				Sources: cli.EnvVars(envVar("copyright-years")),
			},
			&cli.StringFlag{
				Name:    "variable",
				Value:   versioninfo.DefaultVariable,
				Usage:   "name of the version variable in SCRIPT",
				Sources: cli.EnvVars(envVar("variable")),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   versioninfo.DefaultFileName,
				Usage:   "version resource file (- for stdout, cm://namespace/name for a ConfigMap)",
				Sources: cli.EnvVars(envVar("out")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usageErrorf("versioninfo requires exactly one SCRIPT argument, got %d", cmd.NArg())
			}
			script := cmd.Args().First()

			ver, err := versioninfo.ExtractVersionFromFile(script, cmd.String("variable"))
			if err != nil {
				return err
			}
			warnNonSemver(ver)

			text, err := versioninfo.Render(versioninfo.Options{
				Product:        versioninfo.ProductName(script),
				Version:        ver,
				Company:        cmd.String("company"),
				CopyrightYears: cmd.String("copyright-years"),
			})
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "failed to render version resource", err)
			}

			out := cmd.String("out")
			ser, err := serializer.NewFileWriterOrStdout(serializer.FormatText, out,
				serializer.WithDataName(strings.TrimSuffix(versioninfo.DefaultFileName, ".txt")))
			if err != nil {
				return err
			}
			if err := serializer.SerializeAndClose(ctx, ser, text); err != nil {
				return fmt.Errorf("failed to write version resource file: %w", err)
			}

			slog.Info(fmt.Sprintf("Version Resource File written as '%s'.", out))
			return nil
		},
	}
}

// warnNonSemver reports versions that lose characters during normalization.
func warnNonSemver(v string) {
	if semver.IsValid("v" + strings.TrimPrefix(v, "v")) {
		return
	}
	slog.Warn("version is not valid semver, non-digit characters are dropped",
		"version", v)
}
