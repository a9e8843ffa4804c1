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

	"github.com/winkit-dev/winkit/pkg/oci"
	"github.com/winkit-dev/winkit/pkg/scaffold"
)

// defaultOCITag is used when the --push reference has no tag.
const defaultOCITag = "latest"

type scaffoldCmdOptions struct {
	templateDir string
	outputDir   string
	overrides   map[string]string
	noInput     bool
	overwrite   bool
	checksums   bool
	push        *oci.Reference
	plainHTTP   bool
	insecureTLS bool
}

func parseScaffoldCmdOptions(cmd *cli.Command) (*scaffoldCmdOptions, error) {
	if cmd.NArg() != 1 {
		return nil, usageErrorf("scaffold requires exactly one TEMPLATE_DIR argument, got %d", cmd.NArg())
	}

	opts := &scaffoldCmdOptions{
		templateDir: cmd.Args().First(),
		outputDir:   cmd.String("output"),
		noInput:     cmd.Bool("no-input"),
		overwrite:   cmd.Bool("overwrite"),
		checksums:   cmd.Bool("checksums"),
		plainHTTP:   cmd.Bool("plain-http"),
		insecureTLS: cmd.Bool("insecure-tls"),
	}

	var err error
	opts.overrides, err = scaffold.ParseOverrides(cmd.StringSlice("set"))
	if err != nil {
		return nil, &usageError{err: fmt.Errorf("invalid --set flag: %w", err)}
	}

	if target := cmd.String("push"); target != "" {
		ref, err := oci.ParseOutputTarget(target)
		if err != nil {
			return nil, &usageError{err: fmt.Errorf("invalid --push reference: %w", err)}
		}
		if !ref.IsOCI {
			return nil, usageErrorf("--push must be an %s reference, got %q", oci.URIScheme, target)
		}
		if ref.Tag == "" {
			ref = ref.WithTag(defaultOCITag)
		}
		opts.push = ref
	}

	return opts, nil
}

func scaffoldCmd() *cli.Command {
	return &cli.Command{
		Name:      "scaffold",
		Usage:     "Generate a project from a cookiecutter style template",
		ArgsUsage: "TEMPLATE_DIR",
		Description: `Renders TEMPLATE_DIR into a new project. TEMPLATE_DIR holds a
cookiecutter.json (or .yaml) context and exactly one templated project
directory such as {{cookiecutter.repo_name}}.

Variables are prompted for on a terminal unless --no-input is given;
--set name=value overrides a variable without prompting.

The generated project can be published as an OCI artifact:

  winkit scaffold ./windows_standalone_exe --no-input \
    --set repo_name=my_tool \
    --push oci://ghcr.io/acme/my-tool:1.0.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "parent directory of the generated project",
				Sources: cli.EnvVars(envVar("output")),
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "override a template variable (name=value), may be repeated",
			},
			&cli.BoolFlag{
				Name:    "no-input",
				Usage:   "do not prompt, use defaults and --set values",
				Sources: cli.EnvVars(envVar("no-input")),
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "write into an existing project directory",
			},
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "write checksums.txt into the generated project",
			},
			&cli.StringFlag{
				Name:    "push",
				Usage:   "push the generated project as an OCI artifact (oci://registry/repository[:tag])",
				Sources: cli.EnvVars(envVar("push")),
			},
			&cli.BoolFlag{
				Name:    "plain-http",
				Usage:   "use HTTP instead of HTTPS for the registry",
				Sources: cli.EnvVars(envVar("plain-http")),
			},
			&cli.BoolFlag{
				Name:    "insecure-tls",
				Usage:   "skip TLS certificate verification for the registry",
				Sources: cli.EnvVars(envVar("insecure-tls")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseScaffoldCmdOptions(cmd)
			if err != nil {
				return err
			}

			genOpts := scaffold.Options{
				TemplateDir: opts.templateDir,
				OutputDir:   opts.outputDir,
				Overrides:   opts.overrides,
				NoInput:     opts.noInput,
				Overwrite:   opts.overwrite,
				Checksums:   opts.checksums,
			}
			if !opts.noInput && scaffold.Interactive() {
				genOpts.Prompter = scaffold.NewSurveyPrompter()
			}

			slog.Info("generating project",
				"template", opts.templateDir,
				"output", opts.outputDir,
				"interactive", genOpts.Prompter != nil)

			res, err := scaffold.NewGenerator(genOpts).Generate(ctx)
			if err != nil {
				return err
			}

			if opts.push != nil {
				pub, err := oci.Publish(ctx, oci.PublishConfig{
					SourceDir:   res.OutputDir,
					Reference:   opts.push,
					Version:     version,
					PlainHTTP:   opts.plainHTTP,
					InsecureTLS: opts.insecureTLS,
				})
				if err != nil {
					return err
				}
				res.Reference = pub.Reference
				slog.Info("project published", "reference", pub.Reference, "digest", pub.Digest)
			}

			w := cmd.Root().Writer
			fmt.Fprintln(w, res.Summary())
			fmt.Fprintf(w, "Project directory: %s\n", res.OutputDir)
			if res.Reference != "" {
				fmt.Fprintf(w, "Pushed: %s\n", res.Reference)
			}
			return nil
		},
	}
}
