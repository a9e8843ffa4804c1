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
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v3"

	"github.com/winkit-dev/winkit/pkg/serializer"
)

// envPrefix prefixes the environment variable of every flag.
const envPrefix = "WINKIT_"

// envVar returns the environment variable bound to a flag, e.g.
// "copyright-years" becomes WINKIT_COPYRIGHT_YEARS.
func envVar(flag string) string {
	return envPrefix + strcase.ToScreamingSnake(flag)
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   string(serializer.FormatYAML),
	Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	Sources: cli.EnvVars(envVar("format")),
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() || f == serializer.FormatText {
		return "", usageErrorf("unknown output format %q (supported: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}
