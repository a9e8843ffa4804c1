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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/winkit-dev/winkit/pkg/serializer"
	"github.com/winkit-dev/winkit/pkg/versioninfo"
)

func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Normalize version strings to a display version and a four part tuple",
		ArgsUsage: "VERSION...",
		Description: `Normalizes each VERSION the way version resource files need it:
only the first four dotted segments are kept, non-digits are dropped and
missing segments become zero.

  1         -> 1.0.0  (1, 0, 0, 0)
  1.2.dev3  -> 1.2.3  (1, 2, 3, 0)
  1..3.4    -> 1.0.3  (1, 0, 3, 4)`,
		Flags: []cli.Flag{
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if !cmd.Args().Present() {
				return usageErrorf("normalize requires at least one VERSION argument")
			}

			doc := versioninfo.NewDocument(version, time.Now(), cmd.Args().Slice()...)
			return serializer.NewWriter(format, cmd.Root().Writer).Serialize(ctx, doc)
		},
	}
}
