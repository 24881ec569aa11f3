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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stack-advisor/pkg/advisor"
)

func stacksCmd() *cli.Command {
	return &cli.Command{
		Name:  "stacks",
		Usage: "List registered stacks and the services they advise on",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "stack",
				Usage: "Describe a single stack with its inherited rules",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			if stack := cmd.String("stack"); stack != "" {
				info, err := advisor.Describe(stack)
				if err != nil {
					return err
				}
				return writeOutput(ctx, cmd, &advisor.Catalog{Stacks: []advisor.StackInfo{*info}})
			}
			return writeOutput(ctx, cmd, advisor.GetCatalog())
		},
	}
}
