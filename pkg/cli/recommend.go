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

	"github.com/NVIDIA/stack-advisor/pkg/advisor"
	"github.com/NVIDIA/stack-advisor/pkg/recommender"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		Aliases:               []string{"rec"},
		EnableShellCompletion: true,
		Usage:                 "Recommend default configuration values for the services of a stack",
		Description: `Run the configuration recommenders of a stack against a snapshot. The output
holds the resulting configurations and the list of properties that changed.
Existing values are never overwritten.

# Examples

  advisorctl recommend --stack HDP-2.2 --site hdfs-site=./hdfs-site.xml
  advisorctl recommend -s https://config.example.com/cluster.json -t table`,
		Flags: []cli.Flag{
			snapshotFlag(),
			siteFlag(),
			stackFlag(),
			serviceFlag(),
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			snap, err := loadSnapshot(ctx, cmd)
			if err != nil {
				return err
			}

			rs, err := advisor.Resolve(snap.Stack)
			if err != nil {
				return err
			}

			r := recommender.New(
				recommender.WithVersion(version),
				recommender.WithServices(cmd.StringSlice("service")...),
			)

			rec, err := r.Recommend(ctx, rs.Stack, rs.ConfigurationRecommenders(), snap)
			if err != nil {
				return fmt.Errorf("recommendation failed: %w", err)
			}

			slog.Info("recommendation completed",
				"stack", rec.Stack,
				"services", rec.Services,
				"changes", len(rec.Changes))

			return writeOutput(ctx, cmd, rec)
		},
	}
}
