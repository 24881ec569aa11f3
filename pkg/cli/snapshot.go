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
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Assemble a configuration snapshot from Hadoop site files",
		Description: `Build a snapshot document from *-site.xml files, optionally layered over an
existing snapshot, and write it out. Storing the snapshot in a ConfigMap lets
later validate and recommend runs (or the advisord API) reuse it.

--service records the installed services in the snapshot.

# Examples

Capture the local client configuration:
  advisorctl snapshot --stack HDP-2.2 --service HDFS \
    --site /etc/hadoop/conf/hdfs-site.xml --site /etc/hadoop/conf/core-site.xml \
    -o cm://hadoop/cluster

Replace one namespace in a stored snapshot:
  advisorctl snapshot -s cm://hadoop/cluster \
    --site hdfs-site=./hdfs-site.xml -o cm://hadoop/cluster`,
		Flags: []cli.Flag{
			snapshotFlag(),
			siteFlag(),
			stackFlag(),
			&cli.StringSliceFlag{
				Name:    "service",
				Sources: cli.EnvVars("ADVISOR_SERVICES"),
				Usage:   "Installed service to record in the snapshot (repeatable)",
			},
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
			if services := cmd.StringSlice("service"); len(services) > 0 {
				snap.Services = services
			}

			if err := writeOutput(ctx, cmd, snap); err != nil {
				return fmt.Errorf("failed to serialize snapshot: %w", err)
			}

			slog.Info("snapshot written",
				"stack", snap.Stack,
				"services", snap.Services,
				"namespaces", len(snap.Configurations))
			return nil
		},
	}
}
