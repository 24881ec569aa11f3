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
	"github.com/NVIDIA/stack-advisor/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate service configurations against the rules of a stack",
		Description: `Run the configuration validators of a stack against a snapshot and report
structured diagnostics (WARN/ERROR) per property.

A service is validated only when it is installed (or the snapshot lists no
services) and the namespace its validator reads is present.

# Examples

Validate local site files against HDP-2.2:
  advisorctl validate --stack HDP-2.2 \
    --site /etc/hadoop/conf/hdfs-site.xml --site /etc/hadoop/conf/core-site.xml

Validate a snapshot stored in a ConfigMap and keep the result next to it:
  advisorctl validate -s cm://hadoop/cluster -o cm://hadoop/validation

Fail the command on any warning (useful for CI/CD):
  advisorctl validate -s snapshot.yaml --fail-on-warn`,
		Flags: []cli.Flag{
			snapshotFlag(),
			siteFlag(),
			stackFlag(),
			serviceFlag(),
			&cli.BoolFlag{
				Name:    "fail-on-warn",
				Sources: cli.EnvVars("ADVISOR_FAIL_ON_WARN"),
				Usage:   "Exit with non-zero status if any warning is reported",
			},
			&cli.BoolFlag{
				Name:    "fail-on-error",
				Value:   true,
				Sources: cli.EnvVars("ADVISOR_FAIL_ON_ERROR"),
				Usage:   "Exit with non-zero status if any error is reported",
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

			rs, err := advisor.Resolve(snap.Stack)
			if err != nil {
				return err
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithServices(cmd.StringSlice("service")...),
			)

			result, err := v.Validate(ctx, rs.Stack, rs.ConfigurationValidators(), snap)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if err := writeOutput(ctx, cmd, result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Info("validation completed",
				"stack", result.Stack,
				"status", result.Summary.Status,
				"warnings", result.Summary.Warnings,
				"errors", result.Summary.Errors,
				"duration", result.Summary.Duration)

			if result.ShouldFail(cmd.Bool("fail-on-warn"), cmd.Bool("fail-on-error")) {
				return fmt.Errorf("validation failed: %d warning(s), %d error(s)",
					result.Summary.Warnings, result.Summary.Errors)
			}
			return nil
		},
	}
}
