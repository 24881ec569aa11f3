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

	"github.com/NVIDIA/stack-advisor/pkg/configuration"
	"github.com/NVIDIA/stack-advisor/pkg/errors"
	"github.com/NVIDIA/stack-advisor/pkg/serializer"
)

// Flags are built per command so state never leaks between runs.

func snapshotFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "snapshot",
		Aliases: []string{"s"},
		Sources: cli.EnvVars("ADVISOR_SNAPSHOT"),
		Usage: `Path/URI to the configuration snapshot.
	Supports: file paths, "-" for stdin, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
	}
}

func siteFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name: "site",
		Usage: `Hadoop site file as namespace=path (repeatable). A bare path derives the
	namespace from the file name. Site files replace the same namespace from --snapshot.`,
	}
}

func stackFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "stack",
		Sources: cli.EnvVars("ADVISOR_STACK"),
		Usage:   "Stack release to apply (e.g. HDP-2.2); overrides the snapshot's stack",
	}
}

func serviceFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "service",
		Sources: cli.EnvVars("ADVISOR_SERVICES"),
		Usage:   "Limit the run to these services (repeatable, default: all installed)",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Sources: cli.EnvVars("ADVISOR_OUTPUT"),
		Usage:   "Output destination: file path, ConfigMap URI (cm://namespace/name), or stdout (default)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("ADVISOR_FORMAT"),
		Usage:   fmt.Sprintf("Output format (%v)", serializer.SupportedFormats()),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Sources: cli.EnvVars("KUBECONFIG"),
		Usage:   "Path to kubeconfig file used for ConfigMap sources and destinations",
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --format", err)
	}
	return f, nil
}

func configMapOptions(cmd *cli.Command) []serializer.ConfigMapOption {
	if kc := cmd.String("kubeconfig"); kc != "" {
		return []serializer.ConfigMapOption{serializer.WithKubeconfig(kc)}
	}
	return nil
}

// loadSnapshot assembles the snapshot from --snapshot, --site and --stack.
func loadSnapshot(ctx context.Context, cmd *cli.Command) (*configuration.Snapshot, error) {
	source := cmd.String("snapshot")
	sites := cmd.StringSlice("site")
	if source == "" && len(sites) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "either --snapshot or --site is required")
	}

	snap := configuration.NewSnapshot(version)
	if source != "" {
		slog.Info("loading snapshot", "uri", source)
		loaded, err := serializer.FromSource[configuration.Snapshot](ctx, source,
			serializer.WithConfigMapOptions(configMapOptions(cmd)...))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to load snapshot from %q", source), err)
		}
		snap = loaded
		if snap.Configurations == nil {
			snap.Configurations = make(configuration.Configurations)
		}
	}

	for _, arg := range sites {
		ns, path, err := configuration.ParseSiteArg(arg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --site", err)
		}
		props, err := configuration.LoadSiteFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to load site file", err)
		}
		slog.Debug("loaded site file", "namespace", ns, "path", path, "properties", len(props))
		snap.Configurations[ns] = props
	}

	if stack := cmd.String("stack"); stack != "" {
		snap.Stack = stack
	}
	if snap.Stack == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			"stack is not set: use --stack or set stack in the snapshot")
	}
	return snap, nil
}

// writeOutput serializes doc to --output in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, doc any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"), configMapOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to create output writer: %w", err)
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, doc)
}
