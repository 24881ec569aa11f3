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


// Package serializer encodes and decodes advisor documents (snapshots,
// validation results and recommendations).
//
// # Formats
//
// JSON and YAML round-trip. Table output is for terminals only: documents
// implementing Tabular render their own rows, anything else is flattened
// into sorted FIELD/VALUE pairs.
//
// # Destinations
//
// NewFileWriterOrStdout picks the sink from the path:
//
//	""  or "-"             stdout
//	cm://namespace/name    Kubernetes ConfigMap (server-side apply)
//	anything else          local file
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "cm://hadoop/advice")
//	if err != nil {
//	    return err
//	}
//	if c, ok := w.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	return w.Serialize(ctx, result)
//
// ConfigMaps carry the document under data["document.<ext>"] together with
// data["format"] and data["timestamp"], and are labeled with the document kind.
//
// # Sources
//
// FromSource decodes a document from a local path, stdin ("-"), an http(s)
// URL or a ConfigMap URI:
//
//	snap, err := serializer.FromSource[configuration.Snapshot](ctx, "https://example.com/cluster.yaml")
//
// Remote formats are taken from the URL extension, then the Content-Type,
// then the payload itself.
//
// # HTTP
//
// RespondJSON buffers the encoded body before writing headers so a failed
// encode never produces a partial response.
package serializer
