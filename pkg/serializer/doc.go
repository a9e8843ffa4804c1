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

// Package serializer writes and reads winkit documents.
//
// # Output
//
// A Writer encodes values as JSON, YAML, a flattened FIELD/VALUE table, or
// verbatim text (strings and byte slices, used for rendered files):
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// NewFileWriterOrStdout picks the destination from a path. "-" and "" are
// standard output, cm://namespace/name is a Kubernetes ConfigMap written with
// server-side apply, and anything else is a file:
//
//	s, err := serializer.NewFileWriterOrStdout(serializer.FormatText, out,
//	    serializer.WithDataName("file_version_info"))
//	if err != nil {
//	    return err
//	}
//	return serializer.SerializeAndClose(ctx, s, content)
//
// # Input
//
// FromFile decodes a JSON or YAML file into a typed value, detecting the
// format from the extension. HTTPReader fetches remote documents with
// bounded timeouts.
//
// # HTTP responses
//
// RespondJSON and RespondText write API responses; the JSON body is encoded
// before the status line is sent.
package serializer
