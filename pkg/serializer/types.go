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

package serializer

import "context"

const (
	// ConfigMapURIScheme prefixes Kubernetes ConfigMap destinations: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// StdoutPath selects standard output as the destination.
	StdoutPath = "-"
)

// Serializer writes a value to a destination in a configured format.
//
// The context is used for cancellation and timeouts by implementations that
// perform remote I/O, such as ConfigMap writes.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by Serializers holding resources such as file handles.
type Closer interface {
	Close() error
}

// SerializeAndClose writes v with s and then closes s if it implements Closer.
// A close error is only reported when the write succeeded.
func SerializeAndClose(ctx context.Context, s Serializer, v any) (err error) {
	if c, ok := s.(Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	return s.Serialize(ctx, v)
}
