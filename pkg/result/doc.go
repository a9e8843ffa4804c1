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

// Package result tracks the files written by winkit's generators.
//
// Gitignore updates, project scaffolding and version resource generation all
// report a Result:
//
//	r := result.New(result.OperationScaffold)
//	r.AddFile(path, int64(len(content)))
//	r.MarkSuccess()
//	fmt.Println(r.Summary())
//	// scaffold succeeded: 12 files (18.4 KB) in 35ms
//
// A Result carries a GenerationResult header and can be written with any
// serializer format.
package result
