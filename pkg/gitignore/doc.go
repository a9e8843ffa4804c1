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

// Package gitignore regenerates the .gitignore files of the project
// templates from upstream github/gitignore files.
//
// Sources are fetched concurrently, combined through a Jinja2 template
// (the same dialect as project templates, see pkg/jinja) and written to
// every target:
//
//	u := gitignore.NewUpdater(gitignore.DefaultConfig(), gitignore.WithRoot("."))
//	res, err := u.Run(ctx)
//
// Target paths are taken literally; cookiecutter placeholders such as
// {{cookiecutter.repo_name}} are directory names, not template actions.
package gitignore
