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

// Package versioninfo creates Windows version resource files.
//
// A version resource file is the VSVersionInfo text consumed by
// pyi-set_version to stamp product and file versions into an executable.
// The product version is the normalized form of the application's version
// string; the file version appends the build time as HHMM:
//
//	v, err := versioninfo.ExtractVersionFromFile("my_app.py", "")
//	if err != nil {
//	    return err // NOT_FOUND when no __version__ assignment exists
//	}
//	text, err := versioninfo.Render(versioninfo.Options{
//	    Product: versioninfo.ProductName("my_app.py"),
//	    Version: v,
//	})
//
// Only versions with three dotted parts are recognized by the extractor.
package versioninfo
