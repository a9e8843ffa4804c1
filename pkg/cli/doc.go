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

// Package cli implements the winkit command line.
//
// # Commands
//
//	versioninfo SCRIPT   write a Windows version resource file for SCRIPT
//	normalize VERSION... print normalized versions as a VersionInfo document
//	gitignore            regenerate the project template .gitignore files
//	scaffold DIR         generate a project from a template directory
//	run                  run the logging skeleton application
//
// # Global Flags
//
//	--log-level   debug, info, warn, error (env WINKIT_LOG_LEVEL or LOG_LEVEL)
//	--log-format  text or json (env WINKIT_LOG_FORMAT)
//	--version     print "winkit V<version>"
//
// Every command flag can also be set through WINKIT_<FLAG>, upper case with
// dashes replaced by underscores, e.g. WINKIT_COPYRIGHT_YEARS.
//
// # Exit Codes
//
//	0  success
//	1  error
//	2  bad flags or arguments
//
// # Examples
//
//	winkit versioninfo my_app.py --company "Acme" -o build/file_version_info.txt
//	winkit versioninfo my_app.py -o cm://build/my-app-version
//	winkit normalize 1.2.dev3 1..3.4 --format table
//	winkit scaffold ./windows_standalone_exe --no-input --set repo_name=my_tool
//	winkit run --divisor 0 --no-logfile
package cli
