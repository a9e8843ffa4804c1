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

package scaffold

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// Prompter asks the user for variable values.
type Prompter interface {
	Input(name, def string) (string, error)
	Select(name string, options []string, def string) (string, error)
	Confirm(name string, def bool) (bool, error)
}

// SurveyIO holds the streams used by interactive prompts.
type SurveyIO struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err terminal.FileWriter
}

// DefaultSurveyIO prompts on the process stdio.
var DefaultSurveyIO = SurveyIO{
	In:  os.Stdin,
	Out: os.Stdout,
	Err: os.Stderr,
}

// WithStdio returns the survey option binding s.
func (s SurveyIO) WithStdio() survey.AskOpt {
	return survey.WithStdio(s.In, s.Out, s.Err)
}

// SurveyPrompter implements Prompter with terminal prompts.
type SurveyPrompter struct {
	IO SurveyIO
}

// NewSurveyPrompter returns a prompter on the process stdio.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{IO: DefaultSurveyIO}
}

func (s *SurveyPrompter) Input(name, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: name, Default: def}, &out, s.IO.WithStdio())
	return out, err
}

func (s *SurveyPrompter) Select(name string, options []string, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: name, Options: options, Default: def}, &out, s.IO.WithStdio())
	return out, err
}

func (s *SurveyPrompter) Confirm(name string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: name, Default: def}, &out, s.IO.WithStdio())
	return out, err
}

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
