// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

type container struct {
	EnvContainer
	StdinContainer
	StdoutContainer
	StderrContainer
	ArgContainer
}

func newContainer(
	envContainer EnvContainer,
	stdinContainer StdinContainer,
	stdoutContainer StdoutContainer,
	stderrContainer StderrContainer,
	argContainer ArgContainer,
) *container {
	return &container{
		EnvContainer:    envContainer,
		StdinContainer:  stdinContainer,
		StdoutContainer: stdoutContainer,
		StderrContainer: stderrContainer,
		ArgContainer:    argContainer,
	}
}
