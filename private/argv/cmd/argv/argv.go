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

package argv

import (
	"context"

	"github.com/bufbuild/argv/private/argv/argvcli"
	"github.com/bufbuild/argv/private/argv/cmd/argv/command/find"
	"github.com/bufbuild/argv/private/argv/cmd/argv/command/get"
	"github.com/bufbuild/argv/private/argv/cmd/argv/command/split"
	"github.com/bufbuild/argv/private/argv/cmd/argv/command/version"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/bufbuild/argv/private/pkg/app/appflag"
)

// Main is the entrypoint to the argv CLI.
func Main(name string) {
	appcmd.Main(context.Background(), NewRootCommand(name))
}

// NewRootCommand returns a new root command.
//
// This is public for use in testing.
func NewRootCommand(name string) *appcmd.Command {
	builder := appflag.NewBuilder(
		name,
		appflag.BuilderWithTimeout(argvcli.DefaultTimeout),
		appflag.BuilderWithInterceptor(argvcli.NewErrorInterceptor()),
	)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Look up flags in argument lists and split raw command lines.",
		Version:             argvcli.Version,
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			find.NewCommand("find", builder),
			get.NewCommand("get", builder),
			split.NewCommand("split", builder),
			version.NewCommand("version", builder),
		},
	}
}
