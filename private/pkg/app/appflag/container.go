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

package appflag

import (
	"github.com/bufbuild/argv/private/pkg/app"
	"go.uber.org/zap"
)

type container struct {
	app.Container

	appName string
	logger  *zap.Logger
}

func newContainer(baseContainer app.Container, appName string, logger *zap.Logger) *container {
	return &container{
		Container: baseContainer,
		appName:   appName,
		logger:    logger,
	}
}

func (c *container) AppName() string {
	return c.appName
}

func (c *container) Logger() *zap.Logger {
	return c.logger
}
