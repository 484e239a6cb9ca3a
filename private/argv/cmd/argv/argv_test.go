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
	"io"
	"strings"
	"testing"

	"github.com/bufbuild/argv/private/argv/argvcli"
	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/appcmd/appcmdtesting"
)

func TestFind(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		"1",
		"find", "--", "key", "appname", "key",
	)
	testRun(
		t,
		0,
		"2",
		"find", "--", "--key", "appname", "a", "--key", "b", "--key",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"find", "--", "nokey", "appname", "key",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"find", "--", "appname", "appname",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"find", "key",
	)
}

func TestFindCommandLine(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		"2",
		"find", "--command-line", `"--key" "the value"`, "--", "the value",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"find", "--command-line", `"--key" "the value"`, "--", "--nokey",
	)
}

func TestGet(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		"value",
		"get", "--", "--key", "appname", "--key", "value",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"get", "--", "--nokey", "appname", "--key", "value",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"get", "--", "--key", "appname", "value", "--key",
	)
}

func TestGetCommandLine(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		"the value",
		"get", "--command-line", `"--key" "the value"`, "--", "--key",
	)
	testRun(
		t,
		argvcli.ExitCodeNotFound,
		"",
		"get", "--command-line", "", "--", "--key",
	)
}

func TestGetInvalidArguments(t *testing.T) {
	t.Parallel()
	testRunStderr(
		t,
		1,
		"cannot specify arguments after the key",
		"get", "--command-line", "--key value", "--", "--key", "extra",
	)
	testRunStderr(
		t,
		1,
		"requires at least 1 arg(s)",
		"get",
	)
	testRunStderr(
		t,
		1,
		"the key must not be empty",
		"get", "--", "", "appname",
	)
}

func TestSplit(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		`
		app
		--key
		the value
		`,
		"split", "--executable-name", "app", `"--key" "the value"`,
	)
	testRun(
		t,
		0,
		`
		--key
		the value
		`,
		"split", "--no-executable-name", `  "--key"   "the value"  `,
	)
	testRun(
		t,
		0,
		`["app","--key","the value"]`,
		"split", "--executable-name", "app", "--format", "json", `"--key" "the value"`,
	)
	testRun(
		t,
		0,
		`
		- app
		- a
		`,
		"split", "--executable-name", "app", "--format", "yaml", "--limit", "1", "a b c",
	)
	testRun(
		t,
		0,
		`["say \\\"hi\\\"","x"]`,
		"split", "--no-executable-name", "--format", "json", `"say \"hi\"" x`,
	)
	testRun(
		t,
		0,
		"",
		"split", "--no-executable-name", `"" ""`,
	)
}

func TestSplitStdin(t *testing.T) {
	t.Parallel()
	appcmdtesting.Run(
		t,
		NewRootCommand,
		appcmdtesting.WithArgs("split", "--no-executable-name", "--format", "json"),
		appcmdtesting.WithStdin(strings.NewReader("a \"b c\"\n")),
		appcmdtesting.WithExpectedStdout(`["a","b c"]`),
	)
}

func TestSplitExecutablePath(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		`["`+strings.ReplaceAll(app.ExecutablePath(), `\`, `\\`)+`","a"]`,
		"split", "--format", "json", "a",
	)
}

func TestSplitInvalidArguments(t *testing.T) {
	t.Parallel()
	testRunStderr(
		t,
		1,
		"--limit must be non-negative",
		"split", "--limit", "-1", "a",
	)
	testRunStderr(
		t,
		1,
		"--format must be one of [text,json,yaml]",
		"split", "--format", "xml", "a",
	)
	testRunStderr(
		t,
		1,
		"cannot set both --executable-name and --no-executable-name",
		"split", "--executable-name", "app", "--no-executable-name", "a",
	)
	testRunStderr(
		t,
		1,
		"accepts at most 1 arg(s), received 2",
		"split", "a", "b",
	)
}

func TestTimeout(t *testing.T) {
	t.Parallel()
	testRun(
		t,
		0,
		"1",
		"--timeout", "5s", "find", "--", "key", "appname", "key",
	)
	appcmdtesting.Run(
		t,
		NewRootCommand,
		appcmdtesting.WithArgs("--timeout", "0", "split", "--no-executable-name"),
		appcmdtesting.WithStdin(strings.NewReader("a b")),
		appcmdtesting.WithExpectedStdout("a\nb"),
	)
}

func TestSplitStdinTimeout(t *testing.T) {
	t.Parallel()
	// Nothing is ever written, so reading stdin blocks until the pipe is closed.
	pipeReader, pipeWriter := io.Pipe()
	t.Cleanup(func() {
		_ = pipeWriter.Close()
	})
	appcmdtesting.Run(
		t,
		NewRootCommand,
		appcmdtesting.WithArgs("--timeout", "10ms", "split"),
		appcmdtesting.WithStdin(pipeReader),
		appcmdtesting.WithExpectedExitCode(1),
		appcmdtesting.WithExpectedStdout(""),
		appcmdtesting.WithExpectedStderrPartials("timed out"),
	)
}

func TestVersion(t *testing.T) {
	t.Parallel()
	testRun(t, 0, argvcli.Version, "version")
	testRun(t, 0, argvcli.Version, "--version")
}

func TestLogLevelEnv(t *testing.T) {
	t.Parallel()
	appcmdtesting.Run(
		t,
		NewRootCommand,
		appcmdtesting.WithArgs("find", "--", "key", "appname", "key"),
		appcmdtesting.WithEnv(
			func(use string) map[string]string {
				return map[string]string{
					"TEST_LOG_LEVEL":  "debug",
					"TEST_LOG_FORMAT": "json",
				}
			},
		),
		appcmdtesting.WithExpectedStdout("1"),
		appcmdtesting.WithExpectedStderrPartials(`"message":"find"`, `"key":"key"`),
	)
}

func testRun(t *testing.T, expectedExitCode int, expectedStdout string, args ...string) {
	t.Helper()
	appcmdtesting.Run(
		t,
		NewRootCommand,
		appcmdtesting.WithArgs(args...),
		appcmdtesting.WithExpectedExitCode(expectedExitCode),
		appcmdtesting.WithExpectedStdout(expectedStdout),
	)
}

func testRunStderr(t *testing.T, expectedExitCode int, expectedStderrPartial string, args ...string) {
	t.Helper()
	appcmdtesting.Run(
		t,
		NewRootCommand,
		appcmdtesting.WithArgs(args...),
		appcmdtesting.WithExpectedExitCode(expectedExitCode),
		appcmdtesting.WithExpectedStderrPartials(expectedStderrPartial),
	)
}
