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

// Package argv looks up flags in argument lists and splits raw command
// lines into argument lists.
//
// Lookups compare keys verbatim. There is no knowledge of "-", "--" or "/"
// prefixes: to read "value" out of "--key value", look up "--key".
//
// All lookups start at index 1, as index 0 is the name of the executable.
package argv

// Find returns the index of the first element of args after args[0] that is
// equal to key.
//
// Returns -1 and false if args has fewer than two elements, if key is empty,
// or if no element matches.
func Find(args []string, key string) (int, bool) {
	if len(args) < 2 || key == "" {
		return -1, false
	}
	for i := 1; i < len(args); i++ {
		if args[i] == key {
			return i, true
		}
	}
	return -1, false
}

// Get returns the element of args that directly follows key.
//
// Returns false if key is not found, or if key is the last element.
// A flag with nothing after it is treated the same as an absent flag.
func Get(args []string, key string) (string, bool) {
	index, ok := Find(args, key)
	if !ok || index+1 == len(args) {
		return "", false
	}
	return args[index+1], true
}

// Segment is the half-open byte range [Start, End) of a single token
// within a raw command line.
type Segment struct {
	Start int
	End   int
}

// Len returns the length of the token in bytes.
func (s Segment) Len() int {
	return s.End - s.Start
}

// String returns the text of the token within cmdline.
//
// cmdline must be the command line the Segment was scanned from.
func (s Segment) String(cmdline string) string {
	return cmdline[s.Start:s.End]
}

// Count returns the number of tokens in cmdline.
//
// This is the counting pass of the tokenizer: for the same cmdline and
// options, Count always equals len(Scan).
func Count(cmdline string, options ...ScanOption) int {
	scanOptions := newScanOptions()
	for _, option := range options {
		option(scanOptions)
	}
	return scan(cmdline, scanOptions.limit, nil)
}

// Scan returns the Segments of every token in cmdline, in order.
//
// The command line is split on whitespace, see IsWhitespace. A token that
// starts with a double quote extends to the next double quote that is not
// preceded by a backslash, or to the end of cmdline if there is none.
// Neither quote is part of the token, and escaped quotes are kept verbatim.
// Empty tokens are never returned.
// A NUL byte is an ordinary byte, it does not end the command line.
func Scan(cmdline string, options ...ScanOption) []Segment {
	scanOptions := newScanOptions()
	for _, option := range options {
		option(scanOptions)
	}
	segments := make([]Segment, scan(cmdline, scanOptions.limit, nil))
	scan(cmdline, len(segments), segments)
	return segments
}

// ScanOption is an option for Count and Scan.
type ScanOption func(*scanOptions)

// ScanWithLimit returns a new ScanOption that stops scanning once limit
// tokens have been found.
//
// A limit of zero or less means no limit.
func ScanWithLimit(limit int) ScanOption {
	return func(scanOptions *scanOptions) {
		scanOptions.limit = limit
	}
}

// Split splits cmdline into an argument list.
//
// This is meant for process entry points that receive a single unparsed
// command line instead of an argument vector, such as WinMain.
// The first element is the executable name, see SplitWithExecutableName,
// and the remaining elements are the tokens of cmdline as returned by Scan.
//
// The returned strings share a single buffer that is allocated once, and
// never reference the memory of cmdline.
//
// Returns an error if the options are invalid.
func Split(cmdline string, options ...SplitOption) ([]string, error) {
	splitOptions := newSplitOptions()
	for _, option := range options {
		option(splitOptions)
	}
	return split(cmdline, splitOptions)
}

// SplitOption is an option for Split.
type SplitOption func(*splitOptions)

// SplitWithExecutableName returns a new SplitOption that sets the first
// element of the returned argument list.
//
// The default is the empty string.
func SplitWithExecutableName(executableName string) SplitOption {
	return func(splitOptions *splitOptions) {
		splitOptions.executableName = executableName
	}
}

// SplitWithLimit returns a new SplitOption that stops splitting once limit
// tokens have been found. The executable name does not count towards the limit.
//
// Zero means no limit. A negative limit results in an error.
func SplitWithLimit(limit int) SplitOption {
	return func(splitOptions *splitOptions) {
		splitOptions.limit = limit
	}
}

type scanOptions struct {
	limit int
}

func newScanOptions() *scanOptions {
	return &scanOptions{}
}

type splitOptions struct {
	executableName string
	limit          int
}

func newSplitOptions() *splitOptions {
	return &splitOptions{}
}
