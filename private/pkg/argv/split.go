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
	"fmt"
	"strings"

	"github.com/bufbuild/argv/private/pkg/syserror"
)

func split(cmdline string, splitOptions *splitOptions) ([]string, error) {
	if splitOptions.limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative but was %d", splitOptions.limit)
	}
	count := scan(cmdline, splitOptions.limit, nil)
	segments := make([]Segment, count)
	if written := scan(cmdline, count, segments); written != count {
		return nil, syserror.Newf("counted %d tokens but scanned %d for command line %q", count, written, cmdline)
	}
	size := len(splitOptions.executableName)
	for _, segment := range segments {
		size += segment.Len()
	}
	var builder strings.Builder
	builder.Grow(size)
	_, _ = builder.WriteString(splitOptions.executableName)
	for _, segment := range segments {
		_, _ = builder.WriteString(segment.String(cmdline))
	}
	// Every argument is a substring of data, so the list is backed by one allocation.
	data := builder.String()
	args := make([]string, count+1)
	offset := len(splitOptions.executableName)
	args[0] = data[:offset]
	for i, segment := range segments {
		args[i+1] = data[offset : offset+segment.Len()]
		offset += segment.Len()
	}
	return args, nil
}
