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

// IsWhitespace returns true if c splits unquoted tokens.
//
// This is the ASCII whitespace set plus NEL (0x85) and NBSP (0xA0), compared
// as single bytes. Multi-byte UTF-8 sequences that contain these bytes are
// split as well.
func IsWhitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x85, 0xA0:
		return true
	default:
		return false
	}
}

// scan walks cmdline and returns the number of tokens found.
//
// If segments is nil, this only counts, stopping at limit if limit > 0.
// Otherwise the boundaries of each token are written to segments, and
// scanning stops once len(segments) tokens have been written.
func scan(cmdline string, limit int, segments []Segment) int {
	if segments != nil {
		limit = len(segments)
		if limit == 0 {
			return 0
		}
	}
	count := 0
	cursor := 0
	for limit <= 0 || count < limit {
		cursor = skipWhitespace(cmdline, cursor)
		if cursor == len(cmdline) {
			break
		}
		quoted := cmdline[cursor] == '"'
		start := cursor
		if quoted {
			start++
		}
		end := segmentEnd(cmdline, start, quoted)
		if end > start {
			if segments != nil {
				segments[count] = Segment{
					Start: start,
					End:   end,
				}
			}
			count++
		}
		cursor = end
		// Step over the closing quote, otherwise it would open the next segment.
		if quoted && end < len(cmdline) && cmdline[end] == '"' {
			cursor++
		}
	}
	return count
}

func skipWhitespace(cmdline string, cursor int) int {
	for cursor < len(cmdline) && IsWhitespace(cmdline[cursor]) {
		cursor++
	}
	return cursor
}

func segmentEnd(cmdline string, start int, quoted bool) int {
	end := start
	for ; end < len(cmdline); end++ {
		c := cmdline[end]
		if quoted {
			// A quoted segment always starts past its opening quote, so end-1 is in range.
			if c == '"' && cmdline[end-1] != '\\' {
				return end
			}
			continue
		}
		if IsWhitespace(c) {
			return end
		}
	}
	return end
}
