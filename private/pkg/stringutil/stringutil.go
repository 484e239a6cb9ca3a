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

// Package stringutil implements string utilities.
package stringutil

import (
	"strings"
	"unicode"
)

// TrimLines splits the output into individual lines and trims the spaces from each line.
//
// This also trims the start and end spaces from the original output.
func TrimLines(output string) string {
	return strings.TrimSpace(strings.Join(SplitTrimLines(output), "\n"))
}

// SplitTrimLines splits the output into individual lines and trims the spaces from each line.
func SplitTrimLines(output string) []string {
	// this should work for windows as well as \r will be trimmed
	split := strings.Split(output, "\n")
	lines := make([]string, len(split))
	for i, line := range split {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// SliceToString prints the slice as [e1,e2].
func SliceToString(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return "[" + strings.Join(s, ",") + "]"
}

// ToUpperSnakeCase transforms s to UPPER_SNAKE_CASE.
//
// Splits on '.', '-', '_', ' ', '\t', '\n', '\r', and before an uppercase
// letter that follows a lowercase letter.
func ToUpperSnakeCase(s string) string {
	var builder strings.Builder
	var previous rune
	for _, c := range strings.TrimFunc(s, isDelimiter) {
		switch {
		case isDelimiter(c):
			if previous != '_' {
				_, _ = builder.WriteRune('_')
			}
			c = '_'
		case unicode.IsUpper(c) && unicode.IsLower(previous):
			_, _ = builder.WriteRune('_')
			_, _ = builder.WriteRune(c)
		default:
			_, _ = builder.WriteRune(unicode.ToUpper(c))
		}
		previous = c
	}
	return builder.String()
}

func isDelimiter(r rune) bool {
	return r == '.' || r == '-' || r == '_' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
