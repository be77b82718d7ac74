// SPDX-License-Identifier: MIT
// Package matrix: thin text-ingestion helpers.
// Parsing turns a whitespace/newline-delimited textual grid into the nested
// rows that New accepts; it adds no semantics of its own. A non-rectangular
// grid fails inside New with ErrMalformedInput, never a crash.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// parseRows splits s into non-blank lines, converts every whitespace-separated
// field with conv, and hands the nested rows to New.
func parseRows[T Number](s string, conv func(string) (T, error)) (*Matrix[T], error) {
	var rows [][]T
	for lineNo, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank lines carry no cells
		}
		row := make([]T, len(fields))
		for i, f := range fields {
			v, err := conv(f)
			if err != nil {
				return nil, matrixErrorf(opParse,
					fmt.Errorf("line %d, field %q: %w", lineNo+1, f, ErrMalformedInput))
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// ParseInt parses a whitespace/newline-delimited grid of integers.
// Errors: ErrMalformedInput (bad token, empty input, ragged rows).
// Complexity: O(total input length).
func ParseInt(s string) (*Matrix[int], error) {
	return parseRows(s, strconv.Atoi)
}

// ParseFloat64 parses a whitespace/newline-delimited grid of floats.
// Errors: ErrMalformedInput (bad token, empty input, ragged rows).
// Complexity: O(total input length).
func ParseFloat64(s string) (*Matrix[float64], error) {
	return parseRows(s, func(f string) (float64, error) {
		return strconv.ParseFloat(f, 64)
	})
}
