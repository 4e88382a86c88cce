// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// splitList splits a list separated by commas and/or white space.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// ParseNumbers parses a list of integers separated by commas or spaces.
func ParseNumbers(s string) ([]int, error) {
	fields := splitList(s)
	res := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q; %w", f, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// ParseProbabilities parses a list of floating point numbers separated by
// commas or spaces.
func ParseProbabilities(s string) ([]float64, error) {
	fields := splitList(s)
	res := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability %q; %w", f, err)
		}
		res = append(res, v)
	}
	return res, nil
}
