// SPDX-License-Identifier: MIT
// Package builder provides the id schemes used by floor-plan constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a cell id from its zero-based index within the graph.
// It must be pure: the same idx always yields the same id.
type IDFn func(idx int) string

// ConnIDFn generates a connection id from its source and target cell ids.
type ConnIDFn func(from, to string) string

// DefaultIDFn returns "c" followed by idx+1, e.g. 0→"c1", 41→"c42".
// Panics if idx < 0.
func DefaultIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("DefaultIDFn: idx must be ≥ 0, got %d", idx))
	}

	return "c" + strconv.Itoa(idx+1)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "room0", "room1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DefaultConnIDFn joins endpoint ids with a dash, e.g. ("c1","c2")→"c1-c2".
func DefaultConnIDFn(from, to string) string {
	return from + "-" + to
}

// ConnPrefixIDFn returns prefix + DefaultConnIDFn, e.g. "conn" → "connc1-c2".
func ConnPrefixIDFn(prefix string) ConnIDFn {
	return func(from, to string) string {
		return prefix + DefaultConnIDFn(from, to)
	}
}

// WithSymbNumb sets the cell id scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs sets the cell id scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
