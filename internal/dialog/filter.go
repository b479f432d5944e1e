// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"path/filepath"
	"slices"
	"strings"
)

// AnyExtension is the wildcard extension meaning "all files".
const AnyExtension = "*"

// Filter is a named set of file extensions, without the leading dot.
type Filter struct {
	Name       string   `json:"name" yaml:"name" hcl:"name,label"`
	Extensions []string `json:"extensions" yaml:"extensions" hcl:"extensions"`
}

// DefaultOpenFilters is offered by the open dialog.
func DefaultOpenFilters() []Filter {
	return []Filter{
		{Name: "Text Files", Extensions: []string{"txt", "md", "json", "rs", "py", "js", "ts"}},
		{Name: "All Files", Extensions: []string{AnyExtension}},
	}
}

// DefaultSaveFilters is offered by the save dialog.
func DefaultSaveFilters() []Filter {
	return []Filter{
		{Name: "Text Files", Extensions: []string{"txt", "md", "json"}},
	}
}

// Patterns returns the extensions as shell globs, e.g. "*.txt".
func (f Filter) Patterns() []string {
	out := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		if ext == AnyExtension {
			out = append(out, AnyExtension)
			continue
		}

		out = append(out, "*."+ext)
	}

	return out
}

// AllowsAny reports whether one of the filters is the wildcard.
func AllowsAny(filters []Filter) bool {
	for _, f := range filters {
		if slices.Contains(f.Extensions, AnyExtension) {
			return true
		}
	}

	return false
}

// DottedExtensions flattens the filters into ".ext" suffixes, dropping
// duplicates and the wildcard.
func DottedExtensions(filters []Filter) []string {
	var out []string

	for _, f := range filters {
		for _, ext := range f.Extensions {
			if ext == AnyExtension {
				continue
			}

			dotted := "." + strings.TrimPrefix(ext, ".")
			if !slices.Contains(out, dotted) {
				out = append(out, dotted)
			}
		}
	}

	return out
}

// Matches reports whether path is accepted by the filters.
// An empty filter list accepts everything.
func Matches(path string, filters []Filter) bool {
	if len(filters) == 0 || AllowsAny(filters) {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))

	return slices.Contains(DottedExtensions(filters), ext)
}
