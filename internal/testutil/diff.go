// Package testutil provides helpers for tests.
package testutil

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a human readable diff of expect and got, or "" if they are equal.
func Diff(expect, got string) string {
	if expect == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expect, got, false)
	return dmp.DiffPrettyText(diffs)
}
