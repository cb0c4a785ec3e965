// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"github.com/nsf/jsondiff"
)

// RequireJSONEqual fails the test unless got and want are the same
// JSON value. Both arguments must be valid JSON.
//
//	testutil.RequireJSONEqual(t, data, `{"set_tweak":"sound"}`)
func RequireJSONEqual(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, got []byte, want string) {
	t.Helper()
	options := jsondiff.DefaultConsoleOptions()
	difference, explanation := jsondiff.Compare(got, []byte(want), &options)
	switch difference {
	case jsondiff.FullMatch:
		return
	case jsondiff.FirstArgIsInvalidJson, jsondiff.BothArgsAreInvalidJson:
		t.Fatalf("got invalid JSON: %s", got)
	case jsondiff.SecondArgIsInvalidJson:
		t.Fatalf("want is invalid JSON: %s", want)
	}
	t.Fatalf("JSON mismatch (%v):\n%s", difference, explanation)
}
