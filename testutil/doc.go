// Package testutil provides common testing utilities for konsole packages.
//
// This package includes helpers for:
//   - Building a Konsole over an in-memory surface (NewKonsole)
//   - Writing fixture files into a temporary directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestRender(t *testing.T) {
//	    k, screen := testutil.NewKonsole(t, 80)
//	    k.WriteLine("hello")
//	    if screen.Line(0) != "hello" {
//	        t.Errorf("unexpected line %q", screen.Line(0))
//	    }
//	}
//
// Packages imported by testutil (konsole, terminal) cannot use it from their
// own tests.
package testutil
