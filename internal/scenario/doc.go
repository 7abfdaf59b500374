// Package scenario runs scripted sequences of map operations written in HCL.
//
// A scenario file is a list of blocks executed in source order:
//
//	locals {
//	  unit = 10
//	}
//
//	city "A" { at = [0, 0] }
//	city "B" { at = [local.unit, 0] }
//	road "A" "B" {}
//
//	path "A" "B" {
//	  expect_length = 10
//	  expect_path   = [["A", "B"]]
//	  print         = true
//	}
//
//	remove_road "A" "B" {}
//	remove_city "B" {}
//	path "A" "B" { expect_error = "not_found" }
//
// Every operation block accepts expect_error; a path block additionally
// accepts expect_length, tolerance, expect_path (any listed path is accepted),
// policy ("relax" or "first-opened") and print. Locals may reference locals
// declared before them and a small set of numeric functions (abs, min, max,
// floor, ceil).
//
// Outcomes are written through a core.StreamReporter, so a run prints exactly
// what the map reports. Expectation mismatches do not stop the run; they are
// collected and returned together once every block has executed.
package scenario
