// seehuhn.de/go/signature - render hand-drawn signatures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"basic":      basicCases,
	"colour":     colourCases,
	"range":      rangeCases,
	"degenerate": degenerateCases,
	"scribble":   scribbleCases,
}

// Find returns the test case with the given full name, which consists of
// the category, an underscore and the case name.
func Find(name string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == name {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}
