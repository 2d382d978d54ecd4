// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package slices provides generic first-match helpers over registry tables.
package slices

// Index returns the index of the first element of s satisfying match, or -1
// if none does.
func Index[E any](s []E, match func(E) bool) int {
	for i, v := range s {
		if match(v) {
			return i
		}
	}
	return -1
}

// First returns the first element of s satisfying match, and whether one
// was found.
func First[E any](s []E, match func(E) bool) (E, bool) {
	if i := Index(s, match); i >= 0 {
		return s[i], true
	}
	var zero E
	return zero, false
}
