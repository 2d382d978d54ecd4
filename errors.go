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

package oid

import "errors"

// Common errors
var (
	// ErrNotFound is returned when no table entry matches an object
	// identifier or tag.
	ErrNotFound = errors.New("oid: not found")

	// ErrBufferTooSmall is returned when the dotted decimal form does not fit
	// the output buffer, or an arc does not fit a 64-bit integer.
	ErrBufferTooSmall = errors.New("oid: buffer too small")

	// ErrMalformed is returned when an object identifier is not a valid
	// encoding or dotted decimal string.
	ErrMalformed = errors.New("oid: malformed object identifier")
)

// NotFoundError is used when a lookup matches no entry. It unwraps to
// ErrNotFound.
type NotFoundError struct {
	// Family is the table that was searched. It is empty for lookups across
	// every table.
	Family string

	// Key describes the object identifier or tags that were looked up.
	Key string
}

// Error returns error message.
func (e NotFoundError) Error() string {
	msg := "oid: not found"
	if e.Family != "" {
		msg += " in " + e.Family
	}
	if e.Key != "" {
		msg += ": " + e.Key
	}
	return msg
}

// Unwrap returns ErrNotFound.
func (e NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(family string, oid Buffer) error {
	return NotFoundError{Family: family, Key: oid.String()}
}
