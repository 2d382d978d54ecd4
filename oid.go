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

// Package oid maps the object identifiers found in DER-encoded X.509 and
// PKCS structures to the algorithm and attribute tags used by a TLS/X.509
// stack, and renders raw object identifiers in dotted decimal form.
//
// The registry is a fixed catalog. Each semantic category (X.520 attribute
// types, X.509 extensions, extended key usages, signature, public key,
// cipher and digest algorithms, PKCS#12 password based encryption schemes)
// is held in its own read-only table, and every table is searched by the same
// matcher. Lookups never modify state and are safe for concurrent use.
//
// Tables for optional algorithm families can be left out of a build with the
// oid_no_x509, oid_no_digest, oid_no_cipher and oid_no_pkcs12 build tags.
package oid

import (
	"encoding/hex"

	"github.com/notaryproject/notation-oid-go/internal/slices"
)

// Buffer holds the content octets of a DER-encoded OBJECT IDENTIFIER,
// without the tag and length header. Buffers are compared byte for byte.
type Buffer []byte

// String returns the dotted decimal form of b, or the hexadecimal content
// octets prefixed with "0x" if b cannot be rendered.
func (b Buffer) String() string {
	buf := make([]byte, MaxNumericLen(len(b)))
	n, err := NumericString(buf, b)
	if err != nil {
		return "0x" + hex.EncodeToString(b)
	}
	return string(buf[:n])
}

// Descriptor identifies one object identifier of the catalog.
type Descriptor struct {
	// Raw is the DER content octets of the object identifier.
	Raw string

	// Name is the symbolic name, e.g. "rsaEncryption".
	Name string

	// Description is a human readable description, e.g. "RSA".
	Description string
}

func (d Descriptor) descriptor() Descriptor { return d }

// describer is implemented by every table entry through its embedded
// Descriptor.
type describer interface {
	descriptor() Descriptor
}

// find returns the first entry of table whose raw object identifier equals
// oid. An empty oid never matches.
func find[E describer](table []E, oid Buffer) (E, bool) {
	if len(oid) == 0 {
		var zero E
		return zero, false
	}
	return slices.First(table, func(e E) bool {
		raw := e.descriptor().Raw
		return len(raw) == len(oid) && raw == string(oid)
	})
}
