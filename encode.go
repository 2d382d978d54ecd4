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

import (
	encasn1 "encoding/asn1"
	"fmt"
	"strconv"
	"strings"

	"github.com/notaryproject/notation-oid-go/internal/encoding/asn1"
	"golang.org/x/crypto/cryptobyte"
)

// Encode returns the DER content octets of the object identifier written in
// dotted decimal form, e.g. "2.5.4.3". It is the inverse of NumericString
// for identifiers whose first two arcs fit a single octet.
func Encode(dotted string) (Buffer, error) {
	parts := strings.Split(dotted, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q has fewer than two arcs", ErrMalformed, dotted)
	}
	id := make(encasn1.ObjectIdentifier, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: arc %d: %v", ErrMalformed, dotted, i, err)
		}
		id[i] = int(v)
	}

	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(id)
	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, dotted, err)
	}
	return FromDER(der)
}

// FromDER returns the content octets of a complete OBJECT IDENTIFIER element,
// tag and length included. Definite BER length forms are accepted. The
// returned Buffer aliases der.
func FromDER(der []byte) (Buffer, error) {
	content, rest, err := asn1.DecodeObjectIdentifier(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after object identifier", ErrMalformed, len(rest))
	}
	return Buffer(content), nil
}

// ToDER returns the DER encoding of oid as a complete OBJECT IDENTIFIER
// element.
func ToDER(oid Buffer) []byte {
	return asn1.EncodeObjectIdentifier(oid)
}
