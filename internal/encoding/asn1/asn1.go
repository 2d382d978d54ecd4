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

// Package asn1 reads and writes the tag-length-value framing of ASN.1
// OBJECT IDENTIFIER elements. Lengths are accepted in any definite BER form
// and always written in DER.
// Reference: http://luca.ntop.org/Teaching/Appunti/asn1.html
package asn1

import (
	"bytes"
	"encoding/asn1"
	"io"
)

// TagObjectIdentifier is the universal, primitive OBJECT IDENTIFIER tag.
const TagObjectIdentifier = 0x06

// Common errors
var (
	ErrEarlyEOF               = asn1.SyntaxError{Msg: "early EOF"}
	ErrExpectObjectIdentifier = asn1.StructuralError{Msg: "object identifier expected"}
	ErrUnsupportedLength      = asn1.StructuralError{Msg: "length method not supported"}
)

// DecodeObjectIdentifier decodes the OBJECT IDENTIFIER element at the start
// of ber and returns its content octets along with the bytes following the
// element. The returned slices alias ber.
func DecodeObjectIdentifier(ber []byte) (content, rest []byte, err error) {
	r := bytes.NewReader(ber)
	identifier, err := r.ReadByte()
	if err != nil {
		return nil, nil, ErrEarlyEOF
	}
	if identifier != TagObjectIdentifier {
		return nil, nil, ErrExpectObjectIdentifier
	}
	length, err := decodeLength(r)
	if err != nil {
		return nil, nil, err
	}
	if length > r.Len() {
		return nil, nil, ErrEarlyEOF
	}
	start := len(ber) - r.Len()
	return ber[start : start+length], ber[start+length:], nil
}

// EncodeObjectIdentifier returns the DER encoding of an OBJECT IDENTIFIER
// element holding content.
func EncodeObjectIdentifier(content []byte) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, EncodedLen(len(content))))
	buf.WriteByte(TagObjectIdentifier)
	// bytes.Buffer writes never fail
	_ = encodeLength(buf, len(content))
	buf.Write(content)
	return buf.Bytes()
}

// EncodedLen returns the length in bytes of a DER OBJECT IDENTIFIER element
// with contentLen content octets.
func EncodedLen(contentLen int) int {
	return 1 + encodedLengthSize(contentLen) + contentLen
}

// encodedLengthSize gives the number of octets used for encoding the length.
func encodedLengthSize(length int) int {
	if length < 0x80 {
		return 1
	}

	lengthSize := 1
	for ; length > 0; lengthSize++ {
		length >>= 8
	}
	return lengthSize
}

// encodeLength encodes length octets in DER.
func encodeLength(w io.ByteWriter, length int) error {
	// DER restriction: short form must be used for length less than 128
	if length < 0x80 {
		return w.WriteByte(byte(length))
	}

	// DER restriction: long form must be encoded in the minimum number of octets
	lengthSize := encodedLengthSize(length)
	err := w.WriteByte(0x80 | byte(lengthSize-1))
	if err != nil {
		return err
	}
	for i := lengthSize - 1; i > 0; i-- {
		if err = w.WriteByte(byte(length >> (8 * (i - 1)))); err != nil {
			return err
		}
	}
	return nil
}

// decodeLength decodes length octets.
// Indefinite length is not supported
func decodeLength(r io.ByteReader) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, ErrEarlyEOF
		}
		return 0, err
	}
	switch {
	case b < 0x80:
		// short form
		return int(b), nil
	case b == 0x80:
		// Indefinite-length method is not supported.
		return 0, ErrUnsupportedLength
	}

	// long form
	n := int(b & 0x7f)
	if n > 4 {
		// length must fit the memory space of the int type.
		return 0, ErrUnsupportedLength
	}
	var length int
	for i := 0; i < n; i++ {
		b, err = r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, ErrEarlyEOF
			}
			return 0, err
		}
		length = (length << 8) | int(b)
	}
	if length < 0 {
		// double check in case that length is over 31 bits.
		return 0, ErrUnsupportedLength
	}
	return length, nil
}
