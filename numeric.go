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
	"fmt"
	"math"
	"strconv"
)

// MaxNumericLen returns an upper bound on the length of the dotted decimal
// form of an object identifier with n content octets.
func MaxNumericLen(n int) int {
	// the first octet renders as at most "6.39"; every further octet adds
	// at most three digits or a dot and a digit.
	return 4 * n
}

// NumericString writes the dotted decimal form of oid, e.g.
// "1.2.840.113549.1.1.1", into dst and returns the number of bytes written.
//
// The first octet carries the first two arcs as 40*arc0 + arc1. Every other
// arc is a base-128 big-endian integer whose octets, except the last, have
// the high bit set. An empty oid renders as the empty string.
//
// If the output does not fit dst, ErrBufferTooSmall is returned together
// with the length of the prefix of whole arcs already written; nothing is
// written beyond that prefix. An arc that does not fit 64 bits is reported
// as ErrBufferTooSmall as well, and an oid ending in the middle of an arc
// as ErrMalformed.
func NumericString(dst []byte, oid Buffer) (int, error) {
	if len(oid) == 0 {
		return 0, nil
	}

	// '.' followed by the 20 digits of math.MaxUint64
	var scratch [21]byte
	arc := strconv.AppendUint(scratch[:0], uint64(oid[0]/40), 10)
	arc = append(arc, '.')
	arc = strconv.AppendUint(arc, uint64(oid[0]%40), 10)
	if len(arc) > len(dst) {
		return 0, ErrBufferTooSmall
	}
	n := copy(dst, arc)

	var value uint64
	pending := false
	for i := 1; i < len(oid); i++ {
		if value > math.MaxUint64>>7 {
			return n, fmt.Errorf("%w: arc ending after offset %d overflows 64 bits", ErrBufferTooSmall, i)
		}
		value = value<<7 | uint64(oid[i]&0x7f)
		pending = true

		if oid[i]&0x80 == 0 {
			arc = strconv.AppendUint(append(scratch[:0], '.'), value, 10)
			if n+len(arc) > len(dst) {
				return n, ErrBufferTooSmall
			}
			n += copy(dst[n:], arc)
			value, pending = 0, false
		}
	}
	if pending {
		return n, fmt.Errorf("%w: last arc is truncated", ErrMalformed)
	}
	return n, nil
}
