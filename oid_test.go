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
	"testing"

	"github.com/stretchr/testify/assert"
)

type taggedEntry struct {
	Descriptor
	tag int
}

func TestFind(t *testing.T) {
	table := []taggedEntry{
		{Descriptor{"\x55\x04\x03", "first", ""}, 1},
		{Descriptor{"\x55\x04", "prefix", ""}, 2},
		{Descriptor{"\x55\x04\x03", "duplicate", ""}, 3},
	}

	tests := []struct {
		name    string
		oid     Buffer
		wantTag int
		wantOK  bool
	}{
		{name: "exact match", oid: Buffer{0x55, 0x04, 0x03}, wantTag: 1, wantOK: true},
		{name: "first declared row wins", oid: Buffer{0x55, 0x04, 0x03}, wantTag: 1, wantOK: true},
		{name: "shorter entry", oid: Buffer{0x55, 0x04}, wantTag: 2, wantOK: true},
		{name: "longer input", oid: Buffer{0x55, 0x04, 0x03, 0x00}},
		{name: "same length different bytes", oid: Buffer{0x55, 0x04, 0x04}},
		{name: "empty", oid: Buffer{}},
		{name: "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := find(table, tt.oid)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTag, e.tag)
		})
	}
}

func TestFindEmptyTable(t *testing.T) {
	_, ok := find([]Descriptor{}, Buffer{0x55})
	assert.False(t, ok)
	_, ok = find[Descriptor](nil, Buffer{0x55})
	assert.False(t, ok)
}

func TestFindEmptyRaw(t *testing.T) {
	// an entry with an empty raw identifier is never matched
	table := []Descriptor{{Raw: "", Name: "empty"}}
	_, ok := find(table, Buffer{})
	assert.False(t, ok)
}

func TestCatalogWellFormed(t *testing.T) {
	seen := map[string]string{}
	for _, family := range Families() {
		descriptors := Descriptors(family)
		assert.NotEmpty(t, descriptors, family)
		for _, d := range descriptors {
			assert.NotEmpty(t, d.Raw, "%s: %s", family, d.Name)
			assert.NotEmpty(t, d.Name, "%s: %x", family, d.Raw)
			assert.NotEmpty(t, d.Description, "%s: %s", family, d.Name)

			dst := make([]byte, MaxNumericLen(len(d.Raw)))
			_, err := NumericString(dst, Buffer(d.Raw))
			assert.NoError(t, err, "%s: %s", family, d.Name)

			// an object identifier belongs to a single family
			if other, ok := seen[d.Raw]; ok {
				assert.Equal(t, other, family, "%s", Buffer(d.Raw))
			}
			seen[d.Raw] = family
		}
	}
}
