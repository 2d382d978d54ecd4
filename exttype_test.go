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

func TestExtensionTypeString(t *testing.T) {
	tests := []struct {
		ext  ExtensionType
		want string
	}{
		{ext: 0, want: "None"},
		{ext: ExtKeyUsage, want: "KeyUsage"},
		{ext: ExtNSCertType, want: "NSCertType"},
		{ext: ExtBasicConstraints | ExtKeyUsage, want: "KeyUsage|BasicConstraints"},
		{ext: ExtFreshestCRL | 1<<15, want: "FreshestCRL|0x8000"},
		{ext: 1 << 20, want: "0x100000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ext.String())
		})
	}
}

func TestExtensionTypeValues(t *testing.T) {
	assert.Equal(t, ExtensionType(1), ExtAuthorityKeyIdentifier)
	assert.Equal(t, ExtensionType(1<<11), ExtExtendedKeyUsage)
	assert.Equal(t, ExtensionType(1<<14), ExtFreshestCRL)
	assert.Equal(t, ExtensionType(1<<16), ExtNSCertType)
}

func TestExtensionTypeHas(t *testing.T) {
	seen := ExtBasicConstraints | ExtKeyUsage | ExtSubjectAltName
	assert.True(t, seen.Has(ExtKeyUsage))
	assert.True(t, seen.Has(ExtKeyUsage|ExtBasicConstraints))
	assert.False(t, seen.Has(ExtKeyUsage|ExtExtendedKeyUsage))
	assert.True(t, seen.Has(0))
}
