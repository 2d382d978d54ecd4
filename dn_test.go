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
	"context"
	"testing"

	"github.com/notaryproject/notation-oid-go/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDN(t *testing.T) {
	tests := []struct {
		name string
		dn   string
		want []Attribute
	}{
		{
			name: "short names",
			dn:   "CN=leaf,O=Notary Project,C=US",
			want: []Attribute{
				{OID: Buffer{0x55, 0x04, 0x03}, ShortName: "CN", Value: "leaf"},
				{OID: Buffer{0x55, 0x04, 0x0a}, ShortName: "O", Value: "Notary Project"},
				{OID: Buffer{0x55, 0x04, 0x06}, ShortName: "C", Value: "US"},
			},
		},
		{
			name: "aliases",
			dn:   "cn=leaf,S=WA,E=admin@example.com",
			want: []Attribute{
				{OID: Buffer{0x55, 0x04, 0x03}, ShortName: "CN", Value: "leaf"},
				{OID: Buffer{0x55, 0x04, 0x08}, ShortName: "ST", Value: "WA"},
				{OID: Buffer(oidPKCS9Email), ShortName: "emailAddress", Value: "admin@example.com"},
			},
		},
		{
			name: "dotted decimal type",
			dn:   "2.5.4.3=foo,OU=Notary",
			want: []Attribute{
				{OID: Buffer{0x55, 0x04, 0x03}, ShortName: "CN", Value: "foo"},
				{OID: Buffer{0x55, 0x04, 0x0b}, ShortName: "OU", Value: "Notary"},
			},
		},
		{
			name: "escaped value",
			dn:   `CN=a\,b,L=Seattle`,
			want: []Attribute{
				{OID: Buffer{0x55, 0x04, 0x03}, ShortName: "CN", Value: "a,b"},
				{OID: Buffer{0x55, 0x04, 0x07}, ShortName: "L", Value: "Seattle"},
			},
		},
		{
			name: "multi-valued RDN",
			dn:   "CN=leaf+O=Notary,C=US",
			want: []Attribute{
				{OID: Buffer{0x55, 0x04, 0x03}, ShortName: "CN", Value: "leaf"},
				{OID: Buffer{0x55, 0x04, 0x0a}, ShortName: "O", Value: "Notary"},
				{OID: Buffer{0x55, 0x04, 0x06}, ShortName: "C", Value: "US"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newRecordingLogger()
			ctx := log.WithLogger(context.Background(), logger)

			got, err := ParseDN(ctx, tt.dn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, logger.debug, 1)
			assert.Empty(t, logger.warn)
		})
	}
}

func TestParseDNUnsupportedType(t *testing.T) {
	for _, dn := range []string{"CN=leaf,DC=example", "1.2.3.4=foo"} {
		t.Run(dn, func(t *testing.T) {
			logger := newRecordingLogger()
			ctx := log.WithLogger(context.Background(), logger)

			_, err := ParseDN(ctx, dn)
			assert.ErrorIs(t, err, ErrNotFound)
			require.Len(t, logger.warn, 1)
			assert.Contains(t, logger.warn[0], dn)
		})
	}
}

func TestParseDNInvalid(t *testing.T) {
	for _, dn := range []string{"", "C=US,,"} {
		t.Run(dn, func(t *testing.T) {
			_, err := ParseDN(context.Background(), dn)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}
