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

package algorithm

import (
	"crypto"
	"testing"

	"github.com/notaryproject/notation-core-go/signature"
	"github.com/notaryproject/notation-plugin-framework-go/plugin"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
)

func TestDigestTypeString(t *testing.T) {
	assert.Equal(t, "SHA256", DigestSHA256.String())
	assert.Equal(t, "MD2", DigestMD2.String())
	assert.Equal(t, "DigestType(42)", DigestType(42).String())
	assert.Equal(t, "DigestType(-1)", DigestType(-1).String())
}

func TestDigestTypeConversions(t *testing.T) {
	tests := []struct {
		name       string
		md         DigestType
		hash       crypto.Hash
		digest     digest.Algorithm
		hashAlg    plugin.HashAlgorithm
		hasDigest  bool
		hasHashAlg bool
	}{
		{name: "md2", md: DigestMD2},
		{name: "md5", md: DigestMD5, hash: crypto.MD5},
		{name: "sha1", md: DigestSHA1, hash: crypto.SHA1},
		{name: "sha224", md: DigestSHA224, hash: crypto.SHA224},
		{name: "sha256", md: DigestSHA256, hash: crypto.SHA256, digest: digest.SHA256, hashAlg: plugin.HashAlgorithmSHA256, hasDigest: true, hasHashAlg: true},
		{name: "sha384", md: DigestSHA384, hash: crypto.SHA384, digest: digest.SHA384, hashAlg: plugin.HashAlgorithmSHA384, hasDigest: true, hasHashAlg: true},
		{name: "sha512", md: DigestSHA512, hash: crypto.SHA512, digest: digest.SHA512, hashAlg: plugin.HashAlgorithmSHA512, hasDigest: true, hasHashAlg: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hash, tt.md.Hash())

			d, ok := tt.md.Digest()
			assert.Equal(t, tt.hasDigest, ok)
			assert.Equal(t, tt.digest, d)

			h, ok := tt.md.HashAlgorithm()
			assert.Equal(t, tt.hasHashAlg, ok)
			assert.Equal(t, tt.hashAlg, h)
		})
	}
}

func TestPublicKeyTypeKeyType(t *testing.T) {
	kt, ok := PublicKeyRSA.KeyType()
	assert.True(t, ok)
	assert.Equal(t, signature.KeyTypeRSA, kt)

	kt, ok = PublicKeyECDSA.KeyType()
	assert.True(t, ok)
	assert.Equal(t, signature.KeyTypeEC, kt)

	_, ok = PublicKeyECKeyDH.KeyType()
	assert.False(t, ok)

	assert.Equal(t, "RSA", PublicKeyRSA.String())
	assert.Equal(t, "PublicKeyType(9)", PublicKeyType(9).String())
}

func TestCipherType(t *testing.T) {
	assert.Equal(t, "DES-EDE3-CBC", CipherDESEDE3CBC.String())
	assert.Equal(t, 24, CipherDESEDE3CBC.KeySize())
	assert.Equal(t, 16, CipherDESEDECBC.KeySize())
	assert.Equal(t, 8, CipherDESCBC.KeySize())
	assert.Equal(t, 32, CipherAES256CBC.KeySize())
	assert.Equal(t, 0, CipherNull.KeySize())
	assert.Equal(t, "CipherType(100)", CipherType(100).String())
}
