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

//go:build !oid_no_pkcs12 && !oid_no_digest && !oid_no_cipher

package oid

import (
	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/internal/slices"
)

// PKCS#12 password based encryption schemes
const (
	oidPKCS12PBESHA1DES3EDECBC = "\x2a\x86\x48\x86\xf7\x0d\x01\x0c\x01\x03" // 1.2.840.113549.1.12.1.3
	oidPKCS12PBESHA1DES2EDECBC = "\x2a\x86\x48\x86\xf7\x0d\x01\x0c\x01\x04" // 1.2.840.113549.1.12.1.4
)

type pkcs12PBEAlg struct {
	Descriptor
	md     algorithm.DigestType
	cipher algorithm.CipherType
}

var pkcs12PBEAlgs = [...]pkcs12PBEAlg{
	{Descriptor{oidPKCS12PBESHA1DES3EDECBC, "pbeWithSHAAnd3-KeyTripleDES-CBC", "PBE with SHA1 and 3-Key 3DES"}, algorithm.DigestSHA1, algorithm.CipherDESEDE3CBC},
	{Descriptor{oidPKCS12PBESHA1DES2EDECBC, "pbeWithSHAAnd2-KeyTripleDES-CBC", "PBE with SHA1 and 2-Key 3DES"}, algorithm.DigestSHA1, algorithm.CipherDESEDECBC},
}

func init() {
	register(FamilyPKCS12PBEAlg, 7, pkcs12PBEAlgs[:])
}

// PKCS12PBEAlg returns the digest and cipher of the PKCS#12 password based
// encryption scheme identified by oid. Both come from the same table entry.
func PKCS12PBEAlg(oid Buffer) (algorithm.DigestType, algorithm.CipherType, error) {
	alg, ok := find(pkcs12PBEAlgs[:], oid)
	if !ok {
		return algorithm.DigestNone, algorithm.CipherNone, notFound(FamilyPKCS12PBEAlg, oid)
	}
	return alg.md, alg.cipher, nil
}

// FromPKCS12PBEAlg returns the raw object identifier of the PKCS#12 scheme
// combining md and cipher.
func FromPKCS12PBEAlg(md algorithm.DigestType, cipher algorithm.CipherType) (string, error) {
	alg, ok := slices.First(pkcs12PBEAlgs[:], func(a pkcs12PBEAlg) bool {
		return a.md == md && a.cipher == cipher
	})
	if !ok {
		return "", NotFoundError{Family: FamilyPKCS12PBEAlg, Key: md.String() + "+" + cipher.String()}
	}
	return alg.Raw, nil
}
