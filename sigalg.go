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

//go:build !oid_no_digest

package oid

import (
	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/internal/slices"
)

// PKCS#1 signature algorithms
const (
	oidPKCS1MD2    = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x02" // 1.2.840.113549.1.1.2
	oidPKCS1MD4    = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x03" // 1.2.840.113549.1.1.3
	oidPKCS1MD5    = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x04" // 1.2.840.113549.1.1.4
	oidPKCS1SHA1   = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x05" // 1.2.840.113549.1.1.5
	oidPKCS1SHA224 = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x0e" // 1.2.840.113549.1.1.14
	oidPKCS1SHA256 = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x0b" // 1.2.840.113549.1.1.11
	oidPKCS1SHA384 = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x0c" // 1.2.840.113549.1.1.12
	oidPKCS1SHA512 = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x0d" // 1.2.840.113549.1.1.13

	// sha1WithRSASignature from the OIW arc, superseded by oidPKCS1SHA1
	oidRSASHAObsolete = "\x2b\x0e\x03\x02\x1d" // 1.3.14.3.2.29
)

type sigAlg struct {
	Descriptor
	md algorithm.DigestType
	pk algorithm.PublicKeyType
}

// sigAlgs is searched in order: the PKCS#1 SHA-1 row must precede the
// obsolete OIW row so that FromSigAlg yields the PKCS#1 identifier.
var sigAlgs = [...]sigAlg{
	{Descriptor{oidPKCS1MD2, "md2WithRSAEncryption", "RSA with MD2"}, algorithm.DigestMD2, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1MD4, "md4WithRSAEncryption", "RSA with MD4"}, algorithm.DigestMD4, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1MD5, "md5WithRSAEncryption", "RSA with MD5"}, algorithm.DigestMD5, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1SHA1, "sha-1WithRSAEncryption", "RSA with SHA1"}, algorithm.DigestSHA1, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1SHA224, "sha224WithRSAEncryption", "RSA with SHA-224"}, algorithm.DigestSHA224, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1SHA256, "sha256WithRSAEncryption", "RSA with SHA-256"}, algorithm.DigestSHA256, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1SHA384, "sha384WithRSAEncryption", "RSA with SHA-384"}, algorithm.DigestSHA384, algorithm.PublicKeyRSA},
	{Descriptor{oidPKCS1SHA512, "sha512WithRSAEncryption", "RSA with SHA-512"}, algorithm.DigestSHA512, algorithm.PublicKeyRSA},
	{Descriptor{oidRSASHAObsolete, "sha-1WithRSAEncryption", "RSA with SHA1"}, algorithm.DigestSHA1, algorithm.PublicKeyRSA},
}

func init() {
	register(FamilySigAlg, 3, sigAlgs[:])
}

// SigAlgDesc returns the description of the signature algorithm identified
// by oid, e.g. "RSA with SHA-256".
func SigAlgDesc(oid Buffer) (string, error) {
	alg, ok := find(sigAlgs[:], oid)
	if !ok {
		return "", notFound(FamilySigAlg, oid)
	}
	return alg.Description, nil
}

// SigAlg returns the digest and public key algorithms of the signature
// algorithm identified by oid. Both come from the same table entry.
func SigAlg(oid Buffer) (algorithm.DigestType, algorithm.PublicKeyType, error) {
	alg, ok := find(sigAlgs[:], oid)
	if !ok {
		return algorithm.DigestNone, algorithm.PublicKeyNone, notFound(FamilySigAlg, oid)
	}
	return alg.md, alg.pk, nil
}

// FromSigAlg returns the raw object identifier of the signature algorithm
// combining pk and md. When several identifiers share the pair, the first
// declared one is returned.
func FromSigAlg(pk algorithm.PublicKeyType, md algorithm.DigestType) (string, error) {
	alg, ok := slices.First(sigAlgs[:], func(a sigAlg) bool {
		return a.pk == pk && a.md == md
	})
	if !ok {
		return "", NotFoundError{Family: FamilySigAlg, Key: pk.String() + "+" + md.String()}
	}
	return alg.Raw, nil
}
