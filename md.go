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

// Digest algorithms
const (
	oidDigestMD2    = "\x2a\x86\x48\x86\xf7\x0d\x02\x02"     // 1.2.840.113549.2.2
	oidDigestMD4    = "\x2a\x86\x48\x86\xf7\x0d\x02\x04"     // 1.2.840.113549.2.4
	oidDigestMD5    = "\x2a\x86\x48\x86\xf7\x0d\x02\x05"     // 1.2.840.113549.2.5
	oidDigestSHA1   = "\x2b\x0e\x03\x02\x1a"                 // 1.3.14.3.2.26
	oidDigestSHA224 = "\x60\x86\x48\x01\x65\x03\x04\x02\x04" // 2.16.840.1.101.3.4.2.4
	oidDigestSHA256 = "\x60\x86\x48\x01\x65\x03\x04\x02\x01" // 2.16.840.1.101.3.4.2.1
	oidDigestSHA384 = "\x60\x86\x48\x01\x65\x03\x04\x02\x02" // 2.16.840.1.101.3.4.2.2
	oidDigestSHA512 = "\x60\x86\x48\x01\x65\x03\x04\x02\x03" // 2.16.840.1.101.3.4.2.3
)

type mdAlg struct {
	Descriptor
	md algorithm.DigestType
}

// The repeated id-sha1 row is kept as published; the first row always wins.
var mdAlgs = [...]mdAlg{
	{Descriptor{oidDigestMD2, "id-md2", "MD2"}, algorithm.DigestMD2},
	{Descriptor{oidDigestMD4, "id-md4", "MD4"}, algorithm.DigestMD4},
	{Descriptor{oidDigestMD5, "id-md5", "MD5"}, algorithm.DigestMD5},
	{Descriptor{oidDigestSHA1, "id-sha1", "SHA-1"}, algorithm.DigestSHA1},
	{Descriptor{oidDigestSHA1, "id-sha1", "SHA-1"}, algorithm.DigestSHA1},
	{Descriptor{oidDigestSHA224, "id-sha224", "SHA-224"}, algorithm.DigestSHA224},
	{Descriptor{oidDigestSHA256, "id-sha256", "SHA-256"}, algorithm.DigestSHA256},
	{Descriptor{oidDigestSHA384, "id-sha384", "SHA-384"}, algorithm.DigestSHA384},
	{Descriptor{oidDigestSHA512, "id-sha512", "SHA-512"}, algorithm.DigestSHA512},
}

func init() {
	register(FamilyMDAlg, 6, mdAlgs[:])
}

// MDAlg returns the digest algorithm identified by oid.
func MDAlg(oid Buffer) (algorithm.DigestType, error) {
	alg, ok := find(mdAlgs[:], oid)
	if !ok {
		return algorithm.DigestNone, notFound(FamilyMDAlg, oid)
	}
	return alg.md, nil
}

// FromMDAlg returns the raw object identifier of the digest algorithm md.
func FromMDAlg(md algorithm.DigestType) (string, error) {
	alg, ok := slices.First(mdAlgs[:], func(a mdAlg) bool {
		return a.md == md
	})
	if !ok {
		return "", NotFoundError{Family: FamilyMDAlg, Key: md.String()}
	}
	return alg.Raw, nil
}
