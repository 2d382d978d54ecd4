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

//go:build !oid_no_cipher

package oid

import "github.com/notaryproject/notation-oid-go/algorithm"

// PKCS#5 PBES2 encryption schemes
const (
	oidDESCBC     = "\x2b\x0e\x03\x02\x07"             // 1.3.14.3.2.7
	oidDESEDE3CBC = "\x2a\x86\x48\x86\xf7\x0d\x03\x07" // 1.2.840.113549.3.7
)

type cipherAlg struct {
	Descriptor
	cipher algorithm.CipherType
}

var cipherAlgs = [...]cipherAlg{
	{Descriptor{oidDESCBC, "desCBC", "DES-CBC"}, algorithm.CipherDESCBC},
	{Descriptor{oidDESEDE3CBC, "des-ede3-cbc", "DES-EDE3-CBC"}, algorithm.CipherDESEDE3CBC},
}

func init() {
	register(FamilyCipherAlg, 5, cipherAlgs[:])
}

// CipherAlg returns the cipher identified by oid.
func CipherAlg(oid Buffer) (algorithm.CipherType, error) {
	alg, ok := find(cipherAlgs[:], oid)
	if !ok {
		return algorithm.CipherNone, notFound(FamilyCipherAlg, oid)
	}
	return alg.cipher, nil
}
