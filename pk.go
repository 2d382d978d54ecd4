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
	"github.com/notaryproject/notation-oid-go/algorithm"
	"github.com/notaryproject/notation-oid-go/internal/slices"
)

const oidPKCS1RSA = "\x2a\x86\x48\x86\xf7\x0d\x01\x01\x01" // 1.2.840.113549.1.1.1

type pkAlg struct {
	Descriptor
	pk algorithm.PublicKeyType
}

var pkAlgs = [...]pkAlg{
	{Descriptor{oidPKCS1RSA, "rsaEncryption", "RSA"}, algorithm.PublicKeyRSA},
}

func init() {
	register(FamilyPKAlg, 4, pkAlgs[:])
}

// PKAlg returns the public key algorithm identified by oid.
func PKAlg(oid Buffer) (algorithm.PublicKeyType, error) {
	alg, ok := find(pkAlgs[:], oid)
	if !ok {
		return algorithm.PublicKeyNone, notFound(FamilyPKAlg, oid)
	}
	return alg.pk, nil
}

// FromPKAlg returns the raw object identifier of the public key algorithm pk.
func FromPKAlg(pk algorithm.PublicKeyType) (string, error) {
	alg, ok := slices.First(pkAlgs[:], func(a pkAlg) bool {
		return a.pk == pk
	})
	if !ok {
		return "", NotFoundError{Family: FamilyPKAlg, Key: pk.String()}
	}
	return alg.Raw, nil
}
