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
	"strconv"

	"github.com/notaryproject/notation-core-go/signature"
)

// PublicKeyType identifies a public key algorithm.
type PublicKeyType int

// Public key algorithms known to the registry.
const (
	PublicKeyNone PublicKeyType = iota
	PublicKeyRSA
	PublicKeyECKey
	PublicKeyECKeyDH
	PublicKeyECDSA
)

var publicKeyNames = [...]string{
	PublicKeyNone:    "NONE",
	PublicKeyRSA:     "RSA",
	PublicKeyECKey:   "EC",
	PublicKeyECKeyDH: "EC_DH",
	PublicKeyECDSA:   "ECDSA",
}

// String returns the name of the public key algorithm.
func (p PublicKeyType) String() string {
	if p < 0 || int(p) >= len(publicKeyNames) {
		return "PublicKeyType(" + strconv.Itoa(int(p)) + ")"
	}
	return publicKeyNames[p]
}

// KeyType returns the signature key type used by notation-core-go for p.
// EC_DH keys cannot sign and have no equivalent.
func (p PublicKeyType) KeyType() (signature.KeyType, bool) {
	switch p {
	case PublicKeyRSA:
		return signature.KeyTypeRSA, true
	case PublicKeyECKey, PublicKeyECDSA:
		return signature.KeyTypeEC, true
	}
	return 0, false
}
