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

// Package algorithm defines the algorithm tags that the oid registry resolves
// object identifiers to. The values mirror the digest, public key and cipher
// identifiers of the TLS/X.509 stack and carry no behaviour of their own
// beyond conversion to the equivalent types of other Go packages.
package algorithm

import (
	"crypto"
	"strconv"

	"github.com/notaryproject/notation-plugin-framework-go/plugin"
	"github.com/opencontainers/go-digest"
)

// DigestType identifies a message digest algorithm.
type DigestType int

// Digest algorithms known to the registry.
const (
	DigestNone DigestType = iota
	DigestMD2
	DigestMD4
	DigestMD5
	DigestSHA1
	DigestSHA224
	DigestSHA256
	DigestSHA384
	DigestSHA512
)

var digestNames = [...]string{
	DigestNone:   "NONE",
	DigestMD2:    "MD2",
	DigestMD4:    "MD4",
	DigestMD5:    "MD5",
	DigestSHA1:   "SHA1",
	DigestSHA224: "SHA224",
	DigestSHA256: "SHA256",
	DigestSHA384: "SHA384",
	DigestSHA512: "SHA512",
}

// String returns the name of the digest algorithm.
func (d DigestType) String() string {
	if d < 0 || int(d) >= len(digestNames) {
		return "DigestType(" + strconv.Itoa(int(d)) + ")"
	}
	return digestNames[d]
}

// Hash returns the corresponding crypto.Hash. MD2 and unknown values have no
// Go equivalent and return 0.
func (d DigestType) Hash() crypto.Hash {
	switch d {
	case DigestMD4:
		return crypto.MD4
	case DigestMD5:
		return crypto.MD5
	case DigestSHA1:
		return crypto.SHA1
	case DigestSHA224:
		return crypto.SHA224
	case DigestSHA256:
		return crypto.SHA256
	case DigestSHA384:
		return crypto.SHA384
	case DigestSHA512:
		return crypto.SHA512
	}
	return 0
}

// Digest returns the OCI content digest algorithm for d. Only the SHA-2
// family used for content addressing is supported.
func (d DigestType) Digest() (digest.Algorithm, bool) {
	switch d {
	case DigestSHA256:
		return digest.SHA256, true
	case DigestSHA384:
		return digest.SHA384, true
	case DigestSHA512:
		return digest.SHA512, true
	}
	return "", false
}

// HashAlgorithm returns the plugin protocol name of the hash algorithm.
func (d DigestType) HashAlgorithm() (plugin.HashAlgorithm, bool) {
	switch d {
	case DigestSHA256:
		return plugin.HashAlgorithmSHA256, true
	case DigestSHA384:
		return plugin.HashAlgorithmSHA384, true
	case DigestSHA512:
		return plugin.HashAlgorithmSHA512, true
	}
	return "", false
}
