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

import "strconv"

// CipherType identifies a symmetric cipher and its mode of operation.
type CipherType int

// Ciphers known to the registry.
const (
	CipherNone CipherType = iota
	CipherNull
	CipherAES128CBC
	CipherAES192CBC
	CipherAES256CBC
	CipherDESCBC
	CipherDESEDECBC
	CipherDESEDE3CBC
)

var cipherNames = [...]string{
	CipherNone:       "NONE",
	CipherNull:       "NULL",
	CipherAES128CBC:  "AES-128-CBC",
	CipherAES192CBC:  "AES-192-CBC",
	CipherAES256CBC:  "AES-256-CBC",
	CipherDESCBC:     "DES-CBC",
	CipherDESEDECBC:  "DES-EDE-CBC",
	CipherDESEDE3CBC: "DES-EDE3-CBC",
}

// String returns the name of the cipher.
func (c CipherType) String() string {
	if c < 0 || int(c) >= len(cipherNames) {
		return "CipherType(" + strconv.Itoa(int(c)) + ")"
	}
	return cipherNames[c]
}

// KeySize returns the key length of c in bytes, or 0 if unknown. Two-key
// triple DES is 16 bytes since the third key repeats the first.
func (c CipherType) KeySize() int {
	switch c {
	case CipherAES128CBC, CipherDESEDECBC:
		return 16
	case CipherAES192CBC, CipherDESEDE3CBC:
		return 24
	case CipherAES256CBC:
		return 32
	case CipherDESCBC:
		return 8
	}
	return 0
}
