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
	"strconv"
	"strings"
)

// ExtensionType identifies an X.509 v3 certificate extension. Values are
// distinct bits so that a parser can record the set of extensions seen in a
// certificate in a single ExtensionType.
type ExtensionType uint32

// X.509 extension types.
const (
	ExtAuthorityKeyIdentifier ExtensionType = 1 << iota
	ExtSubjectKeyIdentifier
	ExtKeyUsage
	ExtCertificatePolicies
	ExtPolicyMappings
	ExtSubjectAltName
	ExtIssuerAltName
	ExtSubjectDirectoryAttrs
	ExtBasicConstraints
	ExtNameConstraints
	ExtPolicyConstraints
	ExtExtendedKeyUsage
	ExtCRLDistributionPoints
	ExtInitAnyPolicy
	ExtFreshestCRL
	_
	ExtNSCertType
)

var extNames = []struct {
	ext  ExtensionType
	name string
}{
	{ExtAuthorityKeyIdentifier, "AuthorityKeyIdentifier"},
	{ExtSubjectKeyIdentifier, "SubjectKeyIdentifier"},
	{ExtKeyUsage, "KeyUsage"},
	{ExtCertificatePolicies, "CertificatePolicies"},
	{ExtPolicyMappings, "PolicyMappings"},
	{ExtSubjectAltName, "SubjectAltName"},
	{ExtIssuerAltName, "IssuerAltName"},
	{ExtSubjectDirectoryAttrs, "SubjectDirectoryAttrs"},
	{ExtBasicConstraints, "BasicConstraints"},
	{ExtNameConstraints, "NameConstraints"},
	{ExtPolicyConstraints, "PolicyConstraints"},
	{ExtExtendedKeyUsage, "ExtendedKeyUsage"},
	{ExtCRLDistributionPoints, "CRLDistributionPoints"},
	{ExtInitAnyPolicy, "InitAnyPolicy"},
	{ExtFreshestCRL, "FreshestCRL"},
	{ExtNSCertType, "NSCertType"},
}

// String returns the names of the extensions set in e, joined by "|".
func (e ExtensionType) String() string {
	if e == 0 {
		return "None"
	}
	var strs []string
	for _, n := range extNames {
		if e&n.ext != 0 {
			strs = append(strs, n.name)
			e &^= n.ext
		}
	}
	if e != 0 {
		strs = append(strs, "0x"+strconv.FormatUint(uint64(e), 16))
	}
	return strings.Join(strs, "|")
}

// Has reports whether every extension set in ext is also set in e.
func (e ExtensionType) Has(ext ExtensionType) bool {
	return e&ext == ext
}
