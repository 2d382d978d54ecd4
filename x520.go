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

import "github.com/notaryproject/notation-oid-go/internal/slices"

// X.520 attribute types
const (
	oidAtCN           = "\x55\x04\x03"                         // 2.5.4.3
	oidAtCountry      = "\x55\x04\x06"                         // 2.5.4.6
	oidAtLocality     = "\x55\x04\x07"                         // 2.5.4.7
	oidAtState        = "\x55\x04\x08"                         // 2.5.4.8
	oidAtOrganization = "\x55\x04\x0a"                         // 2.5.4.10
	oidAtOrgUnit      = "\x55\x04\x0b"                         // 2.5.4.11
	oidPKCS9Email     = "\x2a\x86\x48\x86\xf7\x0d\x01\x09\x01" // 1.2.840.113549.1.9.1
)

type x520Attr struct {
	Descriptor
	shortName string
}

var x520AttrTypes = [...]x520Attr{
	{Descriptor{oidAtCN, "id-at-commonName", "Common Name"}, "CN"},
	{Descriptor{oidAtCountry, "id-at-countryName", "Country"}, "C"},
	{Descriptor{oidAtLocality, "id-at-locality", "Locality"}, "L"},
	{Descriptor{oidAtState, "id-at-state", "State"}, "ST"},
	{Descriptor{oidAtOrganization, "id-at-organizationName", "Organization"}, "O"},
	{Descriptor{oidAtOrgUnit, "id-at-organizationalUnitName", "Org Unit"}, "OU"},
	{Descriptor{oidPKCS9Email, "emailAddress", "E-mail address"}, "emailAddress"},
}

func init() {
	register(FamilyX520Attr, 0, x520AttrTypes[:])
}

// AttrShortName returns the short name of an X.520 attribute type, e.g.
// "CN" for 2.5.4.3.
func AttrShortName(oid Buffer) (string, error) {
	attr, ok := find(x520AttrTypes[:], oid)
	if !ok {
		return "", notFound(FamilyX520Attr, oid)
	}
	return attr.shortName, nil
}

// FromAttrShortName returns the raw object identifier of the X.520 attribute
// type with the given short name. Short names are case sensitive.
func FromAttrShortName(shortName string) (string, error) {
	attr, ok := slices.First(x520AttrTypes[:], func(a x520Attr) bool {
		return a.shortName == shortName
	})
	if !ok {
		return "", NotFoundError{Family: FamilyX520Attr, Key: shortName}
	}
	return attr.Raw, nil
}
