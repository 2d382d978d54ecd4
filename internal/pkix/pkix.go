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

// Package pkix parses RFC 4514 distinguished names into attribute type and
// value pairs.
package pkix

import (
	"fmt"
	"strings"

	ldapv3 "github.com/go-ldap/ldap/v3"
)

// Attribute is one attribute type and value of a distinguished name.
type Attribute struct {
	// Type is the canonical short name of the attribute type, or the type
	// exactly as written if it is not a known short name or alias.
	Type  string
	Value string
}

// typeAliases maps upper-cased attribute type spellings to the short names
// used by the X.520 attribute table.
var typeAliases = map[string]string{
	"CN":           "CN",
	"C":            "C",
	"L":            "L",
	"ST":           "ST",
	"S":            "ST",
	"O":            "O",
	"OU":           "OU",
	"E":            "emailAddress",
	"EMAIL":        "emailAddress",
	"EMAILADDRESS": "emailAddress",
}

// ParseDistinguishedName parses a DN and returns its attributes in the order
// written, left to right. Multi-valued RDNs are flattened in place.
func ParseDistinguishedName(name string) ([]Attribute, error) {
	dn, err := ldapv3.ParseDN(name)
	if err != nil {
		return nil, fmt.Errorf("distinguished name (DN) %q is not valid, it must follow RFC 4514 standard: %w", name, err)
	}

	var attrs []Attribute
	for _, rdn := range dn.RDNs {
		for _, attribute := range rdn.Attributes {
			attrs = append(attrs, Attribute{
				Type:  CanonicalType(attribute.Type),
				Value: attribute.Value,
			})
		}
	}
	if len(attrs) == 0 {
		return nil, fmt.Errorf("distinguished name (DN) %q has no attributes", name)
	}
	return attrs, nil
}

// CanonicalType returns the X.520 short name for a known attribute type
// spelling, matched case-insensitively. Other types are returned unchanged.
func CanonicalType(t string) string {
	if short, ok := typeAliases[strings.ToUpper(t)]; ok {
		return short
	}
	return t
}
