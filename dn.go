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
	"context"

	"github.com/notaryproject/notation-oid-go/internal/pkix"
	"github.com/notaryproject/notation-oid-go/log"
)

// Attribute is a distinguished name attribute resolved against the X.520
// attribute table.
type Attribute struct {
	// OID is the raw object identifier of the attribute type.
	OID Buffer

	// ShortName is the X.520 short name of the attribute type, e.g. "CN".
	ShortName string

	// Value is the attribute value with RFC 4514 escaping removed.
	Value string
}

// ParseDN parses an RFC 4514 distinguished name, e.g.
// "CN=example,O=Notary Project,C=US", and resolves the type of every
// attribute to its object identifier. Types may be written as short names,
// common aliases such as "S" or "E", or in dotted decimal form.
// Attributes are returned in the order written.
func ParseDN(ctx context.Context, dn string) ([]Attribute, error) {
	logger := log.GetLogger(ctx)
	attrs, err := pkix.ParseDistinguishedName(dn)
	if err != nil {
		return nil, err
	}

	resolved := make([]Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ra, err := resolveAttribute(attr)
		if err != nil {
			logger.Warnf("Unsupported attribute type %q in distinguished name %q", attr.Type, dn)
			return nil, err
		}
		resolved = append(resolved, ra)
	}
	logger.Debugf("Parsed distinguished name %q into %d attributes", dn, len(resolved))
	return resolved, nil
}

func resolveAttribute(attr pkix.Attribute) (Attribute, error) {
	// dotted decimal type, e.g. 2.5.4.3=example
	if raw, err := Encode(attr.Type); err == nil {
		shortName, err := AttrShortName(raw)
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{OID: raw, ShortName: shortName, Value: attr.Value}, nil
	}

	raw, err := FromAttrShortName(attr.Type)
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{OID: Buffer(raw), ShortName: attr.Type, Value: attr.Value}, nil
}
