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
	"sort"

	"github.com/notaryproject/notation-oid-go/log"
)

// Names of the tables of the registry, as reported by Families and
// Info.Family.
const (
	FamilyX520Attr     = "x520-attribute"
	FamilyX509Ext      = "x509-extension"
	FamilyExtKeyUsage  = "extended-key-usage"
	FamilySigAlg       = "signature-algorithm"
	FamilyPKAlg        = "public-key-algorithm"
	FamilyCipherAlg    = "cipher-algorithm"
	FamilyMDAlg        = "digest-algorithm"
	FamilyPKCS12PBEAlg = "pkcs12-pbe-algorithm"
)

// Info is the result of resolving an object identifier across every table.
type Info struct {
	// Family is the table the object identifier was found in.
	Family string

	Descriptor
}

type family struct {
	name        string
	rank        int
	lookup      func(Buffer) (Descriptor, bool)
	descriptors []Descriptor
}

// families holds the tables compiled into the build, ordered by rank. It is
// only written by init functions.
var families []family

func register[E describer](name string, rank int, table []E) {
	f := family{
		name: name,
		rank: rank,
		lookup: func(oid Buffer) (Descriptor, bool) {
			e, ok := find(table, oid)
			if !ok {
				return Descriptor{}, false
			}
			return e.descriptor(), true
		},
		descriptors: make([]Descriptor, len(table)),
	}
	for i, e := range table {
		f.descriptors[i] = e.descriptor()
	}
	families = append(families, f)
	sort.SliceStable(families, func(i, j int) bool {
		return families[i].rank < families[j].rank
	})
}

// Families returns the names of the tables compiled into the build, in the
// order Resolve searches them.
func Families() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// Descriptors returns the descriptors of the named table in declaration
// order, or nil if the table is not compiled into the build.
func Descriptors(name string) []Descriptor {
	for _, f := range families {
		if f.name == name {
			return append([]Descriptor(nil), f.descriptors...)
		}
	}
	return nil
}

// Resolve searches every table for oid and returns the first match.
func Resolve(ctx context.Context, oid Buffer) (Info, error) {
	logger := log.GetLogger(ctx)
	for _, f := range families {
		if d, ok := f.lookup(oid); ok {
			logger.Debugf("Resolved %s to %s in %s", oid, d.Name, f.name)
			return Info{Family: f.name, Descriptor: d}, nil
		}
	}
	logger.Debugf("No table matches object identifier %s", oid)
	return Info{}, notFound("", oid)
}
