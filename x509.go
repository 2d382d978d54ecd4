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

//go:build !oid_no_x509

package oid

// X.509 extensions
const (
	oidBasicConstraints = "\x55\x1d\x13"                         // 2.5.29.19
	oidKeyUsage         = "\x55\x1d\x0f"                         // 2.5.29.15
	oidExtendedKeyUsage = "\x55\x1d\x25"                         // 2.5.29.37
	oidSubjectAltName   = "\x55\x1d\x11"                         // 2.5.29.17
	oidNSCertType       = "\x60\x86\x48\x01\x86\xf8\x42\x01\x01" // 2.16.840.1.113730.1.1
)

// Extended key usage purposes
const (
	oidServerAuth      = "\x2b\x06\x01\x05\x05\x07\x03\x01" // 1.3.6.1.5.5.7.3.1
	oidClientAuth      = "\x2b\x06\x01\x05\x05\x07\x03\x02" // 1.3.6.1.5.5.7.3.2
	oidCodeSigning     = "\x2b\x06\x01\x05\x05\x07\x03\x03" // 1.3.6.1.5.5.7.3.3
	oidEmailProtection = "\x2b\x06\x01\x05\x05\x07\x03\x04" // 1.3.6.1.5.5.7.3.4
	oidTimeStamping    = "\x2b\x06\x01\x05\x05\x07\x03\x08" // 1.3.6.1.5.5.7.3.8
	oidOCSPSigning     = "\x2b\x06\x01\x05\x05\x07\x03\x09" // 1.3.6.1.5.5.7.3.9
)

type x509Ext struct {
	Descriptor
	extType ExtensionType
}

var x509Exts = [...]x509Ext{
	{Descriptor{oidBasicConstraints, "id-ce-basicConstraints", "Basic Constraints"}, ExtBasicConstraints},
	{Descriptor{oidKeyUsage, "id-ce-keyUsage", "Key Usage"}, ExtKeyUsage},
	{Descriptor{oidExtendedKeyUsage, "id-ce-extKeyUsage", "Extended Key Usage"}, ExtExtendedKeyUsage},
	{Descriptor{oidSubjectAltName, "id-ce-subjectAltName", "Subject Alt Name"}, ExtSubjectAltName},
	{Descriptor{oidNSCertType, "id-netscape-certtype", "Netscape Certificate Type"}, ExtNSCertType},
}

// extKeyUsages entries carry no tag; lookups project the description.
var extKeyUsages = [...]Descriptor{
	{oidServerAuth, "id-kp-serverAuth", "TLS Web Server Authentication"},
	{oidClientAuth, "id-kp-clientAuth", "TLS Web Client Authentication"},
	{oidCodeSigning, "id-kp-codeSigning", "Code Signing"},
	{oidEmailProtection, "id-kp-emailProtection", "E-mail Protection"},
	{oidTimeStamping, "id-kp-timeStamping", "Time Stamping"},
	{oidOCSPSigning, "id-kp-OCSPSigning", "OCSP Signing"},
}

func init() {
	register(FamilyX509Ext, 1, x509Exts[:])
	register(FamilyExtKeyUsage, 2, extKeyUsages[:])
}

// ExtType returns the type of the X.509 extension identified by oid.
func ExtType(oid Buffer) (ExtensionType, error) {
	ext, ok := find(x509Exts[:], oid)
	if !ok {
		return 0, notFound(FamilyX509Ext, oid)
	}
	return ext.extType, nil
}

// ExtendedKeyUsage returns the description of the extended key usage purpose
// identified by oid, e.g. "Code Signing".
func ExtendedKeyUsage(oid Buffer) (string, error) {
	d, ok := find(extKeyUsages[:], oid)
	if !ok {
		return "", notFound(FamilyExtKeyUsage, oid)
	}
	return d.Description, nil
}
