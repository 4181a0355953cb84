/*
Copyright 2026 BCP47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package subtag turns the IANA Language Subtag Registry into a queryable
// in-memory model.
//
// The registry file is a flat, line-oriented text document listing every
// recognized language, extlang, script, region, variant, grandfathered and
// redundant subtag (RFC 5646, Section 3.1). This package provides:
//
//   - A record parser that reconstructs structured records from the raw
//     registry text, including multi-line description and comment
//     continuations, and reports malformed lines without aborting.
//   - An Index that cross-references the parsed records by description and
//     by subtag/tag, partitioned per record kind.
//   - A tag classifier that decomposes an arbitrary hyphen-delimited tag
//     string (e.g. "az-Latn-AZ") into typed segments, honouring the
//     private-use code ranges reserved by RFC 5646.
//   - A composer that builds canonical tag strings from description-text
//     lookups, and a Service that owns the published dataset and gates
//     registry refreshes on file date and parse cleanliness.
package subtag

import "time"

// Kind identifies which registry section a Record belongs to. It determines
// whether the record carries a Subtag (Language through Variant) or a full
// Tag (Grandfathered, Redundant).
type Kind int

// The record kinds defined by the registry's "Type" field.
const (
	Unknown Kind = iota
	Language
	ExtLang
	Script
	Region
	Variant
	Grandfathered
	Redundant
)

var kindNames = map[Kind]string{
	Language:      "language",
	ExtLang:       "extlang",
	Script:        "script",
	Region:        "region",
	Variant:       "variant",
	Grandfathered: "grandfathered",
	Redundant:     "redundant",
}

// String returns the registry spelling of the kind, or "" for Unknown.
func (k Kind) String() string {
	return kindNames[k]
}

// KindFromString maps a registry "Type" value to its Kind. The comparison is
// case-insensitive. Unrecognized values yield Unknown.
func KindFromString(s string) Kind {
	switch lowerASCII(s) {
	case "language":
		return Language
	case "extlang":
		return ExtLang
	case "script":
		return Script
	case "region":
		return Region
	case "variant":
		return Variant
	case "grandfathered":
		return Grandfathered
	case "redundant":
		return Redundant
	}
	return Unknown
}

// Record is a single registry entry. Exactly one of Subtag and Tag is
// populated, chosen by Kind: grandfathered and redundant entries are whole
// legacy tags, everything else is a composable subtag.
//
// A Record is immutable once parsing completes. The slice of records
// returned by the parser owns the canonical copies; every index table holds
// pointers into that collection, never copies.
type Record struct {
	Kind           Kind
	Subtag         string
	Tag            string
	Descriptions   []string
	Added          time.Time
	SuppressScript string
	Macrolanguage  string
	PreferredValue string
	Prefixes       []string
	Comments       string

	IsMacrolanguage bool
	IsCollection    bool
	IsDeprecated    bool
}

// Description returns the primary (first) description, used as the record's
// display name and as its key in the description indexes. Returns "" for a
// record without descriptions, which the parser never emits.
func (r *Record) Description() string {
	if len(r.Descriptions) == 0 {
		return ""
	}
	return r.Descriptions[0]
}

// HasSuppressScript reports whether the record implies a script subtag that
// should be omitted from tags.
func (r *Record) HasSuppressScript() bool {
	return r.SuppressScript != ""
}

// HasPreferredValue reports whether a replacement tag/subtag is recorded,
// which is the case for deprecated entries.
func (r *Record) HasPreferredValue() bool {
	return r.PreferredValue != ""
}

// HasComment reports whether the record carries registrar commentary.
func (r *Record) HasComment() bool {
	return r.Comments != ""
}

// IsWholeTag reports whether the record describes a complete legacy tag
// rather than a composable subtag.
func (r *Record) IsWholeTag() bool {
	return r.Kind == Grandfathered || r.Kind == Redundant
}

// appendDescription extends the last description entry with a continuation
// line. Continuations are newline-joined so multi-line registry text
// round-trips through snapshots.
func (r *Record) appendDescription(extra string) {
	if len(r.Descriptions) == 0 {
		r.Descriptions = append(r.Descriptions, extra)
		return
	}
	last := len(r.Descriptions) - 1
	r.Descriptions[last] += "\n" + extra
}

// appendComment extends the comment with a continuation line.
func (r *Record) appendComment(extra string) {
	r.Comments += "\n" + extra
}

// lowerASCII lower-cases ASCII letters without allocating for strings that
// are already lower-case. Registry field names and type values are US-ASCII.
func lowerASCII(s string) string {
	lower := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			lower = false
			break
		}
	}
	if lower {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
