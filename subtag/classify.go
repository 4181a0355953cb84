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

package subtag

import (
	"strings"
	"unicode"
)

// TagSegmentKind classifies one hyphen-delimited chunk of a language tag.
type TagSegmentKind int

// Segment classifications produced by Classify.
const (
	SegMalformed TagSegmentKind = iota
	SegPrimaryLanguage
	SegPrivateLanguage
	SegExtendedLanguage
	SegScript
	SegPrivateScript
	SegRegion
	SegPrivateRegion
	SegVariant
	SegGrandfathered
	SegRedundant
)

var segmentNames = map[TagSegmentKind]string{
	SegMalformed:        "malformed",
	SegPrimaryLanguage:  "primary language",
	SegPrivateLanguage:  "private language",
	SegExtendedLanguage: "extended language",
	SegScript:           "script",
	SegPrivateScript:    "private script",
	SegRegion:           "region",
	SegPrivateRegion:    "private region",
	SegVariant:          "variant",
	SegGrandfathered:    "grandfathered",
	SegRedundant:        "redundant",
}

// String returns a human-readable name for the classification.
func (k TagSegmentKind) String() string {
	return segmentNames[k]
}

// TagSegment is one classified chunk of a tag. Start and Length locate the
// chunk in the whitespace-stripped input, so a caller can highlight the
// offending region of a malformed tag.
type TagSegment struct {
	Start  int
	Length int
	Text   string
	Kind   TagSegmentKind
}

// Classify decomposes a candidate tag string into an ordered sequence of
// classified segments, one per hyphen-delimited chunk, covering the whole
// input in order with no backtracking.
//
// All whitespace is stripped from the input first: malformed spacing is
// silently repaired, not reported. Each chunk is then tested in a fixed
// priority order, taking the first match:
//
//  1. primary language: registry membership, the private-use markers "i"
//     and "x", or the private range "qaa".."qtz" (RFC 5646, Section 2.1)
//  2. extended language: registry membership
//  3. script: registry membership, else the private range "Qaaa".."Qabx"
//  4. region: registry membership, else "AA", "QM".."QZ", "XA".."XZ", "ZZ"
//  5. variant: registry membership
//  6. otherwise Malformed
//
// Range comparisons are ordinary lexicographic string ordering over the
// exact case shown, mirroring the registry's own casing convention. A chunk
// that could match more than one category always resolves to the
// earliest-listed one; this tie-break is deliberate.
//
// As a special case, an input that matches a registered grandfathered or
// redundant tag in its entirety (case-insensitively, as those legacy tags
// are not compositional) yields a single segment covering the whole input.
func (ix *Index) Classify(tag string) []TagSegment {
	stripped := stripWhitespace(tag)
	if stripped == "" {
		return nil
	}

	if kind, text := ix.wholeTagKind(stripped); kind != SegMalformed {
		return []TagSegment{{Start: 0, Length: len(stripped), Text: text, Kind: kind}}
	}

	var segments []TagSegment
	start := 0
	for {
		end := strings.IndexByte(stripped[start:], '-')
		chunk := ""
		if end < 0 {
			chunk = stripped[start:]
		} else {
			chunk = stripped[start : start+end]
		}

		segments = append(segments, TagSegment{
			Start:  start,
			Length: len(chunk),
			Text:   chunk,
			Kind:   ix.chunkKind(chunk),
		})

		if end < 0 {
			break
		}
		start += end + 1
	}
	return segments
}

// wholeTagKind tests the stripped input against the grandfathered and
// redundant whole-tag tables. Legacy tags predate the compositional subtag
// system and cannot be classified chunk by chunk. The lookup is
// case-insensitive via the lowercase-keyed tables built at Rebuild, keeping
// the pre-check constant time.
func (ix *Index) wholeTagKind(stripped string) (TagSegmentKind, string) {
	lower := lowerASCII(stripped)
	if _, ok := ix.grandfatheredByLower[lower]; ok {
		return SegGrandfathered, stripped
	}
	if _, ok := ix.redundantByLower[lower]; ok {
		return SegRedundant, stripped
	}
	return SegMalformed, ""
}

// chunkKind applies the fixed priority order to a single chunk.
func (ix *Index) chunkKind(chunk string) TagSegmentKind {
	switch {
	case chunk == "i" || chunk == "x" || (chunk >= "qaa" && chunk <= "qtz"):
		return SegPrivateLanguage
	case ix.IsPrimaryLanguage(chunk):
		return SegPrimaryLanguage
	case ix.IsExtLang(chunk):
		return SegExtendedLanguage
	case ix.IsScript(chunk):
		return SegScript
	case chunk >= "Qaaa" && chunk <= "Qabx":
		return SegPrivateScript
	case ix.IsRegion(chunk):
		return SegRegion
	case chunk == "AA" || (chunk >= "QM" && chunk <= "QZ") ||
		(chunk >= "XA" && chunk <= "XZ") || chunk == "ZZ":
		return SegPrivateRegion
	case ix.IsVariant(chunk):
		return SegVariant
	}
	return SegMalformed
}

// stripWhitespace removes every whitespace rune from s.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
