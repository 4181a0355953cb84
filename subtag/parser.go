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
	"bufio"
	"io"
	"strings"
	"time"
)

// dateLayout is the ISO-8601 calendar date format used by the registry's
// File-Date header and Added fields.
const dateLayout = "2006-01-02"

// ErrorFlags records the malformed-line conditions found on a single
// registry line. Conditions are OR-combined when several hold at once.
type ErrorFlags uint8

// Parse error conditions. They accumulate per line and never abort a parse.
const (
	// BadFileDate marks content found before a valid "file-date:" header,
	// or a header whose date does not parse.
	BadFileDate ErrorFlags = 1 << iota
	// EmptyName marks a "name: value" line with nothing before the colon.
	EmptyName
	// EmptyValue marks a recognized field with nothing after the colon.
	EmptyValue
	// UnknownTagType marks an unrecognized field name or an unrecognized
	// "type:" value.
	UnknownTagType
)

// Has reports whether all conditions in flag are set.
func (f ErrorFlags) Has(flag ErrorFlags) bool {
	return f&flag == flag
}

// String renders the set conditions as a comma-joined list.
func (f ErrorFlags) String() string {
	var parts []string
	if f.Has(BadFileDate) {
		parts = append(parts, "bad file date")
	}
	if f.Has(EmptyName) {
		parts = append(parts, "empty field name")
	}
	if f.Has(EmptyValue) {
		parts = append(parts, "empty field value")
	}
	if f.Has(UnknownTagType) {
		parts = append(parts, "unknown tag type")
	}
	if len(parts) == 0 {
		return "no errors"
	}
	return strings.Join(parts, ", ")
}

// ParseResult is the complete outcome of one registry parse: the records in
// emission order, the registry file date, and every malformed line keyed by
// its 1-based line number.
type ParseResult struct {
	Records  []*Record
	FileDate time.Time
	Errors   map[int]ErrorFlags
}

// NoErrors reports whether the parse found no malformed lines. Only a parse
// with no errors qualifies for automatic dataset adoption.
func (r *ParseResult) NoErrors() bool {
	return len(r.Errors) == 0
}

// fieldNames is the fixed set of field names the registry grammar defines.
// Lookups are case-insensitive.
var fieldNames = map[string]struct{}{
	"type":            {},
	"tag":             {},
	"subtag":          {},
	"description":     {},
	"added":           {},
	"suppress-script": {},
	"prefix":          {},
	"macrolanguage":   {},
	"deprecated":      {},
	"preferred-value": {},
	"scope":           {},
	"comments":        {},
}

// IsFieldName reports whether name is one of the registry's known field
// names. The comparison is case-insensitive.
func IsFieldName(name string) bool {
	_, ok := fieldNames[lowerASCII(strings.TrimSpace(name))]
	return ok
}

// parseMode tracks where continuation lines belong.
type parseMode int

const (
	modeUnknown parseMode = iota
	modeStarted
	modeDescription
	modeComment
)

// registryParser holds the state for one pass over the registry text.
type registryParser struct {
	result    *ParseResult
	cur       *Record
	mode      parseMode
	dateFound bool
	lineNo    int
}

// ParseRegistry reads the full IANA Language Subtag Registry text from r and
// reconstructs its records. Both LF and CRLF line endings are accepted.
//
// Malformed lines never abort the parse; they accumulate in the result's
// error multimap and the (possibly partial) record set is returned alongside
// them. The returned error is non-nil only when the reader itself fails.
func ParseRegistry(r io.Reader) (*ParseResult, error) {
	p := &registryParser{
		result: &ParseResult{Errors: make(map[int]ErrorFlags)},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.processLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// End of input closes an open record exactly as a separator would.
	p.closeRecord()
	return p.result, nil
}

// addError ORs flags into the current line's error entry.
func (p *registryParser) addError(flags ErrorFlags) {
	p.result.Errors[p.lineNo] |= flags
}

// closeRecord emits the open record. Records that never received a
// description are dropped: every successfully parsed record carries at
// least one description, and a stray separator must not emit an empty one.
func (p *registryParser) closeRecord() {
	if p.cur != nil && len(p.cur.Descriptions) > 0 {
		p.result.Records = append(p.result.Records, p.cur)
	}
	p.cur = nil
}

// openRecord starts a fresh record.
func (p *registryParser) openRecord() {
	p.cur = &Record{}
	p.mode = modeStarted
}

// processLine advances the state machine by one line.
func (p *registryParser) processLine(line string) {
	p.lineNo++

	if !p.dateFound {
		p.processFileDate(line)
		return
	}

	if line == "%%" {
		p.closeRecord()
		p.openRecord()
		return
	}

	idx := strings.Index(line, ":")
	if idx < 0 {
		p.continuation(line)
		return
	}

	name := strings.TrimSpace(line[:idx])
	if !IsFieldName(name) {
		// The colon belongs to the value text (descriptions and comments
		// legitimately contain URLs and clauses with colons). Inside a
		// comment no diagnostics are raised; elsewhere the line is
		// suspicious and flagged, but still routed as a continuation.
		if p.mode != modeComment {
			if name == "" {
				p.addError(EmptyName)
			} else {
				p.addError(UnknownTagType)
			}
			if strings.TrimSpace(line[idx+1:]) == "" {
				p.addError(EmptyValue)
			}
		}
		p.continuation(line)
		return
	}

	// Everything after the first colon is the value, embedded colons
	// preserved.
	value := strings.TrimSpace(line[idx+1:])
	if value == "" {
		p.addError(EmptyValue)
	}
	p.assign(lowerASCII(name), value)
}

// processFileDate handles every line before a valid file-date header has
// been consumed. The first meaningful line must be "file-date: <ISO date>";
// anything else is a BadFileDate error, and records are not accepted until
// the header appears.
func (p *registryParser) processFileDate(line string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(lowerASCII(trimmed), "file-date") {
		if idx := strings.Index(trimmed, ":"); idx >= 0 {
			dateStr := strings.TrimSpace(trimmed[idx+1:])
			if d, err := time.Parse(dateLayout, dateStr); err == nil {
				p.result.FileDate = d
				p.dateFound = true
				return
			}
		}
	}
	p.addError(BadFileDate)
}

// continuation routes a line that carries no recognizable field to the open
// multi-line field, if any. Outside description and comment modes the line
// is discarded silently.
func (p *registryParser) continuation(line string) {
	if p.cur == nil {
		return
	}
	switch p.mode {
	case modeDescription:
		p.cur.appendDescription(line)
	case modeComment:
		p.cur.appendComment(line)
	default:
	}
}

// assign applies one recognized field to the open record. name is already
// lower-cased. A field line arriving before the first separator opens a
// record implicitly.
func (p *registryParser) assign(name, value string) {
	if p.cur == nil {
		p.openRecord()
	}

	switch name {
	case "type":
		kind := KindFromString(value)
		if kind == Unknown {
			p.addError(UnknownTagType)
			return
		}
		p.cur.Kind = kind
	case "tag":
		p.cur.Tag = value
	case "subtag":
		p.cur.Subtag = value
	case "description":
		p.cur.Descriptions = append(p.cur.Descriptions, value)
		p.mode = modeDescription
	case "added":
		if d, err := time.Parse(dateLayout, value); err == nil {
			p.cur.Added = d
		}
	case "suppress-script":
		p.cur.SuppressScript = value
	case "prefix":
		p.cur.Prefixes = append(p.cur.Prefixes, value)
	case "macrolanguage":
		p.cur.Macrolanguage = value
	case "deprecated":
		// The registry records a deprecation date here; only the fact of
		// deprecation is kept.
		p.cur.IsDeprecated = true
	case "scope":
		// Verbatim comparison. "macrolanguge" is a misspelling found in
		// hand-authored inputs; the registry is not schema-validated, so
		// it is accepted alongside the correct spelling.
		switch value {
		case "macrolanguage", "macrolanguge":
			p.cur.IsMacrolanguage = true
		case "collection":
			p.cur.IsCollection = true
		}
	case "comments":
		p.cur.Comments = value
		p.mode = modeComment
	}
}
