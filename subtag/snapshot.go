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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store persists a snapshot of all records so the registry does not have to
// be re-fetched and re-parsed on every start. Implementations must
// round-trip every Record field losslessly, including multi-line
// descriptions and comments and multi-valued prefixes, and must record the
// registry file date the snapshot was built from.
type Store interface {
	Save(records []*Record, fileDate time.Time) error
	Load() (records []*Record, fileDate time.Time, err error)
}

// YAMLStore persists snapshots as a YAML document at Path: a top-level
// file-date scalar plus a sequence of per-record maps, mirroring the
// registry's own field names. Empty fields are omitted.
type YAMLStore struct {
	Path string
}

const snapshotHeader = `# Generated from the IANA Language Subtag Registry. Do not edit by hand;
# delete the file and refresh to regenerate it. For the source data see
# https://www.iana.org/assignments/language-subtag-registry/language-subtag-registry
`

type snapshotDoc struct {
	FileDate  string           `yaml:"file-date"`
	Languages []snapshotRecord `yaml:"languages"`
}

type snapshotRecord struct {
	Type           string   `yaml:"type"`
	Subtag         string   `yaml:"subtag,omitempty"`
	Tag            string   `yaml:"tag,omitempty"`
	Description    []string `yaml:"description,omitempty"`
	Added          string   `yaml:"added,omitempty"`
	SuppressScript string   `yaml:"suppress-script,omitempty"`
	Macrolanguage  string   `yaml:"macrolanguage,omitempty"`
	PreferredValue string   `yaml:"preferred-value,omitempty"`
	Prefix         []string `yaml:"prefix,omitempty"`
	Scope          []string `yaml:"scope,omitempty"`
	Deprecated     bool     `yaml:"deprecated,omitempty"`
	Comments       string   `yaml:"comments,omitempty"`
}

// Save writes records and the registry file date to the snapshot file,
// replacing any previous snapshot. Callers pass the de-duplicated record
// set (Index.UniqueRecords) so multi-description records appear once.
func (s *YAMLStore) Save(records []*Record, fileDate time.Time) error {
	doc := snapshotDoc{
		Languages: make([]snapshotRecord, 0, len(records)),
	}
	if !fileDate.IsZero() {
		doc.FileDate = fileDate.Format(dateLayout)
	}

	for _, rec := range records {
		sr := snapshotRecord{
			Type:           rec.Kind.String(),
			Subtag:         rec.Subtag,
			Tag:            rec.Tag,
			Description:    rec.Descriptions,
			SuppressScript: rec.SuppressScript,
			Macrolanguage:  rec.Macrolanguage,
			PreferredValue: rec.PreferredValue,
			Prefix:         rec.Prefixes,
			Deprecated:     rec.IsDeprecated,
			Comments:       rec.Comments,
		}
		if !rec.Added.IsZero() {
			sr.Added = rec.Added.Format(dateLayout)
		}
		// Scope is a sequence: the parser can set both flags on one record
		// (two scope lines), and the round-trip must not drop either.
		if rec.IsMacrolanguage {
			sr.Scope = append(sr.Scope, "macrolanguage")
		}
		if rec.IsCollection {
			sr.Scope = append(sr.Scope, "collection")
		}
		doc.Languages = append(doc.Languages, sr)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	data = append([]byte(snapshotHeader), data...)

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", s.Path, err)
	}
	return nil
}

// Load reads the snapshot file back into records and the file date it was
// built from.
func (s *YAMLStore) Load() ([]*Record, time.Time, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading snapshot %s: %w", s.Path, err)
	}

	var doc snapshotDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshaling snapshot %s: %w", s.Path, err)
	}

	var fileDate time.Time
	if doc.FileDate != "" {
		fileDate, err = time.Parse(dateLayout, doc.FileDate)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("snapshot file-date %q: %w", doc.FileDate, err)
		}
	}

	records := make([]*Record, 0, len(doc.Languages))
	for _, sr := range doc.Languages {
		rec := &Record{
			Kind:           KindFromString(sr.Type),
			Subtag:         sr.Subtag,
			Tag:            sr.Tag,
			Descriptions:   sr.Description,
			SuppressScript: sr.SuppressScript,
			Macrolanguage:  sr.Macrolanguage,
			PreferredValue: sr.PreferredValue,
			Prefixes:       sr.Prefix,
			IsDeprecated:   sr.Deprecated,
			Comments:       sr.Comments,
		}
		if sr.Added != "" {
			rec.Added, err = time.Parse(dateLayout, sr.Added)
			if err != nil {
				return nil, time.Time{}, fmt.Errorf("snapshot added date %q: %w", sr.Added, err)
			}
		}
		for _, scope := range sr.Scope {
			switch scope {
			case "macrolanguage":
				rec.IsMacrolanguage = true
			case "collection":
				rec.IsCollection = true
			}
		}
		records = append(records, rec)
	}
	return records, fileDate, nil
}
