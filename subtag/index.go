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

import "sort"

// Index cross-references a set of registry records. It holds one multi-valued
// dataset table keyed by description, plus per-kind tables keyed by
// description and by subtag (or full tag for grandfathered/redundant
// entries).
//
// Description keys are unique within a kind with one exception: the registry
// contains grandfathered entries sharing a description, so the grandfathered
// description table is multi-valued.
//
// All tables hold pointers into the record collection handed to Rebuild;
// the Index never copies a Record. Lookups are read-only and safe to run
// concurrently once the Index is built and published.
type Index struct {
	records []*Record

	dataset map[string][]*Record

	langByDesc    map[string]*Record
	langBySubtag  map[string]*Record
	extlangByDesc map[string]*Record
	extlangBySub  map[string]*Record
	scriptByDesc  map[string]*Record
	scriptBySub   map[string]*Record
	regionByDesc  map[string]*Record
	regionBySub   map[string]*Record
	variantByDesc map[string]*Record
	variantBySub  map[string]*Record

	grandfatheredByDesc map[string][]*Record
	grandfatheredByTag  map[string]*Record
	redundantByDesc     map[string]*Record
	redundantByTag      map[string]*Record

	// Lowercase-keyed legacy tables for the classifier's case-insensitive
	// whole-tag pre-check.
	grandfatheredByLower map[string]*Record
	redundantByLower     map[string]*Record
}

// NewIndex builds a fresh Index over records. Building off to the side and
// publishing the finished value is the intended way to refresh: readers of a
// previously published Index are never exposed to half-populated tables.
func NewIndex(records []*Record) *Index {
	ix := &Index{}
	ix.Rebuild(records)
	return ix
}

// Rebuild repopulates every table from records. The rebuild is total: all
// previous contents are discarded first, so it is safe to call repeatedly
// for every successful load or refresh. Records are consumed in slice order
// and each record is keyed under every one of its descriptions, preserving
// duplicates in the multi-valued tables.
func (ix *Index) Rebuild(records []*Record) {
	ix.records = records

	ix.dataset = make(map[string][]*Record)
	ix.langByDesc = make(map[string]*Record)
	ix.langBySubtag = make(map[string]*Record)
	ix.extlangByDesc = make(map[string]*Record)
	ix.extlangBySub = make(map[string]*Record)
	ix.scriptByDesc = make(map[string]*Record)
	ix.scriptBySub = make(map[string]*Record)
	ix.regionByDesc = make(map[string]*Record)
	ix.regionBySub = make(map[string]*Record)
	ix.variantByDesc = make(map[string]*Record)
	ix.variantBySub = make(map[string]*Record)
	ix.grandfatheredByDesc = make(map[string][]*Record)
	ix.grandfatheredByTag = make(map[string]*Record)
	ix.redundantByDesc = make(map[string]*Record)
	ix.redundantByTag = make(map[string]*Record)
	ix.grandfatheredByLower = make(map[string]*Record)
	ix.redundantByLower = make(map[string]*Record)

	for _, rec := range records {
		for _, desc := range rec.Descriptions {
			ix.dataset[desc] = append(ix.dataset[desc], rec)
			ix.add(desc, rec)
		}
	}
}

// add files one (description, record) pair into the per-kind tables.
func (ix *Index) add(desc string, rec *Record) {
	switch rec.Kind {
	case Language:
		ix.langByDesc[desc] = rec
		ix.langBySubtag[rec.Subtag] = rec
	case ExtLang:
		ix.extlangByDesc[desc] = rec
		ix.extlangBySub[rec.Subtag] = rec
	case Script:
		ix.scriptByDesc[desc] = rec
		ix.scriptBySub[rec.Subtag] = rec
	case Region:
		ix.regionByDesc[desc] = rec
		ix.regionBySub[rec.Subtag] = rec
	case Variant:
		ix.variantByDesc[desc] = rec
		ix.variantBySub[rec.Subtag] = rec
	case Grandfathered:
		ix.grandfatheredByDesc[desc] = append(ix.grandfatheredByDesc[desc], rec)
		ix.grandfatheredByTag[rec.Tag] = rec
		ix.grandfatheredByLower[lowerASCII(rec.Tag)] = rec
	case Redundant:
		ix.redundantByDesc[desc] = rec
		ix.redundantByTag[rec.Tag] = rec
		ix.redundantByLower[lowerASCII(rec.Tag)] = rec
	default:
	}
}

// UniqueRecords returns each distinct record exactly once, de-duplicated by
// identity and in first-seen order. Snapshots are serialized from this view
// so multi-description records are not written repeatedly.
func (ix *Index) UniqueRecords() []*Record {
	seen := make(map[*Record]struct{}, len(ix.records))
	unique := make([]*Record, 0, len(ix.records))
	for _, rec := range ix.records {
		if _, ok := seen[rec]; ok {
			continue
		}
		seen[rec] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}

// FromDescription returns every record carrying the description, regardless
// of kind, in parse order. One description can legitimately belong to
// several records.
func (ix *Index) FromDescription(desc string) []*Record {
	return ix.dataset[desc]
}

// LanguageByDescription returns the language record with the given
// description, or nil.
func (ix *Index) LanguageByDescription(desc string) *Record {
	return ix.langByDesc[desc]
}

// ExtLangByDescription returns the extlang record with the given
// description, or nil.
func (ix *Index) ExtLangByDescription(desc string) *Record {
	return ix.extlangByDesc[desc]
}

// ScriptByDescription returns the script record with the given description,
// or nil.
func (ix *Index) ScriptByDescription(desc string) *Record {
	return ix.scriptByDesc[desc]
}

// RegionByDescription returns the region record with the given description,
// or nil.
func (ix *Index) RegionByDescription(desc string) *Record {
	return ix.regionByDesc[desc]
}

// VariantByDescription returns the variant record with the given
// description, or nil.
func (ix *Index) VariantByDescription(desc string) *Record {
	return ix.variantByDesc[desc]
}

// RedundantByDescription returns the redundant record with the given
// description, or nil.
func (ix *Index) RedundantByDescription(desc string) *Record {
	return ix.redundantByDesc[desc]
}

// GrandfatheredByDescription returns the grandfathered records with the
// given description. Grandfathered descriptions are not unique, so the
// result may hold more than one record.
func (ix *Index) GrandfatheredByDescription(desc string) []*Record {
	return ix.grandfatheredByDesc[desc]
}

// LanguageBySubtag returns the language record for the subtag, or nil.
func (ix *Index) LanguageBySubtag(sub string) *Record {
	return ix.langBySubtag[sub]
}

// ExtLangBySubtag returns the extlang record for the subtag, or nil.
func (ix *Index) ExtLangBySubtag(sub string) *Record {
	return ix.extlangBySub[sub]
}

// ScriptBySubtag returns the script record for the subtag, or nil.
func (ix *Index) ScriptBySubtag(sub string) *Record {
	return ix.scriptBySub[sub]
}

// RegionBySubtag returns the region record for the subtag, or nil.
func (ix *Index) RegionBySubtag(sub string) *Record {
	return ix.regionBySub[sub]
}

// VariantBySubtag returns the variant record for the subtag, or nil.
func (ix *Index) VariantBySubtag(sub string) *Record {
	return ix.variantBySub[sub]
}

// GrandfatheredByTag returns the grandfathered record for the full tag, or
// nil.
func (ix *Index) GrandfatheredByTag(tag string) *Record {
	return ix.grandfatheredByTag[tag]
}

// RedundantByTag returns the redundant record for the full tag, or nil.
func (ix *Index) RedundantByTag(tag string) *Record {
	return ix.redundantByTag[tag]
}

// IsPrimaryLanguage reports whether sub is a registered primary language
// subtag. The comparison is exact: the registry records languages in lower
// case.
func (ix *Index) IsPrimaryLanguage(sub string) bool {
	_, ok := ix.langBySubtag[sub]
	return ok
}

// IsExtLang reports whether sub is a registered extended language subtag.
func (ix *Index) IsExtLang(sub string) bool {
	_, ok := ix.extlangBySub[sub]
	return ok
}

// IsScript reports whether sub is a registered script subtag.
func (ix *Index) IsScript(sub string) bool {
	_, ok := ix.scriptBySub[sub]
	return ok
}

// IsRegion reports whether sub is a registered region subtag.
func (ix *Index) IsRegion(sub string) bool {
	_, ok := ix.regionBySub[sub]
	return ok
}

// IsVariant reports whether sub is a registered variant subtag.
func (ix *Index) IsVariant(sub string) bool {
	_, ok := ix.variantBySub[sub]
	return ok
}

// IsGrandfathered reports whether tag is a registered grandfathered tag.
func (ix *Index) IsGrandfathered(tag string) bool {
	_, ok := ix.grandfatheredByTag[tag]
	return ok
}

// IsRedundant reports whether tag is a registered redundant tag.
func (ix *Index) IsRedundant(tag string) bool {
	_, ok := ix.redundantByTag[tag]
	return ok
}

// TypeOf returns the kind of a bare subtag or tag value, probing the tables
// in registry order, or Unknown when no table holds it.
func (ix *Index) TypeOf(value string) Kind {
	switch {
	case ix.IsPrimaryLanguage(value):
		return Language
	case ix.IsExtLang(value):
		return ExtLang
	case ix.IsVariant(value):
		return Variant
	case ix.IsRegion(value):
		return Region
	case ix.IsScript(value):
		return Script
	case ix.IsGrandfathered(value):
		return Grandfathered
	case ix.IsRedundant(value):
		return Redundant
	}
	return Unknown
}

// ExtlangsWithPrefix returns the primary descriptions of every extlang
// record that lists sub among its prefixes, sorted by subtag.
func (ix *Index) ExtlangsWithPrefix(sub string) []string {
	return descriptionsWithPrefix(ix.extlangBySub, sub)
}

// VariantsWithPrefix returns the primary descriptions of every variant
// record that lists sub among its prefixes, sorted by subtag.
func (ix *Index) VariantsWithPrefix(sub string) []string {
	return descriptionsWithPrefix(ix.variantBySub, sub)
}

func descriptionsWithPrefix(table map[string]*Record, sub string) []string {
	var out []string
	for _, key := range sortedKeys(table) {
		rec := table[key]
		for _, prefix := range rec.Prefixes {
			if prefix == sub {
				out = append(out, rec.Description())
				break
			}
		}
	}
	return out
}

// Descriptions returns every description in the dataset, sorted.
func (ix *Index) Descriptions() []string { return sortedKeysMulti(ix.dataset) }

// LanguageDescriptions returns all primary language descriptions, sorted.
func (ix *Index) LanguageDescriptions() []string { return sortedKeys(ix.langByDesc) }

// LanguageSubtags returns all primary language subtags, sorted.
func (ix *Index) LanguageSubtags() []string { return sortedKeys(ix.langBySubtag) }

// ExtLangDescriptions returns all extended language descriptions, sorted.
func (ix *Index) ExtLangDescriptions() []string { return sortedKeys(ix.extlangByDesc) }

// ExtLangSubtags returns all extended language subtags, sorted.
func (ix *Index) ExtLangSubtags() []string { return sortedKeys(ix.extlangBySub) }

// ScriptDescriptions returns all script descriptions, sorted.
func (ix *Index) ScriptDescriptions() []string { return sortedKeys(ix.scriptByDesc) }

// ScriptSubtags returns all script subtags, sorted.
func (ix *Index) ScriptSubtags() []string { return sortedKeys(ix.scriptBySub) }

// RegionDescriptions returns all region descriptions, sorted.
func (ix *Index) RegionDescriptions() []string { return sortedKeys(ix.regionByDesc) }

// RegionSubtags returns all region subtags, sorted.
func (ix *Index) RegionSubtags() []string { return sortedKeys(ix.regionBySub) }

// VariantDescriptions returns all variant descriptions, sorted.
func (ix *Index) VariantDescriptions() []string { return sortedKeys(ix.variantByDesc) }

// VariantSubtags returns all variant subtags, sorted.
func (ix *Index) VariantSubtags() []string { return sortedKeys(ix.variantBySub) }

// GrandfatheredDescriptions returns all grandfathered descriptions, sorted.
func (ix *Index) GrandfatheredDescriptions() []string { return sortedKeysMulti(ix.grandfatheredByDesc) }

// GrandfatheredTags returns all grandfathered tags, sorted.
func (ix *Index) GrandfatheredTags() []string { return sortedKeys(ix.grandfatheredByTag) }

// RedundantDescriptions returns all redundant descriptions, sorted.
func (ix *Index) RedundantDescriptions() []string { return sortedKeys(ix.redundantByDesc) }

// RedundantTags returns all redundant tags, sorted.
func (ix *Index) RedundantTags() []string { return sortedKeys(ix.redundantByTag) }

func sortedKeys(m map[string]*Record) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysMulti(m map[string][]*Record) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
