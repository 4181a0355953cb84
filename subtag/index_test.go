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

//nolint:testpackage // White-box tests for the index tables.
package subtag

import (
	"reflect"
	"testing"
)

// testRecords is a small but representative registry slice: languages,
// an extlang, a script, regions, a variant, grandfathered entries with a
// shared description, and a redundant entry.
func testRecords() []*Record {
	return []*Record{
		{Kind: Language, Subtag: "az", Descriptions: []string{"Azerbaijani"}},
		{Kind: Language, Subtag: "fr", Descriptions: []string{"French"}},
		{Kind: Language, Subtag: "sl", Descriptions: []string{"Slovenian"}},
		{Kind: Language, Subtag: "ar", Descriptions: []string{"Arabic"}, IsMacrolanguage: true},
		{Kind: ExtLang, Subtag: "afb", Descriptions: []string{"Gulf Arabic"},
			Prefixes: []string{"ar"}, PreferredValue: "afb"},
		{Kind: Script, Subtag: "Latn", Descriptions: []string{"Latin"}},
		{Kind: Region, Subtag: "AZ", Descriptions: []string{"Azerbaijan"}},
		{Kind: Region, Subtag: "CA", Descriptions: []string{"Canada"}},
		{Kind: Region, Subtag: "IT", Descriptions: []string{"Italy"}},
		{Kind: Variant, Subtag: "nedis", Descriptions: []string{"Natisone dialect", "Nadiza dialect"},
			Prefixes: []string{"sl"}},
		{Kind: Grandfathered, Tag: "i-klingon", Descriptions: []string{"Klingon"},
			PreferredValue: "tlh"},
		{Kind: Grandfathered, Tag: "zh-hakka", Descriptions: []string{"Hakka"}, IsDeprecated: true},
		{Kind: Grandfathered, Tag: "i-hak", Descriptions: []string{"Hakka"}, IsDeprecated: true},
		{Kind: Redundant, Tag: "zh-Hans", Descriptions: []string{"simplified Chinese"}},
	}
}

func testIndex() *Index {
	return NewIndex(testRecords())
}

func TestIndex_Lookups(t *testing.T) {
	ix := testIndex()

	if rec := ix.LanguageByDescription("French"); rec == nil || rec.Subtag != "fr" {
		t.Errorf("LanguageByDescription(French) = %+v, want subtag fr", rec)
	}
	if rec := ix.LanguageBySubtag("fr"); rec == nil || rec.Description() != "French" {
		t.Errorf("LanguageBySubtag(fr) = %+v, want French", rec)
	}
	if rec := ix.ExtLangByDescription("Gulf Arabic"); rec == nil || rec.Subtag != "afb" {
		t.Errorf("ExtLangByDescription(Gulf Arabic) = %+v, want afb", rec)
	}
	if rec := ix.ScriptBySubtag("Latn"); rec == nil || rec.Description() != "Latin" {
		t.Errorf("ScriptBySubtag(Latn) = %+v, want Latin", rec)
	}
	if rec := ix.RegionByDescription("Canada"); rec == nil || rec.Subtag != "CA" {
		t.Errorf("RegionByDescription(Canada) = %+v, want CA", rec)
	}
	if rec := ix.VariantBySubtag("nedis"); rec == nil {
		t.Error("VariantBySubtag(nedis) = nil")
	}
	if rec := ix.GrandfatheredByTag("i-klingon"); rec == nil || rec.PreferredValue != "tlh" {
		t.Errorf("GrandfatheredByTag(i-klingon) = %+v, want preferred tlh", rec)
	}
	if rec := ix.RedundantByTag("zh-Hans"); rec == nil {
		t.Error("RedundantByTag(zh-Hans) = nil")
	}
	if rec := ix.LanguageByDescription("Klingon"); rec != nil {
		t.Errorf("LanguageByDescription(Klingon) = %+v, want nil (wrong kind)", rec)
	}
}

// TestIndex_MultiDescription: a record with several descriptions is
// reachable under each, and both keys resolve to the same record.
func TestIndex_MultiDescription(t *testing.T) {
	ix := testIndex()

	natisone := ix.VariantByDescription("Natisone dialect")
	nadiza := ix.VariantByDescription("Nadiza dialect")
	if natisone == nil || nadiza == nil {
		t.Fatal("variant not reachable under both descriptions")
	}
	if natisone != nadiza {
		t.Error("descriptions resolve to different records, want shared handle")
	}
}

// TestIndex_GrandfatheredDuplicates: grandfathered descriptions are not
// unique; the dataset and the grandfathered description table keep every
// record, in parse order.
func TestIndex_GrandfatheredDuplicates(t *testing.T) {
	ix := testIndex()

	records := ix.GrandfatheredByDescription("Hakka")
	if len(records) != 2 {
		t.Fatalf("GrandfatheredByDescription(Hakka) returned %d records, want 2", len(records))
	}
	if records[0].Tag != "zh-hakka" || records[1].Tag != "i-hak" {
		t.Errorf("order = %q, %q; want zh-hakka, i-hak", records[0].Tag, records[1].Tag)
	}
	if got := ix.FromDescription("Hakka"); len(got) != 2 {
		t.Errorf("FromDescription(Hakka) returned %d records, want 2", len(got))
	}
}

// TestIndex_RebuildIdempotent: rebuilding from the same record sequence
// yields identical lookup results (the rebuild is total, never additive).
func TestIndex_RebuildIdempotent(t *testing.T) {
	records := testRecords()
	ix := NewIndex(records)

	before := ix.LanguageSubtags()
	ix.Rebuild(records)
	ix.Rebuild(records)
	after := ix.LanguageSubtags()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("LanguageSubtags changed across rebuilds: %v -> %v", before, after)
	}
	if got := ix.LanguageBySubtag("fr"); got == nil || got.Description() != "French" {
		t.Errorf("LanguageBySubtag(fr) after rebuilds = %+v", got)
	}
	if got := len(ix.UniqueRecords()); got != len(records) {
		t.Errorf("UniqueRecords() = %d records, want %d", got, len(records))
	}
}

// TestIndex_UniqueRecords: de-duplication is by identity, not content, and
// first-seen order is preserved.
func TestIndex_UniqueRecords(t *testing.T) {
	az := &Record{Kind: Language, Subtag: "az", Descriptions: []string{"Azerbaijani"}}
	azClone := &Record{Kind: Language, Subtag: "az", Descriptions: []string{"Azerbaijani"}}
	fr := &Record{Kind: Language, Subtag: "fr", Descriptions: []string{"French"}}

	ix := NewIndex([]*Record{az, fr, az, azClone})
	unique := ix.UniqueRecords()
	if len(unique) != 3 {
		t.Fatalf("UniqueRecords() = %d records, want 3 (identity de-dup keeps the clone)", len(unique))
	}
	if unique[0] != az || unique[1] != fr || unique[2] != azClone {
		t.Error("UniqueRecords() lost first-seen order")
	}
}

// TestIndex_Enumerations: listing getters return sorted values.
func TestIndex_Enumerations(t *testing.T) {
	ix := testIndex()

	if got, want := ix.LanguageSubtags(), []string{"ar", "az", "fr", "sl"}; !reflect.DeepEqual(got, want) {
		t.Errorf("LanguageSubtags() = %v, want %v", got, want)
	}
	if got, want := ix.RegionDescriptions(), []string{"Azerbaijan", "Canada", "Italy"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RegionDescriptions() = %v, want %v", got, want)
	}
	if got, want := ix.GrandfatheredTags(), []string{"i-hak", "i-klingon", "zh-hakka"}; !reflect.DeepEqual(got, want) {
		t.Errorf("GrandfatheredTags() = %v, want %v", got, want)
	}
	if got := ix.Descriptions(); len(got) == 0 {
		t.Error("Descriptions() is empty")
	}
}

// TestIndex_IsRedundant_UsesRedundantTable pins the corrected redundant
// check: membership is tested against the redundant-tag table, not the
// variant table.
func TestIndex_IsRedundant_UsesRedundantTable(t *testing.T) {
	ix := testIndex()

	if !ix.IsRedundant("zh-Hans") {
		t.Error("IsRedundant(zh-Hans) = false, want true")
	}
	// A registered variant subtag is not a redundant tag.
	if ix.IsRedundant("nedis") {
		t.Error("IsRedundant(nedis) = true, want false")
	}
	if !ix.IsVariant("nedis") {
		t.Error("IsVariant(nedis) = false, want true")
	}
}

func TestIndex_TypeOf(t *testing.T) {
	ix := testIndex()

	tests := []struct {
		value string
		want  Kind
	}{
		{"fr", Language},
		{"afb", ExtLang},
		{"nedis", Variant},
		{"CA", Region},
		{"Latn", Script},
		{"i-klingon", Grandfathered},
		{"zh-Hans", Redundant},
		{"zzzz", Unknown},
	}
	for _, tt := range tests {
		if got := ix.TypeOf(tt.value); got != tt.want {
			t.Errorf("TypeOf(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

// TestIndex_PrefixLookups covers the reverse prefix queries: which extlangs
// and variants may legally follow a given subtag.
func TestIndex_PrefixLookups(t *testing.T) {
	ix := testIndex()

	if got, want := ix.ExtlangsWithPrefix("ar"), []string{"Gulf Arabic"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ExtlangsWithPrefix(ar) = %v, want %v", got, want)
	}
	if got := ix.ExtlangsWithPrefix("fr"); got != nil {
		t.Errorf("ExtlangsWithPrefix(fr) = %v, want none", got)
	}
	if got, want := ix.VariantsWithPrefix("sl"), []string{"Natisone dialect"}; !reflect.DeepEqual(got, want) {
		t.Errorf("VariantsWithPrefix(sl) = %v, want %v", got, want)
	}
}

// TestIndex_EmptyIsUsable: a freshly built empty index answers every query
// without records.
func TestIndex_EmptyIsUsable(t *testing.T) {
	ix := NewIndex(nil)

	if ix.LanguageByDescription("French") != nil {
		t.Error("empty index resolved a description")
	}
	if ix.IsPrimaryLanguage("fr") {
		t.Error("empty index claims fr is registered")
	}
	if got := ix.UniqueRecords(); len(got) != 0 {
		t.Errorf("UniqueRecords() on empty index = %v", got)
	}
	if got := ix.Classify("qaa"); len(got) != 1 || got[0].Kind != SegPrivateLanguage {
		t.Errorf("Classify(qaa) on empty index = %+v, want private language", got)
	}
}
