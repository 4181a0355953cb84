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

//nolint:testpackage // White-box tests for the snapshot store.
package subtag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLStore_RoundTrip(t *testing.T) {
	records := []*Record{
		{
			Kind:            Language,
			Subtag:          "ar",
			Descriptions:    []string{"Arabic"},
			Added:           date("2005-10-16"),
			SuppressScript:  "Arab",
			IsMacrolanguage: true,
		},
		{
			Kind:           Language,
			Subtag:         "aav",
			Descriptions:   []string{"Austro-Asiatic languages"},
			Added:          date("2009-07-29"),
			IsCollection:   true,
		},
		{
			Kind:           ExtLang,
			Subtag:         "afb",
			Descriptions:   []string{"Gulf Arabic"},
			Added:          date("2009-07-29"),
			PreferredValue: "afb",
			Prefixes:       []string{"ar"},
			Macrolanguage:  "ar",
		},
		{
			Kind:         Variant,
			Subtag:       "nedis",
			Descriptions: []string{"Natisone dialect", "Nadiza dialect"},
			Added:        date("2003-10-09"),
			Prefixes:     []string{"sl"},
			Comments:     "Slovenian dialect of the\nNatisone river valley",
		},
		{
			Kind:           Grandfathered,
			Tag:            "i-klingon",
			Descriptions:   []string{"Klingon"},
			Added:          date("1999-05-26"),
			PreferredValue: "tlh",
			IsDeprecated:   true,
		},
		// A record that never had an added date keeps its zero time.
		{Kind: Script, Subtag: "Latn", Descriptions: []string{"Latin"}},
	}
	fileDate := date("2026-08-14")

	store := &YAMLStore{Path: filepath.Join(t.TempDir(), "languages.yaml")}
	require.NoError(t, store.Save(records, fileDate))

	loaded, loadedDate, err := store.Load()
	require.NoError(t, err)
	assert.True(t, loadedDate.Equal(fileDate), "file date survives the round trip")
	require.Len(t, loaded, len(records))
	for i, want := range records {
		got := loaded[i]
		assert.Equal(t, want.Kind, got.Kind, "record %d kind", i)
		assert.Equal(t, want.Subtag, got.Subtag, "record %d subtag", i)
		assert.Equal(t, want.Tag, got.Tag, "record %d tag", i)
		assert.Equal(t, want.Descriptions, got.Descriptions, "record %d descriptions", i)
		assert.True(t, want.Added.Equal(got.Added), "record %d added date", i)
		assert.Equal(t, want.SuppressScript, got.SuppressScript, "record %d suppress-script", i)
		assert.Equal(t, want.Macrolanguage, got.Macrolanguage, "record %d macrolanguage", i)
		assert.Equal(t, want.PreferredValue, got.PreferredValue, "record %d preferred-value", i)
		assert.Equal(t, want.Prefixes, got.Prefixes, "record %d prefixes", i)
		assert.Equal(t, want.Comments, got.Comments, "record %d comments", i)
		assert.Equal(t, want.IsMacrolanguage, got.IsMacrolanguage, "record %d macrolanguage scope", i)
		assert.Equal(t, want.IsCollection, got.IsCollection, "record %d collection scope", i)
		assert.Equal(t, want.IsDeprecated, got.IsDeprecated, "record %d deprecated", i)
	}
}

// TestYAMLStore_ParsedRegistryRoundTrip parses a registry excerpt, saves the
// index's unique record set, and reloads it: the rebuilt index answers the
// same lookups.
func TestYAMLStore_ParsedRegistryRoundTrip(t *testing.T) {
	const registry = `File-Date: 2026-08-14
%%
Type: language
Subtag: fr
Description: French
Added: 2005-10-16
Suppress-Script: Latn
%%
Type: variant
Subtag: nedis
Description: Natisone dialect
Description: Nadiza dialect
Added: 2003-10-09
Prefix: sl
%%
Type: redundant
Tag: zh-Hans
Description: simplified Chinese
Added: 2003-05-30
`
	result, err := ParseRegistry(strings.NewReader(registry))
	require.NoError(t, err)
	require.True(t, result.NoErrors())

	original := NewIndex(result.Records)
	store := &YAMLStore{Path: filepath.Join(t.TempDir(), "languages.yaml")}
	require.NoError(t, store.Save(original.UniqueRecords(), result.FileDate))

	records, fileDate, err := store.Load()
	require.NoError(t, err)
	assert.True(t, fileDate.Equal(result.FileDate))

	reloaded := NewIndex(records)
	require.NotNil(t, reloaded.LanguageByDescription("French"))
	assert.Equal(t, "Latn", reloaded.LanguageByDescription("French").SuppressScript)
	assert.Same(t, reloaded.VariantByDescription("Natisone dialect"),
		reloaded.VariantByDescription("Nadiza dialect"),
		"multi-description record reloads as one shared handle")
	assert.True(t, reloaded.IsRedundant("zh-Hans"))
}

// TestYAMLStore_DualScopeRoundTrip: the scope flags are not mutually
// exclusive; two scope lines set both, and the snapshot must keep both.
func TestYAMLStore_DualScopeRoundTrip(t *testing.T) {
	const registry = `file-date: 2026-08-14
%%
type: language
subtag: zh
description: Chinese
scope: macrolanguage
scope: collection
%%
`
	result, err := ParseRegistry(strings.NewReader(registry))
	require.NoError(t, err)
	require.True(t, result.NoErrors())
	require.True(t, result.Records[0].IsMacrolanguage)
	require.True(t, result.Records[0].IsCollection)

	store := &YAMLStore{Path: filepath.Join(t.TempDir(), "languages.yaml")}
	require.NoError(t, store.Save(result.Records, result.FileDate))

	loaded, _, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].IsMacrolanguage, "macrolanguage scope lost in round trip")
	assert.True(t, loaded[0].IsCollection, "collection scope lost in round trip")
}

func TestYAMLStore_SaveWritesHeader(t *testing.T) {
	store := &YAMLStore{Path: filepath.Join(t.TempDir(), "languages.yaml")}
	require.NoError(t, store.Save(nil, time.Time{}))

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Generated from the IANA Language Subtag Registry"))
}

func TestYAMLStore_LoadMissingFile(t *testing.T) {
	store := &YAMLStore{Path: filepath.Join(t.TempDir(), "nope.yaml")}

	_, _, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLStore_LoadRejectsBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file-date: not-a-date\nlanguages: []\n"), 0o644))

	store := &YAMLStore{Path: path}
	_, _, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file-date")
}
