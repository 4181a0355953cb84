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

// The composer operations build canonical tag strings from description-text
// lookups against the Index. They are pure reads: nothing is mutated, and a
// lookup that does not resolve yields an empty string rather than an error.
// Free-text input is expected to miss; the caller decides what to do with
// the empty result.

// LanguageTag returns the tag for a language named by description, extended
// with a region when regionDesc is non-empty.
//
// LanguageTag("French", "") returns "fr"; LanguageTag("French", "Canada")
// returns "fr-CA".
func (ix *Index) LanguageTag(languageDesc, regionDesc string) string {
	lang := ix.langByDesc[languageDesc]
	if lang == nil {
		return ""
	}
	if regionDesc == "" {
		return lang.Subtag
	}
	region := ix.regionByDesc[regionDesc]
	if region == nil {
		return ""
	}
	return lang.Subtag + "-" + region.Subtag
}

// ExtLangTag returns the tag for an extended language named by description,
// built from the record's first prefix and its preferred value. Gulf Arabic,
// for example, yields "ar-afb".
//
// Valid registry data gives every extlang record exactly one prefix; a
// record without one cannot be composed and yields "".
func (ix *Index) ExtLangTag(extlangDesc string) string {
	rec := ix.extlangByDesc[extlangDesc]
	if rec == nil || len(rec.Prefixes) == 0 {
		return ""
	}
	return rec.Prefixes[0] + "-" + rec.PreferredValue
}

// ScriptTag returns the tag for a language written in a particular script,
// both named by description. The script subtag is placed before the
// language's own subtag, after the language's first prefix, following the
// registry's canonical ordering. Either lookup failing, or the language
// record carrying no prefix, yields "".
func (ix *Index) ScriptTag(languageDesc, scriptDesc string) string {
	lang := ix.langByDesc[languageDesc]
	script := ix.scriptByDesc[scriptDesc]
	if lang == nil || script == nil || len(lang.Prefixes) == 0 {
		return ""
	}
	return lang.Prefixes[0] + "-" + script.Subtag + "-" + lang.Subtag
}

// VariantTag returns the tag for a variant named by description, optionally
// narrowed to a region. The Nadiza dialect of Slovenian yields "sl-nedis",
// or "sl-IT-nedis" when the Italy region is supplied.
func (ix *Index) VariantTag(variantDesc, regionDesc string) string {
	variant := ix.variantByDesc[variantDesc]
	if variant == nil || len(variant.Prefixes) == 0 {
		return ""
	}
	if regionDesc == "" {
		return variant.Prefixes[0] + "-" + variant.Subtag
	}
	region := ix.regionByDesc[regionDesc]
	if region == nil {
		return ""
	}
	return variant.Prefixes[0] + "-" + region.Subtag + "-" + variant.Subtag
}
