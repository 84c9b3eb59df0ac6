package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed locales/*.json
var bundleFS embed.FS

// ValueKind discriminates the shape of a translation value. The original
// translation layer returned strings, lists, or keyed records from the same
// lookup; here the shape is explicit so callers type-check once.
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindString
	KindList
	KindEntries
)

// Entry is one structured translation record, e.g. an "about highlights"
// callout. Entries preserve bundle order.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Value is the tagged union returned by Translator.Lookup.
type Value struct {
	Kind    ValueKind
	Str     string
	List    []string
	Entries []Entry
}

// Translator resolves dotted keys against one locale bundle. Lookups never
// fail: a missing key yields the key itself as the string value, so the
// view-model builder can never produce an empty label.
type Translator struct {
	locale Locale
	values map[string]Value
}

// MakeTranslator loads the embedded bundle for the given locale.
func MakeTranslator(locale Locale) (*Translator, error) {
	raw, err := bundleFS.ReadFile(fmt.Sprintf("locales/%s.json", locale))
	if err != nil {
		return nil, fmt.Errorf("read locale bundle %q: %w", locale, err)
	}

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parse locale bundle %q: %w", locale, err)
	}

	translator := &Translator{
		locale: locale,
		values: map[string]Value{},
	}

	translator.flatten("", tree)

	return translator, nil
}

func (t *Translator) Locale() Locale {
	return t.locale
}

// Lookup returns the tagged value stored under the dotted key. Unknown keys
// yield KindMissing with the key itself as the string payload.
func (t *Translator) Lookup(key string) Value {
	if v, ok := t.values[key]; ok {
		return v
	}

	return Value{Kind: KindMissing, Str: key}
}

// T returns the string translation for key, or the key itself when absent
// or structured.
func (t *Translator) T(key string) string {
	v := t.Lookup(key)
	if v.Kind == KindString {
		return v.Str
	}

	return key
}

// TOr returns the translation for key, or fallback when the key is missing
// or empty.
func (t *Translator) TOr(key string, fallback string) string {
	if v := t.Lookup(key); v.Kind == KindString && v.Str != "" {
		return v.Str
	}

	return fallback
}

// TList returns the list stored under key, or an empty list when the value
// has a different shape.
func (t *Translator) TList(key string) []string {
	if v := t.Lookup(key); v.Kind == KindList {
		return v.List
	}

	return nil
}

// TEntries returns the structured entries stored under key in bundle order,
// or an empty list when the value has a different shape.
func (t *Translator) TEntries(key string) []Entry {
	if v := t.Lookup(key); v.Kind == KindEntries {
		return v.Entries
	}

	return nil
}

func (t *Translator) flatten(prefix string, node map[string]any) {
	for key, raw := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch typed := raw.(type) {
		case string:
			t.values[path] = Value{Kind: KindString, Str: typed}
		case []any:
			t.storeSlice(path, typed)
		case map[string]any:
			t.flatten(path, typed)
		}
	}
}

func (t *Translator) storeSlice(path string, items []any) {
	if entries, ok := decodeEntries(items); ok {
		t.values[path] = Value{Kind: KindEntries, Entries: entries}

		return
	}

	list := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}

	t.values[path] = Value{Kind: KindList, List: list}
}

func decodeEntries(items []any) ([]Entry, bool) {
	if len(items) == 0 {
		return nil, false
	}

	entries := make([]Entry, 0, len(items))

	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}

		id, _ := record["id"].(string)
		label, _ := record["label"].(string)
		value, _ := record["value"].(string)

		if id == "" && label == "" {
			return nil, false
		}

		entries = append(entries, Entry{ID: id, Label: label, Value: value})
	}

	return entries, true
}
