package i18n

import "testing"

func TestMakeTranslatorLoadsEmbeddedBundles(t *testing.T) {
	for _, locale := range SupportedLocales() {
		locale := locale
		t.Run(string(locale), func(t *testing.T) {
			tr, err := MakeTranslator(locale)
			if err != nil {
				t.Fatalf("make translator: %v", err)
			}

			if tr.Locale() != locale {
				t.Fatalf("locale mismatch: %q", tr.Locale())
			}

			if got := tr.T("experience.title"); got == "" || got == "experience.title" {
				t.Fatalf("expected a translation for experience.title, got %q", got)
			}
		})
	}
}

func TestLookupShapes(t *testing.T) {
	tr, err := MakeTranslator(LocaleEN)
	if err != nil {
		t.Fatalf("make translator: %v", err)
	}

	t.Run("string", func(t *testing.T) {
		v := tr.Lookup("hero.greeting")
		if v.Kind != KindString || v.Str != "Hi, I'm" {
			t.Fatalf("unexpected value: %+v", v)
		}
	})

	t.Run("list", func(t *testing.T) {
		values := tr.TList("skills.values")
		if len(values) == 0 {
			t.Fatalf("expected values list")
		}

		if values[0] != "Creativity" {
			t.Fatalf("expected bundle order preserved, got %q first", values[0])
		}
	})

	t.Run("entries", func(t *testing.T) {
		entries := tr.TEntries("about.highlights")
		if len(entries) != 3 {
			t.Fatalf("expected three highlights, got %d", len(entries))
		}

		if entries[0].ID != "experience" {
			t.Fatalf("expected bundle order preserved, got %q first", entries[0].ID)
		}

		if entries[0].Label == "" || entries[0].Value == "" {
			t.Fatalf("entry fields missing: %+v", entries[0])
		}
	})
}

func TestLookupDegradesSafely(t *testing.T) {
	tr, err := MakeTranslator(LocaleES)
	if err != nil {
		t.Fatalf("make translator: %v", err)
	}

	// Missing keys come back as the key itself, never empty.
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key: got %q", got)
	}

	// Structured lookups against the wrong shape are empty, not a panic.
	if got := tr.TList("hero.greeting"); got != nil {
		t.Fatalf("expected nil list for string value, got %v", got)
	}

	if got := tr.TEntries("skills.values"); got != nil {
		t.Fatalf("expected nil entries for plain list, got %v", got)
	}

	if got := tr.TOr("no.such.key", "fallback"); got != "fallback" {
		t.Fatalf("TOr fallback: got %q", got)
	}
}
