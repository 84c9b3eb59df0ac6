package i18n

import "testing"

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name string
		tag  string
		want Locale
	}{
		{"bare supported", "en", LocaleEN},
		{"regional variant", "es-MX", LocaleES},
		{"regional english", "en-GB", LocaleEN},
		{"unsupported language", "fr", DefaultLocale},
		{"unsupported variant", "fr-CA", DefaultLocale},
		{"empty", "", DefaultLocale},
		{"garbage", "???", DefaultLocale},
		{"uppercase", "EN", LocaleEN},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveLocale(tc.tag, DefaultLocale); got != tc.want {
				t.Fatalf("ResolveLocale(%q) = %q, want %q", tc.tag, got, tc.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("es") || !IsSupported("en") {
		t.Fatalf("expected es and en to be supported")
	}

	if IsSupported("fr") || IsSupported("") {
		t.Fatalf("unexpected locale reported as supported")
	}
}
