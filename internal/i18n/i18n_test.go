package i18n

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":      "fr",
		"fr":    "fr",
		"FR":    "fr",
		"fr-TN": "fr",
		"en":    "en",
		"en_US": "en",
		"ar":    "ar",
		"de":    "fr",
		"xx":    "fr",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoad_EmbeddedBundles(t *testing.T) {
	bundles, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, code := range []string{"en", "ar"} {
		b, ok := bundles[code]
		if !ok || b == nil {
			t.Fatalf("bundle %s missing", code)
		}
		if len(b.Categories) == 0 || len(b.UI) == 0 {
			t.Fatalf("bundle %s looks empty", code)
		}
	}
	// the base locale carries no bundle file
	if _, ok := bundles["fr"]; ok {
		t.Fatal("fr must not have a bundle")
	}
}

func TestBundle_NilSafety(t *testing.T) {
	var b *Bundle
	if _, ok := b.Product("dorade"); ok {
		t.Fatal("nil bundle must report no product translation")
	}
	if _, ok := b.Category("mollusques"); ok {
		t.Fatal("nil bundle must report no category translation")
	}
	if got := b.UIString("productsCount", "produits"); got != "produits" {
		t.Fatalf("nil bundle UIString: %q", got)
	}
}

func TestUIString_EmptyValueFallsBack(t *testing.T) {
	b := &Bundle{UI: map[string]string{"key": ""}}
	if got := b.UIString("key", "fallback"); got != "fallback" {
		t.Fatalf("empty UI value must fall back: %q", got)
	}
}

func TestLocales_Metadata(t *testing.T) {
	locales := Locales()
	if len(locales) != 3 {
		t.Fatalf("expected 3 locales, got %d", len(locales))
	}
	if locales[0].Code != DefaultLocale {
		t.Fatalf("default locale must come first: %v", locales[0])
	}
	for _, l := range locales {
		want := LTR
		if l.Code == "ar" {
			want = RTL
		}
		if l.Direction != want {
			t.Fatalf("locale %s direction = %s", l.Code, l.Direction)
		}
	}
}
