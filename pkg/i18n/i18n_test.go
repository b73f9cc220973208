package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("fr-FR,fr;q=0.9") != "fr" {
		t.Fatalf("expected fr")
	}
	if DetectLanguage("FR-ca") != "fr" {
		t.Fatalf("expected fr for FR-ca")
	}
	if DetectLanguage("ar") != "ar" {
		t.Fatalf("expected ar")
	}
	if DetectLanguage("en-US,en;q=0.9") != "ar" {
		t.Fatalf("expected ar fallback for en")
	}
	if DetectLanguage("") != "ar" {
		t.Fatalf("expected default ar")
	}
}

func TestTranslations(t *testing.T) {
	if T("fr", "empty_cart") != "Le panier est vide" {
		t.Fatalf("unexpected fr empty_cart")
	}
	if T("ar", "empty_cart") != "السلة فارغة" {
		t.Fatalf("unexpected ar empty_cart")
	}
	// unknown code -> fallback to code
	if T("fr", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to ar translation if exists
	if T("es", "empty_cart") != "السلة فارغة" {
		t.Fatalf("expected ar fallback for es lang")
	}
}
