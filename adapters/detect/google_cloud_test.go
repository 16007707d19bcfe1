package detect

import (
	"testing"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
)

func TestBestDetection(t *testing.T) {
	candidates := []translate.Detection{
		{Language: language.MustParse("pt-PT"), Confidence: 0.4},
		{Language: language.MustParse("es-MX"), Confidence: 0.9},
		{Language: language.MustParse("gl"), Confidence: 0.1},
	}

	best, ok := bestDetection(candidates)
	if !ok {
		t.Fatal("expected a detection")
	}
	if best.Language.String() != "es-MX" {
		t.Errorf("expected es-MX, got %s", best.Language)
	}

	if _, ok := bestDetection(nil); ok {
		t.Error("expected no detection for empty candidates")
	}
}
