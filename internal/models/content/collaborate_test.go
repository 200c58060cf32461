package content

import (
	"testing"

	"github.com/sashreekm/devfolio/pkg/utils"
)

func TestInquiryEnums(t *testing.T) {
	for _, typ := range []string{"developer", "investor"} {
		if !utils.Contains(InquiryTypes, typ) {
			t.Errorf("missing inquiry type %q", typ)
		}
	}
	if utils.Contains(InquiryTypes, "vendor") {
		t.Error("vendor is not a valid inquiry type")
	}

	for _, status := range []string{"new", "reviewed", "contacted", "archived"} {
		if !utils.Contains(InquiryStatuses, status) {
			t.Errorf("missing inquiry status %q", status)
		}
	}
}

func TestColorThemes(t *testing.T) {
	want := []string{"neon-cyan", "neon-violet", "neon-lime"}
	if len(ColorThemes) != len(want) {
		t.Fatalf("themes = %v, want %v", ColorThemes, want)
	}
	for i, theme := range want {
		if ColorThemes[i] != theme {
			t.Errorf("themes[%d] = %q, want %q", i, ColorThemes[i], theme)
		}
	}
}

func TestTestimonialOptionsPointerFields(t *testing.T) {
	company := "Acme"
	tm := &CollaborateTestimonial{}
	WithTestimonialQuote("  great work  ")(tm)
	WithTestimonialAuthorCompany(&company)(tm)
	WithTestimonialAuthorTitle(nil)(tm)

	if tm.Quote != "great work" {
		t.Errorf("quote = %q, want trimmed", tm.Quote)
	}
	if tm.AuthorCompany == nil || *tm.AuthorCompany != "Acme" {
		t.Error("author company not set")
	}
	if tm.AuthorTitle != nil {
		t.Error("nil title must clear the field")
	}
}
