package v1

import (
	"testing"

	content "github.com/sashreekm/devfolio/internal/models/content"
)

func TestCollaboratePageBodyKeys(t *testing.T) {
	settings := &content.CollaborateCalendarSettings{CalendlyURL: "https://calendly.com/me/15min"}
	body := collaboratePageBody(
		[]content.CollaborateLookingFor{{Title: "Backend engineer"}},
		[]content.CollaborateTestimonial{{Quote: "solid", AuthorName: "Sam"}},
		settings,
	)

	for _, key := range []string{"lookingFor", "testimonials", "calendarSettings"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if _, ok := body["calendar"]; ok {
		t.Error("unexpected key \"calendar\"")
	}
	if got := body["calendarSettings"]; got != settings {
		t.Errorf("calendarSettings = %v, want the settings row", got)
	}
}

func TestCollaboratePageBodyWithoutCalendar(t *testing.T) {
	body := collaboratePageBody(nil, nil, nil)
	if body["calendarSettings"] != nil {
		t.Errorf("calendarSettings = %v, want null when never configured", body["calendarSettings"])
	}
}
