package content

import (
	"testing"

	"gorm.io/datatypes"
)

func TestNewProjectViewEmptyDefaults(t *testing.T) {
	view := NewProjectView(&Project{Title: "Devfolio", Emoji: "🚀"})

	if view.Tags == nil || view.TechStack == nil || view.Images == nil {
		t.Error("array fields must serialize as empty arrays, not null")
	}
	if view.Features == nil || view.Testimonials == nil {
		t.Error("features and testimonials must serialize as empty arrays, not null")
	}
	if len(view.Tags)+len(view.TechStack)+len(view.Images)+len(view.Features)+len(view.Testimonials) != 0 {
		t.Error("zero-value project must shape to all-empty collections")
	}
}

func TestNewProjectViewCarriesValues(t *testing.T) {
	demo := "https://demo.example.com"
	p := &Project{
		Title:     "Shipper",
		Emoji:     "📦",
		Status:    StatusLive,
		Featured:  true,
		DemoURL:   &demo,
		Tags:      datatypes.NewJSONSlice([]string{"saas"}),
		TechStack: datatypes.NewJSONSlice([]string{"go", "postgres"}),
		Features: datatypes.NewJSONSlice([]ProjectFeature{
			{Title: "Fast", Description: "under 100ms"},
		}),
	}
	view := NewProjectView(p)

	if view.Status != StatusLive || !view.Featured {
		t.Errorf("status/featured not carried: %+v", view)
	}
	if view.DemoURL == nil || *view.DemoURL != demo {
		t.Error("demoUrl not carried")
	}
	if len(view.TechStack) != 2 || view.TechStack[1] != "postgres" {
		t.Errorf("techStack = %v", view.TechStack)
	}
	if len(view.Features) != 1 || view.Features[0].Title != "Fast" {
		t.Errorf("features = %v", view.Features)
	}
}

func TestProjectStatuses(t *testing.T) {
	want := []string{"concept", "in-dev", "mvp", "live", "failed"}
	if len(ProjectStatuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", ProjectStatuses, want)
	}
	for i, s := range want {
		if ProjectStatuses[i] != s {
			t.Errorf("statuses[%d] = %q, want %q", i, ProjectStatuses[i], s)
		}
	}
}

func TestWithProjectFullDescriptionSanitizes(t *testing.T) {
	p := &Project{}
	WithProjectFullDescription(`<b>ok</b><img src=x onerror=alert(1)>`)(p)
	if p.FullDescription != `<b>ok</b><img src="x">` {
		t.Errorf("fullDescription = %q, want event handler stripped", p.FullDescription)
	}
}
