package content

import (
	"reflect"
	"testing"
)

func TestGroupSkillsByCategory(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Category: "Backend", Icon: "🛠"},
		{Name: "React", Category: "Frontend", Icon: "🎨"},
		{Name: "Postgres", Category: "Backend", Icon: "🐘"},
		{Name: "CSS", Category: "Frontend"},
	}

	groups := GroupSkillsByCategory(skills)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != "Backend" || groups[1].Category != "Frontend" {
		t.Fatalf("category order = %s, %s; want first-seen order", groups[0].Category, groups[1].Category)
	}
	// The bucket keeps its first skill's icon.
	if groups[0].Icon != "🛠" {
		t.Errorf("backend icon = %q, want first-seen 🛠", groups[0].Icon)
	}
	if len(groups[0].Skills) != 2 || groups[0].Skills[1].Name != "Postgres" {
		t.Errorf("backend skills out of order: %+v", groups[0].Skills)
	}
}

func TestGroupSkillsByCategoryEmpty(t *testing.T) {
	groups := GroupSkillsByCategory(nil)
	if groups == nil || len(groups) != 0 {
		t.Errorf("empty input must yield an empty (non-nil) slice, got %v", groups)
	}
}

func TestDistinctCategories(t *testing.T) {
	skills := []Skill{
		{Category: "Backend"},
		{Category: "Frontend"},
		{Category: "Backend"},
		{Category: "Infra"},
	}
	got := DistinctCategories(skills)
	want := []string{"Backend", "Frontend", "Infra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %v, want %v", got, want)
	}
}
