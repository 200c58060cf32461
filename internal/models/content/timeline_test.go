package content

import (
	"testing"
	"time"
)

func TestDeriveMonthYear(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		month string
		year  string
	}{
		{"march", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), "March", "2024"},
		{"january first", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), "January", "2020"},
		{"december end", time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC), "December", "1999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := TimelineItem{Date: tt.date, Month: "stale", Year: "0000"}
			item.DeriveMonthYear()
			if item.Month != tt.month || item.Year != tt.year {
				t.Errorf("got %s %s, want %s %s", item.Month, item.Year, tt.month, tt.year)
			}
		})
	}
}

func TestWithTimelineDateRederives(t *testing.T) {
	item := &TimelineItem{}
	WithTimelineDate(time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC))(item)
	item.DeriveMonthYear()
	if item.Month != "July" || item.Year != "2023" {
		t.Errorf("got %s %s, want July 2023", item.Month, item.Year)
	}
}

func TestTimelineTypes(t *testing.T) {
	want := []string{"education", "project", "work", "achievement"}
	for _, typ := range want {
		found := false
		for _, have := range TimelineTypes {
			if have == typ {
				found = true
			}
		}
		if !found {
			t.Errorf("missing timeline type %q", typ)
		}
	}
}
