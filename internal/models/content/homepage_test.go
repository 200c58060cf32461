package content

import "testing"

func TestFormatStatsString(t *testing.T) {
	tests := []struct {
		name             string
		total, mvp, live int64
		want             string
	}{
		{"empty portfolio", 0, 0, 0, "0 Projects • 0 MVPs • 0 Live Products"},
		{"mixed", 12, 4, 3, "12 Projects • 4 MVPs • 3 Live Products"},
		{"single everything", 1, 1, 1, "1 Projects • 1 MVPs • 1 Live Products"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStatsString(tt.total, tt.mvp, tt.live); got != tt.want {
				t.Errorf("FormatStatsString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFixedSingletonIDsDistinct(t *testing.T) {
	ids := map[string]bool{
		ProfileID.String():          true,
		HomepageContentID.String():  true,
		HomepageStatsID.String():    true,
		CalendarSettingsID.String(): true,
	}
	if len(ids) != 4 {
		t.Error("singleton ids must be distinct")
	}
}
