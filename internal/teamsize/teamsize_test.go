package teamsize

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		text     string
		min, max int
	}{
		{"Individual", 1, 1},
		{"individual event", 1, 1},
		{"2-4 members", 2, 4},
		{"2 - 4", 2, 4},
		{"Team of 3-5", 3, 5},
		{"up to 5 members", 1, 5},
		{"Up To 10", 1, 10},
		{"3 members", 3, 3},
		{"4", 4, 4},
		{"", 1, 1},
		{"bring your squad", 1, 1},
		// "individual" wins even if the text also carries a number
		{"Individual (1 per college)", 1, 1},
		// range wins over "up to"
		{"up to 2-4 members", 2, 4},
	}

	for _, tc := range cases {
		got := Parse(tc.text)
		if got.Min != tc.min || got.Max != tc.max {
			t.Errorf("Parse(%q) = {%d,%d}, want {%d,%d}", tc.text, got.Min, got.Max, tc.min, tc.max)
		}
	}
}

func TestIsTeamEvent(t *testing.T) {
	if Parse("Individual").IsTeamEvent() {
		t.Error("individual policy should not be a team event")
	}
	if !Parse("2-4 members").IsTeamEvent() {
		t.Error("2-4 members should be a team event")
	}
}

func TestAllows(t *testing.T) {
	b := Parse("2-4 members")
	for total, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := b.Allows(total); got != want {
			t.Errorf("Allows(%d) = %v, want %v", total, got, want)
		}
	}
}
