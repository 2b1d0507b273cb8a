package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hooks":             "hooks",
		"State Management":  "state-management",
		"  Event   Loop  ":  "event-loop",
		"REST API":          "rest-api",
		"already-slugified": "already-slugified",
		"":                  "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"Easy", "Medium", "Hard"} {
		d, ok := ParseDifficulty(valid)
		if !ok || string(d) != valid {
			t.Errorf("expected %q to parse, got %q ok=%v", valid, d, ok)
		}
	}
	for _, invalid := range []string{"easy", "HARD", "Extreme", ""} {
		if _, ok := ParseDifficulty(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}
