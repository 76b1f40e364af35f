package main

import (
	"strings"
	"testing"
)

func TestParseLog(t *testing.T) {
	input := `# weigh-ins exported from the scale app
2026-03-02 80.4 2350

2026-03-01 80.6 2200
2026-03-02 80.3 2400
`
	entries, err := parseLog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseLog: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Date != "2026-03-01" || entries[1].Date != "2026-03-02" {
		t.Errorf("dates = %s, %s; want ascending", entries[0].Date, entries[1].Date)
	}
	// The later line for 03-02 wins.
	if entries[1].WeightKG != 80.3 || entries[1].Calories != 2400 {
		t.Errorf("entry for 2026-03-02 = %+v, want 80.3 kg / 2400 kcal", entries[1])
	}
}

func TestParseLog_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing field", "2026-03-01 80.4"},
		{"bad date", "03/01/2026 80.4 2000"},
		{"bad weight", "2026-03-01 heavy 2000"},
		{"zero weight", "2026-03-01 0 2000"},
		{"negative calories", "2026-03-01 80 -5"},
		{"fractional calories", "2026-03-01 80 2000.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLog(strings.NewReader("2026-02-28 80 2000\n" + tc.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "line 2:") {
				t.Errorf("error %q should name line 2", err)
			}
		})
	}
}

func TestParseLog_OnlyComments(t *testing.T) {
	entries, err := parseLog(strings.NewReader("# nothing yet\n\n"))
	if err != nil {
		t.Fatalf("parseLog: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
