package models

import "testing"

func TestParseProgressStatus_UnknownFallback(t *testing.T) {
	if got := ParseProgressStatus("in_progress"); got != ProgressInProgress {
		t.Fatalf("ParseProgressStatus = %q, want %q", got, ProgressInProgress)
	}
	for _, raw := range []string{"", "finished", "IN_PROGRESS"} {
		if got := ParseProgressStatus(raw); got != ProgressUnknown {
			t.Errorf("ParseProgressStatus(%q) = %q, want %q", raw, got, ProgressUnknown)
		}
	}
}

func TestQuoteTotal(t *testing.T) {
	items := []QuoteItem{
		{Name: "Brake pads", Quantity: 2, PartCost: 40, LaborCost: 25},
		{Name: "Diagnostics", Quantity: 0, PartCost: 0, LaborCost: 60},
	}
	// a zero quantity counts as a single unit
	want := 2*(40.0+25.0) + 60.0
	if got := QuoteTotal(items); got != want {
		t.Fatalf("QuoteTotal = %v, want %v", got, want)
	}
}
