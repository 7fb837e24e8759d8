package textproc

import (
	"reflect"
	"strings"
	"testing"
)

var testVerbs = []string{
	"led", "managed", "developed", "created", "implemented",
	"increased", "improved", "built", "helped", "worked",
}

func TestExtractBulletsGlyphMarkers(t *testing.T) {
	text := "- Led a team of 5 engineers to deliver project X\n- helped with stuff"
	got := ExtractBullets(text, 6, testVerbs)
	want := []string{"Led a team of 5 engineers to deliver project X"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractBullets = %v, want %v", got, want)
	}
}

func TestExtractBulletsMarkerVariants(t *testing.T) {
	text := strings.Join([]string{
		"• Built a data pipeline processing 2M events daily",
		"1. Implemented the customer onboarding workflow end to end",
		"a) Coordinated releases across three product teams",
		"* short one",
	}, "\n")
	got := ExtractBullets(text, 10, testVerbs)
	if len(got) != 3 {
		t.Fatalf("expected 3 bullets, got %d: %v", len(got), got)
	}
	if got[0] != "Built a data pipeline processing 2M events daily" {
		t.Fatalf("unexpected first bullet: %q", got[0])
	}
}

func TestExtractBulletsShortRemainderDropped(t *testing.T) {
	got := ExtractBullets("- tiny\n- twenty chars exactly!", 5, testVerbs)
	for _, b := range got {
		if len(b) <= minBulletLen {
			t.Fatalf("bullet %q is %d chars, at or below floor %d", b, len(b), minBulletLen)
		}
	}
}

func TestExtractBulletsMaxCap(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "- a sufficiently long accomplishment line number "+strings.Repeat("x", i+1))
	}
	got := ExtractBullets(strings.Join(lines, "\n"), 3, testVerbs)
	if len(got) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(got))
	}
}

func TestExtractBulletsActionVerbFallback(t *testing.T) {
	text := strings.Join([]string{
		"John Smith",
		"Developed the billing subsystem used by all customers",
		"Managed a budget of $2M across four departments",
		"Led QA", // too short for the fallback floor
	}, "\n")
	got := ExtractBullets(text, 6, testVerbs)
	want := []string{
		"Developed the billing subsystem used by all customers",
		"Managed a budget of $2M across four departments",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractBullets = %v, want %v", got, want)
	}
	for _, b := range got {
		if len(b) <= minActionLineLen {
			t.Fatalf("fallback line %q is %d chars, at or below floor %d", b, len(b), minActionLineLen)
		}
	}
}

func TestExtractBulletsEmptyInput(t *testing.T) {
	if got := ExtractBullets("", 5, testVerbs); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
