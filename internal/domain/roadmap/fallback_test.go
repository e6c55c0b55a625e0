package roadmap

import (
	"fmt"
	"testing"
)

func TestFallbackWeek_AlwaysSevenDays(t *testing.T) {
	for _, skill := range []string{"docker", "", "very long skill name with spaces", "日本語"} {
		days := FallbackWeek(skill)
		if len(days) != 7 {
			t.Fatalf("skill %q: expected 7 days, got %d", skill, len(days))
		}
		for i, d := range days {
			if d.Day != i+1 {
				t.Fatalf("skill %q: day %d has index %d", skill, i+1, d.Day)
			}
			if d.Task == "" || d.Description == "" {
				t.Fatalf("skill %q: day %d has empty content", skill, d.Day)
			}
		}
	}
}

func TestFallbackWeek_DayOneTitle(t *testing.T) {
	days := FallbackWeek("docker")
	want := "docker Fundamentals"
	if days[0].Task != want {
		t.Fatalf("expected day-1 task %q, got %q", want, days[0].Task)
	}
	if days[0].Description != fmt.Sprintf("Learn the fundamentals and basics of %s.", "docker") {
		t.Fatalf("unexpected day-1 description %q", days[0].Description)
	}
}

func TestFallbackWeek_Progression(t *testing.T) {
	days := FallbackWeek("sql")
	titles := []string{
		"sql Fundamentals",
		"sql Core Concepts & Architecture",
		"sql Hands-on Practice",
		"sql Mini Project",
		"sql Advanced Concepts",
		"sql Real-world Use Cases",
		"sql Self-assessment & Checkpoint",
	}
	for i, want := range titles {
		if days[i].Task != want {
			t.Fatalf("day %d: expected %q, got %q", i+1, want, days[i].Task)
		}
	}
}
