package roadmap

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type stubGenerator struct {
	days  []DailyTask
	err   error
	calls int
}

func (g *stubGenerator) WeekPlan(_ context.Context, skill, _ string) ([]DailyTask, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.days, nil
}

func sevenDays(skill string) []DailyTask {
	days := make([]DailyTask, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, DailyTask{Day: i, Task: fmt.Sprintf("%s day %d", skill, i), Description: "d"})
	}
	return days
}

func targets(n int) []SkillTarget {
	out := make([]SkillTarget, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SkillTarget{Skill: fmt.Sprintf("skill-%d", i), Importance: 9 - i})
	}
	return out
}

func TestSynthesize_SelectsTopFour(t *testing.T) {
	gen := &stubGenerator{days: sevenDays("x")}
	s := NewSynthesizer(gen, nil)

	sum := s.Synthesize(context.Background(), targets(6), "Backend Developer")

	if len(sum.Roadmap) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(sum.Roadmap))
	}
	if sum.TotalSkills != 4 {
		t.Fatalf("expected total skills 4, got %d", sum.TotalSkills)
	}
	if gen.calls != 4 {
		t.Fatalf("expected 4 generator calls, got %d", gen.calls)
	}
	for i, wk := range sum.Roadmap {
		if wk.Week != i+1 {
			t.Fatalf("week %d has index %d", i+1, wk.Week)
		}
		if wk.FocusSkill != fmt.Sprintf("skill-%d", i) {
			t.Fatalf("week %d focuses %s", i+1, wk.FocusSkill)
		}
	}
}

func TestSynthesize_FewerTargetsThanMax(t *testing.T) {
	s := NewSynthesizer(&stubGenerator{days: sevenDays("x")}, nil)

	sum := s.Synthesize(context.Background(), targets(2), "Backend Developer")
	if len(sum.Roadmap) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(sum.Roadmap))
	}
	if sum.TotalSkills != 2 {
		t.Fatalf("expected total skills 2, got %d", sum.TotalSkills)
	}
}

func TestSynthesize_GeneratorErrorFallsBack(t *testing.T) {
	s := NewSynthesizer(&stubGenerator{err: errors.New("connection refused")}, nil)

	sum := s.Synthesize(context.Background(), []SkillTarget{{Skill: "docker", Importance: 5}}, "Backend Developer")

	if len(sum.Roadmap) != 1 {
		t.Fatalf("expected 1 week, got %d", len(sum.Roadmap))
	}
	days := sum.Roadmap[0].Days
	if len(days) != 7 {
		t.Fatalf("expected 7 fallback days, got %d", len(days))
	}
	if days[0].Task != "docker Fundamentals" {
		t.Fatalf("expected fallback day-1 title, got %q", days[0].Task)
	}
}

func TestSynthesize_ShortPlanFallsBack(t *testing.T) {
	short := sevenDays("docker")[:5]
	s := NewSynthesizer(&stubGenerator{days: short}, nil)

	sum := s.Synthesize(context.Background(), []SkillTarget{{Skill: "docker", Importance: 5}}, "Backend Developer")
	days := sum.Roadmap[0].Days
	if len(days) != 7 {
		t.Fatalf("expected fallback with 7 days, got %d", len(days))
	}
	if days[0].Task != "docker Fundamentals" {
		t.Fatalf("expected fallback day-1 title, got %q", days[0].Task)
	}
}

func TestSynthesize_NilGenerator(t *testing.T) {
	s := NewSynthesizer(nil, nil)

	sum := s.Synthesize(context.Background(), []SkillTarget{{Skill: "sql", Importance: 8}}, "Data Analyst")
	if len(sum.Roadmap) != 1 || len(sum.Roadmap[0].Days) != 7 {
		t.Fatalf("expected one fallback week")
	}
}

func TestSynthesize_FixedTrailer(t *testing.T) {
	s := NewSynthesizer(nil, nil)
	sum := s.Synthesize(context.Background(), targets(4), "Backend Developer")

	if sum.Capstone.Day != 29 {
		t.Fatalf("expected capstone on day 29, got %d", sum.Capstone.Day)
	}
	if sum.Review.Day != 30 {
		t.Fatalf("expected review on day 30, got %d", sum.Review.Day)
	}
	if sum.TotalDays != 30 {
		t.Fatalf("expected 30 total days, got %d", sum.TotalDays)
	}
}

func TestSynthesize_PreservesInputOrder(t *testing.T) {
	in := []SkillTarget{
		{Skill: "kubernetes", Importance: 5},
		{Skill: "docker", Importance: 5},
		{Skill: "aws", Importance: 5},
	}
	s := NewSynthesizer(nil, nil)
	sum := s.Synthesize(context.Background(), in, "Backend Developer")

	for i, wk := range sum.Roadmap {
		if wk.FocusSkill != in[i].Skill {
			t.Fatalf("week %d: expected %s, got %s", i+1, in[i].Skill, wk.FocusSkill)
		}
	}
}
