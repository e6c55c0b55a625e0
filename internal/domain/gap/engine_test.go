package gap

import (
	"testing"

	"career-os/internal/domain/market"
)

type staticCurator struct{}

func (staticCurator) Lookup(skill string) Curation {
	return Curation{
		LearningResources: []string{skill + " guide"},
		RecommendedProject: Project{
			Title: "Project: " + skill,
		},
		Checkpoints: []string{"checkpoint"},
	}
}

func TestAnalyze_UnknownRole(t *testing.T) {
	table := market.New(map[string][]market.SkillFrequency{
		"Backend Developer": {{Skill: "python", Frequency: 0.9}},
	})

	res := Analyze([]string{"python"}, table, "Barista", staticCurator{})
	if res.AlignmentScore != 0.0 {
		t.Fatalf("expected 0.0 alignment, got %v", res.AlignmentScore)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %d", len(res.MissingSkills))
	}
}

func TestAnalyze_ZeroTotalWeight(t *testing.T) {
	table := market.New(map[string][]market.SkillFrequency{
		"Backend Developer": {{Skill: "python", Frequency: 0.01}},
	})

	res := Analyze(nil, table, "Backend Developer", staticCurator{})
	if res.AlignmentScore != 0.0 {
		t.Fatalf("expected 0.0 alignment for zero-weight role, got %v", res.AlignmentScore)
	}
}

func TestAnalyze_Fixture(t *testing.T) {
	table := market.New(map[string][]market.SkillFrequency{
		"Backend Developer": {
			{Skill: "python", Frequency: 0.9},
			{Skill: "docker", Frequency: 0.5},
		},
	})

	res := Analyze([]string{"python", "sql"}, table, "Backend Developer", staticCurator{})

	if res.AlignmentScore != 64.29 {
		t.Fatalf("expected alignment 64.29, got %v", res.AlignmentScore)
	}
	if len(res.MissingSkills) != 1 {
		t.Fatalf("expected 1 missing skill, got %d", len(res.MissingSkills))
	}
	ms := res.MissingSkills[0]
	if ms.Skill != "docker" {
		t.Fatalf("expected docker, got %s", ms.Skill)
	}
	if ms.Importance != 5 {
		t.Fatalf("expected importance 5, got %d", ms.Importance)
	}
	if ms.WhyItMatters == "" || ms.MarketSignal == "" {
		t.Fatalf("expected rationale and market signal to be set")
	}
	if len(ms.Curation.LearningResources) == 0 {
		t.Fatalf("expected curation to be attached")
	}
}

func TestAnalyze_NormalizesUserSkills(t *testing.T) {
	table := market.New(map[string][]market.SkillFrequency{
		"Backend Developer": {
			{Skill: "Python", Frequency: 0.9},
			{Skill: "SQL", Frequency: 0.8},
		},
	})

	res := Analyze([]string{"  pYtHoN ", "sql"}, table, "Backend Developer", staticCurator{})
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected all skills matched, got %d missing", len(res.MissingSkills))
	}
	if res.AlignmentScore != 100.0 {
		t.Fatalf("expected 100.0 alignment, got %v", res.AlignmentScore)
	}
}

func TestAnalyze_StableTieOrder(t *testing.T) {
	table := market.New(map[string][]market.SkillFrequency{
		"Data Analyst": {
			{Skill: "sql", Frequency: 0.5},
			{Skill: "excel", Frequency: 0.5},
			{Skill: "python", Frequency: 0.9},
			{Skill: "tableau", Frequency: 0.5},
		},
	})

	res := Analyze(nil, table, "Data Analyst", staticCurator{})

	got := make([]string, 0, len(res.MissingSkills))
	for _, ms := range res.MissingSkills {
		got = append(got, ms.Skill)
	}

	want := []string{"python", "sql", "excel", "tableau"}
	if len(got) != len(want) {
		t.Fatalf("expected %d missing skills, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestAnalyze_NilCurator(t *testing.T) {
	table := market.New(map[string][]market.SkillFrequency{
		"Backend Developer": {{Skill: "docker", Frequency: 0.5}},
	})

	res := Analyze(nil, table, "Backend Developer", nil)
	if len(res.MissingSkills) != 1 {
		t.Fatalf("expected 1 missing skill, got %d", len(res.MissingSkills))
	}
}
