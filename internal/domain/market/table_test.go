package market

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_PreservesSkillOrder(t *testing.T) {
	doc := `{
		"Backend Developer": {"python": 0.9, "docker": 0.5, "sql": 0.5, "aws": 0.5},
		"Data Analyst": {"sql": 0.8}
	}`

	table, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 roles, got %d", table.Len())
	}

	p, ok := table.Role("Backend Developer")
	if !ok {
		t.Fatalf("role not found")
	}
	want := []string{"python", "docker", "sql", "aws"}
	skills := p.Skills()
	if len(skills) != len(want) {
		t.Fatalf("expected %d skills, got %d", len(want), len(skills))
	}
	for i, w := range want {
		if skills[i].Skill != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, skills[i].Skill)
		}
	}
}

func TestParse_RejectsOutOfRangeFrequency(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"r": {"s": 1.5}}`)); err == nil {
		t.Fatalf("expected error for frequency > 1")
	}
	if _, err := Parse(strings.NewReader(`{"r": {"s": -0.1}}`)); err == nil {
		t.Fatalf("expected error for negative frequency")
	}
}

func TestParse_RejectsNonNumberFrequency(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"r": {"s": "high"}}`)); err == nil {
		t.Fatalf("expected error for string frequency")
	}
}

func TestLoad_MissingFileYieldsEmptyTable(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d roles", table.Len())
	}
	if _, ok := table.Role("Backend Developer"); ok {
		t.Fatalf("empty table must miss all roles")
	}
}

func TestLoad_EmptyPathYieldsEmptyTable(t *testing.T) {
	table, err := Load("  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market_skills.json")
	if err := os.WriteFile(path, []byte(`{"Backend Developer": {"python": 0.9}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p, ok := table.Role("Backend Developer")
	if !ok || p.Len() != 1 {
		t.Fatalf("expected one skill for Backend Developer")
	}
	if p.Skills()[0].Frequency != 0.9 {
		t.Fatalf("expected frequency 0.9, got %v", p.Skills()[0].Frequency)
	}
}
