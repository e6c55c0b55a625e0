package usecase

import (
	"context"
	"errors"
	"testing"

	"career-os/internal/curation"
	"career-os/internal/domain/market"
)

func backendTable() market.Table {
	return market.New(map[string][]market.SkillFrequency{
		"Backend Developer": {
			{Skill: "python", Frequency: 0.9},
			{Skill: "docker", Frequency: 0.5},
		},
	})
}

func TestRoleAnalyze_Fixture(t *testing.T) {
	uc := NewRoleUsecase(backendTable(), curation.NewCatalog(), nil, nil)

	res, err := uc.Analyze(context.Background(), []string{"python", "sql"}, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.AlignmentScore != 64.29 {
		t.Fatalf("expected alignment 64.29, got %v", res.AlignmentScore)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0].Skill != "docker" {
		t.Fatalf("expected docker missing, got %+v", res.MissingSkills)
	}
	if res.MissingSkills[0].Importance != 5 {
		t.Fatalf("expected importance 5, got %d", res.MissingSkills[0].Importance)
	}
}

func TestRoleAnalyze_UnknownRole(t *testing.T) {
	uc := NewRoleUsecase(backendTable(), curation.NewCatalog(), nil, nil)

	res, err := uc.Analyze(context.Background(), []string{"python"}, "Astronaut")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.AlignmentScore != 0.0 || len(res.MissingSkills) != 0 {
		t.Fatalf("expected empty result for unknown role, got %+v", res)
	}
}

func TestRoleAnalyze_EmptyRoleRejected(t *testing.T) {
	uc := NewRoleUsecase(backendTable(), curation.NewCatalog(), nil, nil)

	if _, err := uc.Analyze(context.Background(), []string{"python"}, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoleAnalyze_EmptyTableDegrades(t *testing.T) {
	uc := NewRoleUsecase(market.New(nil), curation.NewCatalog(), nil, nil)

	res, err := uc.Analyze(context.Background(), []string{"python"}, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.AlignmentScore != 0.0 {
		t.Fatalf("expected 0.0 alignment with empty table, got %v", res.AlignmentScore)
	}
}
