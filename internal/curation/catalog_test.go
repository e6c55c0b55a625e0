package curation

import "testing"

func TestLookup_KnownSkill(t *testing.T) {
	c := NewCatalog()

	b := c.Lookup("docker")
	if len(b.LearningResources) == 0 {
		t.Fatalf("expected learning resources for docker")
	}
	if b.RecommendedProject.Title == "" {
		t.Fatalf("expected a recommended project for docker")
	}
	if len(b.Checkpoints) == 0 {
		t.Fatalf("expected checkpoints for docker")
	}
}

func TestLookup_NormalizesKey(t *testing.T) {
	c := NewCatalog()
	if c.Lookup("  DoCkEr ").RecommendedProject.Title != c.Lookup("docker").RecommendedProject.Title {
		t.Fatalf("lookup is not case/space insensitive")
	}
}

func TestLookup_UnknownSkillGetsGenericBundle(t *testing.T) {
	c := NewCatalog()

	b := c.Lookup("underwater basket weaving")
	if len(b.LearningResources) == 0 || len(b.Checkpoints) == 0 {
		t.Fatalf("generic bundle must not be empty")
	}
	if b.RecommendedProject.Title != "Capstone Mini Project" {
		t.Fatalf("expected generic project, got %q", b.RecommendedProject.Title)
	}
}
