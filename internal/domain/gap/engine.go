package gap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-os/internal/domain/market"
)

// Curation is externally curated learning content attached to a missing skill.
type Curation struct {
	LearningResources  []string
	RecommendedProject Project
	Checkpoints        []string
}

type Project struct {
	Title       string
	Description string
	Steps       []string
}

// Curator resolves curated content by normalized (lower-cased, trimmed) skill
// name. Implementations must return a generic bundle for unknown skills, never
// an empty one.
type Curator interface {
	Lookup(skill string) Curation
}

type MissingSkill struct {
	Skill        string
	Importance   int
	WhyItMatters string
	MarketSignal string
	Curation     Curation
}

type Result struct {
	AlignmentScore float64
	MissingSkills  []MissingSkill
}

// Analyze scores how well a user's skills cover the market demand profile of a
// role. An unknown role yields a zero score and no missing skills rather than
// an error.
//
// Importance weights use math.Round (half away from zero) on frequency*10; the
// alignment percentage is rounded half away from zero to 2 decimals. Missing
// skills are ordered by descending importance, ties keeping the role profile's
// own skill order.
func Analyze(userSkills []string, table market.Table, role string, curator Curator) Result {
	profile, ok := table.Role(role)
	if !ok {
		return Result{AlignmentScore: 0.0, MissingSkills: []MissingSkill{}}
	}

	owned := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		n := normalizeSkill(s)
		if n == "" {
			continue
		}
		owned[n] = struct{}{}
	}

	totalWeight := 0
	earnedWeight := 0
	missing := make([]MissingSkill, 0)

	for _, sf := range profile.Skills() {
		importance := int(math.Round(sf.Frequency * 10))
		totalWeight += importance

		if _, has := owned[normalizeSkill(sf.Skill)]; has {
			earnedWeight += importance
			continue
		}

		missing = append(missing, MissingSkill{
			Skill:        sf.Skill,
			Importance:   importance,
			WhyItMatters: whyItMatters(sf.Skill, sf.Frequency, role),
			MarketSignal: marketSignal(sf.Frequency),
			Curation:     lookupCuration(curator, sf.Skill),
		})
	}

	score := 0.0
	if totalWeight > 0 {
		score = round2(float64(earnedWeight) / float64(totalWeight) * 100)
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Importance > missing[j].Importance
	})

	return Result{AlignmentScore: score, MissingSkills: missing}
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func whyItMatters(skill string, frequency float64, role string) string {
	return fmt.Sprintf(
		"%s appears in %.0f%% of %s postings, so closing this gap has a direct impact on your fit for the role.",
		skill, frequency*100, role,
	)
}

func marketSignal(frequency float64) string {
	return fmt.Sprintf("Required by %.0f%% of recent postings", frequency*100)
}

func lookupCuration(curator Curator, skill string) Curation {
	if curator == nil {
		return Curation{}
	}
	return curator.Lookup(normalizeSkill(skill))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
