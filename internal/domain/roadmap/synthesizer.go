package roadmap

import (
	"context"
	"log"
)

const (
	maxFocusSkills = 4
	daysPerWeek    = 7
	totalDays      = 30
	capstoneDay    = 29
	reviewDay      = 30
)

// PlanGenerator attempts to produce a 7-day plan for one skill. An error means
// the attempt is unusable for any reason (transport failure, malformed output)
// and the caller falls back to the deterministic template.
type PlanGenerator interface {
	WeekPlan(ctx context.Context, skill, roleContext string) ([]DailyTask, error)
}

type Synthesizer struct {
	gen    PlanGenerator
	logger *log.Logger
}

// NewSynthesizer builds a synthesizer. gen may be nil, in which case every
// week uses the deterministic fallback.
func NewSynthesizer(gen PlanGenerator, logger *log.Logger) *Synthesizer {
	return &Synthesizer{gen: gen, logger: logger}
}

// Synthesize assembles the 30-day roadmap from the top-ranked missing skills.
// Targets are expected to be sorted by descending importance already; the
// selector takes the first four without re-sorting. Generator failures never
// surface to the caller.
func (s *Synthesizer) Synthesize(ctx context.Context, targets []SkillTarget, roleContext string) Summary {
	selected := targets
	if len(selected) > maxFocusSkills {
		selected = selected[:maxFocusSkills]
	}

	weeks := make([]WeekPlan, 0, len(selected))
	for i, target := range selected {
		weeks = append(weeks, WeekPlan{
			Week:       i + 1,
			FocusSkill: target.Skill,
			Importance: target.Importance,
			Days:       s.weekDays(ctx, target.Skill, roleContext),
		})
	}

	return Summary{
		Roadmap: weeks,
		Capstone: DailyTask{
			Day:         capstoneDay,
			Task:        "Capstone Project",
			Description: "Build a capstone project combining all learned skills.",
		},
		Review: DailyTask{
			Day:         reviewDay,
			Task:        "Mock Interview & Review",
			Description: "Conduct a mock interview and review all concepts.",
		},
		TotalDays:   totalDays,
		TotalSkills: len(weeks),
	}
}

func (s *Synthesizer) weekDays(ctx context.Context, skill, roleContext string) []DailyTask {
	if s.gen == nil {
		return FallbackWeek(skill)
	}

	days, err := s.gen.WeekPlan(ctx, skill, roleContext)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("Roadmap generator failed, using fallback | skill=%q error=%v", skill, err)
		}
		return FallbackWeek(skill)
	}
	if len(days) != daysPerWeek {
		if s.logger != nil {
			s.logger.Printf("Roadmap generator returned %d days, using fallback | skill=%q", len(days), skill)
		}
		return FallbackWeek(skill)
	}
	return days
}
