package usecase

import (
	"context"
	"log"

	"career-os/internal/domain/gap"
	"career-os/internal/domain/roadmap"
	"career-os/internal/infrastructure/cache"
)

// CareerPlan is the composed product: gap analysis plus the roadmap built
// from its top missing skills.
type CareerPlan struct {
	AlignmentScore float64
	MissingSkills  []gap.MissingSkill
	Summary        roadmap.Summary
}

type CareerPlanUsecase interface {
	Generate(ctx context.Context, userSkills []string, selectedRole string) (CareerPlan, error)
}

type Planner struct {
	roles    RoleUsecase
	roadmaps RoadmapUsecase
	cache    *cache.Redis
	logger   *log.Logger
}

func NewCareerPlanUsecase(roles RoleUsecase, roadmaps RoadmapUsecase, c *cache.Redis, logger *log.Logger) *Planner {
	return &Planner{roles: roles, roadmaps: roadmaps, cache: c, logger: logger}
}

// Generate chains role analysis into roadmap synthesis. The roadmap consumes
// the analysis output ordering as-is: missing skills arrive ranked and the
// synthesizer picks from the front.
func (u *Planner) Generate(ctx context.Context, userSkills []string, selectedRole string) (CareerPlan, error) {
	key := planCacheKey(selectedRole, userSkills)
	var cached CareerPlan
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	analysis, err := u.roles.Analyze(ctx, userSkills, selectedRole)
	if err != nil {
		return CareerPlan{}, err
	}

	targets := make([]roadmap.SkillTarget, 0, len(analysis.MissingSkills))
	for _, ms := range analysis.MissingSkills {
		targets = append(targets, roadmap.SkillTarget{Skill: ms.Skill, Importance: ms.Importance})
	}

	summary, err := u.roadmaps.Generate(ctx, targets, selectedRole)
	if err != nil {
		return CareerPlan{}, err
	}

	plan := CareerPlan{
		AlignmentScore: analysis.AlignmentScore,
		MissingSkills:  analysis.MissingSkills,
		Summary:        summary,
	}

	if err := u.cache.SetJSON(ctx, key, plan, 0); err != nil && u.logger != nil {
		u.logger.Printf("Career plan cache write failed | role=%q error=%v", selectedRole, err)
	}
	return plan, nil
}
