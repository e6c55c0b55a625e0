package usecase

import (
	"context"
	"strings"

	"career-os/internal/domain/roadmap"
)

// DefaultRoleContext seeds the generative prompt when the caller gives no
// role.
const DefaultRoleContext = "Backend Developer"

type RoadmapUsecase interface {
	Generate(ctx context.Context, targets []roadmap.SkillTarget, roleContext string) (roadmap.Summary, error)
}

type Roadmap struct {
	synth *roadmap.Synthesizer
}

func NewRoadmapUsecase(synth *roadmap.Synthesizer) *Roadmap {
	return &Roadmap{synth: synth}
}

// Generate builds the 30-day roadmap. It never fails on generator problems;
// the synthesizer absorbs those. The only error is a missing synthesizer,
// which is a wiring bug.
func (u *Roadmap) Generate(ctx context.Context, targets []roadmap.SkillTarget, roleContext string) (roadmap.Summary, error) {
	if u.synth == nil {
		return roadmap.Summary{}, ErrInternal
	}
	if strings.TrimSpace(roleContext) == "" {
		roleContext = DefaultRoleContext
	}
	return u.synth.Synthesize(ctx, targets, roleContext), nil
}
