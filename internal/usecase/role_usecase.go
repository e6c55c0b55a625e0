package usecase

import (
	"context"
	"log"
	"strings"

	"career-os/internal/domain/gap"
	"career-os/internal/domain/market"
	"career-os/internal/infrastructure/cache"
)

type RoleUsecase interface {
	Analyze(ctx context.Context, userSkills []string, selectedRole string) (gap.Result, error)
}

type Role struct {
	table   market.Table
	curator gap.Curator
	cache   *cache.Redis
	logger  *log.Logger
}

func NewRoleUsecase(table market.Table, curator gap.Curator, c *cache.Redis, logger *log.Logger) *Role {
	return &Role{table: table, curator: curator, cache: c, logger: logger}
}

// Analyze scores the user's skills against the role's market profile. The
// market table is read-only, so results are cached by (role, skill set).
func (u *Role) Analyze(ctx context.Context, userSkills []string, selectedRole string) (gap.Result, error) {
	selectedRole = strings.TrimSpace(selectedRole)
	if selectedRole == "" {
		return gap.Result{}, ErrInvalidInput
	}

	key := analysisCacheKey(selectedRole, userSkills)
	var cached gap.Result
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	res := gap.Analyze(userSkills, u.table, selectedRole, u.curator)

	if err := u.cache.SetJSON(ctx, key, res, 0); err != nil && u.logger != nil {
		u.logger.Printf("Role analysis cache write failed | role=%q error=%v", selectedRole, err)
	}

	if u.logger != nil {
		u.logger.Printf("Role analyzed | role=%q alignment=%.2f missing=%d",
			selectedRole, res.AlignmentScore, len(res.MissingSkills))
	}
	return res, nil
}
