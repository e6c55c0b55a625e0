package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-os/internal/domain/progression"
	"career-os/internal/repository"
	"career-os/internal/ws"
)

type SubmissionUsecase interface {
	Submit(ctx context.Context, userID string, qualityScore int) (progression.Metrics, error)
	Metrics(ctx context.Context, userID string) (progression.Metrics, error)
}

type Submission struct {
	repo   repository.UserMetricsRepository
	locks  *userLocks
	now    func() time.Time
	logger *log.Logger
}

func NewSubmissionUsecase(repo repository.UserMetricsRepository, logger *log.Logger) *Submission {
	return &Submission{
		repo:   repo,
		locks:  newUserLocks(),
		now:    time.Now,
		logger: logger,
	}
}

// WithClock overrides the calendar source. Streak continuity is date-based, so
// tests inject fixed days instead of sleeping across midnight.
func (u *Submission) WithClock(now func() time.Time) *Submission {
	if now != nil {
		u.now = now
	}
	return u
}

// Submit folds one scored submission into the user's progression record.
// The record is created zeroed on first reference. The whole read-compute-
// write cycle runs under a per-user lock plus a row lock in the repository, so
// concurrent submissions for one user cannot drop XP.
func (u *Submission) Submit(ctx context.Context, userID string, qualityScore int) (progression.Metrics, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progression.Metrics{}, ErrInvalidInput
	}
	if qualityScore < 0 || qualityScore > 100 {
		return progression.Metrics{}, ErrInvalidInput
	}

	today := midnightUTC(u.now())

	u.locks.lock(userID)
	defer u.locks.unlock(userID)

	var gained int
	var leveledUp bool
	updated, err := u.repo.Update(ctx, userID, func(m progression.Metrics) (progression.Metrics, error) {
		streak := nextStreak(m.LastSubmission, m.Streak, today)
		next := progression.ApplySubmission(m, qualityScore, streak, progression.DefaultIncrements())
		next.LastSubmission = &today
		gained = next.XP - m.XP
		leveledUp = next.Level > m.Level
		return next, nil
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("Submit failed | user_id=%s error=%v", userID, err)
		}
		return progression.Metrics{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("Submission applied | user_id=%s quality=%d xp_gain=%d xp=%d level=%d rank=%s streak=%d",
			userID, qualityScore, gained, updated.XP, updated.Level, updated.Rank, updated.Streak)
	}

	ws.NotifyProgress(ws.ProgressEvent{
		UserID:    updated.UserID,
		XP:        updated.XP,
		Level:     updated.Level,
		Rank:      string(updated.Rank),
		Streak:    updated.Streak,
		XPGained:  gained,
		LeveledUp: leveledUp,
	})

	return updated, nil
}

func (u *Submission) Metrics(ctx context.Context, userID string) (progression.Metrics, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progression.Metrics{}, ErrInvalidInput
	}
	m, err := u.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserMetricsNotFound) {
			return progression.Metrics{}, ErrUserNotFound
		}
		return progression.Metrics{}, ErrInternal
	}
	return m, nil
}

// nextStreak applies the calendar continuity rule: first submission starts at
// 1, a submission the day after the last one extends the streak, a second
// submission on the same day leaves it untouched, and any longer gap resets
// to 1.
func nextStreak(last *time.Time, current int, today time.Time) int {
	if last == nil {
		return 1
	}
	lastDay := midnightUTC(*last)
	switch {
	case lastDay.Equal(today):
		return current
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
