package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"career-os/internal/domain/progression"
	"career-os/internal/repository"
)

// memoryMetricsRepo mirrors the Postgres repository's contract in memory,
// including zeroed-record materialization inside Update.
type memoryMetricsRepo struct {
	mu      sync.Mutex
	records map[string]progression.Metrics
	err     error
}

func newMemoryMetricsRepo() *memoryMetricsRepo {
	return &memoryMetricsRepo{records: make(map[string]progression.Metrics)}
}

func (r *memoryMetricsRepo) Get(_ context.Context, userID string) (progression.Metrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return progression.Metrics{}, r.err
	}
	m, ok := r.records[userID]
	if !ok {
		return progression.Metrics{}, repository.ErrUserMetricsNotFound
	}
	return m, nil
}

func (r *memoryMetricsRepo) Update(_ context.Context, userID string, fn repository.UpdateFunc) (progression.Metrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return progression.Metrics{}, r.err
	}
	m, ok := r.records[userID]
	if !ok {
		m = progression.NewMetrics(userID)
	}
	next, err := fn(m)
	if err != nil {
		return progression.Metrics{}, err
	}
	r.records[userID] = next
	return next, nil
}

func fixedClock(day string) func() time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestSubmit_FirstSubmission(t *testing.T) {
	repo := newMemoryMetricsRepo()
	uc := NewSubmissionUsecase(repo, nil).WithClock(fixedClock("2026-03-10"))

	m, err := uc.Submit(context.Background(), "user-1", 85)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if m.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", m.Streak)
	}
	if m.XP != 70 {
		t.Fatalf("expected xp 70 (50 base + 20 quality), got %d", m.XP)
	}
	if m.Level != 1 {
		t.Fatalf("expected level 1, got %d", m.Level)
	}
	if m.ExecutionScore != 100.0 {
		t.Fatalf("expected execution score 100.0, got %v", m.ExecutionScore)
	}
	if m.LastSubmission == nil || m.LastSubmission.Format("2006-01-02") != "2026-03-10" {
		t.Fatalf("expected last submission 2026-03-10, got %v", m.LastSubmission)
	}
}

func TestSubmit_SameDayKeepsStreak(t *testing.T) {
	repo := newMemoryMetricsRepo()
	uc := NewSubmissionUsecase(repo, nil).WithClock(fixedClock("2026-03-10"))

	if _, err := uc.Submit(context.Background(), "user-1", 50); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, err := uc.Submit(context.Background(), "user-1", 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Streak != 1 {
		t.Fatalf("expected streak unchanged at 1, got %d", m.Streak)
	}
	if m.TotalAssignedTasks != 2 || m.TotalCompletedTasks != 2 {
		t.Fatalf("expected counters 2/2, got %d/%d", m.TotalAssignedTasks, m.TotalCompletedTasks)
	}
}

func TestSubmit_NextDayExtendsStreak(t *testing.T) {
	repo := newMemoryMetricsRepo()
	uc := NewSubmissionUsecase(repo, nil).WithClock(fixedClock("2026-03-10"))

	if _, err := uc.Submit(context.Background(), "user-1", 50); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc.WithClock(fixedClock("2026-03-11"))
	m, err := uc.Submit(context.Background(), "user-1", 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Streak != 2 {
		t.Fatalf("expected streak 2, got %d", m.Streak)
	}
}

func TestSubmit_GapResetsStreak(t *testing.T) {
	repo := newMemoryMetricsRepo()
	uc := NewSubmissionUsecase(repo, nil).WithClock(fixedClock("2026-03-10"))

	if _, err := uc.Submit(context.Background(), "user-1", 50); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc.WithClock(fixedClock("2026-03-13"))
	m, err := uc.Submit(context.Background(), "user-1", 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Streak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", m.Streak)
	}
}

func TestSubmit_InvalidInput(t *testing.T) {
	uc := NewSubmissionUsecase(newMemoryMetricsRepo(), nil)

	if _, err := uc.Submit(context.Background(), "  ", 50); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty user id, got %v", err)
	}
	if _, err := uc.Submit(context.Background(), "user-1", -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative quality, got %v", err)
	}
	if _, err := uc.Submit(context.Background(), "user-1", 101); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for quality > 100, got %v", err)
	}
}

func TestSubmit_RepoErrorMapsToInternal(t *testing.T) {
	repo := newMemoryMetricsRepo()
	repo.err = errors.New("connection lost")
	uc := NewSubmissionUsecase(repo, nil)

	if _, err := uc.Submit(context.Background(), "user-1", 50); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSubmit_ConcurrentSameUser(t *testing.T) {
	repo := newMemoryMetricsRepo()
	uc := NewSubmissionUsecase(repo, nil).WithClock(fixedClock("2026-03-10"))

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Submit(context.Background(), "user-1", 50); err != nil {
				t.Errorf("submit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	m, err := uc.Metrics(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.XP != n*50 {
		t.Fatalf("expected %d xp, got %d (lost updates)", n*50, m.XP)
	}
	if m.TotalAssignedTasks != n {
		t.Fatalf("expected %d assigned, got %d", n, m.TotalAssignedTasks)
	}
}

func TestMetrics_UnknownUser(t *testing.T) {
	uc := NewSubmissionUsecase(newMemoryMetricsRepo(), nil)

	if _, err := uc.Metrics(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNextStreak(t *testing.T) {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	today := day("2026-03-10")
	yesterday := day("2026-03-09")
	lastWeek := day("2026-03-03")

	if got := nextStreak(nil, 0, today); got != 1 {
		t.Fatalf("no prior date: expected 1, got %d", got)
	}
	if got := nextStreak(&today, 4, today); got != 4 {
		t.Fatalf("same day: expected 4, got %d", got)
	}
	if got := nextStreak(&yesterday, 4, today); got != 5 {
		t.Fatalf("yesterday: expected 5, got %d", got)
	}
	if got := nextStreak(&lastWeek, 4, today); got != 1 {
		t.Fatalf("gap: expected 1, got %d", got)
	}
}
