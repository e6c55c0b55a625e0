package progression

import "time"

type Rank string

const (
	RankBronze   Rank = "Bronze"
	RankSilver   Rank = "Silver"
	RankGold     Rank = "Gold"
	RankPlatinum Rank = "Platinum"
)

const (
	baseXP           = 50
	xpPerLevel       = 100
	streakBonusStep  = 3
	streakBonusXP    = 30
	highQualityBonus = 20
	midQualityBonus  = 10
)

// Metrics is the persisted progression record of one user. Level, rank and
// execution score are always derived from xp and the task counters; they are
// stored denormalized but never updated independently.
type Metrics struct {
	UserID              string
	XP                  int
	Level               int
	Rank                Rank
	Streak              int
	TotalAssignedTasks  int
	TotalCompletedTasks int
	ExecutionScore      float64
	LastSubmission      *time.Time
}

// NewMetrics returns the zeroed record materialized on first reference to a
// user id.
func NewMetrics(userID string) Metrics {
	return Metrics{
		UserID: userID,
		Level:  1,
		Rank:   RankBronze,
	}
}

type Increments struct {
	Assigned  int
	Completed int
}

func DefaultIncrements() Increments {
	return Increments{Assigned: 1, Completed: 1}
}

func XPGain(qualityScore, streak int) int {
	bonus := 0
	switch {
	case qualityScore >= 80:
		bonus = highQualityBonus
	case qualityScore >= 60:
		bonus = midQualityBonus
	}
	return baseXP + bonus + (streak/streakBonusStep)*streakBonusXP
}

func Level(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/xpPerLevel + 1
}

func RankForLevel(level int) Rank {
	switch {
	case level <= 2:
		return RankBronze
	case level <= 4:
		return RankSilver
	case level <= 6:
		return RankGold
	default:
		return RankPlatinum
	}
}

func ExecutionScore(completed, assigned int) float64 {
	if assigned <= 0 {
		return 0.0
	}
	return float64(completed) / float64(assigned) * 100.0
}

// ApplySubmission folds one scored task submission into the record. The streak
// value is trusted as-is; streak continuity against calendar dates is the
// store's concern, not the engine's. Pure: the input record is not mutated.
func ApplySubmission(m Metrics, qualityScore, streak int, inc Increments) Metrics {
	m.XP += XPGain(qualityScore, streak)
	m.Streak = streak
	m.TotalAssignedTasks += inc.Assigned
	m.TotalCompletedTasks += inc.Completed
	m.Level = Level(m.XP)
	m.Rank = RankForLevel(m.Level)
	m.ExecutionScore = ExecutionScore(m.TotalCompletedTasks, m.TotalAssignedTasks)
	return m
}
