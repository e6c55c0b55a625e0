package roadmap

type DailyTask struct {
	Day         int
	Task        string
	Description string
}

type WeekPlan struct {
	Week       int
	FocusSkill string
	Importance int
	Days       []DailyTask
}

// SkillTarget is a missing skill selected for the roadmap, already ranked by
// the caller.
type SkillTarget struct {
	Skill      string
	Importance int
}

// Summary is the full 30-day plan: up to four AI-or-fallback study weeks plus
// the fixed capstone and review days.
type Summary struct {
	Roadmap     []WeekPlan
	Capstone    DailyTask
	Review      DailyTask
	TotalDays   int
	TotalSkills int
}
