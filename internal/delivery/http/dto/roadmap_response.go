package dto

type DailyTaskResponse struct {
	Day         int    `json:"day"`
	Task        string `json:"task"`
	Description string `json:"description"`
}

type WeekPlanResponse struct {
	Week       int                 `json:"week"`
	FocusSkill string              `json:"focus_skill"`
	Importance int                 `json:"importance"`
	Days       []DailyTaskResponse `json:"days"`
}

type RoadmapResponse struct {
	Roadmap     []WeekPlanResponse `json:"roadmap"`
	Capstone    DailyTaskResponse  `json:"capstone"`
	Review      DailyTaskResponse  `json:"review"`
	TotalDays   int                `json:"total_days"`
	TotalSkills int                `json:"total_skills"`
}

type CareerPlanResponse struct {
	AlignmentScore float64                `json:"alignment_score"`
	MissingSkills  []MissingSkillResponse `json:"missing_skills"`
	Roadmap        []WeekPlanResponse     `json:"roadmap"`
	Capstone       DailyTaskResponse      `json:"capstone"`
	Review         DailyTaskResponse      `json:"review"`
	TotalDays      int                    `json:"total_days"`
	TotalSkills    int                    `json:"total_skills"`
}
