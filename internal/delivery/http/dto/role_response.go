package dto

type RecommendedProjectResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

type MissingSkillResponse struct {
	Skill               string                     `json:"skill"`
	Importance          int                        `json:"importance"`
	WhyThisSkillMatters string                     `json:"why_this_skill_matters"`
	MarketSignal        string                     `json:"market_signal"`
	LearningResources   []string                   `json:"learning_resources"`
	RecommendedProject  RecommendedProjectResponse `json:"recommended_project"`
	Checkpoints         []string                   `json:"checkpoints"`
}

type AnalyzeRoleResponse struct {
	AlignmentScore float64                `json:"alignment_score"`
	MissingSkills  []MissingSkillResponse `json:"missing_skills"`
}
