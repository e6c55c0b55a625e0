package dto

type SubmitTaskResponse struct {
	XP             int     `json:"xp"`
	Level          int     `json:"level"`
	Rank           string  `json:"rank"`
	Streak         int     `json:"streak"`
	ExecutionScore float64 `json:"execution_score"`
}

type UserMetricsResponse struct {
	UserID              string  `json:"user_id"`
	XP                  int     `json:"xp"`
	Level               int     `json:"level"`
	Rank                string  `json:"rank"`
	Streak              int     `json:"streak"`
	TotalAssignedTasks  int     `json:"total_assigned_tasks"`
	TotalCompletedTasks int     `json:"total_completed_tasks"`
	ExecutionScore      float64 `json:"execution_score"`
	LastSubmissionDate  *string `json:"last_submission_date"`
}
