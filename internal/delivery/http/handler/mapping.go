package handler

import (
	"career-os/internal/delivery/http/dto"
	"career-os/internal/domain/gap"
	"career-os/internal/domain/roadmap"
)

func toMissingSkillResponses(items []gap.MissingSkill) []dto.MissingSkillResponse {
	res := make([]dto.MissingSkillResponse, 0, len(items))
	for _, ms := range items {
		res = append(res, dto.MissingSkillResponse{
			Skill:               ms.Skill,
			Importance:          ms.Importance,
			WhyThisSkillMatters: ms.WhyItMatters,
			MarketSignal:        ms.MarketSignal,
			LearningResources:   ms.Curation.LearningResources,
			RecommendedProject: dto.RecommendedProjectResponse{
				Title:       ms.Curation.RecommendedProject.Title,
				Description: ms.Curation.RecommendedProject.Description,
				Steps:       ms.Curation.RecommendedProject.Steps,
			},
			Checkpoints: ms.Curation.Checkpoints,
		})
	}
	return res
}

func toWeekPlanResponses(weeks []roadmap.WeekPlan) []dto.WeekPlanResponse {
	res := make([]dto.WeekPlanResponse, 0, len(weeks))
	for _, w := range weeks {
		res = append(res, dto.WeekPlanResponse{
			Week:       w.Week,
			FocusSkill: w.FocusSkill,
			Importance: w.Importance,
			Days:       toDailyTaskResponses(w.Days),
		})
	}
	return res
}

func toDailyTaskResponses(days []roadmap.DailyTask) []dto.DailyTaskResponse {
	res := make([]dto.DailyTaskResponse, 0, len(days))
	for _, d := range days {
		res = append(res, toDailyTaskResponse(d))
	}
	return res
}

func toDailyTaskResponse(d roadmap.DailyTask) dto.DailyTaskResponse {
	return dto.DailyTaskResponse{Day: d.Day, Task: d.Task, Description: d.Description}
}
