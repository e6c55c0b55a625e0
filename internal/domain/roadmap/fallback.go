package roadmap

import "fmt"

var fallbackTitles = [daysPerWeek]string{
	"%s Fundamentals",
	"%s Core Concepts & Architecture",
	"%s Hands-on Practice",
	"%s Mini Project",
	"%s Advanced Concepts",
	"%s Real-world Use Cases",
	"%s Self-assessment & Checkpoint",
}

var fallbackDescriptions = [daysPerWeek]string{
	"Learn the fundamentals and basics of %s.",
	"Study core concepts, architecture, and key design patterns.",
	"Write code, follow tutorials, and get hands-on experience.",
	"Build a small project to solidify understanding.",
	"Explore advanced topics and best practices.",
	"Study real-world applications and case studies.",
	"Test your knowledge with a self-assessment and review weak areas.",
}

// FallbackWeek produces the deterministic 7-day plan used whenever the
// generative call cannot be validated. It depends on nothing but the skill
// name and always yields exactly 7 days.
func FallbackWeek(skill string) []DailyTask {
	days := make([]DailyTask, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		desc := fallbackDescriptions[i]
		if i == 0 {
			desc = fmt.Sprintf(fallbackDescriptions[i], skill)
		}
		days = append(days, DailyTask{
			Day:         i + 1,
			Task:        fmt.Sprintf(fallbackTitles[i], skill),
			Description: desc,
		})
	}
	return days
}
