package model

// 难度标签，同时用于每日计划和试题
const (
	DifficultyEasy   = "简单"
	DifficultyMedium = "中等"
	DifficultyHard   = "困难"
)

// StudyPlan 学习计划；TotalDays 必须等于 len(DailyPlans)
type StudyPlan struct {
	PlanTitle  string      `json:"planTitle"`
	TotalDays  int         `json:"totalDays"`
	DailyPlans []DailyPlan `json:"dailyPlans"`
}

type DailyPlan struct {
	Day        int            `json:"day"` // 从1开始
	Title      string         `json:"title"`
	Objectives []string       `json:"objectives"`
	Schedule   []ScheduleSlot `json:"schedule"`
	KeyPoints  []string       `json:"keyPoints"`
	Difficulty string         `json:"difficulty"`
}

type ScheduleSlot struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Details  string `json:"details"`
}
