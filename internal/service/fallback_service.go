package service

import (
	"exam_prep_backend/internal/model"
	"fmt"
	"strings"
)

// 上游推理不可用时的兜底内容生成。
// 全部为纯函数：无随机数、无时间戳，相同输入产出逐字节相同的结果。

var mathKeywords = []string{"math", "数学", "代数", "几何"}

// IsMathMaterial 按文件名粗分领域：任一文件名（不区分大小写）
// 含数学类关键词即视为数学资料
func IsMathMaterial(names []string) bool {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, kw := range mathKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

func fallbackSubject(names []string) string {
	if IsMathMaterial(names) {
		return "数学"
	}
	return "计算机基础"
}

// FallbackTestPaper 返回两套硬编码试卷之一（数学/计算机基础），各3题；
// 为保证可用性，忽略请求的题量和题型
func FallbackTestPaper(names []string) *model.TestPaper {
	if IsMathMaterial(names) {
		return mathFallbackPaper()
	}
	return generalFallbackPaper()
}

func mathFallbackPaper() *model.TestPaper {
	return &model.TestPaper{
		Title: "数学模拟试卷",
		Questions: []model.Question{
			{
				ID:              1,
				Type:            model.QuestionSingleChoice,
				Question:        "函数 f(x) = x² - 2x + 1 的最小值是多少？",
				Options:         []string{"A. -1", "B. 0", "C. 1", "D. 2"},
				CorrectAnswer:   "B",
				Explanation:     "f(x) = (x-1)²，当 x=1 时取得最小值 0。",
				Difficulty:      model.DifficultyEasy,
				KnowledgePoints: []string{"二次函数", "配方法"},
			},
			{
				ID:              2,
				Type:            model.QuestionJudgment,
				Question:        "两条平行线被第三条直线所截，同位角相等。",
				Options:         []string{"正确", "错误"},
				CorrectAnswer:   "正确",
				Explanation:     "平行线的性质：两直线平行，同位角相等。",
				Difficulty:      model.DifficultyMedium,
				KnowledgePoints: []string{"平行线性质"},
			},
			{
				ID:              3,
				Type:            model.QuestionEssay,
				Question:        "已知等差数列 {aₙ} 的首项 a₁=2，公差 d=3，求前10项和 S₁₀。",
				Options:         []string{},
				CorrectAnswer:   "S₁₀ = 10×2 + 10×9/2×3 = 20 + 135 = 155",
				Explanation:     "利用等差数列求和公式 Sₙ = na₁ + n(n-1)d/2。",
				Difficulty:      model.DifficultyHard,
				KnowledgePoints: []string{"等差数列", "数列求和"},
			},
		},
		Analysis: model.PaperAnalysis{
			TotalQuestions: 3,
			DifficultyDistribution: map[string]float64{
				model.DifficultyEasy:   0.33,
				model.DifficultyMedium: 0.34,
				model.DifficultyHard:   0.33,
			},
			KnowledgeCoverage: []string{"二次函数", "平行线性质", "等差数列"},
		},
	}
}

func generalFallbackPaper() *model.TestPaper {
	return &model.TestPaper{
		Title: "计算机基础模拟试卷",
		Questions: []model.Question{
			{
				ID:              1,
				Type:            model.QuestionSingleChoice,
				Question:        "下列哪个是计算机的核心部件？",
				Options:         []string{"A. 显示器", "B. CPU", "C. 键盘", "D. 音箱"},
				CorrectAnswer:   "B",
				Explanation:     "CPU（中央处理器）负责执行指令和处理数据，是计算机的核心。",
				Difficulty:      model.DifficultyEasy,
				KnowledgePoints: []string{"计算机组成"},
			},
			{
				ID:              2,
				Type:            model.QuestionJudgment,
				Question:        "二进制数 1010 对应的十进制数是 10。",
				Options:         []string{"正确", "错误"},
				CorrectAnswer:   "正确",
				Explanation:     "1010₂ = 8 + 0 + 2 + 0 = 10。",
				Difficulty:      model.DifficultyMedium,
				KnowledgePoints: []string{"进制转换"},
			},
			{
				ID:              3,
				Type:            model.QuestionEssay,
				Question:        "简述操作系统的主要功能。",
				Options:         []string{},
				CorrectAnswer:   "进程管理、内存管理、文件管理、设备管理和用户接口。",
				Explanation:     "操作系统是管理计算机硬件与软件资源的系统软件。",
				Difficulty:      model.DifficultyHard,
				KnowledgePoints: []string{"操作系统"},
			},
		},
		Analysis: model.PaperAnalysis{
			TotalQuestions: 3,
			DifficultyDistribution: map[string]float64{
				model.DifficultyEasy:   0.33,
				model.DifficultyMedium: 0.34,
				model.DifficultyHard:   0.33,
			},
			KnowledgeCoverage: []string{"计算机组成", "进制转换", "操作系统"},
		},
	}
}

// 每日固定五段时间安排
var fallbackSchedule = []model.ScheduleSlot{
	{Time: "9:00-10:30", Activity: "概念学习"},
	{Time: "10:45-12:00", Activity: "例题精讲"},
	{Time: "14:00-15:30", Activity: "专项练习"},
	{Time: "15:45-17:00", Activity: "错题整理"},
	{Time: "19:00-20:30", Activity: "总结回顾"},
}

// FallbackStudyPlan 按天数程序化生成复习计划：
// 第1天打基础（简单），最后一天综合复习（困难），中间天重点内容（中等）
func FallbackStudyPlan(names []string, targetScore, reviewDays int) *model.StudyPlan {
	subject := fallbackSubject(names)

	dailyPlans := make([]model.DailyPlan, 0, reviewDays)
	for day := 1; day <= reviewDays; day++ {
		var title, theme, difficulty string
		switch {
		case day == 1:
			title = fmt.Sprintf("第%d天：%s基础夯实", day, subject)
			theme = "基础概念"
			difficulty = model.DifficultyEasy
		case day == reviewDays:
			title = fmt.Sprintf("第%d天：%s综合复习", day, subject)
			theme = "综合复习"
			difficulty = model.DifficultyHard
		default:
			title = fmt.Sprintf("第%d天：%s重点内容", day, subject)
			theme = "重点内容"
			difficulty = model.DifficultyMedium
		}

		schedule := make([]model.ScheduleSlot, len(fallbackSchedule))
		for i, slot := range fallbackSchedule {
			schedule[i] = model.ScheduleSlot{
				Time:     slot.Time,
				Activity: slot.Activity,
				Details:  fmt.Sprintf("围绕%s进行%s", theme, slot.Activity),
			}
		}

		dailyPlans = append(dailyPlans, model.DailyPlan{
			Day:        day,
			Title:      title,
			Objectives: []string{fmt.Sprintf("掌握%s的%s", subject, theme), "完成当日练习并复盘"},
			Schedule:   schedule,
			KeyPoints:  []string{fmt.Sprintf("%s%s梳理", subject, theme), "易错点标注"},
			Difficulty: difficulty,
		})
	}

	return &model.StudyPlan{
		PlanTitle:  fmt.Sprintf("%s强化复习计划（目标%d分）", subject, targetScore),
		TotalDays:  len(dailyPlans),
		DailyPlans: dailyPlans,
	}
}
