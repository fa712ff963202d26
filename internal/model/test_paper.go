package model

// 题型
const (
	QuestionSingleChoice   = "single_choice"
	QuestionMultipleChoice = "multiple_choice"
	QuestionJudgment       = "judgment"
	QuestionEssay          = "essay"
)

// TestPaper 模拟试卷；Analysis.TotalQuestions 必须等于 len(Questions)
type TestPaper struct {
	Title     string        `json:"title"`
	Questions []Question    `json:"questions"`
	Analysis  PaperAnalysis `json:"analysis"`
}

type Question struct {
	ID              int      `json:"id"` // 从1开始连续编号
	Type            string   `json:"type"`
	Question        string   `json:"question"`
	Options         []string `json:"options"` // 问答题为空
	CorrectAnswer   string   `json:"correctAnswer"`
	Explanation     string   `json:"explanation"`
	Difficulty      string   `json:"difficulty"`
	KnowledgePoints []string `json:"knowledgePoints"`
}

type PaperAnalysis struct {
	TotalQuestions         int                `json:"totalQuestions"`
	DifficultyDistribution map[string]float64 `json:"difficultyDistribution"` // 各难度占比，合计1.0
	KnowledgeCoverage      []string           `json:"knowledgeCoverage"`
}
