package service

import (
	"encoding/json"
	"exam_prep_backend/internal/model"
	"testing"
)

// ── 领域分类 ──

func TestIsMathMaterial(t *testing.T) {
	cases := []struct {
		name  string
		files []string
		want  bool
	}{
		{"英文math", []string{"Math_Notes.pdf"}, true},
		{"大写MATH", []string{"ADVANCED_MATH.txt"}, true},
		{"中文数学", []string{"高中数学复习.docx"}, true},
		{"代数", []string{"线性代数讲义.pdf"}, true},
		{"几何", []string{"解析几何.txt"}, true},
		{"混合命中", []string{"操作系统.pdf", "几何习题.txt"}, true},
		{"普通资料", []string{"操作系统.pdf", "计算机网络.txt"}, false},
		{"空列表", nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsMathMaterial(c.files); got != c.want {
				t.Errorf("IsMathMaterial(%v) = %v, 期望 %v", c.files, got, c.want)
			}
		})
	}
}

// ── 兜底试卷 ──

func TestFallbackTestPaper_AlwaysThreeQuestions(t *testing.T) {
	for _, files := range [][]string{
		{"数学笔记.pdf"},
		{"操作系统.pdf"},
		nil,
	} {
		paper := FallbackTestPaper(files)
		if len(paper.Questions) != 3 {
			t.Fatalf("兜底试卷应固定3题，实际 %d 题", len(paper.Questions))
		}
		if paper.Analysis.TotalQuestions != 3 {
			t.Errorf("totalQuestions 应为3，实际 %d", paper.Analysis.TotalQuestions)
		}
	}
}

func TestFallbackTestPaper_DomainSelection(t *testing.T) {
	math := FallbackTestPaper([]string{"math_notes.txt"})
	if math.Title != "数学模拟试卷" {
		t.Errorf("数学资料应选数学试卷，实际标题 %q", math.Title)
	}

	general := FallbackTestPaper([]string{"操作系统.pdf"})
	if general.Title != "计算机基础模拟试卷" {
		t.Errorf("普通资料应选计算机基础试卷，实际标题 %q", general.Title)
	}
}

func TestFallbackTestPaper_QuestionIDsSequential(t *testing.T) {
	paper := FallbackTestPaper(nil)
	for i, q := range paper.Questions {
		if q.ID != i+1 {
			t.Errorf("题目编号应从1连续递增，第%d题编号为 %d", i, q.ID)
		}
	}
}

func TestFallbackTestPaper_DifficultyDistributionSumsToOne(t *testing.T) {
	for _, files := range [][]string{{"数学.pdf"}, {"网络.pdf"}} {
		paper := FallbackTestPaper(files)
		sum := 0.0
		for _, v := range paper.Analysis.DifficultyDistribution {
			sum += v
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("难度分布合计应为1.0，实际 %f", sum)
		}
	}
}

// ── 兜底学习计划 ──

func TestFallbackStudyPlan_DayCountAndDifficulty(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 30} {
		plan := FallbackStudyPlan([]string{"notes.txt"}, 85, n)

		if plan.TotalDays != n {
			t.Fatalf("n=%d: totalDays 应为 %d，实际 %d", n, n, plan.TotalDays)
		}
		if len(plan.DailyPlans) != n {
			t.Fatalf("n=%d: dailyPlans 应有 %d 项，实际 %d", n, n, len(plan.DailyPlans))
		}

		for i, d := range plan.DailyPlans {
			if d.Day != i+1 {
				t.Errorf("n=%d: 第%d项的day应为%d，实际 %d", n, i, i+1, d.Day)
			}
			want := model.DifficultyMedium
			if i == 0 {
				want = model.DifficultyEasy
			} else if i == n-1 {
				want = model.DifficultyHard
			}
			if d.Difficulty != want {
				t.Errorf("n=%d 第%d天难度应为 %s，实际 %s", n, d.Day, want, d.Difficulty)
			}
		}
	}
}

func TestFallbackStudyPlan_FiveSlotSchedule(t *testing.T) {
	plan := FallbackStudyPlan(nil, 85, 3)
	wantTimes := []string{"9:00-10:30", "10:45-12:00", "14:00-15:30", "15:45-17:00", "19:00-20:30"}

	for _, d := range plan.DailyPlans {
		if len(d.Schedule) != len(wantTimes) {
			t.Fatalf("每日时间安排应为%d段，实际 %d", len(wantTimes), len(d.Schedule))
		}
		for i, slot := range d.Schedule {
			if slot.Time != wantTimes[i] {
				t.Errorf("第%d段时间应为 %s，实际 %s", i+1, wantTimes[i], slot.Time)
			}
		}
	}
}

func TestFallbackStudyPlan_SubjectLabel(t *testing.T) {
	math := FallbackStudyPlan([]string{"几何.pdf"}, 90, 5)
	if want := "数学强化复习计划（目标90分）"; math.PlanTitle != want {
		t.Errorf("计划标题应为 %q，实际 %q", want, math.PlanTitle)
	}

	general := FallbackStudyPlan([]string{"网络.pdf"}, 85, 5)
	if want := "计算机基础强化复习计划（目标85分）"; general.PlanTitle != want {
		t.Errorf("计划标题应为 %q，实际 %q", want, general.PlanTitle)
	}
}

// 兜底内容必须是纯函数：相同输入重复调用产出逐字节相同的结果
func TestFallbackGenerators_Deterministic(t *testing.T) {
	files := []string{"数学笔记.pdf", "网络.txt"}

	p1, _ := json.Marshal(FallbackTestPaper(files))
	p2, _ := json.Marshal(FallbackTestPaper(files))
	if string(p1) != string(p2) {
		t.Error("兜底试卷两次输出不一致")
	}

	s1, _ := json.Marshal(FallbackStudyPlan(files, 85, 7))
	s2, _ := json.Marshal(FallbackStudyPlan(files, 85, 7))
	if string(s1) != string(s2) {
		t.Error("兜底学习计划两次输出不一致")
	}
}
