package service

import (
	"context"
	"errors"
	"exam_prep_backend/internal/model"
	"strings"
	"testing"
)

// ── 假推理客户端 ──

type fakeChatClient struct {
	response     string
	err          error
	calls        int
	lastMessages []ChatMessage
	lastTemp     float64
}

func (f *fakeChatClient) Chat(_ context.Context, messages []ChatMessage, temperature float64) (string, error) {
	f.calls++
	f.lastMessages = messages
	f.lastTemp = temperature
	return f.response, f.err
}

func uploaded(names ...string) []model.UploadedFile {
	files := make([]model.UploadedFile, 0, len(names))
	for _, n := range names {
		files = append(files, model.UploadedFile{Name: n, MimeType: "text/plain", Content: "内容"})
	}
	return files
}

func analyzed(names ...string) []model.FileAnalysis {
	files := make([]model.FileAnalysis, 0, len(names))
	for _, n := range names {
		files = append(files, model.FileAnalysis{Name: n, Analysis: "主题：" + n})
	}
	return files
}

// ── AnalyzeFiles ──

func TestAnalyzeFiles_OnePerFileInOrder(t *testing.T) {
	fake := &fakeChatClient{response: "分析结果"}
	svc := NewStudyService(fake)

	files := uploaded("a.txt", "b.txt", "c.txt")
	analyses, warning := svc.AnalyzeFiles(context.Background(), files)

	if len(analyses) != 3 {
		t.Fatalf("应每个文件一条分析，实际 %d 条", len(analyses))
	}
	for i, a := range analyses {
		if a.Name != files[i].Name {
			t.Errorf("第%d条分析应对应 %s，实际 %s", i, files[i].Name, a.Name)
		}
		if a.Analysis != "分析结果" {
			t.Errorf("分析内容不符: %q", a.Analysis)
		}
	}
	if warning != "" {
		t.Errorf("全部成功时不应有warning: %q", warning)
	}
	if fake.calls != 3 {
		t.Errorf("应逐个文件调用推理，实际调用 %d 次", fake.calls)
	}
}

func TestAnalyzeFiles_FailureDegradesToErrorText(t *testing.T) {
	fake := &fakeChatClient{err: ErrNotConfigured}
	svc := NewStudyService(fake)

	analyses, warning := svc.AnalyzeFiles(context.Background(), uploaded("x.pdf"))

	if len(analyses) != 1 {
		t.Fatalf("失败时也应返回一条分析，实际 %d 条", len(analyses))
	}
	if !strings.Contains(analyses[0].Analysis, "分析失败") {
		t.Errorf("失败分析应为错误说明文本: %q", analyses[0].Analysis)
	}
	if warning == "" {
		t.Error("有文件分析失败时应携带warning")
	}
}

// ── GenerateStudyPlan ──

func TestGenerateStudyPlan_ParsesModelOutput(t *testing.T) {
	fake := &fakeChatClient{response: "```json\n" +
		`{"planTitle":"AI计划","totalDays":2,"dailyPlans":[` +
		`{"day":1,"title":"第一天","objectives":[],"schedule":[],"keyPoints":[],"difficulty":"简单"},` +
		`{"day":2,"title":"第二天","objectives":[],"schedule":[],"keyPoints":[],"difficulty":"困难"}]}` +
		"\n```"}
	svc := NewStudyService(fake)

	result, warning := svc.GenerateStudyPlan(context.Background(), analyzed("a.txt"), 85, 2)

	plan, ok := result.(*model.StudyPlan)
	if !ok {
		t.Fatalf("成功时应返回解析后的StudyPlan，实际 %T", result)
	}
	if plan.PlanTitle != "AI计划" || len(plan.DailyPlans) != 2 {
		t.Errorf("解析结果不符: %+v", plan)
	}
	if warning != "" {
		t.Errorf("成功时不应有warning: %q", warning)
	}
	if fake.lastTemp != defaultTemperature {
		t.Errorf("计划生成应使用温度 %v，实际 %v", defaultTemperature, fake.lastTemp)
	}
}

func TestGenerateStudyPlan_UpstreamErrorFallsBack(t *testing.T) {
	fake := &fakeChatClient{err: &UpstreamError{StatusCode: 502, Body: "bad gateway"}}
	svc := NewStudyService(fake)

	result, warning := svc.GenerateStudyPlan(context.Background(), analyzed("数学.pdf"), 85, 7)

	plan, ok := result.(*model.StudyPlan)
	if !ok {
		t.Fatalf("降级时应返回兜底StudyPlan，实际 %T", result)
	}
	if plan.TotalDays != 7 {
		t.Errorf("兜底计划天数应为7，实际 %d", plan.TotalDays)
	}
	if !strings.Contains(plan.PlanTitle, "数学") {
		t.Errorf("数学资料应得到数学计划: %q", plan.PlanTitle)
	}
	if warning == "" {
		t.Error("降级时应携带warning")
	}
}

func TestGenerateStudyPlan_UnparsableOutputFallsBack(t *testing.T) {
	fake := &fakeChatClient{response: "抱歉，我没法输出JSON。"}
	svc := NewStudyService(fake)

	result, warning := svc.GenerateStudyPlan(context.Background(), analyzed("os.txt"), 85, 3)

	plan, ok := result.(*model.StudyPlan)
	if !ok || plan.TotalDays != 3 {
		t.Fatalf("输出无法解析时应返回兜底计划，实际 %T", result)
	}
	if warning == "" {
		t.Error("输出无法解析时应携带warning")
	}
}

// ── GenerateTestPaper ──

func TestGenerateTestPaper_UsesLowerTemperature(t *testing.T) {
	fake := &fakeChatClient{response: "```json\n" +
		`{"title":"AI试卷","questions":[{"id":1,"type":"single_choice","question":"?","options":["A"],"correctAnswer":"A","explanation":"","difficulty":"中等","knowledgePoints":[]}],` +
		`"analysis":{"totalQuestions":1,"difficultyDistribution":{"中等":1.0},"knowledgeCoverage":[]}}` +
		"\n```"}
	svc := NewStudyService(fake)

	result, warning := svc.GenerateTestPaper(context.Background(), analyzed("a.txt"), 85, 1, "single_choice")

	paper, ok := result.(*model.TestPaper)
	if !ok {
		t.Fatalf("成功时应返回解析后的TestPaper，实际 %T", result)
	}
	if paper.Title != "AI试卷" || warning != "" {
		t.Errorf("解析结果不符: %+v warning=%q", paper, warning)
	}
	if fake.lastTemp != testPaperTemperature {
		t.Errorf("出题应使用温度 %v 降低随机性，实际 %v", testPaperTemperature, fake.lastTemp)
	}
}

func TestGenerateTestPaper_ErrorFallsBackIgnoringParams(t *testing.T) {
	fake := &fakeChatClient{err: errors.New("connection refused")}
	svc := NewStudyService(fake)

	// 请求10道多选题，但兜底试卷固定3题、固定题型
	result, warning := svc.GenerateTestPaper(context.Background(), analyzed("math_notes.txt"), 85, 10, "multiple_choice")

	paper, ok := result.(*model.TestPaper)
	if !ok {
		t.Fatalf("降级时应返回兜底TestPaper，实际 %T", result)
	}
	if len(paper.Questions) != 3 {
		t.Errorf("兜底试卷应固定3题（忽略请求题量），实际 %d", len(paper.Questions))
	}
	if paper.Title != "数学模拟试卷" {
		t.Errorf("math文件名应选数学兜底试卷: %q", paper.Title)
	}
	if warning == "" {
		t.Error("降级时应携带warning")
	}
}
