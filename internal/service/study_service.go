package service

import (
	"context"
	"encoding/json"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/pkg/logger"
	"exam_prep_backend/pkg/monitoring"
	"fmt"

	"go.uber.org/zap"
)

const (
	defaultTemperature   = 0.7
	testPaperTemperature = 0.5 // 降低出题输出的随机性
)

// StudyService 编排分析/计划/出题三类任务：
// 调用上游推理 → 解析输出 → 失败时降级为兜底内容。
// 除空输入外不返回错误，降级信息通过warning通道传递。
type StudyService struct {
	ai ChatClient
}

func NewStudyService(ai ChatClient) *StudyService {
	return &StudyService{ai: ai}
}

// AnalyzeFiles 逐个文件调用推理分析；单个文件失败只影响该文件的
// 分析文本并附带warning，永不失败。结果与输入一一对应且顺序一致。
func (s *StudyService) AnalyzeFiles(ctx context.Context, files []model.UploadedFile) ([]model.FileAnalysis, string) {
	analyses := make([]model.FileAnalysis, 0, len(files))
	warning := ""

	for _, f := range files {
		messages := []ChatMessage{
			{Role: "user", Content: BuildAnalysisPrompt(f)},
		}
		text, err := s.ai.Chat(ctx, messages, defaultTemperature)
		if err != nil {
			monitoring.InferenceCalls.WithLabelValues("analyze", "error").Inc()
			logger.Log.Warn("文件分析失败", zap.String("file", f.Name), zap.Error(err))
			text = fmt.Sprintf("文件「%s」分析失败：%v", f.Name, err)
			warning = "部分文件AI分析失败，已返回错误说明"
		} else {
			monitoring.InferenceCalls.WithLabelValues("analyze", "ok").Inc()
		}
		analyses = append(analyses, model.FileAnalysis{
			Name:     f.Name,
			Analysis: text,
		})
	}

	return analyses, warning
}

// GenerateStudyPlan 生成复习计划；推理失败或输出无法解析为
// StudyPlan 时降级为兜底计划并附带warning
func (s *StudyService) GenerateStudyPlan(ctx context.Context, analyses []model.FileAnalysis, targetScore, reviewDays int) (any, string) {
	names := fileNames(analyses)

	messages := []ChatMessage{
		{Role: "user", Content: BuildStudyPlanPrompt(analyses, targetScore, reviewDays)},
	}
	raw, err := s.ai.Chat(ctx, messages, defaultTemperature)
	if err != nil {
		monitoring.InferenceCalls.WithLabelValues("plan", "error").Inc()
		monitoring.FallbackServed.WithLabelValues("plan").Inc()
		logger.Log.Warn("学习计划生成失败，使用兜底计划", zap.Error(err))
		return FallbackStudyPlan(names, targetScore, reviewDays), "AI生成失败，已返回预置学习计划"
	}
	monitoring.InferenceCalls.WithLabelValues("plan", "ok").Inc()

	candidate, ok := ExtractJSONBlock(raw)
	if ok {
		var plan model.StudyPlan
		if err := json.Unmarshal([]byte(candidate), &plan); err == nil && len(plan.DailyPlans) > 0 {
			return &plan, ""
		}
	}

	monitoring.FallbackServed.WithLabelValues("plan").Inc()
	logger.Log.Warn("学习计划输出无法解析，使用兜底计划", zap.Int("rawLen", len(raw)))
	return FallbackStudyPlan(names, targetScore, reviewDays), "AI输出解析失败，已返回预置学习计划"
}

// GenerateTestPaper 生成模拟试卷；降级策略同上
func (s *StudyService) GenerateTestPaper(ctx context.Context, files []model.FileAnalysis, targetScore, questionCount int, questionType string) (any, string) {
	names := fileNames(files)

	messages := []ChatMessage{
		{Role: "user", Content: BuildTestPaperPrompt(files, targetScore, questionCount, questionType)},
	}
	raw, err := s.ai.Chat(ctx, messages, testPaperTemperature)
	if err != nil {
		monitoring.InferenceCalls.WithLabelValues("paper", "error").Inc()
		monitoring.FallbackServed.WithLabelValues("paper").Inc()
		logger.Log.Warn("试卷生成失败，使用兜底试卷", zap.Error(err))
		return FallbackTestPaper(names), "AI生成失败，已返回预置试卷"
	}
	monitoring.InferenceCalls.WithLabelValues("paper", "ok").Inc()

	candidate, ok := ExtractJSONBlock(raw)
	if ok {
		var paper model.TestPaper
		if err := json.Unmarshal([]byte(candidate), &paper); err == nil && len(paper.Questions) > 0 {
			return &paper, ""
		}
	}

	monitoring.FallbackServed.WithLabelValues("paper").Inc()
	logger.Log.Warn("试卷输出无法解析，使用兜底试卷", zap.Int("rawLen", len(raw)))
	return FallbackTestPaper(names), "AI输出解析失败，已返回预置试卷"
}

func fileNames(files []model.FileAnalysis) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
