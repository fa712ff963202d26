package service

import (
	"exam_prep_backend/internal/model"
	"fmt"
	"strings"
)

// 提示词构造：纯函数，不做IO，不做重试

func BuildAnalysisPrompt(f model.UploadedFile) string {
	return fmt.Sprintf(`请分析以下学习资料，提取核心内容：

文件名：%s
文件类型：%s
内容：
%s

请给出：
1. 资料主题
2. 3-5个核心知识点
3. 内容结构概述
4. 适合出题的题型建议`, f.Name, f.MimeType, f.Content)
}

func BuildStudyPlanPrompt(analyses []model.FileAnalysis, targetScore, reviewDays int) string {
	var sb strings.Builder
	for _, a := range analyses {
		sb.WriteString(fmt.Sprintf("【%s】\n%s\n\n", a.Name, a.Analysis))
	}

	return fmt.Sprintf(`你是一名备考规划专家。请根据以下资料分析结果，为学生制定%d天的复习计划，目标分数%d分。

资料分析：
%s
要求：
1. 按天安排，共%d天，第1天打基础，最后一天综合复习
2. 每天包含学习目标、时间安排和重点内容
3. 难度循序渐进

请严格按以下JSON格式输出，并用`+"```json```"+`代码块包裹：
{
  "planTitle": "计划标题",
  "totalDays": %d,
  "dailyPlans": [
    {
      "day": 1,
      "title": "当日主题",
      "objectives": ["目标1", "目标2"],
      "schedule": [
        {"time": "9:00-10:30", "activity": "活动名称", "details": "具体内容"}
      ],
      "keyPoints": ["重点1", "重点2"],
      "difficulty": "简单"
    }
  ]
}
difficulty只能取"简单"、"中等"或"困难"。`, reviewDays, targetScore, sb.String(), reviewDays, reviewDays)
}

func BuildTestPaperPrompt(files []model.FileAnalysis, targetScore, questionCount int, questionType string) string {
	var sb strings.Builder
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("【%s】\n%s\n\n", f.Name, f.Analysis))
	}

	typeDesc := questionType
	if questionType == "all" {
		typeDesc = "单选题、多选题、判断题、问答题混合"
	}

	return fmt.Sprintf(`你是一名出题专家。请根据以下资料，出一套%d道题的模拟试卷，题型为%s，难度对应目标分数%d分。

资料：
%s
请严格按以下JSON格式输出，并用`+"```json```"+`代码块包裹：
{
  "title": "试卷标题",
  "questions": [
    {
      "id": 1,
      "type": "single_choice",
      "question": "题目内容",
      "options": ["A. 选项1", "B. 选项2", "C. 选项3", "D. 选项4"],
      "correctAnswer": "A",
      "explanation": "答案解析",
      "difficulty": "中等",
      "knowledgePoints": ["知识点1"]
    }
  ],
  "analysis": {
    "totalQuestions": %d,
    "difficultyDistribution": {"简单": 0.3, "中等": 0.5, "困难": 0.2},
    "knowledgeCoverage": ["知识点1", "知识点2"]
  }
}
type只能取single_choice、multiple_choice、judgment、essay，问答题options为空数组。
id必须从1开始连续编号。`, questionCount, typeDesc, targetScore, sb.String(), questionCount)
}
