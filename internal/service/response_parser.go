package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

// 模型输出是不可靠的自由文本，这里的解析只能尽力而为，绝不抛错

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSONBlock 从模型输出中提取JSON文本：
// 优先取```json```代码块内部，其次取首个大括号包裹的片段；
// 候选必须是合法JSON才算命中
func ExtractJSONBlock(raw string) (string, bool) {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		candidate := strings.TrimSpace(raw[start : end+1])
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}

	return "", false
}

// Structured 解析模型输出；无法解析时返回 {"rawResponse": 原文} 包裹
func Structured(raw string) any {
	if candidate, ok := ExtractJSONBlock(raw); ok {
		var v any
		if err := json.Unmarshal([]byte(candidate), &v); err == nil {
			return v
		}
	}
	return map[string]any{"rawResponse": raw}
}
