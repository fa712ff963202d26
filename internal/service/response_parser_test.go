package service

import (
	"testing"
)

func TestExtractJSONBlock_FencedJSON(t *testing.T) {
	raw := "好的，以下是结果：\n```json\n{\"title\": \"试卷\", \"count\": 3}\n```\n希望对你有帮助。"

	got, ok := ExtractJSONBlock(raw)
	if !ok {
		t.Fatal("应从```json```代码块中提取到JSON")
	}
	if got != `{"title": "试卷", "count": 3}` {
		t.Errorf("提取结果不符: %q", got)
	}
}

func TestExtractJSONBlock_FencedWithoutLabel(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"

	got, ok := ExtractJSONBlock(raw)
	if !ok || got != `{"a": 1}` {
		t.Errorf("无语言标记的代码块也应提取, got=%q ok=%v", got, ok)
	}
}

func TestExtractJSONBlock_BareBraces(t *testing.T) {
	raw := "结果如下 {\"planTitle\": \"复习计划\", \"nested\": {\"x\": 1}} 以上。"

	got, ok := ExtractJSONBlock(raw)
	if !ok {
		t.Fatal("应从裸大括号中提取到JSON")
	}
	if got != `{"planTitle": "复习计划", "nested": {"x": 1}}` {
		t.Errorf("嵌套对象应完整提取: %q", got)
	}
}

func TestExtractJSONBlock_NoJSON(t *testing.T) {
	if _, ok := ExtractJSONBlock("这是一段没有任何JSON的纯文本回答。"); ok {
		t.Error("纯文本不应提取出JSON")
	}
}

func TestStructured_FencedReturnsParsed(t *testing.T) {
	v := Structured("```json\n{\"k\": \"v\"}\n```")
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("应返回解析后的对象，实际 %T", v)
	}
	if m["k"] != "v" {
		t.Errorf("解析内容不符: %v", m)
	}
}

func TestStructured_ProseReturnsEnvelope(t *testing.T) {
	raw := "抱歉，我无法按要求输出。"
	v := Structured(raw)
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("无法解析时应返回信封对象，实际 %T", v)
	}
	if m["rawResponse"] != raw {
		t.Errorf("信封应包含原文，实际 %v", m["rawResponse"])
	}
}

func TestStructured_InvalidJSONReturnsEnvelope(t *testing.T) {
	// 代码块内不是合法JSON、裸大括号片段也不合法时，返回信封而非报错
	raw := "```json\n{broken: not json\n```"
	v := Structured(raw)
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("应返回信封对象，实际 %T", v)
	}
	if m["rawResponse"] != raw {
		t.Errorf("信封应包含原文，实际 %v", m["rawResponse"])
	}
}
