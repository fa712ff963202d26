package model

// UploadedFile 上传文件的内存表示，内容已截断；底层临时文件在读取后立即删除
type UploadedFile struct {
	Name     string `json:"name"`
	MimeType string `json:"type"`
	Content  string `json:"-"` // 截断后的文本内容，不直接出现在响应里
}

// FileAnalysis 单个文件的AI分析结果
type FileAnalysis struct {
	Name     string `json:"name"`
	Analysis string `json:"analysis"`
}
