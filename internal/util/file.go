package util

import (
	"net/http"
	"path/filepath"
	"strings"
)

// DetectMimeType 确定上传文件的MIME类型：优先采用客户端声明，
// 缺失时按扩展名推断，仍未知时对内容前512字节做嗅探
func DetectMimeType(name, declared string, head []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return "text/plain"
	case ".md":
		return "text/markdown"
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	if len(head) > 0 {
		return http.DetectContentType(head)
	}
	return "application/octet-stream"
}

// IsPDF 是否按PDF处理
func IsPDF(name, mimeType string) bool {
	return mimeType == "application/pdf" || strings.HasSuffix(strings.ToLower(name), ".pdf")
}
