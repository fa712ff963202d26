package service

import (
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// 截断上限：5000个Unicode字符（按rune计），硬上限而非token估算
const maxContentRunes = 5000

type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// Extract 读取临时文件内容并截断。读取失败不向上传播，
// 内容替换为带底层错误的可读提示，保证后续提示词构造对所有文件一致。
// 无论读取成败，临时文件都会被删除；删除失败仅记日志。
func (s *ExtractService) Extract(path, name, mimeType string) model.UploadedFile {
	content, err := s.readContent(path, name, mimeType)
	if err != nil {
		content = fmt.Sprintf("[无法读取文件内容: %v]", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn("临时文件删除失败", zap.String("path", path), zap.Error(err))
	}

	return model.UploadedFile{
		Name:     name,
		MimeType: mimeType,
		Content:  truncateRunes(content, maxContentRunes),
	}
}

func (s *ExtractService) readContent(path, name, mimeType string) (string, error) {
	if util.IsPDF(name, mimeType) {
		if text, err := readPDFText(path); err == nil {
			return text, nil
		}
		// PDF解析失败时退回按原始文本读取
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readPDFText(path string) (text string, err error) {
	// pdf库对损坏文件可能panic，统一转为错误走原始读取
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		// 已超过截断上限就不再解析后续页
		if len([]rune(sb.String())) >= maxContentRunes {
			break
		}
	}
	return sb.String(), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
