package controller

import (
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 最终兜底参数：编排过程出现未预期错误时仍按这些默认值返回可用内容
const (
	defaultTargetScore   = 85
	defaultReviewDays    = 7
	defaultQuestionCount = 3
	defaultQuestionType  = "all"
)

type StudyController struct {
	study   *service.StudyService
	extract *service.ExtractService
	cfg     *config.Config
}

func NewStudyController(study *service.StudyService, extract *service.ExtractService, cfg *config.Config) *StudyController {
	return &StudyController{study: study, extract: extract, cfg: cfg}
}

type fileMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type analyzeFilesResponse struct {
	Success  bool                 `json:"success"`
	Files    []fileMeta           `json:"files"`
	Analysis []model.FileAnalysis `json:"analysis"`
	Warning  string               `json:"warning,omitempty"`
}

type studyPlanRequest struct {
	Files       []model.FileAnalysis `json:"files"`
	TargetScore int                  `json:"targetScore"`
	ReviewDays  int                  `json:"reviewDays"`
}

type studyPlanResponse struct {
	Success   bool   `json:"success"`
	StudyPlan any    `json:"studyPlan"`
	Warning   string `json:"warning,omitempty"`
}

type testPaperRequest struct {
	Files         []model.FileAnalysis `json:"files"`
	TargetScore   int                  `json:"targetScore"`
	QuestionCount int                  `json:"questionCount"`
	QuestionType  string               `json:"questionType"`
}

type testPaperResponse struct {
	Success   bool   `json:"success"`
	TestPaper any    `json:"testPaper"`
	Warning   string `json:"warning,omitempty"`
}

// AnalyzeFiles 上传学习资料并逐个进行AI分析
// @Summary 分析学习资料
// @Description 上传学习资料文件，逐个提取文本并调用AI分析；AI不可用时降级为错误说明
// @Tags 备考
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "学习资料文件（可多个）"
// @Success 200 {object} controller.analyzeFilesResponse
// @Failure 400 {object} util.ErrorBody
// @Router /api/analyze-files [post]
func (c *StudyController) AnalyzeFiles(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		util.BadRequest(ctx, "请上传文件")
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		util.BadRequest(ctx, "请上传文件")
		return
	}

	files := make([]model.UploadedFile, 0, len(fileHeaders))
	metas := make([]fileMeta, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if c.cfg.Upload.MaxFileSize > 0 && fh.Size > c.cfg.Upload.MaxFileSize {
			util.BadRequest(ctx, fmt.Sprintf("文件「%s」超过大小限制", fh.Filename))
			return
		}
		f := c.saveAndExtract(ctx, fh)
		files = append(files, f)
		metas = append(metas, fileMeta{Name: f.Name, Type: f.MimeType})
	}

	analyses, warning := c.study.AnalyzeFiles(ctx.Request.Context(), files)

	ctx.JSON(http.StatusOK, analyzeFilesResponse{
		Success:  true,
		Files:    metas,
		Analysis: analyses,
		Warning:  warning,
	})
}

// saveAndExtract 将上传文件落到临时目录并提取文本；
// 提取过程会删除临时文件，保存失败时交由提取器生成错误说明内容
func (c *StudyController) saveAndExtract(ctx *gin.Context, fh *multipart.FileHeader) model.UploadedFile {
	mimeType := util.DetectMimeType(fh.Filename, fh.Header.Get("Content-Type"), nil)
	// 带纳秒前缀避免并发请求同名文件互相覆盖
	tmpPath := filepath.Join(c.cfg.Upload.TempDir,
		fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fh.Filename)))

	if err := ctx.SaveUploadedFile(fh, tmpPath); err != nil {
		logger.Log.Warn("上传文件保存失败", zap.String("file", fh.Filename), zap.Error(err))
	}

	return c.extract.Extract(tmpPath, fh.Filename, mimeType)
}

// GenerateStudyPlan 基于分析结果生成复习计划
// @Summary 生成学习计划
// @Description 根据资料分析结果生成按天复习计划；AI不可用时降级为预置计划
// @Tags 备考
// @Accept json
// @Produce json
// @Param request body controller.studyPlanRequest true "分析结果与计划参数"
// @Success 200 {object} controller.studyPlanResponse
// @Failure 400 {object} util.ErrorBody
// @Router /api/generate-study-plan [post]
func (c *StudyController) GenerateStudyPlan(ctx *gin.Context) {
	var req studyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.Files) == 0 {
		util.BadRequest(ctx, "请提供文件分析结果")
		return
	}

	targetScore := req.TargetScore
	if targetScore <= 0 {
		targetScore = defaultTargetScore
	}
	reviewDays := req.ReviewDays
	if reviewDays <= 0 {
		reviewDays = defaultReviewDays
	}

	// 编排中的未预期错误也不中断请求：恢复后按默认参数返回兜底计划
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("学习计划生成异常", zap.Any("panic", r))
			ctx.JSON(http.StatusOK, studyPlanResponse{
				Success:   true,
				StudyPlan: service.FallbackStudyPlan(nil, defaultTargetScore, defaultReviewDays),
				Warning:   "服务内部错误，已返回预置学习计划",
			})
		}
	}()

	plan, warning := c.study.GenerateStudyPlan(ctx.Request.Context(), req.Files, targetScore, reviewDays)

	ctx.JSON(http.StatusOK, studyPlanResponse{
		Success:   true,
		StudyPlan: plan,
		Warning:   warning,
	})
}

// GenerateTestPaper 基于资料生成模拟试卷
// @Summary 生成模拟试卷
// @Description 根据资料生成模拟试卷；AI不可用时降级为预置试卷
// @Tags 备考
// @Accept json
// @Produce json
// @Param request body controller.testPaperRequest true "资料与出题参数"
// @Success 200 {object} controller.testPaperResponse
// @Failure 400 {object} util.ErrorBody
// @Router /api/generate-test-paper [post]
func (c *StudyController) GenerateTestPaper(ctx *gin.Context) {
	var req testPaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.Files) == 0 {
		util.BadRequest(ctx, "请提供学习资料")
		return
	}

	targetScore := req.TargetScore
	if targetScore <= 0 {
		targetScore = defaultTargetScore
	}
	questionCount := req.QuestionCount
	if questionCount <= 0 {
		questionCount = defaultQuestionCount
	}
	questionType := strings.TrimSpace(req.QuestionType)
	if questionType == "" {
		questionType = defaultQuestionType
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("试卷生成异常", zap.Any("panic", r))
			ctx.JSON(http.StatusOK, testPaperResponse{
				Success:   true,
				TestPaper: service.FallbackTestPaper(nil),
				Warning:   "服务内部错误，已返回预置试卷",
			})
		}
	}()

	paper, warning := c.study.GenerateTestPaper(ctx.Request.Context(), req.Files, targetScore, questionCount, questionType)

	ctx.JSON(http.StatusOK, testPaperResponse{
		Success:   true,
		TestPaper: paper,
		Warning:   warning,
	})
}
