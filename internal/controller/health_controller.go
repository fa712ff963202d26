package controller

import (
	"exam_prep_backend/internal/config"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	cfg *config.Config
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{cfg: cfg}
}

// @Summary 健康检查
// @Description 检查服务状态及AI凭证是否已配置
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	message := "AI备考助手服务运行中"
	if c.cfg.AI.APIKey == "" {
		message = "AI备考助手服务运行中（未配置AI凭证，将使用预置内容）"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": message,
	})
}
