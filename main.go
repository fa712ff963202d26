// @title AI备考助手后端 API
// @version 1.0
// @description 上传学习资料，生成AI学习计划与模拟试卷；AI不可用时返回预置内容。

// @host localhost:7860
// @BasePath /
package main

import (
	"exam_prep_backend/internal/app"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
