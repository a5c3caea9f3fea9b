// @title Kampus 后端 API
// @version 1.0
// @description Kampus 课程管理平台的后端服务器。

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"kampus_backend/internal/app"
	"kampus_backend/internal/config"
	"kampus_backend/pkg/logger"
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
