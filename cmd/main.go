package main

import (
	"github.com/sirupsen/logrus"

	"github.com/piskorekkevin-afk/essenstracker/config"
	"github.com/piskorekkevin-afk/essenstracker/routes"
	"github.com/piskorekkevin-afk/essenstracker/services"
	"github.com/piskorekkevin-afk/essenstracker/storage"
)

func main() {
	cfg := config.Load()
	config.InitDB()

	var store storage.ImageStore
	var err error
	if cfg.ImageStore == "s3" {
		store, err = storage.NewS3Store(cfg.S3Bucket, cfg.S3Region)
	} else {
		store, err = storage.NewLocalStore(cfg.UploadDir)
	}
	if err != nil {
		logrus.Fatalf("failed to initialize image store: %v", err)
	}

	ai := services.NewAnthropicClient(cfg.AnthropicKey, cfg.VisionModel)

	r := routes.SetupRouter(config.DB, cfg, store, ai, ai)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
