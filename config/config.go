package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
)

var DB *gorm.DB

// Settings carries everything the process reads from the environment.
type Settings struct {
	Port           string
	UploadDir      string
	ImageStore     string // "local" or "s3"
	S3Bucket       string
	S3Region       string
	AnthropicKey   string
	VisionModel    string
	MaxUploadBytes int64
}

func Load() Settings {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on process environment")
	}

	return Settings{
		Port:           envOr("PORT", "8080"),
		UploadDir:      envOr("UPLOAD_DIR", "uploads"),
		ImageStore:     envOr("IMAGE_STORE", "local"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       os.Getenv("S3_REGION"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		VisionModel:    envOr("VISION_MODEL", "claude-sonnet-4-5-20250929"),
		MaxUploadBytes: 16 << 20,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate runs schema migration for every model. Split out so tests can
// run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Goal{},
		&models.DailyLimit{},
	)
}
