package config

import (
	"os"
	"sync"
)

type UploadConfig struct {
	FlagDir   string
	ResumeDir string
	PhotoDir  string
	PublicURL string
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		uploadConfig = &UploadConfig{
			FlagDir:   envOr("UPLOAD_FLAG_DIR", "./public/uploads/flags"),
			ResumeDir: envOr("UPLOAD_RESUME_DIR", "./public/uploads/resumes"),
			PhotoDir:  envOr("UPLOAD_PHOTO_DIR", "./public/uploads/photos"),
			PublicURL: envOr("UPLOAD_PUBLIC_URL", "/uploads"),
		}
	})
	return uploadConfig
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
