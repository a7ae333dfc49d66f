package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderCloudinary = "cloudinary"
	ProviderS3         = "s3"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Gallery    GalleryConfig
	Cloudinary CloudinaryConfig
	S3         S3Config
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	AllowedOrigins  string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// GalleryConfig holds the gallery's provider choice and listing rules
type GalleryConfig struct {
	Provider       string
	AllowedFolders []string
	MaxResults     int
	UngroupedLabel string
}

// CloudinaryConfig holds Cloudinary Admin API credentials.
// URL is the raw CLOUDINARY_URL; the SDK parses it and explicit fields win.
type CloudinaryConfig struct {
	URL        string
	CloudName  string
	APIKey     string
	APISecret  string
	APIBaseURL string
	Timeout    time.Duration
}

// S3Config holds the S3/MinIO bucket used when Provider is "s3"
type S3Config struct {
	Bucket         string
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	Prefix         string
}

const defaultAllowedOrigins = "http://localhost:4321,http://localhost:3000,https://bluemindr.netlify.app,https://*.netlify.app"

// Load reads configuration from environment variables
func Load() Config {
	cfg := Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			AllowedOrigins:  getEnv("ALLOWED_ORIGINS", defaultAllowedOrigins),
			ReadTimeout:     parseDuration(getEnv("SERVER_READ_TIMEOUT", "15s"), 15*time.Second),
			WriteTimeout:    parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "90s"), 90*time.Second),
			IdleTimeout:     parseDuration(getEnv("SERVER_IDLE_TIMEOUT", "60s"), 60*time.Second),
			ShutdownTimeout: parseDuration(getEnv("SERVER_SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		},
		Gallery: GalleryConfig{
			Provider:       strings.ToLower(getEnv("GALLERY_PROVIDER", ProviderCloudinary)),
			AllowedFolders: splitList(getEnv("GALLERY_ALLOWED_FOLDERS", "gallery,flyers,electronic,programming,design,art")),
			MaxResults:     parseInt(getEnv("GALLERY_MAX_RESULTS", "500"), 500),
			UngroupedLabel: getEnv("GALLERY_UNGROUPED_LABEL", "Sin carpeta"),
		},
		Cloudinary: CloudinaryConfig{
			URL:        getEnv("CLOUDINARY_URL", ""),
			CloudName:  getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:     getEnv("CLOUDINARY_API_KEY", ""),
			APISecret:  getEnv("CLOUDINARY_API_SECRET", ""),
			APIBaseURL: getEnv("CLOUDINARY_API_BASE_URL", "https://api.cloudinary.com"),
			Timeout:    parseDuration(getEnv("CLOUDINARY_TIMEOUT", "60s"), 60*time.Second),
		},
		S3: S3Config{
			Bucket:         getEnv("S3_BUCKET", ""),
			Region:         getEnv("S3_REGION", "us-east-1"),
			Endpoint:       getEnv("S3_ENDPOINT", ""),
			PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			SecretKey:      getEnv("S3_SECRET_KEY", ""),
			UseSSL:         getEnv("S3_USE_SSL", "true") == "true",
			Prefix:         getEnv("S3_PREFIX", ""),
		},
	}

	return cfg
}

// LoadDotEnv loads variables from the given .env files (".env" by default)
// without overriding the ones already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

func parseInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
