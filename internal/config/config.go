package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Blobstore struct {
		Type        string `yaml:"type"` // s3, memory
		Endpoint    string `yaml:"endpoint"`
		Region      string `yaml:"region"`
		AccessKey   string `yaml:"access_key"`
		SecretKey   string `yaml:"secret_key"`
		ImageBucket string `yaml:"image_bucket"`
		RawBucket   string `yaml:"raw_bucket"`
		VideoBucket string `yaml:"video_bucket"`
		BaseURL     string `yaml:"base_url"`
		SignTTL     int    `yaml:"sign_ttl"` // minutes a signed upload stays valid
	} `yaml:"blobstore"`

	Admin struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or environment variables when DATABASE_URL
// is set (test / container mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Blobstore.Type = "memory"
	cfg.Blobstore.BaseURL = "http://localhost/blobs"

	cfg.Admin.Username = os.Getenv("FIRST_ADMIN_USERNAME")
	cfg.Admin.Email = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Blobstore.SignTTL == 0 {
		cfg.Blobstore.SignTTL = 10
	}
	if cfg.Blobstore.ImageBucket == "" {
		cfg.Blobstore.ImageBucket = "devfolio-image"
	}
	if cfg.Blobstore.RawBucket == "" {
		cfg.Blobstore.RawBucket = "devfolio-raw"
	}
	if cfg.Blobstore.VideoBucket == "" {
		cfg.Blobstore.VideoBucket = "devfolio-video"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
