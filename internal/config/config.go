package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
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
		// TTL токена в часах, по умолчанию 7 дней
		TTL int `yaml:"ttl"`
	} `yaml:"jwt"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`
}

var AppConfig *Config

const defaultJWTTTLHours = 24 * 7

// LoadConfig загружает конфигурацию из config.yaml либо из переменных
// окружения (если задан DATABASE_URL). Отсутствие JWT-секрета - фатально:
// процесс не должен запускаться без него.
func LoadConfig() {
	var cfg Config

	// .env для локальной разработки, отсутствие файла не ошибка
	_ = godotenv.Load()

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

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if ttlStr := os.Getenv("JWT_TTL_HOURS"); ttlStr != "" {
			cfg.JWT.TTL, _ = strconv.Atoi(ttlStr)
		}
		cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
		cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
		cfg.Admin.Name = os.Getenv("ADMIN_NAME")
	}

	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured (jwt.secret / JWT_SECRET)")
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = defaultJWTTTLHours
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}

	AppConfig = &cfg
}

// GetConfig возвращает загруженную конфигурацию
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
