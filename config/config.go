package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	Log          Log
	GeminiApiKey string
	GeminiModel  string `validate:"required"`
	Exam         ExamConfig
}

type Server struct {
	Port string `validate:"required,numeric"`
}

type Database struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Password string `json:"-"`
	Name     string `validate:"required"`
	SSLMode  string `validate:"oneof=disable require verify-ca verify-full"`
}

// Redis caches finished exam results. An empty Addr disables the cache.
type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string `json:"-"`
	DB       int    `validate:"gte=0,lte=15"`
	TTL      time.Duration
}

type Log struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Pretty bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TTL_MINUTES", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.TTL = time.Duration(viper.GetInt("REDIS_TTL_MINUTES")) * time.Minute

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.GeminiModel = viper.GetString("GEMINI_MODEL")

	exam, err := loadExamConfig()
	if err != nil {
		return nil, err
	}
	config.Exam = exam

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Bool("redisEnabled", config.Redis.Addr != "").
		Bool("geminiEnabled", config.GeminiApiKey != "").
		Int("examQuestions", config.Exam.TotalQuestions()).
		Msg("Config loaded")
	return &config, nil
}

// Validate checks struct tags and the exam configuration invariants.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return c.Exam.Validate()
}

func loadExamConfig() (ExamConfig, error) {
	exam := DefaultExamConfig()

	if raw := viper.GetString("EXAM_AREA_QUOTAS"); raw != "" {
		areas, err := ParseAreaQuotas(raw)
		if err != nil {
			return ExamConfig{}, err
		}
		exam.Areas = areas
	}
	if viper.IsSet("EXAM_PASSING_SCORE") {
		exam.PassingScore = viper.GetFloat64("EXAM_PASSING_SCORE")
	}
	if viper.IsSet("EXAM_MASTERY_THRESHOLD") {
		exam.MasteryThreshold = viper.GetInt("EXAM_MASTERY_THRESHOLD")
	}
	if viper.IsSet("EXAM_TIME_LIMIT_MINUTES") {
		exam.TimeLimit = time.Duration(viper.GetInt("EXAM_TIME_LIMIT_MINUTES")) * time.Minute
	}
	return exam, nil
}
