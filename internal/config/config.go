package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type AuthCodeConfig struct {
	Secret       string `yaml:"secret"`
	ResendWindow string `yaml:"resend_window"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
	UseSSL   bool   `yaml:"use_ssl"`
}

type ImageConfig struct {
	Dir       string `yaml:"dir"`
	MaxWidth  int    `yaml:"max_width"`
	ThumbSize int    `yaml:"thumb_size"`
	Quality   int    `yaml:"quality"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	AuthCode AuthCodeConfig `yaml:"auth_code"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Image    ImageConfig    `yaml:"image"`
}

type Config struct {
	Port             string
	GinMode          string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	TokenTTL         time.Duration
	AuthCodeSecret   string
	CodeResendWindow time.Duration
	SMTP             SMTPConfig
	ImageDir         string
	ImageMaxWidth    int
	ThumbSize        int
	JPEGQuality      int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Addr returns the SMTP server address in host:port form
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func Load() (*Config, error) {
	return LoadFrom(env("KOKOA_CONFIG", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	resendWindow, err := time.ParseDuration(configFile.AuthCode.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid auth code resend window: %w", err)
	}

	cfg := &Config{
		Port:             fmt.Sprintf("%d", configFile.App.Port),
		GinMode:          configFile.App.GinMode,
		DSN:              env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:        env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:    env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:          configFile.Redis.DB,
		JWTSecret:        env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:        configFile.JWT.Issuer,
		TokenTTL:         tokenTTL,
		AuthCodeSecret:   env("AUTH_CODE_SECRET", configFile.AuthCode.Secret),
		CodeResendWindow: resendWindow,
		SMTP:             configFile.SMTP,
		ImageDir:         configFile.Image.Dir,
		ImageMaxWidth:    configFile.Image.MaxWidth,
		ThumbSize:        configFile.Image.ThumbSize,
		JPEGQuality:      configFile.Image.Quality,
	}

	if u := os.Getenv("SMTP_USERNAME"); u != "" {
		cfg.SMTP.Username = u
	}
	if p := os.Getenv("SMTP_PASSWORD"); p != "" {
		cfg.SMTP.Password = p
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.AuthCodeSecret == "" {
		return nil, fmt.Errorf("auth code secret is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
