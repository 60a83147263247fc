package config

import (
	"github.com/chooselife/strongfoundations/pkg/database"

	"github.com/spf13/viper"
)

type Config struct {
	DBType        string `mapstructure:"DB_TYPE"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	DBPath        string `mapstructure:"DB_PATH"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	AccessSecret  string `mapstructure:"ACCESS_SECRET"`
	RefreshSecret string `mapstructure:"REFRESH_SECRET"`
	GRPCPort      string `mapstructure:"GRPC_PORT"`
	UserSvcURL    string `mapstructure:"USER_SVC_URL"`
	APIKey        string `mapstructure:"SENDGRID_API_KEY"`
	SMTPEmail     string `mapstructure:"SMTP_EMAIL"`
	FrontendURL   string `mapstructure:"FRONTEND_URL"`
	InviteOnly    bool   `mapstructure:"INVITE_ONLY"`
	LogMode       string `mapstructure:"LOG_MODE"`
}

func (c Config) Database() database.Options {
	return database.Options{
		Type:     c.DBType,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		Path:     c.DBPath,
	}
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("DB_TYPE", "postgres")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("GRPC_PORT", ":50051")
	v.SetDefault("USER_SVC_URL", "localhost:50052")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("INVITE_ONLY", false)
	v.SetDefault("LOG_MODE", "development")

	for _, key := range []string{
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PATH",
		"REDIS_ADDR", "ACCESS_SECRET", "REFRESH_SECRET", "GRPC_PORT", "USER_SVC_URL",
		"SENDGRID_API_KEY", "SMTP_EMAIL", "FRONTEND_URL", "INVITE_ONLY", "LOG_MODE",
	} {
		_ = v.BindEnv(key)
	}

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}
	err = v.Unmarshal(&config)
	return
}
