package config

import (
	"github.com/chooselife/strongfoundations/pkg/database"

	"github.com/spf13/viper"
)

type Config struct {
	DBType     string `mapstructure:"DB_TYPE"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPath     string `mapstructure:"DB_PATH"`
	GRPCPort   string `mapstructure:"GRPC_PORT"`
	LogMode    string `mapstructure:"LOG_MODE"`
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
	v.SetDefault("GRPC_PORT", ":50052")
	v.SetDefault("LOG_MODE", "development")

	for _, key := range []string{
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PATH",
		"GRPC_PORT", "LOG_MODE",
	} {
		_ = v.BindEnv(key)
	}

	// a missing app.env is fine, the environment is enough
	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}
	err = v.Unmarshal(&config)
	return
}
