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
	GRPCPort      string `mapstructure:"GRPC_PORT"`
	UserSvcUrl    string `mapstructure:"USER_SVC_URL"`
	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	SeedOnStart   bool   `mapstructure:"SEED_ON_START"`
	MetricsAddr   string `mapstructure:"METRICS_ADDR"`
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
	v.SetDefault("GRPC_PORT", ":50053")
	v.SetDefault("USER_SVC_URL", "localhost:50052")
	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("LOG_MODE", "development")

	for _, key := range []string{
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PATH",
		"GRPC_PORT", "USER_SVC_URL", "CATALOG_SOURCE", "SEED_ON_START", "METRICS_ADDR", "LOG_MODE",
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
