package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	AuthSvcUrl     string `mapstructure:"AUTH_SVC_URL"`
	UserSvcUrl     string `mapstructure:"USER_SVC_URL"`
	CourseSvcUrl   string `mapstructure:"COURSE_SVC_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	CookieDomain   string `mapstructure:"COOKIE_DOMAIN"`
	CookieSecure   bool   `mapstructure:"COOKIE_SECURE"`
	LogMode        string `mapstructure:"LOG_MODE"`
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("AUTH_SVC_URL", "localhost:50051")
	v.SetDefault("USER_SVC_URL", "localhost:50052")
	v.SetDefault("COURSE_SVC_URL", "localhost:50053")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("LOG_MODE", "development")

	for _, key := range []string{
		"PORT", "AUTH_SVC_URL", "USER_SVC_URL", "COURSE_SVC_URL", "ALLOWED_ORIGINS",
		"REDIS_ADDR", "COOKIE_DOMAIN", "COOKIE_SECURE", "LOG_MODE",
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
