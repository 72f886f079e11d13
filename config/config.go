package config

import "github.com/spf13/viper"

type Config struct {
	HTTPPort  string `mapstructure:"HTTP_PORT"`
	DataPath  string `mapstructure:"DATA_PATH"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	GinMode   string `mapstructure:"GIN_MODE"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("HTTP_PORT", "127.0.0.1:8080")
	viper.SetDefault("DATA_PATH", "vivaleve.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GIN_MODE", "release")

	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("DATA_PATH")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("LOG_LEVEL")
	viper.BindEnv("GIN_MODE")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}
	err = viper.Unmarshal(&config)
	return
}
