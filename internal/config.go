package internal

import "github.com/caarlos0/env/v11"

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`
	Port        string `env:"PORT" envDefault:"8080"`
	UsersFile   string `env:"USERS_FILE" envDefault:"users.json"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func ReadConfig() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}
