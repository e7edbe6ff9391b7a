package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	CategoriesPath string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	// An empty CategoriesPath selects the dictionary bundled with the binary.
	env := Config{
		ServerPort:     "9446",
		CategoriesPath: "",
	}

	envServerPort := os.Getenv("SERVER_PORT")
	envCategoriesPath := os.Getenv("CATEGORIES_PATH")

	if len(envServerPort) != 0 {
		env.ServerPort = envServerPort
	}

	if len(envCategoriesPath) != 0 {
		env.CategoriesPath = envCategoriesPath
	}

	return &env, nil
}
