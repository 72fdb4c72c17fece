package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const EnvFilename = ".env"

// InitEnvironmentVariables loads a .env file from the working directory when
// one exists. Deployed environments inject real env vars instead.
func InitEnvironmentVariables() error {
	if err := godotenv.Load(EnvFilename); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("InitEnvironmentVariables: failed to load %s file: %v", EnvFilename, err)
	}

	return nil
}

func GetEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("environment variable %s not set", key)
	}

	return value, nil
}

func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
