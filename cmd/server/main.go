package main

import (
	"fmt"
	"os"
	"strconv"

	server "calc-api/internal/calculator/server"
	"calc-api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		Encoding:   getEnvOrDefault("LOG_ENCODING", "console"),
	})

	port := getEnvOrDefaultInt("PORT", 8000)
	logger.Infof("Starting calculator API on port %d", port)

	srv := server.NewServer()
	if err := srv.Run(fmt.Sprintf(":%d", port)); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	logger.Debugf("Environment variable %s not found, using default: %s", key, defaultValue)
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			if intValue < 1 {
				logger.Warnf("Environment variable %s has invalid value: %s (less than 1), using default: %d", key, value, defaultValue)
				return defaultValue
			}
			return intValue
		} else {
			logger.Warnf("Failed to parse environment variable %s as integer: %s, using default: %d", key, value, defaultValue)
		}
	}
	logger.Debugf("Environment variable %s not found, using default: %d", key, defaultValue)
	return defaultValue
}
