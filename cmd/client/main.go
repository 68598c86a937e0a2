package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	client "calc-api/internal/calculator/client"
	"calc-api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(getEnvOrDefault("LOG_LEVEL", "warn")),
		OutputPath: "stderr",
		Encoding:   "console",
	})

	baseURL := flag.String("url", getEnvOrDefault("CALC_API_URL", "http://localhost:8000"), "base URL of the calculator API")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s [-url http://host:port] <add|sub|mul|div> <a> <b>\n", os.Args[0])
		os.Exit(2)
	}

	op := args[0]
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		logger.Fatalf("Invalid operand a: %s", args[1])
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		logger.Fatalf("Invalid operand b: %s", args[2])
	}

	c := client.NewClient(*baseURL)
	result, err := c.Calculate(a, b, op)
	if err != nil {
		logger.Fatalf("Calculation failed: %v", err)
	}

	fmt.Printf("%v %s %v = %v\n", result.A, result.Operator, result.B, result.Result)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
