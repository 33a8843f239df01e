package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	_ "github.com/joho/godotenv/autoload"

	"github.com/mohitsahu0302/scientificcalculator/modules/api"
	"github.com/mohitsahu0302/scientificcalculator/modules/calculator"
	"github.com/mohitsahu0302/scientificcalculator/modules/stats"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment (and .env, if present)
	httpPort := getEnvInt("HTTP_PORT", 5000)
	allowedOrigins := getEnv("CORS_ALLOWED_ORIGINS", "*")

	logLevel := mono.LogLevelInfo
	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		logLevel = mono.LogLevelDebug
	case "warn", "warning":
		logLevel = mono.LogLevelWarn
	case "error":
		logLevel = mono.LogLevelError
	}

	log.Println("=== Scientific Calculator ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("CORS Allowed Origins: %s", allowedOrigins)

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(logLevel),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	logger := app.Logger()

	// Order: independent modules first, then modules with dependencies
	// - stats: event consumer (CalculationPerformed)
	// - calculator: request-reply service + event emitter
	// - api: Fiber HTTP server, depends on calculator
	app.Register(stats.NewModule(logger))
	app.Register(calculator.NewModule(logger))
	app.Register(api.NewModule(fmt.Sprintf(":%d", httpPort), allowedOrigins, logger))

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(httpPort)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(httpPort int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoint (http://localhost:%d):", httpPort)
	log.Println("  POST   /calculate   - Evaluate an operation (+, -, *, /, power) or function (sin, cos, tan, exp)")
	log.Println("")
	log.Println("Bus services:")
	log.Println("  services.calculator.calculate")
	log.Println("  services.stats.get-stats")
	log.Println("")
	log.Println("Example:")
	log.Printf(`  curl -X POST http://localhost:%d/calculate -H 'Content-Type: application/json' -d '{"operand1":6,"operand2":3,"operation":"/"}'`, httpPort)
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
