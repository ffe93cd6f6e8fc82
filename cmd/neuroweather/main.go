package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/neuroweather/neuroweather/internal/api/http"
	"github.com/neuroweather/neuroweather/internal/assistant"
	"github.com/neuroweather/neuroweather/internal/cache"
	"github.com/neuroweather/neuroweather/internal/config"
	"github.com/neuroweather/neuroweather/internal/llm"
	"github.com/neuroweather/neuroweather/internal/location"
	"github.com/neuroweather/neuroweather/internal/scheduler"
	"github.com/neuroweather/neuroweather/internal/weather"
	"github.com/neuroweather/neuroweather/internal/weather/openmeteo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	serve := flag.Bool("serve", false, "run the web console instead of the interactive CLI")
	flag.Parse()

	// Load configuration. A missing GROQ_API_KEY is the only fatal setting.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound Open-Meteo calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Response cache: sqlite when a path is configured, memory otherwise.
	var store cache.Cache
	if cfg.CachePath == "" {
		store = cache.NewMemory()
	} else {
		sqliteStore, err := cache.NewSQLite(cfg.CachePath)
		if err != nil {
			log.Printf("WARN: falling back to in-memory cache: %v", err)
			store = cache.NewMemory()
		} else {
			store = sqliteStore
		}
	}
	defer store.Close()

	// Data, resolution and language-model collaborators.
	meteo := openmeteo.NewClient(httpClient, store, cfg.CacheTTL)
	svc := weather.NewService(meteo, meteo)
	resolver := location.NewResolver(cfg.FuzzyThreshold, cfg.GeocoderAPIKey)
	groq := llm.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)

	bot := assistant.New(groq, groq, resolver, svc)

	// Cache maintenance and forecast prewarming.
	var places []location.Match
	for _, city := range cfg.PrewarmCities {
		m, ok := resolver.Resolve(city)
		if !ok {
			log.Printf("prewarm city %q not found in gazetteer; skipping", city)
			continue
		}
		places = append(places, m)
	}

	sched := scheduler.New(store, meteo, places, cfg.SchedulerInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	if *serve {
		runServer(bot, cfg.Port)
		return
	}
	runCLI(bot)
}

// runServer exposes the assistant through the Fiber web console.
func runServer(bot httpapi.Assistant, port string) {
	app := fiber.New(fiber.Config{
		AppName:               "neuroweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          120 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "neuroweather",
		})
	})

	httpapi.RegisterRoutes(app, bot)

	go func() {
		log.Printf("NeuroWeather web console listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// runCLI runs the interactive conversation loop.
func runCLI(bot httpapi.Assistant) {
	fmt.Println("NeuroWeather initialized. Type a weather-related question or type 'exit' to quit.")
	fmt.Println(strings.Repeat("-", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "q":
			fmt.Println("Terminating session...")
			return
		}

		response := bot.Answer(context.Background(), input)
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println(response)
		fmt.Println(strings.Repeat("-", 60))
	}
}
