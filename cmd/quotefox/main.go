package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/QuoteFox/app/repository"
	apiv1 "github.com/ManuelReschke/QuoteFox/internal/api/v1"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/auth"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/cache"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/database"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/gateway"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/router"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/session"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/viewmodel"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	db := database.SetupDatabase()
	cacheClient := cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/quotefox to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app; form values are kept past the request, so Immutable
	app := fiber.New(fiber.Config{
		Views:     viewmodel.NewEngine(basePath + "views"),
		AppName:   "QuoteFox",
		Immutable: true,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	specFile := basePath + apiv1.SpecFile
	if _, err := apiv1.LoadSpec(specFile); err != nil {
		log.Printf("Warning: %v", err)
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/docs/api/",
		FilePath: specFile,
		Path:     "v1",
	}))

	// Checkout counters live in the cache when there is one
	var checkouts counter.Recorder = counter.NewMemoryRecorder()
	if cacheClient != nil {
		checkouts = counter.NewRedisRecorder(cacheClient)
	}

	// The API always serves the local database; the customer/policy page can
	// be pointed at a remote instance with GATEWAY_URL.
	localBackend := gateway.NewRepositoryBackend(repository.NewRepositories(db))
	var recordsBackend gateway.Backend = localBackend
	if url := env.GetEnv("GATEWAY_URL", ""); url != "" {
		log.Printf("Customer/policy page uses remote API %s", url)
		recordsBackend = gateway.NewHTTPBackend(url, nil)
	}

	// ROUTER
	router.InstallRouter(app, router.Dependencies{
		Backend:   localBackend,
		Records:   gateway.NewStore(recordsBackend),
		Auth:      auth.NewService(),
		Sessions:  session.NewSessionStore(session.NewStorage(cacheClient)),
		Checkouts: checkouts,
	})

	return app
}
