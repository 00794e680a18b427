package main

import (
	"context"
	"fmt"
	"log"

	common_api "stitchmes/internal/api"
	"stitchmes/internal/config"
	"stitchmes/internal/database"
	"stitchmes/internal/features/auth"
	"stitchmes/internal/features/emblem"
	"stitchmes/internal/features/laser"
	"stitchmes/internal/features/maintenance"
	"stitchmes/internal/features/production"
	"stitchmes/internal/features/qc"
	"stitchmes/internal/features/search"
	"stitchmes/internal/features/system"
	"stitchmes/internal/features/user"
	"stitchmes/internal/logger"
	"stitchmes/internal/middleware"
	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	app.Use(middleware.RequestIdMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repositories
			user.NewUserRepository,
			production.NewProductionRepository,
			qc.NewQCRepository,
			emblem.NewEmblemRepository,
			laser.NewLaserRepository,
			search.NewSearchRepository,

			// Initialize Services
			auth.NewAuthService,
			production.NewProductionService,
			qc.NewQCService,
			emblem.NewEmblemService,
			laser.NewLaserService,
			search.NewSearchService,
			maintenance.NewMaintenanceService,

			// Initialize Controllers
			auth.NewAuthController,
			production.NewProductionController,
			qc.NewQCController,
			emblem.NewEmblemController,
			laser.NewLaserController,
			search.NewSearchController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(production.NewProductionApi),
			AsRoute(qc.NewQCApi),
			AsRoute(emblem.NewEmblemApi),
			AsRoute(laser.NewLaserApi),
			AsRoute(search.NewSearchApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Sign session tokens with the configured secret
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, maintenanceService maintenance.MaintenanceService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return maintenanceService.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return maintenanceService.Stop()
					},
				})
			},
		),
	)

	app.Run()
}
