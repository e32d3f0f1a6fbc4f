package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/duhai-alshukaili/cems/internal/app/controllers"
	appMigrations "github.com/duhai-alshukaili/cems/internal/app/migrations"
	appRepos "github.com/duhai-alshukaili/cems/internal/app/repositories"
	appRoutes "github.com/duhai-alshukaili/cems/internal/app/routes"
	appServices "github.com/duhai-alshukaili/cems/internal/app/services"
	"github.com/duhai-alshukaili/cems/internal/config"
	"github.com/duhai-alshukaili/cems/internal/db"
	"github.com/duhai-alshukaili/cems/internal/importer"
	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
	"github.com/duhai-alshukaili/cems/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	UserService       *appServices.UserService
	DepartmentService *appServices.DepartmentService
	CourseService     *appServices.CourseService
	RoomService       *appServices.RoomService

	DepartmentController *appControllers.DepartmentController
	UserController       *appControllers.UserController
	CourseController     *appControllers.CourseController
	RoomController       *appControllers.RoomController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// RunMigrations applies all SQL files from the migrations directory.
func RunMigrations(dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	passwords := importer.NewPasswordGenerator()

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, passwords, cfg.Import.EmailDomain)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.SectionRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.UserRepository,
	)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)

	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)

	return deps, nil
}

// SetupRouter builds the gin engine with all routes configured.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.DepartmentController,
		deps.UserController,
		deps.CourseController,
		deps.RoomController,
	)

	lgr.Info().Msg("Router configured")
	return router
}
