package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-intake-backend/internal/clinics"
	"clinic-intake-backend/internal/extractions"
	"clinic-intake-backend/internal/queue"
	"clinic-intake-backend/internal/services/health"
	"clinic-intake-backend/internal/shared/config"
	"clinic-intake-backend/internal/shared/server"
	"clinic-intake-backend/internal/shared/storage/db"
	"clinic-intake-backend/internal/shared/storage/object"
	"clinic-intake-backend/internal/shared/storage/object/placeholder"
	"clinic-intake-backend/internal/uploads"
	"clinic-intake-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.Store
	Queue             queue.Client
	ClinicsRepo       clinics.Repo
	UsersRepo         users.Repo
	UploadsRepo       uploads.Repo
	ClinicsService    *clinics.Service
	UploadsService    *uploads.Service
	ExtractionService *extractions.Service
	ClinicHandler     *clinics.Handler
	UploadHandler     *uploads.Handler
	ExtractionHandler *extractions.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  placeholder.New(),
		Queue:  queueClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		Health:            health.NewService(),
		ClinicHandler:     app.ClinicHandler,
		UploadHandler:     app.UploadHandler,
		ExtractionHandler: app.ExtractionHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.QueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx, cfg.QueueURL, cfg.AWSRegion)
}

func buildServices(app *App) {
	var clinicRepo clinics.Repo
	var userRepo users.Repo
	var uploadRepo uploads.Repo

	if app.DB != nil {
		clinicRepo = &clinics.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		uploadRepo = uploads.NewPGRepo(app.DB)
	} else {
		memUsers := users.NewMemoryRepo()
		memClinics := clinics.NewMemoryRepo(memUsers)
		clinicRepo = memClinics
		userRepo = memUsers
		uploadRepo = uploads.NewMemoryRepo(memClinics, memUsers)
	}

	uploadSvc := &uploads.Service{Repo: uploadRepo, Store: app.Store}
	clinicSvc := clinics.NewService(clinicRepo, uploadRepo)
	extractionSvc := &extractions.Service{
		Uploads: uploadRepo,
		Users:   userRepo,
		Queue:   app.Queue,
	}

	app.ClinicsRepo = clinicRepo
	app.UsersRepo = userRepo
	app.UploadsRepo = uploadRepo
	app.ClinicsService = clinicSvc
	app.UploadsService = uploadSvc
	app.ExtractionService = extractionSvc
	app.ClinicHandler = clinics.NewHandler(clinicSvc)
	app.UploadHandler = uploads.NewHandler(uploadSvc)
	app.ExtractionHandler = extractions.NewHandler(extractionSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

type configError string

func (e configError) Error() string { return string(e) }

const errDatabaseRequired = configError("DATABASE_URL is required")
