package router

import (
	"database/sql"
	"net/http"

	mem "pawpal/internal/adapters/storage/memory"
	pg "pawpal/internal/adapters/storage/postgres"
	"pawpal/internal/domain/carelog"
	"pawpal/internal/domain/owners"
	"pawpal/internal/domain/pets"
	"pawpal/internal/domain/planner"
	"pawpal/internal/domain/recurrence"
	"pawpal/internal/domain/tasks"
	"pawpal/internal/middleware"
	"pawpal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, se intenta abrir DSN.
	DB *sql.DB

	// DSN de Postgres (config.DBDSN). Vacío => repos in-memory.
	DSN string

	Log logger.Logger
}

// NewRouter arma repos → services → rutas. Devuelve también el service de
// recurrencia para que cmd/api lo cuelgue del cron de rollover.
func NewRouter(opts Options) (http.Handler, *recurrence.Service) {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		ownerRepo owners.Repository
		petRepo   pets.Repository
		taskRepo  tasks.Repository
		careRepo  carelog.Repository
	)

	// Si no te pasan DB explícita, se abre el DSN de la config
	db := opts.DB
	if db == nil && opts.DSN != "" {
		opened, err := pg.Open(opts.DSN)
		if err == nil {
			db = opened
		} else {
			log.Warn("postgres open failed, falling back to in-memory", map[string]any{
				"err": err.Error(),
			})
		}
	}

	if db != nil {
		ownerRepo = pg.NewOwnersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		taskRepo = pg.NewTasksRepo(db)
		careRepo = pg.NewCareLogRepo(db)
	} else {
		ownerRepo = mem.NewOwnerRepo()
		petRepo = mem.NewPetRepo()
		taskRepo = mem.NewTaskRepo()
		careRepo = mem.NewCareLogRepo()
	}

	// Services por módulo. Los repos de pets/tasks alimentan AllTasks
	// directamente (orden de registro / de inserción ya garantizado).
	ownersSvc := owners.NewService(ownerRepo, petRepo, taskRepo)
	petsSvc := pets.NewService(petRepo, ownersSvc, taskRepo)
	careSvc := carelog.NewService(careRepo)
	tasksSvc := tasks.NewService(taskRepo, ownersSvc, petsSvc, careSvc, log)
	plannerSvc := planner.NewService(ownersSvc)
	recurrenceSvc := recurrence.NewService(ownersSvc, tasksSvc, log)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc)
	tasks.RegisterRoutes(r, tasksSvc)
	planner.RegisterRoutes(r, plannerSvc)
	carelog.RegisterRoutes(r, careSvc, petsSvc)

	return r, recurrenceSvc
}
