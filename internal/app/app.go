package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kampus_backend/internal/config"
	"kampus_backend/internal/controller"
	"kampus_backend/internal/repository"
	"kampus_backend/internal/service"
	"kampus_backend/pkg/configwatcher"
	"kampus_backend/pkg/database"
	"kampus_backend/pkg/docstore"
	"kampus_backend/pkg/logger"
	"kampus_backend/pkg/monitoring"
	"kampus_backend/pkg/security"
	"kampus_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Store           docstore.Store
	configCallbacks []func(*config.Config)
}

type repositories struct {
	course     *repository.CourseRepository
	module     *repository.ModuleRepository
	user       *repository.UserRepository
	assignment *repository.AssignmentRepository
	enrollment *repository.EnrollmentRepository
	progress   *repository.ProgressRepository
}

type services struct {
	course     *service.CourseService
	module     *service.ModuleService
	user       *service.UserService
	assignment *service.AssignmentService
	enrollment *service.EnrollmentService
	progress   *service.ProgressService
}

type controllers struct {
	course     *controller.CourseController
	user       *controller.UserController
	assignment *controller.AssignmentController
	enrollment *controller.EnrollmentController
	progress   *controller.ProgressController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(store docstore.Store) *repositories {
	return &repositories{
		course:     repository.NewCourseRepository(store),
		module:     repository.NewModuleRepository(store),
		user:       repository.NewUserRepository(store),
		assignment: repository.NewAssignmentRepository(store),
		enrollment: repository.NewEnrollmentRepository(store),
		progress:   repository.NewProgressRepository(store),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		course:     service.NewCourseService(repos.course),
		module:     service.NewModuleService(repos.module),
		user:       service.NewUserService(repos.user),
		assignment: service.NewAssignmentService(repos.assignment),
		enrollment: service.NewEnrollmentService(repos.enrollment),
		progress:   service.NewProgressService(repos.progress, repos.module),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		course:     controller.NewCourseController(s.course, s.module),
		user:       controller.NewUserController(s.user),
		assignment: controller.NewAssignmentController(s.assignment),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		progress:   controller.NewProgressController(s.progress),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Store:  docstore.NewGormStore(db),
	}

	repos := app.initRepositories(app.Store)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kampus-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	// 配置热更新
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.Config = newCfg
	})
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
