package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readtracker/internal/config"
	"github.com/mrlokans/readtracker/internal/database"
	"github.com/mrlokans/readtracker/internal/exporters"
	http_controllers "github.com/mrlokans/readtracker/internal/http"
	"github.com/mrlokans/readtracker/internal/scheduler"
	"github.com/mrlokans/readtracker/internal/tasks"
	"github.com/mrlokans/readtracker/internal/tracker"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// SIGKILL cannot be caught, so only INT and TERM are handled.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting readtracker v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	svc := tracker.NewService(db)

	routerCfg := http_controllers.RouterConfig{
		Books:        svc,
		Articles:     svc,
		Stats:        svc,
		Database:     db,
		ActivityDays: cfg.Reports.ActivityDays,
		ReadOnly:     cfg.Global.ReadOnly,
		Version:      version,
	}
	if cfg.Global.ReadOnly {
		log.Printf("Read-only mode enabled - write operations will be blocked")
	}

	// The task queue is optional; without it exports only run from the CLI.
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var reportScheduler *scheduler.ReportExportScheduler
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewExportReportQueue(svc, exporters.NewExporterSet(cfg.Reports.OutputDir)),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		routerCfg.TaskQueue = taskClient

		reportScheduler = scheduler.NewReportExportScheduler(taskClient, scheduler.ReportExportConfig{
			Enabled:  cfg.ReportSync.Enabled,
			Schedule: cfg.ReportSync.Schedule,
			Days:     cfg.Reports.ActivityDays,
			Formats:  cfg.ReportSync.Formats,
		})
		if err := reportScheduler.Start(taskCtx); err != nil {
			log.Printf("WARNING: Failed to start report export scheduler: %v", err)
		}
	} else if cfg.ReportSync.Enabled {
		log.Printf("WARNING: REPORT_SYNC_ENABLED is set but the task queue is disabled; scheduled exports will not run")
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if reportScheduler != nil {
			reportScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
