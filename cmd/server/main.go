package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	staticboard "orrery/internal/adapter/board/static"
	httpadapter "orrery/internal/adapter/http"
	metricsinmem "orrery/internal/adapter/metrics/inmemory"
	gormrepo "orrery/internal/adapter/repo/gorm"
	"orrery/internal/app/action"
	"orrery/internal/app/launch"
	"orrery/internal/app/observe"
	"orrery/internal/app/ports"
	"orrery/internal/app/reach"
	"orrery/internal/app/registry"
	"orrery/internal/app/replay"
	"orrery/internal/app/rotation"
	"orrery/internal/app/setup"
	"orrery/internal/app/status"
	"orrery/internal/domain/board"
	"orrery/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	db, err := gormrepo.OpenPostgres(requiredEnv("ORRERY_DB_DSN"))
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrations.Files); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	boardRepo := gormrepo.NewBoardStateRepo(db)
	probeRepo := gormrepo.NewProbeRepo(db)
	extraRepo := gormrepo.NewExtraObjectRepo(db)
	moveRepo := gormrepo.NewMoveExecutionRepo(db)
	eventRepo := gormrepo.NewEventRepo(db)
	txManager := gormrepo.NewTxManager(db)

	catalogProvider := staticboard.Provider{Extras: extraRepo}
	kpiRecorder := metricsinmem.NewRecorder()

	seedDemoGame(boardRepo)

	h := httpadapter.Handler{
		SetupUC:  setup.UseCase{BoardRepo: boardRepo},
		LaunchUC: launch.UseCase{TxManager: txManager, BoardRepo: boardRepo, ProbeRepo: probeRepo, EventRepo: eventRepo},
		ObserveUC: observe.UseCase{
			BoardRepo: boardRepo,
			ProbeRepo: probeRepo,
			Catalog:   catalogProvider,
		},
		MoveUC: action.UseCase{
			TxManager: txManager,
			BoardRepo: boardRepo,
			ProbeRepo: probeRepo,
			MoveRepo:  moveRepo,
			EventRepo: eventRepo,
			Catalog:   catalogProvider,
			Metrics:   kpiRecorder,
		},
		RotationUC: rotation.UseCase{
			TxManager: txManager,
			BoardRepo: boardRepo,
			ProbeRepo: probeRepo,
			EventRepo: eventRepo,
			Metrics:   kpiRecorder,
		},
		ReachUC:  reach.UseCase{BoardRepo: boardRepo, ProbeRepo: probeRepo, Catalog: catalogProvider},
		StatusUC: status.UseCase{BoardRepo: boardRepo, ProbeRepo: probeRepo},
		ReplayUC: replay.UseCase{EventRepo: eventRepo},
		RegistryUC: registry.UseCase{
			TxManager: txManager,
			BoardRepo: boardRepo,
			ExtraRepo: extraRepo,
			EventRepo: eventRepo,
			Catalog:   catalogProvider,
		},
		KPI: kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("ORRERY_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Printf("orrery server listening on %s", addr)
	s.Spin()
}

// seedDemoGame creates the demo board once so a fresh deployment is playable
// immediately. Start angles come from the environment; they default to an
// unrotated board.
func seedDemoGame(repo ports.BoardStateRepository) {
	gameID := strings.TrimSpace(os.Getenv("ORRERY_DEMO_GAME_ID"))
	if gameID == "" {
		gameID = "demo-game"
	}
	_, err := repo.Get(context.Background(), gameID)
	if err == nil {
		return
	}
	if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load demo game: %v", err)
	}

	rotation, err := board.NewRotationState(
		intEnv("BOARD_START_ANGLE1", 0),
		intEnv("BOARD_START_ANGLE2", 0),
		intEnv("BOARD_START_ANGLE3", 0),
	)
	if err != nil {
		log.Fatalf("demo game start angles: %v", err)
	}
	seed := ports.BoardState{
		GameID:            gameID,
		Rotation:          rotation,
		NextRotationLevel: 1,
		Version:           1,
	}
	if err := repo.SaveWithVersion(context.Background(), seed, 0); err != nil {
		log.Fatalf("seed demo game: %v", err)
	}
}

func requiredEnv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
