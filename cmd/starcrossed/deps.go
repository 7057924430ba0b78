package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/starcrossed/internal/application/handlers"
	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/ports"
	"github.com/ersonp/starcrossed/internal/domain/services"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
	"github.com/ersonp/starcrossed/internal/infrastructure/kvstore/redis"
	"github.com/ersonp/starcrossed/internal/infrastructure/logger"
	"github.com/ersonp/starcrossed/internal/infrastructure/parsers"
	"github.com/ersonp/starcrossed/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config              *config.Config
	Saves               *config.SavesConfig
	BasePath            string
	PlayerHandler       *handlers.PlayerHandler
	InteractionHandler  *handlers.InteractionHandler
	RelationshipHandler *handlers.RelationshipHandler
	ConflictHandler     *handlers.ConflictHandler
	SaveHandler         *handlers.SaveHandler
	RosterHandler       *handlers.RosterHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	store  ports.GameStore
	logger *zap.Logger
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withPlayer resolves the save slot (--slot or the active one) and passes its player ID.
func withPlayer(fn func(d *Deps, playerID string) error) error {
	return withDeps(func(d *Deps) error {
		entry, err := resolveSlot(d.Saves)
		if err != nil {
			return err
		}
		return fn(d, entry.PlayerID)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	saves, err := config.LoadSaves(cwd)
	if err != nil {
		return fmt.Errorf("loading saves: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync fails on some terminals

	roster, err := loadRoster(cfg, cwd)
	if err != nil {
		return err
	}

	store, err := openStore(cfg, cwd, log)
	if err != nil {
		return err
	}
	defer store.Close()

	// Ensure schema exists
	ctx := context.Background()
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring %s schema: %w", cfg.Storage.Backend, err)
	}

	game := services.NewGameService(store, roster, services.NewRandomDice(), gameTuning(cfg), log)

	deps := &internalDeps{
		Deps: Deps{
			Config:              cfg,
			Saves:               saves,
			BasePath:            cwd,
			PlayerHandler:       handlers.NewPlayerHandler(game),
			InteractionHandler:  handlers.NewInteractionHandler(game),
			RelationshipHandler: handlers.NewRelationshipHandler(game),
			ConflictHandler:     handlers.NewConflictHandler(game),
			SaveHandler:         handlers.NewSaveHandler(game),
			RosterHandler:       handlers.NewRosterHandler(roster),
		},
		store:  store,
		logger: log,
	}

	return fn(deps)
}

// openStore creates the game store selected by the config.
func openStore(cfg *config.Config, basePath string, log *zap.Logger) (ports.GameStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.SQLitePath(basePath)})
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		return repo, nil
	case config.BackendRedis:
		repo, err := redis.NewRepository(cfg.Storage.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("creating redis repository: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}

// loadRoster loads the configured roster file, or the built-in companions.
func loadRoster(cfg *config.Config, basePath string) (*services.RosterService, error) {
	path := cfg.RosterPath(basePath)
	if path == "" {
		return services.NewDefaultRosterService(), nil
	}

	profiles, err := parsers.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	roster, err := services.NewRosterService(profiles)
	if err != nil {
		return nil, fmt.Errorf("loading roster %s: %w", path, err)
	}
	return roster, nil
}

// gameTuning maps the config's tuning section onto the game service's tuning.
func gameTuning(cfg *config.Config) services.GameTuning {
	tuning := services.DefaultGameTuning()
	ev := cfg.Tuning.Events
	tuning.EventDeltas = map[entities.InteractionKind]int{
		entities.InteractionDialogue: ev.Dialogue,
		entities.InteractionGift:     ev.Gift,
		entities.InteractionDate:     ev.Date,
		entities.InteractionActivity: ev.Activity,
	}
	tuning.Conflict = services.ConflictTuning{
		BaseChance:      cfg.Tuning.Conflict.BaseChance,
		AffectionFactor: cfg.Tuning.Conflict.AffectionFactor,
		MinChance:       cfg.Tuning.Conflict.MinChance,
	}
	return tuning
}

// resolveSlot returns the slot named by --slot, or the active slot.
func resolveSlot(saves *config.SavesConfig) (*config.SaveEntry, error) {
	if globalSlot != "" {
		return saves.Get(globalSlot)
	}
	return saves.Current()
}
