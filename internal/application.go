package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/score"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/rest"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Store is an opened score store together with the resource behind it.
type Store struct {
	score.Store
	close func() error
}

func (that *Store) Close() error {
	if that.close == nil {
		return nil
	}

	return that.close()
}

// OpenStore connects the key-value store selected by conf.Storage.Driver.
func OpenStore(ctx context.Context, logger *slog.Logger, conf *config.Config) (*Store, error) {
	log := logger.With("component", "app", "driver", conf.Storage.Driver)

	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == ":" {
			return nil, ErrAddrNotFound
		}

		client, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		log.Info("connected to redis", "addr", redisAddrString)

		return &Store{Store: repository.NewRedisStore(client), close: client.Close}, nil
	case config.DriverSQLite:
		db, err := storage.NewSQLiteStorage(conf.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = db.Init(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		log.Info("opened sqlite storage", "path", conf.SQLite.Path)

		return &Store{Store: repository.NewSQLiteStore(db.Connection), close: db.Close}, nil
	case config.DriverMemory:
		log.Warn("scores are kept in memory and will not survive a restart")

		return &Store{Store: repository.NewMemoryStore()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, conf.Storage.Driver)
	}
}

// NewMatchManager loads the persisted scores from store and starts a match.
func NewMatchManager(ctx context.Context, logger *slog.Logger, conf *config.Config, store score.Store) *usecase.MatchManager {
	tracker := score.NewTracker(logger, store, conf.Storage.Key)

	return usecase.NewMatchManager(ctx, logger, tracker, usecase.Options{
		PlayerX:        conf.Players.X,
		PlayerO:        conf.Players.O,
		StorageTimeout: conf.Storage.Timeout,
	})
}

// RunApp - runs the HTTP and websocket surfaces until ctx is canceled.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	store, err := OpenStore(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = store.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	matchManager := NewMatchManager(ctx, logger, conf, store)

	wsServer := websocket.New(logger, matchManager)
	matchManager.Subscribe(wsServer.Broadcast)

	router := rest.NewRouter(logger, matchManager, wsServer)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
