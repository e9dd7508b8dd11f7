package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-waterpolo/internal/config"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-waterpolo/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-waterpolo/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fantasy-waterpolo/internal/platform/cache"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
	"github.com/riskibarqy/fantasy-waterpolo/internal/usecase"
)

// App owns the HTTP server and the long-lived collaborators behind it.
type App struct {
	Server    *http.Server
	MatchDays *usecase.MatchDayService

	startInterval time.Duration
	logger        *logging.Logger
	db            *sqlx.DB
}

type repositories struct {
	players   player.Repository
	teams     team.Repository
	matchDays matchday.Repository
	stats     stats.Repository
	history   rosterhistory.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	policy, err := usecase.ParseSnapshotPolicy(cfg.SnapshotPolicy)
	if err != nil {
		return nil, err
	}

	a := &App{startInterval: cfg.MatchDayStartInterval, logger: logger}

	repos, err := a.buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	notifier := usecase.NewChangeNotifier(logger.Named("notifier"))
	if cfg.CacheEnabled {
		repos = withReadCaches(cfg, repos)
	}

	historySvc := usecase.NewRosterHistoryService(repos.history, repos.teams, repos.matchDays, notifier, logger.Named("roster_history"))
	historySvc.SetSnapshotWorkers(cfg.SnapshotWorkers)
	resolver := usecase.NewRosterResolver(repos.history, repos.matchDays)
	scoringSvc := usecase.NewScoringService(
		repos.teams,
		repos.matchDays,
		repos.stats,
		repos.history,
		resolver,
		scoring.DefaultPointsConfig(),
		cfg.StandingsCacheTTL,
		logger.Named("scoring"),
	)
	scoringSvc.SetStandingsWorkers(cfg.StandingsWorkers)
	notifier.Subscribe(scoringSvc.Standings())

	a.MatchDays = usecase.NewMatchDayService(repos.matchDays, repos.history, historySvc, notifier, policy, logger.Named("matchday"))

	handler := httpapi.NewHandler(httpapi.Services{
		Players:       usecase.NewPlayerService(repos.players),
		PlayerStats:   usecase.NewPlayerStatsService(repos.stats, repos.players, repos.matchDays, notifier, logger.Named("stats")),
		Teams:         usecase.NewTeamService(repos.teams, repos.players, notifier, logger.Named("team")),
		MatchDays:     a.MatchDays,
		RosterHistory: historySvc,
		Resolver:      resolver,
		Scoring:       scoringSvc,
	}, logger.Named("httpapi"))

	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		AdminToken:          cfg.AdminToken,
		CaptureRequestBody:  cfg.UptraceEnabled && cfg.UptraceCaptureRequestBody,
		RequestBodyMaxBytes: cfg.UptraceRequestBodyMaxBytes,
	})

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildRepositories(cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return repositories{}, err
		}
		a.db = db
		if cfg.SeedDemoData {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := postgres.BootstrapSeed(ctx, db)
			cancel()
			if err != nil {
				return repositories{}, fmt.Errorf("seed demo data: %w", err)
			}
		}
		a.logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL), "seeded", cfg.SeedDemoData)
		return repositories{
			players:   postgres.NewPlayerRepository(db),
			teams:     postgres.NewTeamRepository(db),
			matchDays: postgres.NewMatchDayRepository(db),
			stats:     postgres.NewStatsRepository(db),
			history:   postgres.NewRosterHistoryRepository(db),
		}, nil
	default:
		repos := repositories{
			players:   memory.NewPlayerRepository(nil),
			teams:     memory.NewTeamRepository(nil),
			matchDays: memory.NewMatchDayRepository(nil),
			stats:     memory.NewStatsRepository(nil),
			history:   memory.NewRosterHistoryRepository(),
		}
		if cfg.SeedDemoData {
			repos.players = memory.NewPlayerRepository(memory.SeedPlayers())
			repos.teams = memory.NewTeamRepository(memory.SeedTeams())
			repos.matchDays = memory.NewMatchDayRepository(memory.SeedMatchDays())
			repos.stats = memory.NewStatsRepository(memory.SeedStats())
		}
		a.logger.Info("storage ready", "driver", config.StorageMemory, "seeded", cfg.SeedDemoData)
		return repos, nil
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// withReadCaches puts TTL caches in front of the player and stats
// repositories. The stats decorator drops its entries on every upsert.
func withReadCaches(cfg config.Config, repos repositories) repositories {
	repos.players = cache.NewPlayerRepository(repos.players, basecache.NewStore(cfg.PlayerListCacheTTL))
	repos.stats = cache.NewStatsRepository(repos.stats, basecache.NewStore(cfg.PlayerStatsCacheTTL))
	return repos
}

// RunMatchDayStarter sweeps due matchdays until ctx is cancelled. A zero
// interval disables it.
func (a *App) RunMatchDayStarter(ctx context.Context) {
	if a.startInterval <= 0 {
		a.logger.Info("matchday starter disabled", "reason", "MATCHDAY_START_INTERVAL=0")
		return
	}

	ticker := time.NewTicker(a.startInterval)
	defer ticker.Stop()

	a.logger.Info("matchday starter running", "interval", a.startInterval.String())
	for {
		a.startDue(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *App) startDue(ctx context.Context) {
	result, err := a.MatchDays.StartDueMatchDays(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "start due matchdays failed", "error", err)
		return
	}
	if len(result.Started) > 0 || len(result.Failed) > 0 {
		a.logger.InfoContext(ctx, "start due matchdays finished",
			"started", result.Started,
			"failed", result.Failed,
		)
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
