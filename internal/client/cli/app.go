package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/client/client"
	"github.com/dmitrijs2005/stakemarket/internal/client/config"
	"github.com/dmitrijs2005/stakemarket/internal/client/daemon"
	"github.com/dmitrijs2005/stakemarket/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Compute is the part of the daemon client the CLI uses.
type Compute interface {
	daemon.HealthChecker
	Compute(ctx context.Context, contentRef, algorithm string) (json.RawMessage, error)
}

type App struct {
	config *config.Config
	db     *sql.DB
	api    client.Client
	auth   services.AuthService
	market *services.MarketService
	daemon Compute
	out    io.Writer

	mu         sync.RWMutex
	identity   string
	mode       Mode
	daemonUp   bool
	daemonSeen bool
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.CachePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewMarketClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := client.NewRepositories(db)

	return &App{
		config: c,
		db:     db,
		api:    apiClient,
		auth:   services.NewAuthService(apiClient, repos.Metadata),
		market: services.NewMarketService(apiClient, repos),
		daemon: daemon.NewClient(c.DaemonURL, 30*time.Second),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.auth.Close(ctx); err != nil {
			log.Printf("close client: %v", err)
		}
		_ = a.db.Close()
	}()

	log.Println("Welcome to the market CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.startWatchers(ctx)

	runREPL(ctx, a.commands(), a.isLoggedIn, a.getStatus, bufio.NewScanner(os.Stdin))
}

// restoreSession logs in with the configured token, or the one saved by a
// previous run.
func (a *App) restoreSession(ctx context.Context) {
	var (
		id  string
		err error
	)
	if a.config.AccessToken != "" {
		id, err = a.auth.Login(ctx, a.config.AccessToken)
	} else {
		id, err = a.auth.Resume(ctx)
	}

	switch {
	case errors.Is(err, services.ErrNoSession):
		return
	case err != nil:
		log.Printf("Session not restored: %v", err)
		return
	}
	a.setIdentity(id)
	log.Printf("Logged in as %s", id)
}

// healthFunc adapts a ping to daemon.HealthChecker.
type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

// startWatchers polls the server and the compute daemon until ctx is done.
func (a *App) startWatchers(ctx context.Context) {
	interval := a.config.HealthCheckInterval

	server := daemon.NewWatcher(healthFunc(a.auth.Ping), interval).Start(ctx)
	go func() {
		for st := range server {
			if st.Healthy {
				a.setMode(ModeOnline)
			} else {
				a.setMode(ModeOffline)
			}
		}
	}()

	compute := daemon.NewWatcher(a.daemon, interval).Start(ctx)
	go func() {
		for st := range compute {
			a.setDaemon(st.Healthy)
		}
	}()
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) setDaemon(up bool) {
	a.mu.Lock()
	changed := !a.daemonSeen || a.daemonUp != up
	a.daemonUp, a.daemonSeen = up, true
	a.mu.Unlock()

	if changed && !up {
		log.Printf("Compute daemon at %s is not reachable", a.config.DaemonURL)
	}
}

func (a *App) setIdentity(id string) {
	a.mu.Lock()
	a.identity = id
	a.mu.Unlock()
}

func (a *App) whoami() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.identity
}

func (a *App) isLoggedIn() bool {
	return a.whoami() != ""
}

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var parts []string
	if a.identity != "" {
		parts = append(parts, a.identity)
	}
	if a.mode != "" {
		parts = append(parts, string(a.mode))
	}
	if a.daemonSeen {
		if a.daemonUp {
			parts = append(parts, "daemon:up")
		} else {
			parts = append(parts, "daemon:down")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}
