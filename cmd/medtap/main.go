// @title MedTap Client
// @version 1.0
// @description Cliente local de MedTap AI: vistas JSON sobre el servicio remoto.

// @host localhost:5173
// @BasePath /
// @schemes http

package main

//go:generate swag init -g main.go -d ./,../../internal -o ../../docs

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"medtap-client/internal/adapters/medtapapi"
	"medtap-client/internal/adapters/storage/file"
	"medtap-client/internal/adapters/storage/memory"
	"medtap-client/internal/adapters/storage/postgres"
	"medtap-client/internal/domain/auth"
	"medtap-client/internal/platform/config"
	"medtap-client/internal/platform/logger"
	portsession "medtap-client/internal/ports/session"
	"medtap-client/internal/router"
	"medtap-client/internal/session"
)

func main() {
	cmd := flag.String("cmd", "serve", "serve | status | login | logout")
	email := flag.String("email", os.Getenv("MEDTAP_EMAIL"), "email para -cmd login")
	password := flag.String("password", os.Getenv("MEDTAP_PASSWORD"), "password para -cmd login")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	if err := run(cfg, log, *cmd, *email, *password); err != nil {
		log.Error("command failed", map[string]any{"cmd": *cmd, "error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger, cmd, email, password string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	persister, closeFn, err := openPersister(ctx, cfg.Session)
	if err != nil {
		return err
	}
	defer closeFn()

	store, err := session.Open(ctx, persister, log)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	api, err := medtapapi.NewClient(medtapapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		OnSessionExpired: func() {
			log.Warn("session expired, redirecting to login", nil)
		},
	}, store, log)
	if err != nil {
		return err
	}

	switch cmd {
	case "serve":
		return serve(ctx, cfg, log, store, api)
	case "status":
		printStatus(store)
		return nil
	case "login":
		if email == "" || password == "" {
			return errors.New("login requires -email and -password (or MEDTAP_EMAIL / MEDTAP_PASSWORD)")
		}
		if _, err := api.Login(ctx, auth.LoginCredentials{Email: email, Password: password}); err != nil {
			return err
		}
		printStatus(store)
		return nil
	case "logout":
		if err := api.Logout(ctx); err != nil {
			log.Warn("remote logout failed, clearing local session", map[string]any{"error": err})
			store.ClearAuth()
		}
		fmt.Println("logged out")
		return nil
	default:
		return fmt.Errorf("unknown -cmd %q", cmd)
	}
}

func serve(ctx context.Context, cfg *config.Config, log logger.Logger, store *session.Store, api *medtapapi.Client) error {
	handler := router.NewRouter(router.Options{Session: store, API: api, Logger: log})

	if len(cfg.CORS.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: cfg.CORS.AllowCredentials,
		})
		handler = c.Handler(handler)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Server.Addr, "api": api.BaseURL()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openPersister elige el backend de sesión configurado.
func openPersister(ctx context.Context, cfg config.SessionConfig) (portsession.Persister, func(), error) {
	noop := func() {}
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewSessionStore(), noop, nil
	case config.BackendPostgres:
		db, err := postgres.Open(cfg.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ensure schema: %w", err)
		}
		return postgres.NewSessionRepo(db, cfg.Namespace), closer(db), nil
	default:
		st, err := file.NewSessionStore(cfg.Dir, cfg.Namespace)
		if err != nil {
			return nil, noop, err
		}
		return st, noop, nil
	}
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}

func printStatus(store *session.Store) {
	snap := store.Snapshot()
	if snap.Token == "" {
		fmt.Println("not logged in")
		return
	}
	who := "(unknown user)"
	if snap.User != nil {
		who = fmt.Sprintf("%s <%s> [%s]", snap.User.ID, snap.User.Email, snap.User.UserType)
	}
	fmt.Println("logged in as", who)
	if exp, ok := session.TokenExpiry(snap.Token); ok {
		fmt.Println("token expires at", exp.Local().Format(time.RFC1123))
	}
}
