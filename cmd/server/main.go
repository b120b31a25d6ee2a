package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmarkovic/magacin/internal/api"
	"github.com/nmarkovic/magacin/internal/config"
	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/persist"
	"github.com/nmarkovic/magacin/internal/seed"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("magacin", flag.ContinueOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", cfg.DBPath, "")
	fs.StringVar(&dbPath, "d", cfg.DBPath, "")

	var addr string
	fs.StringVar(&addr, "addr", cfg.Addr, "")
	fs.StringVar(&addr, "a", cfg.Addr, "")

	var seedPath string
	fs.StringVar(&seedPath, "seed", cfg.SeedPath, "")
	fs.StringVar(&seedPath, "s", cfg.SeedPath, "")

	var adminName string
	fs.StringVar(&adminName, "user", cfg.AdminName, "")
	fs.StringVar(&adminName, "u", cfg.AdminName, "")

	var logPath string
	fs.StringVar(&logPath, "log", cfg.LogPath, "")
	fs.StringVar(&logPath, "l", cfg.LogPath, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: magacin [flags]

Flags are overrides; each defaults to its MAGACIN_* environment variable.

  -d, -db <path>          SQLite database path (default: magacin.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -s, -seed <path>        YAML seed file for first run (default: none)
  -u, -user <name>        admin name on first run (default: Admin)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	db, err := persist.OpenSQLite(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("database ready", "path", dbPath)

	ctx := context.Background()

	// JWT secret from env, or a persisted auto-generated one.
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = persist.EnsureJWTSecret(ctx, db)
		if err != nil {
			slog.Error("failed to get JWT secret", "error", err)
			os.Exit(1)
		}
	}

	// Seed data only fills collections the database has nothing stored for.
	var initial warehouse.Seed
	if seedPath != "" {
		initial, err = seed.Load(seedPath)
		if err != nil {
			slog.Error("failed to load seed file", "error", err)
			os.Exit(1)
		}
		slog.Info("seed file loaded", "path", seedPath,
			"users", len(initial.Users), "items", len(initial.Items))
	}

	store, err := warehouse.Open(ctx, db, initial)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	if err := ensureAdmin(ctx, store, adminName); err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(store, jwtSecret),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing database")
}

// ensureAdmin creates an admin account with a generated password when no
// admin capable of logging in exists yet. The password is printed once.
func ensureAdmin(ctx context.Context, store *warehouse.Store, name string) error {
	for _, u := range store.Users() {
		if u.Role == model.RoleAdmin && u.PasswordHash != "" {
			return nil
		}
	}

	password, err := generatePassword(16)
	if err != nil {
		return fmt.Errorf("generating password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	userCode, err := generateUserCode()
	if err != nil {
		return fmt.Errorf("generating user code: %w", err)
	}

	email := "admin@magacin.local"
	admin, err := store.CreateUser(ctx, model.User{
		Name:         name,
		Email:        email,
		Role:         model.RoleAdmin,
		UserCode:     userCode,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	fmt.Println("Admin account created:")
	fmt.Printf("  Name:        %s\n", admin.Name)
	fmt.Printf("  Email:       %s\n", email)
	fmt.Printf("  Password:    %s\n", password)
	fmt.Printf("  Pickup code: %s\n", userCode)
	fmt.Println()
	fmt.Println("Save this password — it cannot be recovered.")
	return nil
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}

// generateUserCode creates the 6-character code pickup confirmations are
// checked against.
func generateUserCode() (string, error) {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	result := make([]byte, 6)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
