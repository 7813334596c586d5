// Command ceosim runs the game-studio management simulation, either as an
// HTTP server with persistent saves or as a headless deterministic run.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hokim6252-glitch/ceosim/internal/api"
	"github.com/hokim6252-glitch/ceosim/internal/config"
	"github.com/hokim6252-glitch/ceosim/internal/driver"
	"github.com/hokim6252-glitch/ceosim/internal/entropy"
	"github.com/hokim6252-glitch/ceosim/internal/oracle"
	"github.com/hokim6252-glitch/ceosim/internal/sim"
	"github.com/hokim6252-glitch/ceosim/internal/store"
)

const autosaveInterval = time.Minute

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "ceosim",
		Short: "A turn-based game-studio management simulation",
	}
	root.AddCommand(serveCmd(logger), simulateCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP with SQLite autosave",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), logger, cfg)
		},
	}
}

func serve(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	catalog := sim.DefaultCatalog()

	var src entropy.Source
	if cfg.Seed != 0 {
		src = entropy.NewSeeded(cfg.Seed)
		slog.Info("using seeded entropy", "seed", cfg.Seed)
	} else {
		src = entropy.NewCrypto()
	}
	engine := sim.NewEngine(src, catalog)

	state, err := db.Load(cfg.SaveSlot, catalog)
	switch {
	case errors.Is(err, store.ErrNoSave):
		slog.Info("no save found, starting a new game",
			"slot", cfg.SaveSlot, "company", cfg.CompanyName)
		state = engine.NewGame(cfg.CompanyName)
		if err := db.Save(cfg.SaveSlot, state); err != nil {
			return fmt.Errorf("initial save: %w", err)
		}
	case err != nil:
		return err
	default:
		slog.Info("save loaded",
			"slot", cfg.SaveSlot,
			"company", state.Company.Name,
			"date", state.Date.Format("2006-01-02"))
	}

	holder := driver.New(engine, state)

	client := oracle.NewClient(cfg.AnthropicKey)
	if client.Enabled() {
		holder.WithOracle(func(ctx context.Context, s *sim.State) (*sim.EventPayload, error) {
			return oracle.GenerateEvent(ctx, client, s)
		}, cfg.OracleChance)
		slog.Info("oracle enabled", "chance", cfg.OracleChance)
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set, oracle events disabled")
	}

	if cfg.AdminKey == "" {
		slog.Warn("CEOSIM_ADMIN_KEY not set, action and advance endpoints disabled")
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.New(logger, holder, cfg.AdminKey).Handler(),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ticker := time.NewTicker(autosaveInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			if err := db.Save(cfg.SaveSlot, holder.State()); err != nil {
				slog.Error("autosave failed", "error", err)
			}
		case err := <-errCh:
			return err
		case <-ctx.Done():
			break loop
		}
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	if err := db.Save(cfg.SaveSlot, holder.State()); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	slog.Info("game saved, goodbye")
	return nil
}

func simulateCmd() *cobra.Command {
	var (
		weeks    int
		seed     int64
		company  string
		briefing bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation headless and print a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if weeks < 1 {
				return fmt.Errorf("--weeks must be at least 1")
			}
			return simulate(cmd.Context(), weeks, seed, company, briefing)
		},
	}
	cmd.Flags().IntVar(&weeks, "weeks", 52, "number of weeks to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "entropy seed (same seed, same run)")
	cmd.Flags().StringVar(&company, "company", "Acme Games", "company name")
	cmd.Flags().BoolVar(&briefing, "briefing", false, "print an AI-written briefing for the final week (needs ANTHROPIC_API_KEY)")
	return cmd
}

func simulate(ctx context.Context, weeks int, seed int64, company string, briefing bool) error {
	engine := sim.NewEngine(entropy.NewSeeded(seed), sim.DefaultCatalog())
	holder := driver.New(engine, engine.NewGame(company))

	start := holder.State()

	// Run all but the last week, snapshot, then finish. The snapshot
	// feeds the final-week briefing.
	var penultimate *sim.State
	if weeks > 1 {
		if _, err := holder.AdvanceWeeks(ctx, weeks-1); err != nil {
			return err
		}
	}
	penultimate = holder.State()
	reports, err := holder.AdvanceWeeks(ctx, 1)
	if err != nil {
		return err
	}

	final := holder.State()

	fmt.Printf("Simulated %d weeks of %s (seed %d).\n\n", weeks, company, seed)
	fmt.Printf("  Date:        %s -> %s\n",
		start.Date.Format("2006-01-02"), final.Date.Format("2006-01-02"))
	fmt.Printf("  Cash:        %s -> %s won\n",
		humanize.Comma(start.Company.Assets), humanize.Comma(final.Company.Assets))
	fmt.Printf("  Reputation:  %.0f -> %.0f\n",
		start.Company.Reputation, final.Company.Reputation)
	fmt.Printf("  Employees:   %d -> %d\n", start.Company.Employees, final.Company.Employees)
	fmt.Printf("  Tier:        %s\n", final.Company.Tier)

	fmt.Println("\nProjects:")
	for _, p := range final.Projects {
		fmt.Printf("  %-24s %-12s %6.1f%%  (%s)\n", p.Name, p.Genre, p.Progress, p.Status)
	}

	fmt.Println("\nRecent log:")
	for i, entry := range final.EventLog {
		if i >= 8 {
			break
		}
		fmt.Printf("  [%s] %s\n", entry.Date.Format("2006-01-02"), entry.Title)
	}

	if briefing {
		client := oracle.NewClient(os.Getenv("ANTHROPIC_API_KEY"))
		if !client.Enabled() {
			return fmt.Errorf("--briefing needs ANTHROPIC_API_KEY")
		}
		memo, err := oracle.GenerateBriefing(ctx, client, penultimate, final, reports[0])
		if err != nil {
			return fmt.Errorf("briefing: %w", err)
		}
		fmt.Printf("\nBriefing:\n%s\n", memo)
	}

	return nil
}
