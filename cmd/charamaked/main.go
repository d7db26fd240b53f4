package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/charamake/server/internal/config"
	"github.com/charamake/server/internal/customize"
	"github.com/charamake/server/internal/data"
	"github.com/charamake/server/internal/icon"
	"github.com/charamake/server/internal/persist"
	"github.com/charamake/server/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m          charamaked  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      character appearance service         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mservice:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main service logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/charamaked.toml"
	if p := os.Getenv("CHARAMAKED_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Service.Name)

	lang, err := language.Parse(cfg.Service.Language)
	if err != nil {
		return fmt.Errorf("parse service language %q: %w", cfg.Service.Language, err)
	}

	// 3. Load data tables
	printSection("data")

	sheets, err := data.LoadCharaMakeTable(cfg.Data.CharaMakePath)
	if err != nil {
		return fmt.Errorf("load charamake sheets: %w", err)
	}
	printStat("charamake sheets", sheets.Count())

	npcs, err := data.LoadNPCAppearanceTable(cfg.Data.NPCAppearancePath)
	if err != nil {
		return fmt.Errorf("load npc appearances: %w", err)
	}
	printStat("npc appearances", npcs.Count())

	// 3a. Appearance scripts extend the NPC table.
	engine, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("appearance scripts: %w", err)
	}
	defer engine.Close()
	scripted := engine.NPCAppearances()
	npcs.Add(scripted)
	printStat("scripted appearances", len(scripted))

	// 4. Icon store
	icons := icon.NewStore(fileIconLoader(cfg.Data.IconDir))

	// 5. Build the customization sets
	printSection("customization")

	svc := customize.NewService(log, sheets, npcs, icons, lang)

	buildCtx, cancelBuild := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancelBuild()
	if err := svc.Await(buildCtx); err != nil {
		return fmt.Errorf("build customization sets: %w", err)
	}
	printStat("population groups", customize.NumSets)
	printStat("cached icons", icons.Len())
	printOK("customization sets ready")
	fmt.Println()

	// 6. Optional override store
	if cfg.Database.Enabled {
		printSection("database")

		dbCtx, cancelDB := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelDB()

		db, err := persist.NewDB(dbCtx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("postgres connected")

		if err := persist.RunMigrations(dbCtx, db.Pool, log); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		printOK("migrations applied")

		overrides := persist.NewOverrideRepo(db)
		if n, err := overrides.Count(dbCtx); err == nil {
			printStat("stored overrides", int(n))
		}
		fmt.Println()
	}

	printReady("serving appearance lookups")
	fmt.Println()

	// 7. Run until signalled
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	return nil
}

// fileIconLoader reads icon assets as <id>.tex files under dir.
func fileIconLoader(dir string) icon.Loader {
	return func(id uint32) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, fmt.Sprintf("%06d.tex", id)))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
