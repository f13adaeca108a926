// contentcheck loads a content directory (or database) through the full
// validation pipeline and prints a per-file report of rejected entries and
// substituted defaults. Exit code 1 means a foundational category failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/duskhall/engine/internal/config"
	"github.com/duskhall/engine/internal/data"
	"github.com/duskhall/engine/internal/store"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("interrupted", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := flag.String("config", "config/content.yaml", "content config path")
	verbose := flag.Bool("v", false, "print warnings, not just errors")
	publish := flag.Bool("publish", false, "upload the data directory's files to the database source and list stored documents")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg, err := config.LoadContent(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if *publish {
		return publishContent(ctx, cfg)
	}

	var fetcher data.Fetcher
	switch cfg.Source {
	case "database":
		if err := store.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("preparing content store: %w", err)
		}
		st, err := store.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to content store: %w", err)
		}
		defer st.Close()
		fetcher = st
	default:
		fetcher = data.DirFetcher{Root: cfg.DataDir}
	}

	tables := data.NewTables()
	loader := data.NewLoader(tables, fetcher)

	loadErr := loader.LoadAll(ctx, cfg.Manifest())

	var totalRegistered, totalRejected, totalWarnings int
	for _, r := range loader.Reports() {
		totalRegistered += r.Registered
		totalRejected += r.Rejected
		totalWarnings += len(r.Warnings)
		if len(r.Errors) == 0 && (!*verbose || len(r.Warnings) == 0) {
			continue
		}
		fmt.Printf("%s: %d registered, %d rejected\n", r.Path, r.Registered, r.Rejected)
		for _, e := range r.Errors {
			fmt.Printf("  error: %s\n", e)
		}
		if *verbose {
			for _, w := range r.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}
		}
	}

	fmt.Printf("\n%d templates registered, %d rejected, %d warnings\n",
		totalRegistered, totalRejected, totalWarnings)
	fmt.Printf("entities=%d races=%d classes=%d items=%d\n",
		tables.Entities.Count(), tables.Races.Count(), tables.Classes.Count(), tables.Items.Count())

	if loadErr != nil {
		return fmt.Errorf("content load failed: %w", loadErr)
	}
	return nil
}

// publishContent uploads every manifest file from the data directory into
// the database source, then lists what the store holds.
func publishContent(ctx context.Context, cfg config.Content) error {
	if cfg.Source != "database" {
		return fmt.Errorf("publish requires a database source, config has %q", cfg.Source)
	}

	if err := store.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("preparing content store: %w", err)
	}
	st, err := store.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to content store: %w", err)
	}
	defer st.Close()

	src := data.DirFetcher{Root: cfg.DataDir}
	for _, path := range cfg.Manifest().Files() {
		body, err := src.Fetch(ctx, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := st.Put(ctx, path, body); err != nil {
			return err
		}
	}

	paths, err := st.Paths(ctx)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	fmt.Printf("\n%d documents stored\n", len(paths))
	return nil
}
