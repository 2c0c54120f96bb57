package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/c360studio/footballgraph/cdc"
	"github.com/c360studio/footballgraph/config"
	"github.com/c360studio/footballgraph/export"
	"github.com/c360studio/footballgraph/mapping"
	"github.com/c360studio/footballgraph/metrics"
	"github.com/c360studio/footballgraph/relational"
	"github.com/c360studio/footballgraph/store"
	"github.com/c360studio/footballgraph/transform"
	"github.com/c360studio/footballgraph/validation"
	"github.com/c360studio/footballgraph/vocabulary/versioning"
)

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}

func loadRegistry(cfg *config.Config) (*mapping.Registry, error) {
	registry, err := mapping.Load(cfg.Graph.Namespace, cfg.Graph.MappingDir)
	if err != nil {
		return nil, fmt.Errorf("load mapping registry: %w", err)
	}
	return registry, nil
}

func connectJetStream(cfg *config.Config) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(cfg.NATS.URL, nats.Name(appName))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create JetStream context: %w", err)
	}
	return nc, js, nil
}

func openStore(ctx context.Context, cfg *config.Config, js jetstream.JetStream, logger *slog.Logger) (*store.GraphStore, error) {
	persist, err := store.OpenKV(ctx, js, cfg.NATS.VersionBucket)
	if err != nil {
		return nil, err
	}
	opts := store.DefaultOptions()
	opts.VersionControl = cfg.Pipeline.VersionControlEnabled()
	opts.TrackProvenance = cfg.Pipeline.TrackProvenanceEnabled()
	return store.Open(ctx, persist, opts, logger)
}

func runCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the CDC pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(*configPath, *logLevel)
		},
	}
}

// runPipeline wires the full pipeline and blocks until shutdown. Exit is
// graceful (nil) on signal; a store permanently unavailable after retries
// surfaces as an error and a non-zero exit code.
func runPipeline(configPath, logLevel string) error {
	logger := newLogger(logLevel)

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return err
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	logger.Info("Mapping registry loaded", "entity_types", len(registry.Types()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	nc, js, err := connectJetStream(cfg)
	if err != nil {
		return err
	}
	defer nc.Close()

	graphStore, err := openStore(ctx, cfg, js, logger)
	if err != nil {
		return err
	}

	var checker validation.ReferenceChecker
	if cfg.Database.URL != "" {
		resolver, err := relational.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer resolver.Close()
		checker = resolver
		logger.Info("Relational lookup enabled")
	} else {
		logger.Info("Relational lookup disabled; reference existence checks skipped")
	}

	pipeline, _ := validation.NewDefault(validation.Config{
		FailFast: cfg.Pipeline.FailFastEnabled(),
		Parallel: cfg.Pipeline.ParallelValidationEnabled(),
	}, logger, registry, checker)

	engine := transform.NewEngine(registry)
	quarantine := cdc.NewJetStreamQuarantine(js, cfg.NATS.QuarantineSubject)

	go func() {
		if err := metrics.Serve(ctx, cfg.Metrics.Addr, logger); err != nil {
			logger.Error("Metrics endpoint stopped", "error", err)
		}
	}()

	// One consumer task per partition; each owns its buffer. The shared
	// graph store serializes commits internally.
	var wg sync.WaitGroup
	errCh := make(chan error, len(cfg.Pipeline.Partitions))
	for _, partition := range cfg.Pipeline.Partitions {
		source, err := cdc.NewJetStreamSource(ctx, js,
			cfg.NATS.Stream,
			appName+"-"+partition,
			cfg.NATS.SubjectPrefix+"."+partition,
			cfg.Pipeline.BatchSize,
			0)
		if err != nil {
			stop()
			wg.Wait()
			return err
		}

		consumer := cdc.NewConsumer(cdc.Config{
			Partition:  partition,
			BatchSize:  cfg.Pipeline.BatchSize,
			MaxRetries: cfg.Pipeline.MaxRetries,
			RetryDelay: cfg.Pipeline.RetryDelay,
			Author:     cfg.Pipeline.Author,
		}, source, engine, pipeline, graphStore, quarantine, logger)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil {
				errCh <- err
				stop()
			}
		}()
	}

	logger.Info("Pipeline running",
		"partitions", len(cfg.Pipeline.Partitions),
		"stream", cfg.NATS.Stream,
		"batch_size", cfg.Pipeline.BatchSize)

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}
	logger.Info("Shutdown complete")
	return nil
}

func versionsCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "Print the version chain from root to tip",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			nc, js, err := connectJetStream(cfg)
			if err != nil {
				return err
			}
			defer nc.Close()

			graphStore, err := openStore(ctx, cfg, js, logger)
			if err != nil {
				return err
			}

			history, err := graphStore.History(ctx)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Println("no versions committed")
				return nil
			}
			for _, v := range history {
				fmt.Printf("%s  %s  author=%s  type=%s\n",
					v.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
					v.ID, v.Author, v.ChangeType)
			}
			return nil
		},
	}
}

func exportCmd(configPath, logLevel *string) *cobra.Command {
	var (
		versionID      string
		format         string
		outputPath     string
		withProvenance bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize a version's statement set to RDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			nc, js, err := connectJetStream(cfg)
			if err != nil {
				return err
			}
			defer nc.Close()

			graphStore, err := openStore(ctx, cfg, js, logger)
			if err != nil {
				return err
			}

			if versionID == "" {
				latest, err := graphStore.Latest(ctx)
				if err != nil {
					return err
				}
				versionID = latest.ID
			}

			set, err := graphStore.Get(ctx, versionID)
			if err != nil {
				return err
			}

			if withProvenance {
				v, err := graphStore.Version(ctx, versionID)
				if err != nil {
					return err
				}
				if v.Provenance != nil {
					set = set.Clone()
					for _, s := range v.Provenance.Statements(versioning.IRI(v.ID)) {
						set.Add(s)
					}
				}
			}

			output, err := export.Serialize(set, export.Format(format))
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Print(output)
				return nil
			}
			path := export.OutputPath(outputPath, export.Format(format))
			if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			if info, ok := export.GetFormatInfo(export.Format(format)); ok {
				logger.Info("exported graph",
					"path", path,
					"format", string(info.Name),
					"mime_type", info.MIMEType,
					"statements", set.Len())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&versionID, "version", "", "Version id (default: latest)")
	cmd.Flags().StringVar(&format, "format", string(export.FormatTurtle), "Output format (turtle, ntriples)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to file instead of stdout (extension added when missing)")
	cmd.Flags().BoolVar(&withProvenance, "provenance", false, "Include the version's PROV-O statements")
	return cmd
}

func mappingsCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings",
		Short: "Validate and list the entity-mapping registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			registry, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			for _, t := range registry.Types() {
				m, _ := registry.Resolve(t)
				refs := 0
				for _, p := range m.Properties {
					if p.IsReference() {
						refs++
					}
				}
				fmt.Printf("%-18s class=%s properties=%d references=%d\n",
					t, m.Class, len(m.Properties), refs)
			}
			return nil
		},
	}
}
