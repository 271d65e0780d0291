// Package cli implements the shadegraph command-line interface.
//
// This package provides commands for inspecting the node archetype catalog,
// validating and diffing graph documents, rendering node-link diagrams, and
// managing the named graph store. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - catalog: List archetypes and show their slot layouts
//   - browse: Interactive archetype browser
//   - validate: Check a graph document for structural problems
//   - diff: Compare two graph documents
//   - render: Generate DOT or SVG node-link diagrams
//   - store: Save, load, list, and delete named graphs
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shaderforge/shadegraph/pkg/buildinfo"
	"github.com/shaderforge/shadegraph/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "shadegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (or defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}

	cfg, err := LoadConfig("")
	if err != nil {
		c.Logger.Warn("config unreadable, using defaults", "err", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Shadegraph builds and inspects shader node graphs",
		Long:         `Shadegraph is a CLI tool for working with shader node graphs: browsing the archetype catalog, validating and diffing graph documents, rendering node-link diagrams, and keeping a library of named graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.diffCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// openStore creates the store backend selected by configuration.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Store
	switch cfg.Backend {
	case "", BackendFile:
		return store.NewFileStore(cfg.Dir)

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		ttl := time.Duration(cfg.Redis.TTLHours) * time.Hour
		return store.NewRedisStore(client, "", ttl), nil

	case BackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, mongooptions.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return &mongoStore{MongoStore: store.NewMongoStore(coll), client: client}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, redis, or mongo)", cfg.Backend)
	}
}

// mongoStore ties the driver client's lifetime to the store handle.
type mongoStore struct {
	*store.MongoStore
	client *mongo.Client
}

func (s *mongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
