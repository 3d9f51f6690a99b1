// Package app assembles a ready Analyzer from configuration: the script
// repository, the name resolver stack and the optional MQTT event sink.
package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/AaronLay10/SaiScope/internal/analyzer"
	"github.com/AaronLay10/SaiScope/internal/comment"
	"github.com/AaronLay10/SaiScope/internal/config"
	"github.com/AaronLay10/SaiScope/internal/events"
	"github.com/AaronLay10/SaiScope/internal/mqtt"
	"github.com/AaronLay10/SaiScope/internal/resolver"
	"github.com/AaronLay10/SaiScope/internal/scriptgraph"
	"github.com/AaronLay10/SaiScope/internal/storage"
)

// Options selects the data source and outputs.
type Options struct {
	// RowsFile, when set, serves rows from a JSON or YAML export instead of
	// the configured database.
	RowsFile string
	// Publish forwards events to MQTT when the config names a broker.
	Publish bool
}

// App owns everything Open created.
type App struct {
	Config   *config.Config
	Analyzer *analyzer.Analyzer
	Style    analyzer.Style

	closers []func()
}

// Open builds an App. Close releases it.
func Open(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	a := &App{Config: cfg}
	if err := a.open(ctx, opts); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) open(ctx context.Context, opts Options) error {
	cfg := a.Config

	style, err := analyzer.ParseStyle(cfg.CommentStyle())
	if err != nil {
		return err
	}
	a.Style = style
	scope, err := scriptgraph.ParseDataScope(cfg.DataScope())
	if err != nil {
		return err
	}

	var (
		repo  analyzer.Repository
		chain resolver.Chain
	)
	if cfg.SpellDB.Path != "" {
		spells, err := resolver.OpenSpellDB(ctx, cfg.SpellDB.Path)
		if err != nil {
			return err
		}
		a.onClose(spells)
		chain = append(chain, spells)
	}

	if opts.RowsFile != "" {
		mem, err := storage.LoadMemoryRepository(opts.RowsFile)
		if err != nil {
			return err
		}
		log.Printf("serving %d script groups from %s", len(mem.Groups()), opts.RowsFile)
		repo = mem
	} else {
		log.Printf("connecting to world database %+v", cfg.Database.Redacted())
		db, err := storage.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		a.onClose(db)
		repo = db
		chain = append(chain, resolver.NewSQL(db.DB(), db.Dialect(), cfg.ResolverRate()))
	}

	var names comment.NameResolver
	if len(chain) > 0 {
		cached, err := resolver.NewCached(chain, cfg.CacheSize())
		if err != nil {
			return fmt.Errorf("resolver cache: %w", err)
		}
		names = cached
	}

	a.Analyzer = analyzer.New(repo, names, analyzer.Options{
		Graph: scriptgraph.Options{
			DataScope:      scope,
			MaxRandomRange: cfg.MaxRandomRange(),
		},
		MaxSteps: cfg.MaxSteps(),
		Comments: comment.Options{
			Workers:         cfg.Workers(),
			ResolverTimeout: cfg.ResolverTimeout(),
		},
	})

	if opts.Publish && cfg.MQTT.URL != "" {
		client := mqtt.NewClient(mqtt.Options{URL: cfg.MQTT.URL, ClientID: cfg.MQTT.ClientID})
		if pub := client.StartPublisher(cfg.TopicPrefix()); pub != nil {
			events.SetSink(pub)
			a.closers = append(a.closers, func() {
				events.SetSink(nil)
				client.Disconnect()
			})
		}
	}
	return nil
}

func (a *App) onClose(c io.Closer) {
	a.closers = append(a.closers, func() {
		if err := c.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	})
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Startup emits system.startup with a summary of the configuration.
func (a *App) Startup(service string) {
	events.Emit("info", "system.startup", service+" starting", map[string]interface{}{
		"service":   service,
		"style":     string(a.Style),
		"max_steps": a.Config.MaxSteps(),
		"workers":   a.Config.Workers(),
	})
}

// Shutdown emits system.shutdown and closes the App.
func (a *App) Shutdown(service string) {
	events.Emit("info", "system.shutdown", service+" stopping", map[string]interface{}{
		"service": service,
	})
	a.Close()
}
