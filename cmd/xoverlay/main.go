package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"

	"xoverlay/internal/api"
	"xoverlay/internal/build"
	"xoverlay/internal/bus"
	"xoverlay/internal/config"
	"xoverlay/internal/watcher"
	"xoverlay/internal/xwm"
	"xoverlay/pkg/sutureext"
)

type Options struct {
	Debug  bool   `doc:"enable debug logging"`
	Config string `doc:"config file" default:".xoverlay.yaml"`
	Listen string `doc:"http api listen address, overrides config"`
	Image  string `doc:"image file to open on startup"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			cfg, err := store.GetConfig()
			if err != nil {
				return err
			}
			if options.Listen != "" {
				cfg.HTTPAddress = options.Listen
			}

			if options.Debug {
				pp.Println(cfg)
			}

			// Opacity changes survive restarts.
			bus.Subscribe("main", func(_ context.Context, event bus.EventOpacityChanged) error {
				return store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
					cfg.Opacity = event.Value
					return cfg, nil
				})
			})

			cmds := bus.NewCommands()
			snapshot := api.NewSnapshot(cfg.Opacity)
			fileWatcher := watcher.New(cmds)

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			manager, err := xwm.NewManager(conn, cfg, cmds)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			super := sutureext.NewSupervisor("root")
			sutureext.Add(super, fileWatcher)
			if cfg.HTTPAddress != "" {
				sutureext.Add(super, api.NewServer(cfg.HTTPAddress, api.New(cmds, snapshot)))
			}
			superErrC := super.ServeBackground(ctx)

			if options.Image != "" {
				if err := manager.Open(options.Image); err != nil {
					slog.Error("Failed to open image", "path", options.Image, "error", err)
				}
			}

			err = manager.Serve(ctx)

			cancel()
			if serr := <-superErrC; serr != nil && !errors.Is(serr, context.Canceled) {
				slog.Error("Supervisor failed", "error", serr)
			}
			return err
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
