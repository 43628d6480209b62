package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/rcade/config"
	"github.com/OpticalFlyer/rcade/logging"
	"github.com/OpticalFlyer/rcade/ui"
)

const (
	windowTitle       = "Rcade"
	defaultConfigPath = "resources/settings.json"
	envConfigPath     = "RCADE_CONFIG"
)

type options struct {
	configPath string
	fontPath   string
	watch      bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := options{configPath: defaultConfigPath}
	if p := os.Getenv(envConfigPath); p != "" {
		opts.configPath = p
	}

	cmd := &cobra.Command{
		Use:           "rcade",
		Short:         "Arcade shell with a persistent window configuration and a clickable menu",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logging.FromEnv()
			if cmd.Flags().Changed("log-level") {
				lvl, err := logging.ParseLevel(opts.logLevel)
				if err != nil {
					return err
				}
				cfg.Level = lvl
			}
			if cmd.Flags().Changed("log-format") {
				f, err := logging.ParseFormat(opts.logFormat)
				if err != nil {
					return err
				}
				cfg.Format = f
			}
			logging.Setup(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", opts.configPath, "settings file (.json or .toml), also "+envConfigPath)
	flags.StringVar(&opts.fontPath, "font", "", "TTF/OTF font for menu text (default Go Regular)")
	flags.BoolVar(&opts.watch, "watch", false, "apply edits to the settings file while running")
	flags.StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn or error, also "+logging.EnvLevel)
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatConsole, "console or json, also "+logging.EnvFormat)
	return cmd
}

func loadFont(path string) *ui.Font {
	var (
		f   *ui.Font
		err error
	)
	if path != "" {
		f, err = ui.LoadFont(path)
	} else {
		f, err = ui.DefaultFont()
	}
	if err != nil {
		log.Warn().Err(err).Msg("falling back to bitmap font")
		return ui.BitmapFont()
	}
	return f
}

func run(ctx context.Context, opts options) error {
	settings := config.Load(opts.configPath)
	font := loadFont(opts.fontPath)

	win := ebitenWindow{}
	game := NewRcade(settings, font, win, nil)

	if opts.watch {
		w, err := config.Watch(ctx, settings.Path())
		if err != nil {
			log.Warn().Err(err).Msg("settings will not be reloaded while running")
		} else {
			defer w.Close()
			game.changes = w.Changes()
		}
	}

	ebiten.SetWindowTitle(windowTitle)
	win.Apply(settings.Window)
	log.Info().
		Str("config", settings.Path()).
		Str("font", font.Name()).
		Floats64("res", settings.Window.Res).
		Msg("starting")

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	log.Info().Msg("bye")
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("rcade failed")
	}
}
