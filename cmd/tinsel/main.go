// Command tinsel opens a window and plays the countdown particle show.
//
// Usage:
//
//	tinsel [--config show.toml] [--photo a.png --photo b.jpg] [--script demo.json] [-v]
//	tinsel validate show.toml
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tinsel"
)

var version = "dev"

type options struct {
	configPath string
	particles  int
	seed       uint64
	photos     []string
	scriptPath string
	width      int
	height     int
	showFPS    bool
	shotDir    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "tinsel",
		Short:        "Play the countdown particle show",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := root.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.IntVar(&opts.particles, "particles", 0, "override particle count")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = from clock)")
	f.StringArrayVar(&opts.photos, "photo", nil, "image file to add as a photo (repeatable)")
	f.StringVar(&opts.scriptPath, "script", "", "JSON script to play")
	f.IntVar(&opts.width, "width", 1280, "window width")
	f.IntVar(&opts.height, "height", 720, "window height")
	f.BoolVar(&opts.showFPS, "fps", true, "show the FPS/state overlay")
	f.StringVar(&opts.shotDir, "screenshots", "screenshots", "directory for screenshots")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newValidateCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.toml>",
		Short: "Check a config file and print the effective settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := tinsel.LoadConfig(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "particles=%d ornaments=%d countdown=%v announce=%q\n",
				cfg.Particles, cfg.Ornaments, cfg.Countdown, cfg.Announce)
			return nil
		},
	}
}

func run(cmd *cobra.Command, opts options) error {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := tinsel.NewLogger(cmd.ErrOrStderr(), level)

	cfg := tinsel.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = tinsel.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	if opts.particles > 0 {
		cfg.Particles = opts.particles
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	show := tinsel.NewShow(cfg)
	show.SetLogger(logger)
	for _, path := range opts.photos {
		img, err := tinsel.LoadPhoto(path)
		if err != nil {
			return err
		}
		p := show.AddPhoto(img)
		logger.Info("photo loaded", "path", path, "id", p.ID)
	}

	var script *tinsel.ScriptRunner
	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = tinsel.LoadScript(data); err != nil {
			return err
		}
	}

	logger.Info("starting show", "particles", cfg.Particles, "ornaments", cfg.Ornaments)
	return tinsel.Run(show, tinsel.RunConfig{
		Title:         "tinsel",
		Width:         opts.width,
		Height:        opts.height,
		ShowFPS:       opts.showFPS,
		ScreenshotDir: opts.shotDir,
		Script:        script,
	})
}
