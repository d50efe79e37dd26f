package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/carlmjohnson/versioninfo"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/brettbedarf/vtree/config"
	"github.com/brettbedarf/vtree/filesystem"
	"github.com/brettbedarf/vtree/internal/util"
	"github.com/brettbedarf/vtree/shell"
)

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var app = &cli.App{
	Name:      "vtree",
	Version:   toolVersion,
	Usage:     "Interactive in-memory directory tree",
	ArgsUsage: "[script]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path of a YAML or JSON config override file",
			EnvVars: []string{"VTREE_CONFIG"},
		},
		&cli.IntFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log verbosity between 1 (error) and 5 (trace); logs go to stderr",
			EnvVars: []string{"VTREE_VERBOSE"},
		},
		&cli.StringFlag{
			Name:    "load",
			Aliases: []string{"l"},
			Usage:   "Reload a saved tree before reading commands",
		},
		&cli.BoolFlag{
			Name:    "no-prompt",
			Usage:   "Don't print a prompt before each command",
			EnvVars: []string{"VTREE_NO_PROMPT"},
		},
	},
	Action: run,
}

func run(c *cli.Context) error {
	if c.NArg() > 1 {
		return errors.Errorf("expected at most one script file, got %d arguments", c.NArg())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	util.InitializeLogger(cfg.LogLvl, os.Stderr)
	logger := util.GetLogger("main")

	var in io.Reader = os.Stdin
	if script := c.Args().First(); script != "" {
		f, err := os.Open(script)
		if err != nil {
			return errors.Wrapf(err, "couldn't open script %s", script)
		}
		defer f.Close()
		in = f
	}

	fs := filesystem.NewFS(cfg)
	if load := c.String("load"); load != "" {
		if err := loadTree(fs, load); err != nil {
			return err
		}
	}

	logger.Info().Str("version", toolVersion).Int("maxNameLen", cfg.MaxNameLen).
		Int("maxSegments", cfg.MaxSegments).Msg("vtree starting")
	return shell.New(fs, cfg, os.Stdout).Serve(in)
}

// loadConfig merges the override file and flags onto the defaults
func loadConfig(c *cli.Context) (*config.Config, error) {
	override := &config.ConfigOverride{}
	if path := c.String("config"); path != "" {
		fileOverride, err := config.LoadConfigOverrideFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't load config file %s", path)
		}
		override = fileOverride
	}
	if c.IsSet("verbose") {
		override.LogLvl = util.Pointer(c.Int("verbose"))
	}
	if c.Bool("no-prompt") {
		override.Prompt = util.Pointer(false)
	}

	cfg := config.NewConfig(override)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func loadTree(fs *filesystem.FileSystem, path string) error {
	logger := util.GetLogger("main")

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open saved tree %s", path)
	}
	defer f.Close()

	n, err := fs.Reload(f)
	if err != nil {
		return errors.Wrapf(err, "couldn't load saved tree %s", path)
	}
	logger.Info().Str("file", path).Int("nodes", n).Msg("Loaded saved tree")
	return nil
}

// Versioning

// fallbackVersion is reported when no build information is available
const fallbackVersion = "v0.1.0-dev"

var (
	toolVersion = determineVersion(buildSummary, fallbackVersion)
	// buildSummary should be overridden by ldflags
	buildSummary = ""
)

// determineVersion returns either a semver, a pseudoversion, or a Git hash based on information
// available from Go's `debug.ReadBuildInfo()`.
func determineVersion(override, fallback string) string {
	if override != "" {
		return override
	}

	const dirtySuffix = "-dirty"
	if info, ok := debug.ReadBuildInfo(); ok &&
		info.Main.Version != "" && info.Main.Version != "(devel)" {
		v := info.Main.Version
		if versioninfo.DirtyBuild {
			v += dirtySuffix
		}
		return v
	}
	if v := versioninfo.Version; v != "unknown" && v != "(devel)" {
		if versioninfo.DirtyBuild {
			v += dirtySuffix
		}
		return v
	}

	if r := versioninfo.Revision; r != "unknown" && r != "" {
		if versioninfo.DirtyBuild {
			r += dirtySuffix
		}
		return r
	}
	return fallback
}
