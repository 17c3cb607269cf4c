package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nemtech/catapult-scripts/internal/config"
	"github.com/nemtech/catapult-scripts/internal/logging"
	"github.com/nemtech/catapult-scripts/internal/registry"
)

var printer = message.NewPrinter(language.English)

// runEnv is what every command needs once flags are parsed.
type runEnv struct {
	settings *config.Settings
	fs       afero.Fs
	log      *slog.Logger
	registry *registry.Registry
}

// setup resolves settings for cmd and builds the filesystem, logger and
// registry. In a dry run writes land in an in-memory layer over the real
// filesystem.
func setup(cmd *cobra.Command) (*runEnv, error) {
	osFs := afero.NewOsFs()

	v := config.New(osFs)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	settings, err := config.Load(v, osFs)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return nil, err
	}

	var reg *registry.Registry
	if settings.Registry != "" {
		reg, err = registry.Load(osFs, settings.Registry)
	} else {
		reg, err = registry.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading package registry: %w", err)
	}

	env := &runEnv{settings: settings, fs: osFs, log: log, registry: reg}
	if settings.DryRun {
		env.fs = afero.NewCopyOnWriteFs(osFs, afero.NewMemMapFs())
		log.Info("dry run, no files will be written")
	}
	log.Debug("settings resolved",
		"root", settings.Root,
		"registry", settings.Registry,
		"check_consistency", settings.CheckConsistency,
		"verify", settings.Verify)
	return env, nil
}

// summary logs how many files a command wrote.
func (e *runEnv) summary(n int) {
	if e.settings.DryRun {
		e.log.Info(printer.Sprintf("would update %d files", n))
		return
	}
	e.log.Info(printer.Sprintf("updated %d files", n))
}
