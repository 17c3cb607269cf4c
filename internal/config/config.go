package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName  = ".catapult-scripts"
	fileType  = "yaml"
	envPrefix = "CATAPULT_SCRIPTS"
)

// Setting keys. Flags with the same name (dots become dashes) are bound to
// them.
const (
	KeyRoot             = "root"
	KeyTemplates        = "templates"
	KeyRegistry         = "registry"
	KeyDryRun           = "dry-run"
	KeyLogLevel         = "log-level"
	KeyCheckConsistency = "bump.check-consistency"
	KeyVerify           = "eslint.verify"
)

// Settings are the resolved values for one run.
type Settings struct {
	Root             string
	Templates        string
	Registry         string
	DryRun           bool
	LogLevel         string
	CheckConsistency bool
	Verify           bool
}

// New returns a Viper instance with defaults and environment lookup set up.
// Files are read through fs.
func New(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyTemplates, "")
	v.SetDefault(KeyRegistry, "")
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCheckConsistency, true)
	v.SetDefault(KeyVerify, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag in flags whose name matches a setting key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyRoot, KeyTemplates, KeyRegistry, KeyDryRun, KeyLogLevel} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}
	return nil
}

// FilePath returns the location of the optional config file under root.
func FilePath(root string) string {
	return filepath.Join(root, fileName+"."+fileType)
}

// Load reads the optional config file from the resolved root and returns the
// final settings. A missing file is not an error; a malformed one is.
func Load(v *viper.Viper, fs afero.Fs) (*Settings, error) {
	root := v.GetString(KeyRoot)
	path := FilePath(root)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	if exists {
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	s := &Settings{
		Root:             v.GetString(KeyRoot),
		Templates:        v.GetString(KeyTemplates),
		Registry:         v.GetString(KeyRegistry),
		DryRun:           v.GetBool(KeyDryRun),
		LogLevel:         v.GetString(KeyLogLevel),
		CheckConsistency: v.GetBool(KeyCheckConsistency),
		Verify:           v.GetBool(KeyVerify),
	}

	// Relative paths are resolved against the root, like the package
	// directories themselves.
	if s.Registry != "" && !filepath.IsAbs(s.Registry) {
		s.Registry = filepath.Join(s.Root, s.Registry)
	}
	return s, nil
}
