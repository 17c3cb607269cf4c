package eslint

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/nemtech/catapult-scripts/internal/platform"
	"github.com/nemtech/catapult-scripts/internal/textfile"
)

const (
	SourceTemplate = "src.eslintrc"
	TestTemplate   = "test.eslintrc"
	ConfigFile     = ".eslintrc"
	TestDir        = "test"

	// DefaultTemplateDir is the template location relative to the root.
	DefaultTemplateDir = "scripts/eslint-templates"

	// EnvMarker is a template line that is replaced by the env block. Without
	// it the block goes right after the first line.
	EnvMarker = "# @env"
)

// mongoRuleLines relax no-underscore-dangle for fields MongoDB documents use.
var mongoRuleLines = []string{
	"",
	"  no-underscore-dangle:",
	"  - error",
	"  - allow:",
	"    - _id # mongodb identifier",
	"    - high_ # MongoDb.Timestamp",
	"    - low_ # MongoDb.Timestamp",
}

// Package is one entry of the refresh plan.
type Package struct {
	Name         string   `yaml:"name"`
	Environments []string `yaml:"environments"`
	Option       Option   `yaml:"option"`
}

// Config controls a Generator.
type Config struct {
	Root      string    // source tree root containing the package directories
	Templates string    // template directory; relative paths are resolved against Root
	Out       io.Writer // progress lines; nil discards them

	// Verify parses every generated source config and checks its env block.
	Verify bool

	Logger *slog.Logger
}

// Generator writes ESLint configuration files on a filesystem.
type Generator struct {
	fs      afero.Fs
	cfg     Config
	log     *slog.Logger
	written []string
}

// New returns a Generator operating on fs.
func New(fs afero.Fs, cfg Config) *Generator {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Templates == "" {
		cfg.Templates = DefaultTemplateDir
	}
	if !filepath.IsAbs(cfg.Templates) {
		cfg.Templates = filepath.Join(cfg.Root, cfg.Templates)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{fs: fs, cfg: cfg, log: log}
}

// Written returns the paths of the files written so far, in order.
func (g *Generator) Written() []string {
	return g.written
}

// Run refreshes every package in order and stops at the first error.
func (g *Generator) Run(pkgs []Package) error {
	for _, p := range pkgs {
		if err := g.Refresh(p); err != nil {
			return fmt.Errorf("package %s: %w", p.Name, err)
		}
	}
	return nil
}

// Refresh regenerates the source configuration of p and, unless p opts out,
// its test configuration.
func (g *Generator) Refresh(p Package) error {
	fmt.Fprintf(g.cfg.Out, "processing %s...\n", p.Name)

	if err := g.Source(p.Name, p.Environments); err != nil {
		return err
	}
	if p.Option == NoTest {
		g.log.Debug("skipping test config", "package", p.Name)
		return nil
	}
	return g.Test(p.Name, p.Option)
}

// Source copies the source template to <pkg>/.eslintrc and adds an env block
// enabling envs in the given order. With verification on, a result that does
// not enable every environment is rejected before anything is written.
func (g *Generator) Source(pkg string, envs []string) error {
	dst := filepath.Join(g.cfg.Root, pkg, ConfigFile)
	err := platform.CopyFileWith(g.fs, filepath.Join(g.cfg.Templates, SourceTemplate), dst, func(data []byte) ([]byte, error) {
		lines := InsertEnvBlock(textfile.SplitLines(string(data)), envs)
		out := []byte(strings.Join(lines, ""))
		if g.cfg.Verify {
			if err := Verify(out, envs); err != nil {
				return nil, fmt.Errorf("%s: %w", dst, err)
			}
		}
		return out, nil
	})
	if err != nil {
		return err
	}
	g.written = append(g.written, dst)
	g.log.Debug("wrote source config", "path", dst, "environments", envs)
	return nil
}

// Test copies the test template to <pkg>/test/.eslintrc. With MongoSupport the
// mongo rule exceptions are appended.
func (g *Generator) Test(pkg string, opt Option) error {
	dst := filepath.Join(g.cfg.Root, pkg, TestDir, ConfigFile)
	if err := platform.CopyFile(g.fs, filepath.Join(g.cfg.Templates, TestTemplate), dst); err != nil {
		return err
	}
	g.written = append(g.written, dst)

	if opt != MongoSupport {
		g.log.Debug("wrote test config", "path", dst)
		return nil
	}

	err := textfile.MutateLines(g.fs, dst, func(lines []string) ([]string, error) {
		return AppendMongoRules(lines), nil
	})
	if err != nil {
		return err
	}
	g.log.Debug("wrote test config", "path", dst, "option", opt)
	return nil
}

// EnvBlock returns the lines of an env block enabling envs.
func EnvBlock(envs []string) []string {
	block := make([]string, 0, len(envs)+1)
	block = append(block, "env:\n")
	for _, env := range envs {
		block = append(block, "  "+env+": true\n")
	}
	return block
}

// InsertEnvBlock places the env block for envs into the template lines: in
// place of the EnvMarker line when there is one, otherwise after the first
// line.
func InsertEnvBlock(lines []string, envs []string) []string {
	block := EnvBlock(envs)

	for i, line := range lines {
		if strings.TrimSpace(line) == EnvMarker {
			out := make([]string, 0, len(lines)+len(block)-1)
			out = append(out, lines[:i]...)
			out = append(out, block...)
			return append(out, lines[i+1:]...)
		}
	}

	index := 1
	if index > len(lines) {
		index = len(lines)
	}
	if index > 0 {
		lines[index-1] = textfile.Terminate(lines[index-1])
	}
	return textfile.Insert(lines, index, block...)
}

// AppendMongoRules returns lines with the mongo rule exceptions appended.
func AppendMongoRules(lines []string) []string {
	if n := len(lines); n > 0 {
		lines[n-1] = textfile.Terminate(lines[n-1])
	}
	for _, line := range mongoRuleLines {
		lines = textfile.Append(lines, line+"\n")
	}
	return lines
}
