package bump

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/afero"

	"github.com/nemtech/catapult-scripts/internal/jsondoc"
	"github.com/nemtech/catapult-scripts/internal/manifest"
	"github.com/nemtech/catapult-scripts/internal/version"
)

// Dependent is a package that depends on the self package.
type Dependent struct {
	Name       string `yaml:"name"`
	Dependency string `yaml:"dependency"`
}

// Plan lists the packages touched by one run.
type Plan struct {
	Self       string      `yaml:"self"`
	Dependents []Dependent `yaml:"dependents"`
}

// Change records one rewritten version field.
type Change struct {
	Package string
	Path    string
	Key     string
	From    string
	To      string
}

// Config controls an Updater.
type Config struct {
	Root string    // source tree root containing the package directories
	Out  io.Writer // progress lines; nil discards them

	// CheckConsistency makes IncrementSelf refuse to run when the manifest and
	// lockfile of the self package disagree on the version.
	CheckConsistency bool

	Logger *slog.Logger
}

// Updater rewrites package descriptors on a filesystem.
type Updater struct {
	fs      afero.Fs
	cfg     Config
	log     *slog.Logger
	changes []Change
}

// New returns an Updater operating on fs.
func New(fs afero.Fs, cfg Config) *Updater {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Updater{fs: fs, cfg: cfg, log: log}
}

// Changes returns the fields rewritten so far, in order.
func (u *Updater) Changes() []Change {
	return u.changes
}

// Run increments the self package, then every dependent in order.
func (u *Updater) Run(plan Plan) error {
	if err := u.IncrementSelf(plan.Self); err != nil {
		return fmt.Errorf("package %s: %w", plan.Self, err)
	}
	for _, d := range plan.Dependents {
		if err := u.IncrementDependent(d.Name, d.Dependency); err != nil {
			return fmt.Errorf("package %s: %w", d.Name, err)
		}
	}
	return nil
}

// IncrementSelf increments the version field of the manifest and lockfile of
// package name.
func (u *Updater) IncrementSelf(name string) error {
	fmt.Fprintf(u.cfg.Out, "processing %s (self) ...\n", name)

	if u.cfg.CheckConsistency {
		if err := u.checkConsistency(name); err != nil {
			return err
		}
	}

	for _, kind := range []manifest.Kind{manifest.KindManifest, manifest.KindLockfile} {
		if err := u.increment(name, kind, "version"); err != nil {
			return err
		}
	}
	return nil
}

// IncrementDependent increments the version package name records for
// dependency in its manifest and lockfile.
func (u *Updater) IncrementDependent(name, dependency string) error {
	fmt.Fprintf(u.cfg.Out, "processing %s (dependent) ...\n", name)

	for _, kind := range []manifest.Kind{manifest.KindManifest, manifest.KindLockfile} {
		if err := u.increment(name, kind, kind.DependencyVersionKeys(dependency)...); err != nil {
			return err
		}
	}
	return nil
}

// increment rewrites the version string under keys in the kind descriptor of
// package name.
func (u *Updater) increment(name string, kind manifest.Kind, keys ...string) error {
	path := kind.Path(u.cfg.Root, name)

	var from, to string
	err := jsondoc.Mutate(u.fs, path, func(doc *orderedmap.OrderedMap) error {
		if err := manifest.Check(kind, doc); err != nil {
			return err
		}

		var err error
		if from, err = jsondoc.String(doc, keys...); err != nil {
			return err
		}
		if to, err = version.Increment(from); err != nil {
			return err
		}
		return jsondoc.SetString(doc, to, keys...)
	})
	if err != nil {
		return err
	}

	key := strings.Join(keys, ".")
	u.changes = append(u.changes, Change{Package: name, Path: path, Key: key, From: from, To: to})
	u.log.Debug("version incremented", "path", path, "key", key, "from", from, "to", to)
	if cmp, err := version.Compare(from, to); err == nil && cmp >= 0 {
		u.log.Warn("incremented version does not sort after the original", "path", path, "from", from, "to", to)
	}
	return nil
}

// checkConsistency compares the version fields of the manifest and lockfile
// of package name without modifying either.
func (u *Updater) checkConsistency(name string) error {
	manifestPath := manifest.KindManifest.Path(u.cfg.Root, name)
	lockfilePath := manifest.KindLockfile.Path(u.cfg.Root, name)

	manifestVersion, err := u.readVersion(manifestPath)
	if err != nil {
		return err
	}
	lockfileVersion, err := u.readVersion(lockfilePath)
	if err != nil {
		return err
	}

	if !version.Equal(manifestVersion, lockfileVersion) {
		return &MismatchError{
			Package:         name,
			ManifestPath:    manifestPath,
			ManifestVersion: manifestVersion,
			LockfilePath:    lockfilePath,
			LockfileVersion: lockfileVersion,
		}
	}
	return nil
}

func (u *Updater) readVersion(path string) (string, error) {
	doc, err := jsondoc.Read(u.fs, path)
	if err != nil {
		return "", err
	}
	v, err := jsondoc.String(doc, "version")
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return v, nil
}
