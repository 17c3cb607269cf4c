//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds the paths of an isolated source tree.
type testEnv struct {
	Root      string // tree root holding the package directories
	Templates string // lint templates under the root
}

// setupTestEnv creates a source tree with the default packages: the SDK, its
// three dependents and the tools package, plus the shared lint templates.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		Root:      root,
		Templates: filepath.Join(root, "scripts", "eslint-templates"),
	}

	writeFile(t, filepath.Join(root, "catapult-sdk", "package.json"), `{
  "name": "catapult-sdk",
  "version": "0.7.19",
  "description": "Catapult SDK core",
  "main": "_build/index.js",
  "scripts": {
    "test": "mocha --full-trace --recursive"
  },
  "dependencies": {
    "long": "^4.0.0",
    "ripemd160": "^2.0.2"
  }
}
`)
	writeFile(t, filepath.Join(root, "catapult-sdk", "package-lock.json"), `{
  "name": "catapult-sdk",
  "version": "0.7.19",
  "lockfileVersion": 1,
  "requires": true,
  "dependencies": {
    "long": {
      "version": "4.0.0",
      "resolved": "https://registry.npmjs.org/long/-/long-4.0.0.tgz",
      "integrity": "sha512-XsP+KhQif4bjX1kbuSiySJFNAehNxgLb6hPRGJ9QsUr8ajHkuXGdrHmFUTUUXhDwVX2R5bY4JNZEwbUiMhV+MA=="
    }
  }
}
`)

	for _, name := range []string{"monitor", "rest", "spammer"} {
		writeFile(t, filepath.Join(root, name, "package.json"), `{
  "name": "catapult-`+name+`",
  "version": "0.7.19",
  "dependencies": {
    "catapult-sdk": "0.7.19",
    "winston": "^3.3.3"
  },
  "devDependencies": {
    "mocha": "^8.2.1"
  }
}
`)
		writeFile(t, filepath.Join(root, name, "package-lock.json"), `{
  "name": "catapult-`+name+`",
  "version": "0.7.19",
  "lockfileVersion": 1,
  "requires": true,
  "dependencies": {
    "catapult-sdk": {
      "version": "0.7.19"
    },
    "winston": {
      "version": "3.3.3",
      "requires": {
        "async": "^3.1.0"
      }
    }
  }
}
`)
	}

	for _, dir := range []string{"catapult-sdk/test", "rest/test", "monitor/test", "spammer/test", "tools"} {
		mkdirAll(t, filepath.Join(root, dir))
	}

	writeFile(t, filepath.Join(env.Templates, "src.eslintrc"), `extends: airbnb-base
parserOptions:
  ecmaVersion: 2017
rules:
  indent:
  - error
  - tab
  no-tabs: off
`)
	writeFile(t, filepath.Join(env.Templates, "test.eslintrc"), `env:
  mocha: true
rules:
  no-unused-expressions: off
  func-names: off
`)

	return env
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	if !strings.Contains(readFile(t, path), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}

// assertNoTempFiles fails if an atomic write left a temporary file in dir.
func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temporary file %s in %s", e.Name(), dir)
		}
	}
}
