package eslint

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// VerifyError is returned when a generated configuration does not enable the
// requested environments.
type VerifyError struct {
	Reason string
}

func (e *VerifyError) Error() string {
	return "generated config is invalid: " + e.Reason
}

// Verify parses a generated source configuration and checks that it has a
// top-level env mapping setting every one of envs to true.
func Verify(data []byte, envs []string) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &VerifyError{Reason: fmt.Sprintf("parsing YAML: %v", err)}
	}

	raw, ok := doc["env"]
	if !ok {
		return &VerifyError{Reason: "no top-level env block"}
	}
	if raw == nil && len(envs) == 0 {
		return nil
	}
	env, ok := raw.(map[string]any)
	if !ok {
		return &VerifyError{Reason: fmt.Sprintf("env is %T, want a mapping", raw)}
	}

	var missing []string
	for _, name := range envs {
		if enabled, ok := env[name].(bool); !ok || !enabled {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &VerifyError{Reason: "environments not enabled: " + strings.Join(missing, ", ")}
	}
	return nil
}
