package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nutrilog/utils"
)

// LoadNormPolicy returns the default norm coefficients, overridden by the
// YAML file at path when path is set. Keys missing from the file keep
// their default value.
func LoadNormPolicy(path string) (utils.NormPolicy, error) {
	policy := utils.DefaultNormPolicy()
	if path == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("read norm policy: %w", err)
	}
	if err := yaml.Unmarshal(raw, &policy); err != nil {
		return policy, fmt.Errorf("parse norm policy %s: %w", path, err)
	}
	return policy, nil
}
