package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"apiref/internal/publicapi"
)

// LoadRulesFile reads extra noise rule fragments from a YAML file:
//
//	dependencyModules:
//	  - some_leaky_dep
//	synthesizedMethods:
//	  - "::serialize("
//
// Unknown keys are rejected so typos do not silently disable a rule list.
func LoadRulesFile(path string) (publicapi.RuleSet, error) {
	var rules publicapi.RuleSet

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && err != io.EOF {
		return rules, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return rules, nil
}
