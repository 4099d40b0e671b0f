// File: validation.go
// Title: Configuration Validation
// Description: Rule based validation of configuration values. Every key is
//              checked and all failures are collected into one result so that
//              a broken file can be fixed in a single pass.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Type and bounds checks
// - 2026-10-16 v0.2.0: OneOf rule, deterministic error order

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // the key must be present
	Type     string   // "string", "int" or "bool"
	Min      *int     // lower bound for int values
	Max      *int     // upper bound for int values
	OneOf    []string // allowed values for string keys, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts an invalid result into an INVALID_CONFIG error, or nil
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mxerrors.NewErrorBuilder(mxerrors.ModuleConfig).
		Operation("validate").
		Message("invalid configuration: " + strings.Join(r.Errors, "; ")).
		Code(mxerror.CodeInvalidConfig).
		Detail("violations", len(r.Errors)).
		Build()
}

// Validate checks the configuration against rules. Keys are processed in
// sorted order so that error messages are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		value, err := c.intValue(key)
		if err != nil {
			return err
		}
		if rule.Min != nil && value < *rule.Min {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, *rule.Min, value)
		}
		if rule.Max != nil && value > *rule.Max {
			return fmt.Errorf("field '%s' must be at most %d, got %d", key, *rule.Max, value)
		}

	case "bool":
		if _, err := c.boolValue(key); err != nil {
			return err
		}

	case "string", "":
		if len(rule.OneOf) == 0 {
			return nil
		}
		value := strings.ToLower(strings.TrimSpace(c.GetString(key)))
		for _, allowed := range rule.OneOf {
			if value == allowed {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of %s, got '%s'", key, strings.Join(rule.OneOf, "|"), c.GetString(key))

	default:
		return fmt.Errorf("field '%s' has unknown rule type %q", key, rule.Type)
	}
	return nil
}

// intValue is the strict form of GetInt used during validation
func (c *Config) intValue(key string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var raw interface{} = c.getValue(key)
	if envValue, ok := c.lookupEnv(key); ok {
		raw = envValue
	}
	value, ok := toInt(raw)
	if !ok {
		return 0, fmt.Errorf("field '%s' must be an integer, got '%v'", key, raw)
	}
	return value, nil
}

// boolValue is the strict form of GetBool used during validation
func (c *Config) boolValue(key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var raw interface{} = c.getValue(key)
	if envValue, ok := c.lookupEnv(key); ok {
		raw = envValue
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("field '%s' must be a boolean, got '%v'", key, raw)
}
