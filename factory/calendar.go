/*
Package factory provides JSON/YAML to Go calendar conversion.

PURPOSE:
  Converts declarative calendar configuration into businesstime.Calendar
  objects. This enables calendar configuration without code changes - a
  clerk's office can list proclamation holidays in a config file, and the
  factory builds the proper calendar.

WHY CONFIG FILES?
  - Non-developers can add one-off closure dates
  - Easy integration with deployment tooling
  - Version control for configuration
  - Same schema in JSON (API payloads) and YAML (ops files)

SCHEMA:
  {
    "rule_set": "indiana",
    "extra_holidays": ["2025-06-12", "2025-08-04"]
  }

  rule_set:       Named holiday catalog. "indiana" or "" (defaults to
                  indiana). Unknown names fail with
                  businesstime.ErrUnknownRuleSet.
  extra_holidays: Additional non-business dates (proclamations, local
                  closures) in YYYY-MM-DD form. Malformed dates fail
                  with businesstime.ErrInvalidDate.

USAGE:
  cal, err := factory.ParseCalendar(jsonBytes)

  // From a YAML ops file
  cal, err := factory.ParseCalendarYAML(yamlBytes)

  // Programmatic
  cal, err := factory.FromConfig(factory.CalendarConfig{
      RuleSet:       "indiana",
      ExtraHolidays: []string{"2025-06-12"},
  })

SEE ALSO:
  - businesstime/calendar.go: Calendar type and Options
  - indiana/catalog.go: The built-in rule set
*/
package factory

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/indiana"
)

// =============================================================================
// CONFIG SCHEMA
// =============================================================================

// CalendarConfig is the declarative representation of a calendar.
type CalendarConfig struct {
	RuleSet       string   `json:"rule_set,omitempty" yaml:"rule_set"`
	ExtraHolidays []string `json:"extra_holidays,omitempty" yaml:"extra_holidays"`
}

// =============================================================================
// RULE SET REGISTRY
// =============================================================================

// ruleSets maps config names to holiday catalogs. The empty name is the
// default.
var ruleSets = map[string]func() businesstime.RuleSet{
	"":        indiana.Rules,
	"indiana": indiana.Rules,
}

// RuleSetNames returns the registered non-empty rule set names, sorted.
func RuleSetNames() []string {
	var names []string
	for name := range ruleSets {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// CALENDAR FACTORY
// =============================================================================

// ParseCalendar builds a calendar from JSON configuration.
func ParseCalendar(data []byte) (*businesstime.Calendar, error) {
	var cfg CalendarConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse calendar JSON: %w", err)
	}
	return FromConfig(cfg)
}

// ParseCalendarYAML builds a calendar from YAML configuration.
func ParseCalendarYAML(data []byte) (*businesstime.Calendar, error) {
	var cfg CalendarConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse calendar YAML: %w", err)
	}
	return FromConfig(cfg)
}

// FromConfig converts CalendarConfig to a businesstime.Calendar.
// Unknown rule sets and malformed extra dates are rejected; a calendar is
// never built from partially-understood configuration.
func FromConfig(cfg CalendarConfig) (*businesstime.Calendar, error) {
	rules, ok := ruleSets[cfg.RuleSet]
	if !ok {
		return nil, fmt.Errorf("rule set %q: %w", cfg.RuleSet, businesstime.ErrUnknownRuleSet)
	}

	return businesstime.NewCalendar(rules(), businesstime.Options{
		Holidays: cfg.ExtraHolidays,
	})
}

// ToConfig converts a rule set name and extras back to CalendarConfig,
// for round-tripping configuration through admin tooling.
func ToConfig(ruleSet string, extras []string) CalendarConfig {
	cfg := CalendarConfig{RuleSet: ruleSet}
	cfg.ExtraHolidays = append(cfg.ExtraHolidays, extras...)
	sort.Strings(cfg.ExtraHolidays)
	return cfg
}
