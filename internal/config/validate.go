package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation issue with a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all validation issues found in a config so the
// caller can distinguish configuration failures from later pipeline failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("configuration error: %s", strings.Join(msgs, "; "))
}

var recognizedFormats = map[string]bool{
	FormatJUnit: true,
	FormatRobot: true,
}

var recognizedStrategies = map[string]bool{
	IssueStrategyNone:           true,
	IssueStrategyOnePerRun:      true,
	IssueStrategyOnePerTestCase: true,
	IssueStrategyOnePerResult:   true,
}

// Validate checks a Config for structural and semantic errors. It returns a
// slice of all validation errors found (empty if valid).
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if isBlank(cfg.APIKey) {
		errs = append(errs, ValidationError{Field: "apiKey", Message: "must be set"})
	}
	if isBlank(cfg.CompanyID) && isBlank(cfg.OnpremiseURL) {
		errs = append(errs, ValidationError{Field: "companyId", Message: "companyId or onpremiseUrl must be set"})
	}
	if isBlank(cfg.ProjectKey) {
		errs = append(errs, ValidationError{Field: "projectKey", Message: "must be set"})
	}
	if isBlank(cfg.TestRun) {
		errs = append(errs, ValidationError{Field: "testRun", Message: "must be set"})
	}

	// With a server-side ruleset the mapping field is resolved remotely;
	// otherwise results cannot be matched to test cases without it.
	if isBlank(cfg.TestCaseMappingField) && isBlank(cfg.Ruleset) {
		errs = append(errs, ValidationError{Field: "testCaseMappingField", Message: "must be set (or configure a ruleset)"})
	}

	if len(cfg.Resources) == 0 {
		errs = append(errs, ValidationError{Field: "resources", Message: "at least one resource is required"})
	}
	for i, r := range cfg.Resources {
		if isBlank(r.Directory) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("resources[%d].directory", i),
				Message: "is required",
			})
		}
	}

	if !isBlank(cfg.Format) && !recognizedFormats[cfg.Format] {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("invalid format %q - must be one of: %s | %s", cfg.Format, FormatJUnit, FormatRobot),
		})
	}

	if cfg.Issues.Strategy != "" {
		if !recognizedStrategies[cfg.Issues.Strategy] {
			errs = append(errs, ValidationError{
				Field:   "issues.strategy",
				Message: fmt.Sprintf("unrecognized strategy %q", cfg.Issues.Strategy),
			})
		}
		if cfg.Issues.Add || cfg.Issues.MergeAsSingleIssue {
			errs = append(errs, ValidationError{
				Field:   "issues",
				Message: "strategy and the add/mergeAsSingleIssue pair are mutually exclusive",
			})
		}
	}

	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
