// Package doctor provides diagnostic checks for matter's environment.
package doctor

import (
	"os/exec"
	"strconv"
	"time"

	"github.com/jthorne/matter/internal/config"
	"github.com/jthorne/matter/internal/dateformat"
	"github.com/jthorne/matter/internal/editor"
)

// Severity indicates the importance level of a check result.
type Severity int

const (
	// SeverityPass indicates the check passed without issues.
	SeverityPass Severity = iota

	// SeverityInfo indicates informational output, not a problem.
	SeverityInfo

	// SeverityWarning indicates a potential issue that doesn't prevent operation.
	SeverityWarning

	// SeverityError indicates a problem that prevents proper operation.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of a single diagnostic check.
type Result struct {
	Name    string   `json:"name"`
	Status  Severity `json:"status"`
	Message string   `json:"message"`

	// Hint provides guidance on how to resolve the issue.
	Hint string `json:"hint,omitempty"`
}

// Report aggregates the results of a doctor run.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Results   []Result  `json:"results"`
	Errors    int       `json:"errors"`
	Warnings  int       `json:"warnings"`
}

// Run executes all diagnostic checks against the given configuration.
func Run(cfg *config.Config) *Report {
	report := &Report{Timestamp: time.Now().UTC()}

	for _, check := range []func(*config.Config) Result{
		checkConfig,
		checkDateFormat,
		checkTaxonomy,
		checkEditor,
	} {
		result := check(cfg)
		report.Results = append(report.Results, result)
		switch result.Status {
		case SeverityError:
			report.Errors++
		case SeverityWarning:
			report.Warnings++
		}
	}

	return report
}

func checkConfig(cfg *config.Config) Result {
	if errs := config.Validate(cfg); len(errs) > 0 {
		return Result{
			Name:    "config",
			Status:  SeverityError,
			Message: errs[0].Error(),
			Hint:    "Fix config.yaml; see matter config for the effective values",
		}
	}
	return Result{Name: "config", Status: SeverityPass, Message: "configuration is valid"}
}

func checkDateFormat(cfg *config.Config) Result {
	format := cfg.Date.Format
	if format == "" {
		return Result{Name: "date-format", Status: SeverityPass, Message: "native timestamps"}
	}
	if !dateformat.Valid(format) {
		return Result{
			Name:    "date-format",
			Status:  SeverityWarning,
			Message: "date.format is invalid: " + format,
			Hint:    "Date stamps will fall back to native timestamps",
		}
	}
	sample, _ := dateformat.Format(time.Now(), format)
	return Result{Name: "date-format", Status: SeverityPass, Message: format + " (" + sample + ")"}
}

func checkTaxonomy(cfg *config.Config) Result {
	tags := len(cfg.Taxonomy.Tags)
	categories := len(cfg.Taxonomy.Categories)
	if tags == 0 && categories == 0 {
		return Result{
			Name:    "taxonomy",
			Status:  SeverityInfo,
			Message: "no taxonomy vocabulary configured",
			Hint:    "Set taxonomy.tags / taxonomy.categories to enable the picker",
		}
	}
	return Result{
		Name:    "taxonomy",
		Status:  SeverityPass,
		Message: pluralize(tags, "tag") + ", " + pluralize(categories, "category"),
	}
}

func checkEditor(*config.Config) Result {
	name := editor.Detect()
	if _, err := exec.LookPath(name); err != nil {
		return Result{
			Name:    "editor",
			Status:  SeverityWarning,
			Message: name + " not found in PATH",
			Hint:    "Set $EDITOR to an installed editor",
		}
	}
	return Result{Name: "editor", Status: SeverityPass, Message: name}
}

func pluralize(n int, noun string) string {
	s := noun
	if n != 1 {
		if noun == "category" {
			s = "categories"
		} else {
			s = noun + "s"
		}
	}
	return strconv.Itoa(n) + " " + s
}
