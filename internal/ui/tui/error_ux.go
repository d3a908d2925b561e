package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/skyfare/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+([A-Za-z0-9_.\[\]]+)`)
)

// userMessage turns an error into a single short line for the status bar.
// Details stay in the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "yamlbatch"):
				return "Batch not found"
			case strings.HasPrefix(oe.Op, "quotestore"):
				return "Quote not found"
			case strings.HasPrefix(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidTicket:
			if strings.Contains(err.Error(), "overflows") {
				return "Miles are too large to price"
			}
			if strings.Contains(err.Error(), "negative") {
				if f := extractField(err.Error()); f != "" {
					return "Miles must not be negative (" + f + ")"
				}
				return "Miles must not be negative"
			}
			return "Invalid ticket"

		case domain.KindInvalidBatch:
			base := "batch"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if f := extractField(err.Error()); f != "" {
				return "Invalid " + f + " in " + base
			}
			if strings.Contains(err.Error(), "overflows") {
				return "Batch total is too large"
			}
			return "Invalid batch " + base

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if f := extractField(err.Error()); f != "" {
				return "Invalid " + f + " in " + base
			}
			if strings.Contains(err.Error(), "pricing.validate") {
				return "Invalid pricing (check skyfare.yaml)"
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		return strings.TrimSuffix(m[1], ":")
	}
	return ""
}
