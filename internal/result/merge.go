// Package result turns resolved result files into the single document sent
// to the service, detecting failure markers along the way.
package result

import (
	"errors"
	"log/slog"
	"strings"
)

// Signal carries the failure markers detected while loading results. It is
// computed once per run and read by the publish pipeline's quality gate.
type Signal struct {
	HasFailures bool
	HasErrors   bool
}

// Any reports whether any failure condition was detected.
func (s Signal) Any() bool {
	return s.HasFailures || s.HasErrors
}

// Describe names the detected condition(s) for diagnostics.
func (s Signal) Describe() string {
	switch {
	case s.HasFailures && s.HasErrors:
		return "failures and errors"
	case s.HasFailures:
		return "failures"
	default:
		return "errors"
	}
}

// MergeJUnit combines the suite bodies of all given xUnit result files into
// one synthetic multi-suite document. Files are processed in order; a file
// that cannot be read or has a malformed envelope is logged and skipped, it
// never aborts the merge.
//
// The per-file extraction is deliberately a lexical scan, not an XML parse:
// the first tag wins, tag names match case-insensitively, and the extracted
// text keeps its original casing. Upgrading this to a real parser would
// change the failure-detection behavior for malformed and multi-suite files.
func MergeJUnit(log *slog.Logger, files []string) (string, Signal) {
	var sig Signal
	var sb strings.Builder

	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	sb.WriteString("<testsuites>\n")

	for _, file := range files {
		content, err := readXMLFile(file)
		if err != nil {
			log.Error("skipping unreadable result file", "file", file, "error", err)
			continue
		}

		body, err := suiteBody(content)
		if err != nil {
			log.Error("skipping malformed result file", "file", file, "error", err)
			continue
		}
		if strings.TrimSpace(body) == "" {
			continue
		}

		log.Debug("test suites extracted", "file", file, "bytes", len(body))
		sb.WriteString(body)

		failures, errs := scanSuiteTag(body)
		sig.HasFailures = sig.HasFailures || failures
		sig.HasErrors = sig.HasErrors || errs
	}

	sb.WriteString("\n</testsuites>")
	return sb.String(), sig
}

// suiteBody extracts a file's contribution to the merged document: the text
// from the first suite tag, with any XML declaration and <testsuites> wrapper
// stripped. A file with no markup at all contributes nothing; a wrapper with
// no inner suite or no closing tag is an error.
func suiteBody(content string) (string, error) {
	s := strings.Index(content, "<")
	if s < 0 {
		return "", nil
	}
	e := len(content)
	lower := strings.ToLower(content)

	if s == strings.Index(lower, "<?xml") {
		s = indexFrom(lower, "<", s+1)
	}
	if s == strings.Index(lower, "<testsuites") {
		s = indexFrom(lower, "<testsuite", s+1)
		e = strings.Index(lower, "</testsuites>")
	}
	if s < 0 || e < 0 || s > e {
		return "", errors.New("unbalanced testsuites envelope")
	}
	return content[s:e], nil
}

// scanSuiteTag inspects the first <testsuite> opening tag of a contribution
// for non-zero failures/errors count attributes. Only the first tag is
// inspected; sibling and nested suites in the same file are not separately
// scanned. This is a coarse heuristic, kept in sync with the lexical merge.
func scanSuiteTag(body string) (hasFailures, hasErrors bool) {
	lower := strings.ToLower(body)
	s := strings.Index(lower, "<testsuite ")
	if s < 0 {
		return false, false
	}
	e := indexFrom(lower, ">", s)
	if e < 0 {
		return false, false
	}
	tag := lower[s:e]
	if strings.Contains(tag, " failures=") && !strings.Contains(tag, `failures="0"`) {
		hasFailures = true
	}
	if strings.Contains(tag, " errors=") && !strings.Contains(tag, `errors="0"`) {
		hasErrors = true
	}
	return hasFailures, hasErrors
}

// indexFrom is strings.Index starting the search at from; a negative from
// searches from the beginning.
func indexFrom(s, substr string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}
