package result

import (
	"log/slog"
	"strings"
)

// robotFailMarker is the status attribute Robot Framework writes on failing
// suites, tests and keywords. The scan is case-sensitive on purpose: PASS,
// FAIL and SKIP are fixed literals in the output format.
const robotFailMarker = `status="FAIL"`

// LoadRobot loads a single Robot Framework output document. The first
// resolved file is used verbatim; matching more than one file is a
// configuration mismatch that is logged but does not abort the run. A read
// failure yields an empty document.
func LoadRobot(log *slog.Logger, files []string) (string, Signal) {
	if len(files) > 1 {
		log.Error("resource patterns match multiple files; only a single output.xml is supported when publishing Robot Framework results",
			"matched", len(files))
	}

	content, err := readXMLFile(files[0])
	if err != nil {
		log.Error("reading Robot Framework output failed", "file", files[0], "error", err)
		return "", Signal{}
	}

	return content, Signal{HasFailures: strings.Contains(content, robotFailMarker)}
}
