package run

import "strings"

// GateDecision is the outcome of the publish gate.
type GateDecision struct {
	Publish bool
	Reason  string // set when Publish is false
}

// EvaluateGate decides whether publishing should happen at all. When the
// host build ran only a subset of the tests (a test selector was passed to
// the unit or integration test runner), the results would be partial and
// misleading, so publishing is skipped unless forcePublish is set. Skipping
// is not an error.
func EvaluateGate(forcePublish bool, testSelector, itTestSelector string) GateDecision {
	if forcePublish {
		return GateDecision{Publish: true}
	}
	if strings.TrimSpace(testSelector) != "" {
		return GateDecision{
			Reason: "test selector is set - not publishing results. Set forcePublish to true to always publish results.",
		}
	}
	if strings.TrimSpace(itTestSelector) != "" {
		return GateDecision{
			Reason: "integration test selector is set - not publishing results. Set forcePublish to true to always publish results.",
		}
	}
	return GateDecision{Publish: true}
}
