// Package run orchestrates one publish pipeline execution: gate, locate,
// merge, assemble, send, decide.
package run

import (
	"context"
	"log/slog"

	"github.com/testlabtools/testlab-publish/internal/config"
	"github.com/testlabtools/testlab-publish/internal/payload"
	"github.com/testlabtools/testlab-publish/internal/resource"
	"github.com/testlabtools/testlab-publish/internal/result"
	"github.com/testlabtools/testlab-publish/internal/testlab"
)

// Status tracks how far a run progressed.
type Status int

const (
	// StatusPending: nothing was sent (gate skip, empty file set, dry run).
	StatusPending Status = iota
	// StatusSent: the request was handed to the transport.
	StatusSent
	// StatusAcceptedClean: transmission succeeded, no failures detected.
	StatusAcceptedClean
	// StatusAcceptedWithFailures: transmission succeeded, results carry
	// failures or errors.
	StatusAcceptedWithFailures
	// StatusTransportFailed: the transport round-trip failed.
	StatusTransportFailed
)

// Transport sends one assembled test result to the service.
type Transport interface {
	AddTestResult(ctx context.Context, tr *payload.TestResult) (*testlab.AddTestResultResponse, error)
}

// Options carries per-invocation inputs that arrive outside the config file.
type Options struct {
	// TestSelector and ITTestSelector are pass-through values from the host
	// build: non-blank means only a subset of unit respectively integration
	// tests ran.
	TestSelector   string
	ITTestSelector string
	// DryRun stops the pipeline right before the network call.
	DryRun bool
}

// Report summarizes a completed (or short-circuited) run.
type Report struct {
	Status Status
	Files  []string
	Signal result.Signal
}

// Runner executes publish runs. All state is per-run; a Runner holds only
// its collaborators.
type Runner struct {
	cfg       *config.Config
	transport Transport
	log       *slog.Logger
}

// NewRunner returns a Runner over a validated config.
func NewRunner(cfg *config.Config, transport Transport, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, transport: transport, log: log}
}

// Run executes one publish pipeline. It returns a nil error on success,
// which includes runs where the gate or an empty file set short-circuited
// publication. Fatal conditions come back as *TransportError or
// *QualityGateError; configuration errors are caught before a Runner is
// ever built.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{Status: StatusPending}

	gate := EvaluateGate(r.cfg.ForcePublish, opts.TestSelector, opts.ITTestSelector)
	if !gate.Publish {
		r.log.Warn(gate.Reason)
		return report, nil
	}

	report.Files = resource.Locate(r.log, specs(r.cfg.Resources))
	r.log.Info("resolved result files", "count", len(report.Files))

	if len(report.Files) == 0 {
		r.log.Warn("no resource files resolved, not publishing results")
		return report, nil
	}

	var xml string
	switch r.cfg.Format {
	case config.FormatRobot:
		xml, report.Signal = result.LoadRobot(r.log, report.Files)
	case config.FormatJUnit, "":
		xml, report.Signal = result.MergeJUnit(r.log, report.Files)
	default:
		// Validation rejects unknown formats before a Runner is built, but
		// stay safe for library callers that skip it.
		r.log.Error("unexpected result format, merging as junit", "format", r.cfg.Format)
		xml, report.Signal = result.MergeJUnit(r.log, report.Files)
	}

	tr := payload.Assemble(r.cfg, xml)

	if opts.DryRun {
		r.log.Info("dry run, not sending results",
			"projectKey", tr.ProjectKey, "testRun", tr.TestRunTitle, "xmlBytes", len(tr.XML))
		return report, nil
	}

	r.log.Info("sending results", "projectKey", tr.ProjectKey, "testRun", tr.TestRunTitle)
	report.Status = StatusSent

	ack, err := r.transport.AddTestResult(ctx, tr)
	if err != nil {
		report.Status = StatusTransportFailed
		return report, &TransportError{Err: err}
	}
	r.log.Debug("response from service", "testRunId", ack.TestRunID)
	r.log.Info("results sent")

	return r.decide(report)
}

// decide maps the detected failure signal and the ignoreFailedTests override
// onto the final run outcome. Transmission has already succeeded here.
func (r *Runner) decide(report *Report) (*Report, error) {
	if !report.Signal.Any() {
		report.Status = StatusAcceptedClean
		return report, nil
	}

	report.Status = StatusAcceptedWithFailures
	r.log.Warn("results report " + report.Signal.Describe())

	if r.cfg.IgnoreFailedTests {
		return report, nil
	}
	return report, &QualityGateError{
		HasFailures: report.Signal.HasFailures,
		HasErrors:   report.Signal.HasErrors,
	}
}

func specs(resources []config.Resource) []resource.Spec {
	out := make([]resource.Spec, len(resources))
	for i, res := range resources {
		out[i] = resource.Spec{
			Directory: res.Directory,
			Includes:  res.Includes,
			Excludes:  res.Excludes,
		}
	}
	return out
}
