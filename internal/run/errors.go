package run

import "fmt"

// TransportError wraps a failure to deliver results to the service. It is
// always fatal to the run and is not suppressed by ignoreFailedTests.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("publishing results failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// QualityGateError reports that transmission succeeded but the published
// content itself carries test failures or errors. It is suppressed by
// ignoreFailedTests.
type QualityGateError struct {
	HasFailures bool
	HasErrors   bool
}

func (e *QualityGateError) Error() string {
	return "results were published but there are test failures; refer to your test runner's reports for details"
}
