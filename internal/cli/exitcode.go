package cli

import (
	"errors"

	"github.com/testlabtools/testlab-publish/internal/config"
	"github.com/testlabtools/testlab-publish/internal/run"
)

// Exit codes. Pre-publish configuration failures and post-publish
// quality-gate failures are deliberately distinguishable to the caller.
const (
	ExitOK          = 0
	ExitQualityGate = 1
	ExitConfig      = 2
	ExitTransport   = 3
)

// ExitCode maps an error returned by Execute onto the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var lerr *config.LoadError
	var verrs config.ValidationErrors
	var terr *run.TransportError
	var qerr *run.QualityGateError
	switch {
	case errors.As(err, &lerr):
		return ExitConfig
	case errors.As(err, &verrs):
		return ExitConfig
	case errors.As(err, &terr):
		return ExitTransport
	case errors.As(err, &qerr):
		return ExitQualityGate
	}
	return ExitQualityGate
}
