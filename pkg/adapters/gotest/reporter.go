// Package gotest adapts the standard testing package to the engine's
// failure-reporting collaborator.
package gotest

import (
	"testing"

	"github.com/aretw0/scenic/pkg/domain"
)

// Reporter records engine failures as non-fatal test errors, so traversal
// continues and a single run can surface every navigation problem.
type Reporter struct {
	t *testing.T
}

// New binds a reporter to the test.
func New(t *testing.T) *Reporter {
	return &Reporter{t: t}
}

// Fail implements ports.Reporter.
func (r *Reporter) Fail(message string, site domain.CallSite) {
	r.t.Helper()
	r.t.Errorf("%s: %s", site, message)
}
