package simperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ile-lang/simp/simperr"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	assert.NotEqual(t, simperr.StepBudgetExceeded, simperr.Cancelled)
	assert.NotEqual(t, simperr.Cancelled, simperr.NothingToSimplify)
	assert.NotEqual(t, simperr.LemmaInapplicable, simperr.SideConditionUnmet)
}

func TestInvariantErrorMessageIncludesReason(t *testing.T) {
	err := simperr.Invariant("bound Var reached dispatch")
	assert.Contains(t, err.Error(), "bound Var reached dispatch")

	var ice *simperr.InvariantError
	assert.True(t, errors.As(err, &ice))
	assert.Equal(t, "bound Var reached dispatch", ice.Reason)
}
