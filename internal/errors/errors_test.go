package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuverse/otakuverse-client/internal/errors"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := errors.Validation("mood is required")
	assert.ErrorIs(t, err, errors.ErrValidation)
	assert.NotErrorIs(t, err, errors.ErrFetchFailed)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.Wrap(cause, errors.CodeFetchFailed, "fetch recommendations")

	assert.ErrorIs(t, err, errors.ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fetch recommendations")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapNestedCodes(t *testing.T) {
	inner := errors.ProviderUnavailable("rate limited")
	outer := errors.Wrap(inner, errors.CodeFetchFailed, "fetch recommendations")

	// Both codes are visible through the chain.
	assert.ErrorIs(t, outer, errors.ErrFetchFailed)
	assert.ErrorIs(t, outer, errors.ErrProviderUnavailable)
}

func TestRetryable(t *testing.T) {
	assert.True(t, errors.FetchFailed("x").Retryable())
	assert.True(t, errors.ProviderUnavailable("x").Retryable())
	assert.False(t, errors.Validation("x").Retryable())
	assert.False(t, errors.Unauthorized("x").Retryable())
	assert.False(t, errors.PersistenceCorrupt("x").Retryable())
}

func TestWithDetails(t *testing.T) {
	err := errors.ValidationWithDetails("validation failed", map[string]string{"mood": "is required"})

	var domainErr *errors.Error
	require.True(t, stderrors.As(err, &domainErr))
	assert.Equal(t, errors.CodeValidation, domainErr.Code)
	assert.Equal(t, map[string]string{"mood": "is required"}, domainErr.Details)
}

func TestFormattedConstructors(t *testing.T) {
	err := errors.NotFoundf("no item %q", "c1")
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.Contains(t, err.Error(), `no item "c1"`)

	wrapped := errors.Wrapf(fmt.Errorf("boom"), errors.CodeInternal, "step %d", 3)
	assert.ErrorIs(t, wrapped, errors.ErrInternal)
	assert.Contains(t, wrapped.Error(), "step 3")
}
