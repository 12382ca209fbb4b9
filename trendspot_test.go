package trendspot_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/trendspot"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := trendspot.Errorf(trendspot.ENOTFOUND, "search %q not found", "test")

	assert.Equal(t, trendspot.ENOTFOUND, trendspot.ErrorCode(err))
	assert.Equal(t, "search \"test\" not found", trendspot.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, trendspot.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, trendspot.EINTERNAL, trendspot.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, trendspot.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", trendspot.ErrorMessage(errors.New("boom")))
}
