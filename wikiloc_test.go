package wikiloc_test

import (
	"errors"
	"testing"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wikiloc.Errorf(wikiloc.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, wikiloc.ENOTFOUND, wikiloc.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", wikiloc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikiloc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wikiloc.EINTERNAL, wikiloc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikiloc.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", wikiloc.ErrorMessage(errors.New("boom")))
}
