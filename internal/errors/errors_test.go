package errors_test

import (
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCode(t *testing.T) {
	base := dnderr.NotFoundf("character %s not found", "abc")
	wrapped := dnderr.Wrap(base, "loading campaign")

	assert.Equal(t, dnderr.CodeNotFound, wrapped.Code)
	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "loading campaign")
	assert.Contains(t, wrapped.Error(), "character abc not found")
}

func TestWrapStdlibError(t *testing.T) {
	wrapped := dnderr.Wrap(fmt.Errorf("connection refused"), "fetching spell list")

	assert.Equal(t, dnderr.CodeUnknown, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, dnderr.Wrap(nil, "should be nil"))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeInternal, "should be nil"))
}

func TestWrapWithCodeOverrides(t *testing.T) {
	base := dnderr.InvalidArgument("bad slot level")
	wrapped := dnderr.WrapWithCode(base, dnderr.CodeFailedPrecondition, "casting fireball")

	assert.Equal(t, dnderr.CodeFailedPrecondition, wrapped.Code)
	assert.True(t, dnderr.IsFailedPrecondition(wrapped))
}

func TestWithMeta(t *testing.T) {
	err := dnderr.NotFoundf("encounter not found").
		WithMeta("encounter_id", "enc-1").
		WithMeta("campaign", "Lost Mines")

	meta := dnderr.GetMeta(err)
	assert.Equal(t, "enc-1", meta["encounter_id"])
	assert.Equal(t, "Lost Mines", meta["campaign"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, dnderr.CodeValidation, dnderr.GetCode(dnderr.Validation("nope")))
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(fmt.Errorf("plain")))
}
