package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_New(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")

	err := reg.New(code)
	require.NotNil(t, err)
	assert.Equal(t, Code("TEST_NOT_FOUND"), err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "Thing not found", err.Message)
}

func TestError_WithDetail(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("CONFLICT", TypeConflict, http.StatusConflict, "Already exists")

	err := reg.New(code).WithDetail("id", "abc").WithDetail("count", 2)
	assert.Equal(t, "abc", err.Details["id"])
	assert.Equal(t, 2, err.Details["count"])

	resp := err.ToHTTPResponse()
	assert.Equal(t, Code("TEST_CONFLICT"), resp["code"])
	assert.NotNil(t, resp["details"])
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to query store", TypeInternal)

	require.NotNil(t, err)
	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_PassesThroughTypedErrors(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")
	original := reg.New(code)

	wrapped := Wrap(original, "outer message", TypeInternal)
	assert.Same(t, original, wrapped)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing", TypeInternal))
}

func TestIsType(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("DENIED", TypeAuthorization, http.StatusForbidden, "Denied")

	assert.True(t, IsType(reg.New(code), TypeAuthorization))
	assert.False(t, IsType(reg.New(code), TypeNotFound))
	assert.False(t, IsType(errors.New("plain"), TypeAuthorization))
}
