package sqlerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("boom")
	e := New(UnknownDatatype, "unrecognized type", cause).WithContext("name", "frobnicate")

	msg := e.Error()
	assert.Contains(t, msg, "UnknownDatatype")
	assert.Contains(t, msg, "unrecognized type")
	assert.Contains(t, msg, "boom")
	assert.Contains(t, msg, "name=frobnicate")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	e := New(Connection, "dial failed", cause)
	assert.True(t, errors.Is(e, cause))
}

func TestError_DefaultSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, New(InvalidDialect, "x", nil).Severity)
	assert.Equal(t, SeverityCritical, New(Connection, "x", nil).Severity)
	assert.Equal(t, SeverityMedium, New(Query, "x", nil).Severity)
}

func TestError_WithSeverity(t *testing.T) {
	e := New(Query, "x", nil).WithSeverity(SeverityCritical)
	assert.Equal(t, SeverityCritical, e.Severity)
}

func TestIs(t *testing.T) {
	e := New(InvalidTableType, "not a base table", nil)
	assert.True(t, Is(e, InvalidTableType))
	assert.False(t, Is(e, UnknownDatatype))
	assert.False(t, Is(nil, UnknownDatatype))
	assert.False(t, Is(errors.New("plain"), UnknownDatatype))
}
