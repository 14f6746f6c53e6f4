package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("pq: connection refused")
	err := Wrap(CodeDependency, cause, "list orders")

	assert.Equal(t, CodeDependency, err.Code())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DEPENDENCY_ERROR: list orders", err.Error())
}

func TestAsUnwrapsNestedError(t *testing.T) {
	inner := New(CodeStateConflict, "delivered orders are terminal")
	outer := fmt.Errorf("update status: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeStateConflict, typed.Code())
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	assert.Nil(t, As(fmt.Errorf("plain failure")))
	assert.Nil(t, As(nil))
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestMetadataStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeValidation).HTTPStatus)
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, MetadataFor(CodeStateConflict).HTTPStatus)
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeValidation, fmt.Errorf("bad field"), "decode body")
	dump := Dump(err)

	assert.Equal(t, CodeValidation, dump.Code)
	assert.Len(t, dump.Chain, 2)
	assert.Equal(t, "VALIDATION_ERROR: decode body", dump.TopMessage)
}

func TestDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"status": "is invalid"})
	require.NotNil(t, err.Details())
}
