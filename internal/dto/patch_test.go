package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = NewPatchSchema("status", "assigned_collector_id", "latitude", "description")

func TestPatchParseSortsAndKeepsOnlySuppliedKeys(t *testing.T) {
	patch, err := testSchema.Parse([]byte(`{"status":"Resolved","assigned_collector_id":3}`))
	require.NoError(t, err)
	require.Equal(t, 2, patch.Len())
	assert.Equal(t, PatchField{Column: "assigned_collector_id", Value: "3"}, patch.Fields[0])
	assert.Equal(t, PatchField{Column: "status", Value: "Resolved"}, patch.Fields[1])
	assert.False(t, patch.Has("description"))
}

func TestPatchParseNullBecomesNil(t *testing.T) {
	patch, err := testSchema.Parse([]byte(`{"assigned_collector_id":null}`))
	require.NoError(t, err)
	require.Equal(t, 1, patch.Len())
	assert.Nil(t, patch.Fields[0].Value)
}

func TestPatchParseEmptyBody(t *testing.T) {
	_, err := testSchema.Parse([]byte(`{}`))
	assert.ErrorIs(t, err, ErrEmptyPatch)
}

func TestPatchParseRejectsUnknownColumn(t *testing.T) {
	_, err := testSchema.Parse([]byte(`{"status":"x","status = 'x'; DROP TABLE reports; --":1}`))
	var unknown *UnknownFieldError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "status = 'x'; DROP TABLE reports; --", unknown.Field)
}

func TestPatchParseRejectsNestedValues(t *testing.T) {
	_, err := testSchema.Parse([]byte(`{"description":{"a":1}}`))
	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "description", invalid.Field)
}

func TestPatchParseKeepsNumberPrecision(t *testing.T) {
	patch, err := testSchema.Parse([]byte(`{"latitude":40.7128123}`))
	require.NoError(t, err)
	assert.Equal(t, "40.7128123", patch.Fields[0].Value)
}

func TestPatchParseRejectsNonObject(t *testing.T) {
	_, err := testSchema.Parse([]byte(`[1,2]`))
	assert.Error(t, err)
}
