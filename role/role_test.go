package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	r, ok := Parse("patient")
	assert.True(t, ok)
	assert.Equal(t, Patient, r)

	r, ok = Parse("doctor")
	assert.True(t, ok)
	assert.Equal(t, Doctor, r)

	_, ok = Parse("admin")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestCollection(t *testing.T) {
	assert.Equal(t, "patients", Patient.Collection())
	assert.Equal(t, "doctors", Doctor.Collection())
}
