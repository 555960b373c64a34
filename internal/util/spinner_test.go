package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner(t *testing.T) {
	var out bytes.Buffer

	StartSpinner(&out, "scoring")
	assert.NotNil(t, working)

	PauseSpinner()
	assert.Nil(t, working)

	// pausing twice is harmless
	PauseSpinner()
}
