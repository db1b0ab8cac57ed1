package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingDropService.Error(), ErrMissingTargetService.Error())
}

func TestErrMissingDropService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingDropService.Error(), "drop service")
}

func TestErrMissingTargetService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingTargetService.Error(), "target service")
}
