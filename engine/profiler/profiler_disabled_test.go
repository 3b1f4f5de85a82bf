//go:build !profile

package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledIsNoop(t *testing.T) {
	Init(16)
	end := Start("scope")
	end()
	assert.False(t, Enabled())
	assert.ErrorIs(t, Dump("unused"), ErrDisabled)
}
