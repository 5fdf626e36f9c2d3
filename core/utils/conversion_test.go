package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 3.5, ToFloat64(3.5))
	assert.Equal(t, 3.0, ToFloat64(3))
	assert.Equal(t, 3.5, ToFloat64("3.5"))
	assert.Equal(t, 0.0, ToFloat64("not a number"))
	assert.Equal(t, 0.0, ToFloat64(nil))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 16, ToInt(16))
	assert.Equal(t, 16, ToInt("16"))
	assert.Equal(t, 16, ToInt(16.9))
	assert.Equal(t, 0, ToInt("warehouse"))
}
