package ansihost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure_PlainASCII(t *testing.T) {
	measure := Measure()
	m := measure("hello", 0, 0)
	assert.Equal(t, float64(5), m.Width)
	assert.Equal(t, float64(CellHeight), m.Height)
}

func TestMeasure_WideCharacters(t *testing.T) {
	measure := Measure()
	m := measure("你好", 0, 0)
	assert.Equal(t, float64(4), m.Width)
}
