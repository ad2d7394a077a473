package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanBoundary_SimpleStatement(t *testing.T) {
	cut, ready := scanBoundary(`x = 1.`)
	assert.True(t, ready)
	assert.Equal(t, `x = 1.`, (`x = 1.`)[:cut])
}

func TestScanBoundary_PeriodInsideStringIsNotABoundary(t *testing.T) {
	_, ready := scanBoundary(`echo "a. b"`)
	assert.False(t, ready)
}

func TestScanBoundary_PeriodInsideArrayIsNotABoundary(t *testing.T) {
	_, ready := scanBoundary(`x = [1, 2`)
	assert.False(t, ready)

	cut, ready := scanBoundary(`x = [1, 2].`)
	assert.True(t, ready)
	assert.Equal(t, len(`x = [1, 2].`), cut)
}

func TestScanBoundary_LeavesRemainderForNextStatement(t *testing.T) {
	cut, ready := scanBoundary(`x = 1. echo x.`)
	assert.True(t, ready)
	assert.Equal(t, `x = 1.`, (`x = 1. echo x.`)[:cut])
}

func TestScanBoundary_CommentDoesNotCountAsBoundary(t *testing.T) {
	_, ready := scanBoundary("x = 1 # a trailing . in a comment\n")
	assert.False(t, ready)
}

func TestScanBoundary_FloatLiteralPeriodIsNotABoundary(t *testing.T) {
	_, ready := scanBoundary(`x = 3.14`)
	assert.False(t, ready)

	cut, ready := scanBoundary(`x = 3.14.`)
	assert.True(t, ready)
	assert.Equal(t, len(`x = 3.14.`), cut)
}
