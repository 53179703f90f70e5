package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestFloat(t *testing.T) {
	p, out := newPrompter("abc\n-2\n0\n2,5\n")
	v, err := p.Float("Base: ", Positive)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, 4, strings.Count(out.String(), "Base: "))
	assert.Contains(t, out.String(), "greater than zero")

	p, out = newPrompter("nan\n5\n")
	v, err = p.Float("r: ", Positive)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Contains(t, out.String(), "enter a number")

	p, _ = newPrompter("inf\n-Inf\n1e400\n-3.5\n")
	v, err = p.Float("x: ", Any)
	require.NoError(t, err)
	assert.Equal(t, -3.5, v)

	p, out = newPrompter("-1\n0\n")
	v, err = p.Float("y: ", NonNegative)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Contains(t, out.String(), "must not be negative")
}

func TestFloat_Aborted(t *testing.T) {
	p, _ := newPrompter("oops\n")
	_, err := p.Float("x: ", Any)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestYesNo(t *testing.T) {
	p, out := newPrompter("maybe\nY\nno\n")
	yes, err := p.YesNo("Hole?")
	require.NoError(t, err)
	assert.True(t, yes)
	assert.Contains(t, out.String(), "answer 'y' or 'n'")

	no, err := p.YesNo("Hole?")
	require.NoError(t, err)
	assert.False(t, no)
}

func TestSign(t *testing.T) {
	p, _ := newPrompter("2\n-1\n\n")
	s, err := p.Sign("Ixy sign", 1)
	require.NoError(t, err)
	assert.Equal(t, -1, s)

	s, err = p.Sign("Ixy sign", -1)
	require.NoError(t, err)
	assert.Equal(t, -1, s)
}

func TestIndex(t *testing.T) {
	p, _ := newPrompter("0\n4\n2\n\n")
	i, ok, err := p.Index("Figure: ", 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok, err = p.Index("Figure: ", 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLineDefault(t *testing.T) {
	p, out := newPrompter("\nmm\n")
	s, err := p.LineDefault("Unit", "cm")
	require.NoError(t, err)
	assert.Equal(t, "cm", s)
	assert.Contains(t, out.String(), "Unit [cm]: ")

	s, err = p.LineDefault("Unit", "cm")
	require.NoError(t, err)
	assert.Equal(t, "mm", s)
}
