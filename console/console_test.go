package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_ReadChar(t *testing.T) {
	assert := assert.New(t)

	bc := &Buffer{Input: strings.NewReader("ab"), Output: &bytes.Buffer{}}

	c, err := bc.ReadChar()
	assert.NoError(err)
	assert.Equal(byte('a'), c)

	c, err = bc.ReadChar()
	assert.NoError(err)
	assert.Equal(byte('b'), c)

	_, err = bc.ReadChar()
	assert.ErrorIs(err, ErrConsoleClosed)
}

func TestBuffer_Poll(t *testing.T) {
	assert := assert.New(t)

	bc := &Buffer{Input: strings.NewReader("x"), Output: &bytes.Buffer{}}

	c, ok := bc.Poll()
	assert.True(ok)
	assert.Equal(byte('x'), c)

	// Poll consumes; a drained reader reports no key.
	_, ok = bc.Poll()
	assert.False(ok)

	_, err := bc.ReadChar()
	assert.ErrorIs(err, ErrConsoleClosed)
}

func TestBuffer_Write(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	bc := &Buffer{Input: strings.NewReader(""), Output: output}

	err := bc.WriteChar('H')
	assert.NoError(err)
	err = bc.WriteString("ALT\n")
	assert.NoError(err)

	assert.Equal("HALT\n", output.String())
}
