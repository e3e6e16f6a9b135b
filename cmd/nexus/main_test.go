package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPasswordFromPipe(t *testing.T) {
	var out bytes.Buffer
	password, err := readPassword(strings.NewReader("hunter22\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "hunter22", password)
	assert.Empty(t, out.String(), "non-terminal reads must not write to the output")
}

func TestReadPasswordTrimsCRLF(t *testing.T) {
	password, err := readPassword(strings.NewReader("s3cret\r\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
}

func TestReadPasswordWithoutTrailingNewline(t *testing.T) {
	password, err := readPassword(strings.NewReader("last-line"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "last-line", password)
}

func TestReadPasswordEmptyInput(t *testing.T) {
	_, err := readPassword(strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}
