package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimiter(t *testing.T) {
	d, err := parseDelimiter("")
	require.NoError(t, err)
	assert.Equal(t, ',', d)

	d, err = parseDelimiter(";")
	require.NoError(t, err)
	assert.Equal(t, ';', d)

	d, err = parseDelimiter("\t")
	require.NoError(t, err)
	assert.Equal(t, '\t', d)

	// a multi-byte character is one delimiter, not its first byte
	d, err = parseDelimiter("§")
	require.NoError(t, err)
	assert.Equal(t, '§', d)

	_, err = parseDelimiter(";;")
	assert.Error(t, err)

	_, err = parseDelimiter("\xff")
	assert.Error(t, err)
}

func TestTableFormat(t *testing.T) {
	assert.Equal(t, "csv", tableFormat("data.csv"))
	assert.Equal(t, "csv", tableFormat("data.csv.gz"))
	assert.Equal(t, "jsonl", tableFormat("data.ndjson"))
	assert.Equal(t, "parquet", tableFormat("out.parquet"))
	assert.Equal(t, "", tableFormat("data.txt"))
}
