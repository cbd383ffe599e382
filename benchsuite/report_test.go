package benchsuite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var testResults = []Result{
	Result{
		Name: "clone/string/16", Group: GroupClone, Strategy: "string", Size: 16,
		N: 1000000, NsPerOp: 12.5, BytesPerOp: 16, AllocsPerOp: 1,
	},
	Result{
		Name: "clone/rocstr256/16", Group: GroupClone, Strategy: "rocstr256", Size: 16,
		N: 50000000, NsPerOp: 3.25,
	},
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, testResults))

	assert.Equal(t, strings.Join([]string{
		"CASE                N         NS/OP  B/OP  ALLOCS/OP",
		"clone/string/16     1000000   12.50  16    1",
		"clone/rocstr256/16  50000000  3.25   0     0",
		"",
	}, "\n"), buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, testResults))

	var got []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testResults, got)

	assert.Contains(t, buf.String(), "- name: clone/string/16\n")
	assert.Contains(t, buf.String(), "  ns_per_op: 12.5\n")
}

func TestWriteTableWideCells(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"A", "B"}, [][]string{
		{"老虎", "x"},
		{"ab", "y"},
	}))

	assert.Equal(t, "A     B\n老虎  x\nab    y\n", buf.String())
}
