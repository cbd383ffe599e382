package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFullDescr(t *testing.T) {
	descr := VersionFullDescr()

	assert.True(t, strings.HasPrefix(descr, "rocbench dev\n"), descr)
	assert.Contains(t, descr, "Commit: none\n")
	assert.Contains(t, descr, "GOOS: "+runtime.GOOS+"\n")
	assert.Contains(t, descr, "GOARCH: "+runtime.GOARCH+"\n")

	if cgoEnabled {
		assert.Contains(t, descr, "CGO: enabled\n")
	} else {
		assert.Contains(t, descr, "CGO: disabled\n")
	}
}
