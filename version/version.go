package version

import (
	"fmt"
	"runtime"
	"strings"
)

// These are being replaced with the actual values using ldflags, e.g.:
//
//	go build -ldflags "-X github.com/dimonomid/rocstr/version.version=v0.1.0" ./cmd/rocbench
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// VersionFullDescr returns the full version description, printed at
// --version
func VersionFullDescr() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("rocbench %s\n", version))
	sb.WriteString(fmt.Sprintf("Commit: %s\n", commit))
	sb.WriteString(fmt.Sprintf("Build time: %s\n", date))
	sb.WriteString(fmt.Sprintf("Built by: %s\n", builtBy))
	sb.WriteString(fmt.Sprintf("GOOS: %s\n", runtime.GOOS))
	sb.WriteString(fmt.Sprintf("GOARCH: %s\n", runtime.GOARCH))
	sb.WriteString(fmt.Sprintf("Go: %s\n", runtime.Version()))
	if cgoEnabled {
		sb.WriteString("CGO: enabled\n")
	} else {
		sb.WriteString("CGO: disabled\n")
	}

	return sb.String()
}
