package buildstamp

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Set through -ldflags "-X go.jetpack.io/trackpad/pkg/buildstamp.<Var>=..."
var (
	// VersionNumber is the version number in semver format MAJOR.MINOR.PATCH
	VersionNumber string

	// PrereleaseTag marks pre-release builds. Usually "dev".
	PrereleaseTag string

	// Commit is the git commit hash the binary was built from.
	Commit string

	// BuildTimestamp is when the binary was built, in ISO 8601 format.
	BuildTimestamp string
)

const unknownVersion = "0.0.0-dev"

type buildStamp struct{}

func Get() *buildStamp {
	return &buildStamp{}
}

// Version returns VERSION[-PRERELEASE][+COMMIT]
func (b *buildStamp) Version() string {
	v := strings.TrimSpace(VersionNumber)
	if v == "" {
		return unknownVersion
	}
	if tag := strings.TrimSpace(PrereleaseTag); tag != "" {
		v += "-" + tag
	}
	if c := strings.TrimSpace(Commit); c != "" {
		v += "+" + shortCommit(c)
	}
	return v
}

func (b *buildStamp) IsDevBinary() bool {
	return VersionNumber == "" || PrereleaseTag != ""
}

// PrintVerboseVersion prints a verbose listing of the version variables
// to the io.Writer argument
func PrintVerboseVersion(w io.Writer) {
	fmt.Fprint(w, "\n")
	fmt.Fprintf(w, "Version Number: %v\n", VersionNumber)
	fmt.Fprintf(w, "Prerelease Tag: %v\n", PrereleaseTag)
	fmt.Fprintf(w, "Commit:         %v\n", Commit)
	fmt.Fprintf(w, "Build Date:     %v\n", BuildTimestamp)
	fmt.Fprintf(w, "Runtime:        %v\n", runtime.Version())
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
