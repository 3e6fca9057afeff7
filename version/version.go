// Package version reports how the asciify binary was built.
//
// Release builds stamp the ldflags variables:
//
//	go build -ldflags "-X github.com/wbrown/img2ascii/version.Version=v1.2.0" ./cmd/asciify
//
// Everything else comes from the Go runtime and the VCS stamp the go
// command embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Link-time variables. Empty when not stamped.
var (
	Version   string
	Branch    string
	BuildUser string
	BuildDate string
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Revision  string
	Branch    string
	BuildUser string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get collects the build metadata of the running binary. An unstamped
// Version reads as "dev".
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  revision(),
		Branch:    Branch,
		BuildUser: BuildUser,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Version == "" {
		info.Version = "dev"
	}

	return info
}

// String renders i on one line, skipping fields that were not stamped.
func (i Info) String() string {
	details := []string{"revision " + i.Revision}
	if i.Branch != "" {
		details = append(details, "branch "+i.Branch)
	}
	if i.BuildDate != "" {
		built := "built " + i.BuildDate
		if i.BuildUser != "" {
			built += " by " + i.BuildUser
		}
		details = append(details, built)
	}

	return fmt.Sprintf("%s (%s) %s %s", i.Version, strings.Join(details, ", "), i.GoVersion, i.Platform)
}

// String is shorthand for Get().String(), used as the --version text.
func String() string {
	return Get().String()
}

// revision returns the embedded VCS commit, suffixed with "-dirty" for
// builds from a modified tree.
func revision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	settings := map[string]string{}
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	rev, ok := settings["vcs.revision"]
	if !ok {
		return "unknown"
	}
	if settings["vcs.modified"] == "true" {
		rev += "-dirty"
	}

	return rev
}
