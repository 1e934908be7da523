// Package buildinfo prints ldflags-populated build metadata at startup.
package buildinfo

import "fmt"

// PrintBuildInfo prints the build version, date and commit, with N/A for
// values not baked in.
func PrintBuildInfo(version, date, commit string) {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}
