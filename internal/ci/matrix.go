package ci

import "fmt"

// Target is one OS image the test suite is replayed inside.
type Target struct {
	OSType    string
	OSVersion string
}

// Image returns the container image reference for the target.
func (t Target) Image() string {
	return fmt.Sprintf("%s:%s", t.OSType, t.OSVersion)
}

// DefaultMatrix lists the OS versions every CI run exercises.
var DefaultMatrix = []Target{
	{OSType: "almalinux", OSVersion: "8"},
	{OSType: "almalinux", OSVersion: "9"},
}

// ResolveMatrix returns the targets selected by the OS_TYPE and OS_VERSION
// environment variables, resolved before anything is pulled so a
// deselected target costs nothing. Unset variables select everything.
func ResolveMatrix(matrix []Target, getenv func(string) string) []Target {
	osType := getenv("OS_TYPE")
	osVersion := getenv("OS_VERSION")

	var selected []Target
	for _, t := range matrix {
		if osType != "" && t.OSType != osType {
			continue
		}
		if osVersion != "" && t.OSVersion != osVersion {
			continue
		}
		selected = append(selected, t)
	}
	return selected
}
