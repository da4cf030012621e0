//go:build darwin
// +build darwin

package hwid

import (
	"strings"

	"golang.org/x/sys/unix"
)

type unixSysctl struct{}

func newSysctlReader() SysctlReader {
	return unixSysctl{}
}

func (unixSysctl) SysctlString(name string) (string, error) {
	value, err := unix.Sysctl(name)
	if err != nil {
		if isPermissionError(err) {
			return "", newProbeError(PermissionDenied, "sysctl "+name, err)
		}
		return "", newProbeError(LaunchFailed, "sysctl "+name, err)
	}
	return strings.TrimSpace(value), nil
}
