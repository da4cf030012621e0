//go:build !darwin
// +build !darwin

package hwid

type noSysctl struct{}

func newSysctlReader() SysctlReader {
	return noSysctl{}
}

func (noSysctl) SysctlString(name string) (string, error) {
	return "", unsupported("sysctl " + name)
}
