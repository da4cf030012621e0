//go:build !windows
// +build !windows

package hwid

type noRegistry struct{}

func newRegistryReader() RegistryReader {
	return noRegistry{}
}

func (noRegistry) ReadString(path, _ string) (string, error) {
	return "", unsupported(`HKLM\` + path)
}
