//go:build windows
// +build windows

package hwid

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

type windowsRegistry struct{}

func newRegistryReader() RegistryReader {
	return windowsRegistry{}
}

// ReadString 读取 HKLM 下的字符串值
func (windowsRegistry) ReadString(path, name string) (string, error) {
	source := `HKLM\` + path
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		if isPermissionError(err) {
			return "", newProbeError(PermissionDenied, source, err)
		}
		return "", newProbeError(LaunchFailed, source, err)
	}
	defer k.Close()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		return "", newProbeError(ParseMismatch, source+`\`+name, err)
	}
	return strings.TrimSpace(value), nil
}
