//go:build !windows
// +build !windows

package hwid

type noWMI struct{}

func newWMIQuerier() WMIQuerier {
	return noWMI{}
}

func (noWMI) QueryProperty(class, _ string) (string, error) {
	return "", unsupported("wmi " + class)
}
