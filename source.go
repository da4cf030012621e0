package hwid

import (
	"context"
	"fmt"
	"strings"
)

// IdentifierSource provides the ordered probing chain for each identifier
// on one platform family.
//
// 各平台实现不使用构建标签，方便在任意主机上通过注入假的 Runner 测试；
// 只有注册表、WMI、sysctl 这类系统绑定才区分平台编译。
type IdentifierSource interface {
	Chain(kind Kind) Chain
}

// RegistryReader reads string values below HKEY_LOCAL_MACHINE.
type RegistryReader interface {
	ReadString(path, name string) (string, error)
}

// WMIQuerier reads a single string property of the first instance of a WMI class.
type WMIQuerier interface {
	QueryProperty(class, property string) (string, error)
}

// SysctlReader reads string sysctl values through the system call.
type SysctlReader interface {
	SysctlString(name string) (string, error)
}

// host 聚合所有外部协作者，平台实现只通过它访问系统
type host struct {
	cfg      Config
	runner   Runner
	files    FileReader
	registry RegistryReader
	wmi      WMIQuerier
	sysctl   SysctlReader
	cpuModel func(ctx context.Context) (string, error)
	nodeID   func() []byte
	ifaceMAC func(name string) ([]byte, error)
}

// 平台族
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
	PlatformDarwin  = "darwin"
	PlatformBSD     = "bsd"
)

// platformFamily maps a GOOS value to a platform family, or "" when the
// platform is not recognized.
func platformFamily(goos string) string {
	switch goos {
	case "windows":
		return PlatformWindows
	case "linux", "android":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return PlatformBSD
	default:
		return ""
	}
}

func sourceFor(goos string, h *host) IdentifierSource {
	switch platformFamily(goos) {
	case PlatformWindows:
		return &windowsSource{h}
	case PlatformLinux:
		return &linuxSource{h}
	case PlatformDarwin:
		return &darwinSource{h}
	case PlatformBSD:
		return &bsdSource{h}
	default:
		return &unknownSource{h}
	}
}

// unknownSource 未识别的平台：只有网卡标识可用
type unknownSource struct {
	*host
}

func (s *unknownSource) Chain(kind Kind) Chain {
	if kind == KindNetwork {
		return s.networkChain()
	}
	return emptyChain(kind)
}

func emptyChain(kind Kind) Chain {
	return Chain{Kind: kind, Sentinel: kind.Sentinel()}
}

// commandStrategy 执行外部命令并用 parse 解析解码后的标准输出
func (h *host) commandStrategy(parse func(source, output string) (string, error), name string, args ...string) Strategy {
	label := strings.TrimSpace(name + " " + strings.Join(args, " "))
	return Strategy{
		Name: label,
		Probe: func(ctx context.Context) (string, error) {
			out, err := h.runner.Run(ctx, name, args...)
			if err != nil {
				return "", err
			}
			return parse(label, decodeConsole(out))
		},
	}
}

// privileged 在配置允许时以非交互 sudo 运行
func (h *host) privileged(name string, args ...string) (string, []string) {
	if !h.cfg.Sudo {
		return name, args
	}
	return "sudo", append([]string{"-n", name}, args...)
}

func (h *host) fileStrategy(path string) Strategy {
	return Strategy{
		Name: path,
		Probe: func(context.Context) (string, error) {
			data, err := h.files.ReadFile(path)
			if err != nil {
				return "", err
			}
			return trimmedOutput(path, string(data))
		},
	}
}

func (h *host) registryStrategy(path, name string) Strategy {
	source := fmt.Sprintf(`HKLM\%s\%s`, path, name)
	return Strategy{
		Name: "registry " + source,
		Probe: func(context.Context) (string, error) {
			value, err := h.registry.ReadString(path, name)
			if err != nil {
				return "", err
			}
			return trimmedOutput(source, value)
		},
	}
}

func (h *host) wmiStrategy(class, property string) Strategy {
	source := "wmi " + class + "." + property
	return Strategy{
		Name: source,
		Probe: func(context.Context) (string, error) {
			value, err := h.wmi.QueryProperty(class, property)
			if err != nil {
				return "", err
			}
			return trimmedOutput(source, value)
		},
	}
}
