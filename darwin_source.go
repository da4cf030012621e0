package hwid

import (
	"context"
	"strings"
)

const (
	hardwareUUIDLabel = "Hardware UUID:"
	cpuBrandSysctl    = "machdep.cpu.brand_string"
)

// darwinSource 使用 system_profiler / ioreg 获取硬件 UUID。
//
// macOS 不暴露 CPU 序列号，处理器标识取品牌字符串的摘要。这意味着该值在
// 聚合时会被再次摘要；为兼容已有激活记录保留这一行为。
type darwinSource struct {
	*host
}

func (s *darwinSource) Chain(kind Kind) Chain {
	c := emptyChain(kind)
	switch kind {
	case KindBoard:
		c.Strategies = []Strategy{
			s.commandStrategy(hardwareUUIDParser, "system_profiler", "SPHardwareDataType"),
			// cron 等最小环境下 PATH 里可能没有 /usr/sbin
			s.commandStrategy(parseIORegUUID, "/usr/sbin/ioreg", "-rd1", "-c", "IOPlatformExpertDevice"),
		}
	case KindProcessor:
		c.Strategies = []Strategy{
			brandDigest(Strategy{
				Name: "sysctl(3) " + cpuBrandSysctl,
				Probe: func(context.Context) (string, error) {
					return s.sysctl.SysctlString(cpuBrandSysctl)
				},
			}),
			brandDigest(s.commandStrategy(trimmedOutput, "sysctl", "-n", cpuBrandSysctl)),
			brandDigest(Strategy{Name: "cpu.Info model name", Probe: s.cpuModel}),
		}
	case KindNetwork:
		return s.networkChain()
	}
	return c
}

func hardwareUUIDParser(source, output string) (string, error) {
	return valueAfterLabel(source, output, hardwareUUIDLabel)
}

// brandDigest 将品牌字符串替换为其摘要
func brandDigest(s Strategy) Strategy {
	probe := s.Probe
	s.Probe = func(ctx context.Context) (string, error) {
		if probe == nil {
			return "", unsupported(s.Name)
		}
		brand, err := probe(ctx)
		if err != nil {
			return "", err
		}
		brand = strings.TrimSpace(brand)
		if brand == "" {
			return "", emptyOutput(s.Name)
		}
		return Digest(brand), nil
	}
	return s
}
