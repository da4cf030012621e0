package hwid

import "context"

const (
	dmiProductUUID        = "/sys/class/dmi/id/product_uuid"
	dmiVirtualProductUUID = "/sys/devices/virtual/dmi/id/product_uuid"
	procCPUInfo           = "/proc/cpuinfo"
)

// linuxSource 读取 DMI 伪文件，失败时调用 dmidecode（通常需要 root）
type linuxSource struct {
	*host
}

func (s *linuxSource) Chain(kind Kind) Chain {
	c := emptyChain(kind)
	switch kind {
	case KindBoard:
		name, args := s.privileged("dmidecode", "-s", "system-uuid")
		c.Strategies = []Strategy{
			s.fileStrategy(dmiProductUUID),
			s.fileStrategy(dmiVirtualProductUUID),
			s.commandStrategy(trimmedOutput, name, args...),
		}
	case KindProcessor:
		name, args := s.privileged("dmidecode", "-t", "processor")
		c.Strategies = []Strategy{
			s.cpuInfoStrategy(),
			s.commandStrategy(dmidecodeProcessorID, name, args...),
		}
	case KindNetwork:
		return s.networkChain()
	}
	return c
}

// cpuInfoStrategy 多数 x86 内核不输出 Serial，ARM 板卡（如树莓派）会输出
func (s *linuxSource) cpuInfoStrategy() Strategy {
	return Strategy{
		Name: procCPUInfo,
		Probe: func(ctx context.Context) (string, error) {
			data, err := s.files.ReadFile(procCPUInfo)
			if err != nil {
				return "", err
			}
			return parseCPUInfoSerial(procCPUInfo, string(data))
		},
	}
}

func dmidecodeProcessorID(source, output string) (string, error) {
	return valueAfterLabel(source, output, "ID:")
}
