package hwid

// Windows 查询命令
const (
	wmicBoardHeader     = "UUID"
	wmicProcessorHeader = "ProcessorId"

	psBoardQuery     = "Get-CimInstance -ClassName Win32_ComputerSystemProduct | Select-Object -ExpandProperty UUID"
	psProcessorQuery = "Get-CimInstance -ClassName Win32_Processor | Select-Object -ExpandProperty ProcessorId"

	// hardwareConfigKey LastConfig 与真实主板 UUID 的关系并无平台保证，仅作兜底
	hardwareConfigKey   = `SYSTEM\HardwareConfig`
	hardwareConfigValue = "LastConfig"
)

// windowsSource 优先使用 wmic（Windows 10 兼容性最好），其次 PowerShell（Windows 11 已移除 wmic），
// 再直接查询 WMI，最后读注册表。
type windowsSource struct {
	*host
}

func (s *windowsSource) Chain(kind Kind) Chain {
	c := emptyChain(kind)
	switch kind {
	case KindBoard:
		c.Strategies = []Strategy{
			s.commandStrategy(wmicParser(wmicBoardHeader), "wmic", "csproduct", "get", "uuid"),
			s.commandStrategy(trimmedOutput, "powershell", "-NoProfile", "-Command", psBoardQuery),
			s.wmiStrategy("Win32_ComputerSystemProduct", "UUID"),
			s.registryStrategy(hardwareConfigKey, hardwareConfigValue),
		}
	case KindProcessor:
		c.Strategies = []Strategy{
			s.commandStrategy(wmicParser(wmicProcessorHeader), "wmic", "cpu", "get", "processorid"),
			s.commandStrategy(trimmedOutput, "powershell", "-NoProfile", "-Command", psProcessorQuery),
			s.wmiStrategy("Win32_Processor", "ProcessorId"),
		}
	case KindNetwork:
		return s.networkChain()
	}
	return c
}

func wmicParser(header string) func(source, output string) (string, error) {
	return func(source, output string) (string, error) {
		return parseWMICValue(source, output, header)
	}
}
