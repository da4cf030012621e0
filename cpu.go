package hwid

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
)

// cpuModelName 通过 gopsutil 读取 CPU 型号名
func cpuModelName(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", newProbeError(LaunchFailed, "cpu.Info", err)
	}
	if len(infos) == 0 {
		return "", emptyOutput("cpu.Info")
	}
	return trimmedOutput("cpu.Info", infos[0].ModelName)
}
