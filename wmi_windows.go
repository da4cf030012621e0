//go:build windows
// +build windows

package hwid

import (
	"fmt"

	"github.com/StackExchange/wmi"
)

// WMI 类名由结构体类型名决定，字段名即属性名
//
//nolint:revive,stylecheck
type Win32_ComputerSystemProduct struct {
	UUID string
}

//nolint:revive,stylecheck
type Win32_Processor struct {
	ProcessorId string
}

type windowsWMI struct{}

func newWMIQuerier() WMIQuerier {
	return windowsWMI{}
}

// QueryProperty 查询第一个实例的属性值
func (windowsWMI) QueryProperty(class, property string) (string, error) {
	source := "wmi " + class
	switch class + "." + property {
	case "Win32_ComputerSystemProduct.UUID":
		var dst []Win32_ComputerSystemProduct
		if err := wmi.Query(wmi.CreateQuery(&dst, ""), &dst); err != nil {
			return "", newProbeError(LaunchFailed, source, err)
		}
		if len(dst) == 0 {
			return "", emptyOutput(source)
		}
		return dst[0].UUID, nil
	case "Win32_Processor.ProcessorId":
		var dst []Win32_Processor
		if err := wmi.Query(wmi.CreateQuery(&dst, ""), &dst); err != nil {
			return "", newProbeError(LaunchFailed, source, err)
		}
		if len(dst) == 0 {
			return "", emptyOutput(source)
		}
		return dst[0].ProcessorId, nil
	default:
		return "", newProbeError(Unsupported, source, fmt.Errorf("%w: property %s", ErrUnsupported, property))
	}
}
