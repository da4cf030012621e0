package hwid

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"github.com/google/uuid"
)

// nodeIDLen 48 位硬件地址
const nodeIDLen = 6

// networkChain 网卡标识在所有平台上相同：优先使用配置指定的网卡，
// 否则使用 uuid 的节点标识（首个有硬件地址的网卡；没有网卡时为进程内固定的随机值）。
func (h *host) networkChain() Chain {
	c := emptyChain(KindNetwork)
	if name := strings.TrimSpace(h.cfg.NetworkInterface); name != "" {
		c.Strategies = append(c.Strategies, Strategy{
			Name: "interface " + name,
			Probe: func(context.Context) (string, error) {
				addr, err := h.ifaceMAC(name)
				if err != nil {
					return "", newProbeError(LaunchFailed, "interface "+name, err)
				}
				return formatNodeID("interface "+name, addr)
			},
		})
	}
	c.Strategies = append(c.Strategies, Strategy{
		Name: "uuid.NodeID",
		Probe: func(context.Context) (string, error) {
			return formatNodeID("uuid.NodeID", h.nodeID())
		},
	})
	return c
}

// formatNodeID 12 位大写十六进制，无分隔符
func formatNodeID(source string, addr []byte) (string, error) {
	if len(addr) != nodeIDLen {
		return "", parseMismatch(source, "hardware address has %d bytes, want %d", len(addr), nodeIDLen)
	}
	return strings.ToUpper(hex.EncodeToString(addr)), nil
}

func interfaceMAC(name string) ([]byte, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	if len(iface.HardwareAddr) == 0 {
		return nil, fmt.Errorf("interface %s has no hardware address", name)
	}
	return iface.HardwareAddr, nil
}

func uuidNodeID() []byte {
	return uuid.NodeID()
}
