package hwid

const hostIDPath = "/etc/hostid"

// bsdSource FreeBSD 等通过 kenv 读取 SMBIOS UUID，其次 /etc/hostid。
// 这些系统没有可用的 CPU 序列号来源。
type bsdSource struct {
	*host
}

func (s *bsdSource) Chain(kind Kind) Chain {
	c := emptyChain(kind)
	switch kind {
	case KindBoard:
		c.Strategies = []Strategy{
			s.commandStrategy(trimmedOutput, "kenv", "-q", "smbios.system.uuid"),
			s.fileStrategy(hostIDPath),
		}
	case KindNetwork:
		return s.networkChain()
	}
	return c
}
