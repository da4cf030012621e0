package hwid

import (
	"context"
	"strings"
	"testing"
)

// fakeRunner 按完整命令行返回预置输出；未登记的命令视为不存在
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.calls = append(r.calls, cmdline)
	if err, ok := r.errs[cmdline]; ok {
		return nil, err
	}
	if out, ok := r.outputs[cmdline]; ok {
		return []byte(out), nil
	}
	return nil, newProbeError(LaunchFailed, name, errNotRegistered)
}

type stringError string

func (e stringError) Error() string { return string(e) }

const errNotRegistered = stringError("executable file not found in $PATH")

type fakeFiles map[string]string

func (f fakeFiles) ReadFile(name string) ([]byte, error) {
	if data, ok := f[name]; ok {
		return []byte(data), nil
	}
	return nil, newProbeError(LaunchFailed, name, stringError("no such file or directory"))
}

// fakeRegistry 键为 path + `\` + name
type fakeRegistry map[string]string

func (r fakeRegistry) ReadString(path, name string) (string, error) {
	if v, ok := r[path+`\`+name]; ok {
		return v, nil
	}
	return "", newProbeError(LaunchFailed, `HKLM\`+path, stringError("The system cannot find the file specified."))
}

// fakeWMI 键为 class.property
type fakeWMI map[string]string

func (w fakeWMI) QueryProperty(class, property string) (string, error) {
	if v, ok := w[class+"."+property]; ok {
		return v, nil
	}
	return "", emptyOutput("wmi " + class)
}

type fakeSysctl map[string]string

func (s fakeSysctl) SysctlString(name string) (string, error) {
	if v, ok := s[name]; ok {
		return v, nil
	}
	return "", unsupported("sysctl " + name)
}

var testNodeID = []byte{0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}

// hostEnv 描述一个模拟主机，零值表示所有来源都失败
type hostEnv struct {
	runner   *fakeRunner
	files    fakeFiles
	registry fakeRegistry
	wmi      fakeWMI
	sysctl   fakeSysctl
	cpuModel string
	nodeID   []byte
	ifaces   map[string][]byte
	cfg      *Config
}

func newHostEnv() *hostEnv {
	return &hostEnv{
		runner:   &fakeRunner{outputs: map[string]string{}, errs: map[string]error{}},
		files:    fakeFiles{},
		registry: fakeRegistry{},
		wmi:      fakeWMI{},
		sysctl:   fakeSysctl{},
		ifaces:   map[string][]byte{},
	}
}

func (e *hostEnv) fingerprinter(t *testing.T, platform string) *Fingerprinter {
	t.Helper()
	cfg := DefaultConfig()
	if e.cfg != nil {
		cfg = *e.cfg
	}
	return New(
		WithConfig(cfg),
		WithPlatform(platform),
		WithRunner(e.runner),
		WithFiles(e.files),
		WithRegistry(e.registry),
		WithWMI(e.wmi),
		WithSysctl(e.sysctl),
		WithCPUModel(func(context.Context) (string, error) {
			return trimmedOutput("cpu.Info", e.cpuModel)
		}),
		WithNodeID(
			func() []byte { return e.nodeID },
			func(name string) ([]byte, error) {
				if addr, ok := e.ifaces[name]; ok {
					return addr, nil
				}
				return nil, stringError("no such network interface")
			},
		),
	)
}

func stubDefaultFingerprinter(t *testing.T, f *Fingerprinter) {
	t.Helper()
	orig := defaultFingerprinter
	defaultFingerprinter = func() *Fingerprinter { return f }
	t.Cleanup(func() { defaultFingerprinter = orig })
}
