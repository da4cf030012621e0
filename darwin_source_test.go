package hwid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const systemProfilerOutput = `Hardware:

    Hardware Overview:

      Model Name: MacBook Pro
      Model Identifier: MacBookPro18,3
      Chip: Apple M1 Pro
      Serial Number (system): C02XXXXXXXXX
      Hardware UUID: 5a7b1c2d-3e4f-5061-7283-94a5b6c7d8e9
      Provisioning UDID: 00006000-001234567890801E
`

const ioregOutput = `+-o J314sAP  <class IOPlatformExpertDevice, id 0x100000227, registered, matched, active, busy 0 (150 ms), retain 37>
    {
      "IOPlatformSerialNumber" = "C02XXXXXXXXX"
      "IOPlatformUUID" = "0A1B2C3D-4E5F-6071-8293-A4B5C6D7E8F9"
    }
`

func TestDarwinBoard(t *testing.T) {
	t.Run("system_profiler", func(t *testing.T) {
		env := newHostEnv()
		env.runner.outputs["system_profiler SPHardwareDataType"] = systemProfilerOutput
		assert.Equal(t, "5A7B1C2D-3E4F-5061-7283-94A5B6C7D8E9", env.fingerprinter(t, "darwin").Board(context.Background()))
	})

	t.Run("ioreg fallback", func(t *testing.T) {
		env := newHostEnv()
		env.runner.outputs["system_profiler SPHardwareDataType"] = "Hardware:\n"
		env.runner.outputs["/usr/sbin/ioreg -rd1 -c IOPlatformExpertDevice"] = ioregOutput
		assert.Equal(t, "0A1B2C3D-4E5F-6071-8293-A4B5C6D7E8F9", env.fingerprinter(t, "darwin").Board(context.Background()))
	})

	t.Run("sentinel", func(t *testing.T) {
		env := newHostEnv()
		assert.Equal(t, UnknownBoard, env.fingerprinter(t, "darwin").Board(context.Background()))
	})
}

func TestDarwinProcessorIsBrandDigest(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *hostEnv)
		want  string
	}{
		{
			name: "sysctl syscall",
			setup: func(e *hostEnv) {
				e.sysctl[cpuBrandSysctl] = "Apple M1 Pro"
			},
			want: "2663DF195A0A71CE63C8A3B33FFF09D8",
		},
		{
			name: "sysctl command",
			setup: func(e *hostEnv) {
				e.runner.outputs["sysctl -n machdep.cpu.brand_string"] = "Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz\n"
			},
			want: "92BE58035FBBB1FF0AF2D8DBE0230E1A",
		},
		{
			name: "cpu model name",
			setup: func(e *hostEnv) {
				e.cpuModel = "Apple M1 Pro"
			},
			want: "2663DF195A0A71CE63C8A3B33FFF09D8",
		},
		{
			name:  "sentinel",
			setup: func(*hostEnv) {},
			want:  UnknownProcessor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newHostEnv()
			tt.setup(env)
			assert.Equal(t, tt.want, env.fingerprinter(t, "darwin").Processor(context.Background()))
		})
	}
}

func TestDarwinProcessorDigestIsDigestedAgain(t *testing.T) {
	env := newHostEnv()
	env.sysctl[cpuBrandSysctl] = "Apple M1 Pro"

	record := env.fingerprinter(t, "darwin").Acquire(context.Background())

	assert.Equal(t, Digest("Apple M1 Pro"), record.ProcessorRaw)
	assert.Equal(t, Digest(Digest("Apple M1 Pro")), record.ProcessorDigest)
}
