package hwid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	cmdDmidecodeUUID      = "sudo -n dmidecode -s system-uuid"
	cmdDmidecodeProcessor = "sudo -n dmidecode -t processor"
)

const dmidecodeProcessorOutput = `# dmidecode 3.3
Getting SMBIOS data from sysfs.
SMBIOS 3.2.0 present.

Handle 0x0004, DMI type 4, 48 bytes
Processor Information
	Socket Designation: U3E1
	Type: Central Processor
	Family: Core i7
	Manufacturer: Intel(R) Corporation
	ID: EA 06 09 00 FF FB EB BF
	Signature: Type 0, Family 6, Model 158, Stepping 10
`

const cpuInfoWithSerial = `processor	: 0
model name	: ARMv7 Processor rev 4 (v7l)
BogoMIPS	: 38.40

Hardware	: BCM2835
Revision	: a02082
Serial		: 00000000a1b2c3d4
Model		: Raspberry Pi 3 Model B Rev 1.2
`

func TestLinuxBoardReadsDMIFile(t *testing.T) {
	env := newHostEnv()
	env.files[dmiProductUUID] = "4c4c4544-0043-3310-8037-b9c04f335332\n"

	f := env.fingerprinter(t, "linux")
	board := f.Board(context.Background())

	assert.Equal(t, "4C4C4544-0043-3310-8037-B9C04F335332", board)
	assert.Empty(t, env.runner.calls)

	record := NewRecord(board, UnknownProcessor, UnknownNetwork)
	assert.Equal(t, Digest("4C4C4544-0043-3310-8037-B9C04F335332"), record.BoardDigest)
	assert.Equal(t, "4EAC58801DDAC73EF4F93F5889F0A0C9", record.BoardDigest)
}

func TestLinuxBoardFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *Config
		setup func(e *hostEnv)
		want  string
	}{
		{
			name: "virtual dmi path",
			setup: func(e *hostEnv) {
				e.files[dmiVirtualProductUUID] = "ec2a1b2c-3d4e-5f60-7182-93a4b5c6d7e8\n"
			},
			want: "EC2A1B2C-3D4E-5F60-7182-93A4B5C6D7E8",
		},
		{
			name: "empty dmi file falls through to dmidecode",
			setup: func(e *hostEnv) {
				e.files[dmiProductUUID] = "\n"
				e.runner.outputs[cmdDmidecodeUUID] = "564d1b2a-0000-1111-2222-333344445555\n"
			},
			want: "564D1B2A-0000-1111-2222-333344445555",
		},
		{
			name: "dmidecode without sudo",
			cfg:  &Config{CommandTimeout: defaultCommandTimeout, Sudo: false},
			setup: func(e *hostEnv) {
				e.runner.outputs["dmidecode -s system-uuid"] = "aaaa\n"
			},
			want: "AAAA",
		},
		{
			name: "dmidecode permission denied",
			setup: func(e *hostEnv) {
				e.runner.errs[cmdDmidecodeUUID] = newProbeError(NonZeroExit, "sudo", stringError("exit status 1"))
			},
			want: UnknownBoard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newHostEnv()
			env.cfg = tt.cfg
			tt.setup(env)
			assert.Equal(t, tt.want, env.fingerprinter(t, "linux").Board(context.Background()))
		})
	}
}

func TestLinuxProcessor(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *hostEnv)
		want  string
	}{
		{
			name: "cpuinfo serial",
			setup: func(e *hostEnv) {
				e.files[procCPUInfo] = cpuInfoWithSerial
			},
			want: "00000000A1B2C3D4",
		},
		{
			name: "no serial line falls back to dmidecode",
			setup: func(e *hostEnv) {
				e.files[procCPUInfo] = "processor\t: 0\nvendor_id\t: GenuineIntel\n"
				e.runner.outputs[cmdDmidecodeProcessor] = dmidecodeProcessorOutput
			},
			want: "EA 06 09 00 FF FB EB BF",
		},
		{
			name: "dmidecode without ID line",
			setup: func(e *hostEnv) {
				e.runner.outputs[cmdDmidecodeProcessor] = "Processor Information\n\tFamily: Other\n"
			},
			want: UnknownProcessor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newHostEnv()
			tt.setup(env)
			assert.Equal(t, tt.want, env.fingerprinter(t, "linux").Processor(context.Background()))
		})
	}
}
