// Package hwid derives a hardware identity fingerprint of the current host.
//
// https://github.com/darkit/hwid
//
// Three identifiers are collected: the board (system) UUID, the processor ID
// and the primary network interface address. Each one is obtained through an
// ordered chain of platform specific strategies (wmic, PowerShell, WMI and the
// registry on Windows; DMI files and dmidecode on Linux; system_profiler,
// ioreg and sysctl on macOS; kenv on the BSDs). The first strategy that
// succeeds wins; when all of them fail a fixed sentinel is used instead.
//
// Every raw value is trimmed and uppercased and paired with its MD5 digest in
// uppercase hex. Acquisition never fails: a host without any readable
// hardware source still produces a complete Record made of sentinels.
//
// Caveat: the values are best-effort. Virtual machines and cloned images may
// share identifiers, and nothing here protects against spoofed hardware.
package hwid // import "github.com/darkit/hwid"

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind names one of the three identifiers.
type Kind string

const (
	KindBoard     Kind = "board"
	KindProcessor Kind = "processor"
	KindNetwork   Kind = "network"
)

// Kinds lists the identifiers in record order.
var Kinds = []Kind{KindBoard, KindProcessor, KindNetwork}

// Sentinels used when no strategy yields a value.
const (
	UnknownBoard     = "UNKNOWN_BOARD_UUID"
	UnknownProcessor = "UNKNOWN_CPU_ID"
	UnknownNetwork   = "000000000000"
)

// Sentinel returns the placeholder for the identifier kind.
func (k Kind) Sentinel() string {
	switch k {
	case KindBoard:
		return UnknownBoard
	case KindProcessor:
		return UnknownProcessor
	case KindNetwork:
		return UnknownNetwork
	default:
		return ""
	}
}

// Digest returns the MD5 of s as 32 uppercase hex characters.
// MD5 is kept so digests match previously issued activations.
func Digest(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Fingerprinter acquires fingerprints. It keeps no state between calls
// and is safe for concurrent use once constructed.
type Fingerprinter struct {
	log    logrus.FieldLogger
	source IdentifierSource
}

// Option configures a Fingerprinter.
type Option func(*options)

type options struct {
	host     host
	platform string
	source   IdentifierSource
	log      logrus.FieldLogger
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.host.cfg = cfg }
}

// WithRunner sets the external command runner, mostly for tests.
func WithRunner(r Runner) Option {
	return func(o *options) { o.host.runner = r }
}

// WithFiles sets the file reader used for pseudo-files.
func WithFiles(f FileReader) Option {
	return func(o *options) { o.host.files = f }
}

// WithRegistry sets the Windows registry reader.
func WithRegistry(r RegistryReader) Option {
	return func(o *options) { o.host.registry = r }
}

// WithWMI sets the WMI client.
func WithWMI(q WMIQuerier) Option {
	return func(o *options) { o.host.wmi = q }
}

// WithSysctl sets the sysctl reader.
func WithSysctl(s SysctlReader) Option {
	return func(o *options) { o.host.sysctl = s }
}

// WithCPUModel sets the function reading the CPU model name.
func WithCPUModel(fn func(ctx context.Context) (string, error)) Option {
	return func(o *options) { o.host.cpuModel = fn }
}

// WithNodeID sets the node identifier primitive and the per-interface
// hardware address lookup.
func WithNodeID(nodeID func() []byte, ifaceMAC func(name string) ([]byte, error)) Option {
	return func(o *options) {
		if nodeID != nil {
			o.host.nodeID = nodeID
		}
		if ifaceMAC != nil {
			o.host.ifaceMAC = ifaceMAC
		}
	}
}

// WithLogger sets the logger receiving diagnostics about failed strategies.
// By default diagnostics are discarded.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithPlatform overrides runtime.GOOS when selecting the platform chains.
func WithPlatform(goos string) Option {
	return func(o *options) { o.platform = goos }
}

// WithSource replaces the platform chains entirely.
func WithSource(s IdentifierSource) Option {
	return func(o *options) { o.source = s }
}

// New returns a Fingerprinter for the current platform.
func New(opts ...Option) *Fingerprinter {
	o := &options{
		host:     host{cfg: DefaultConfig()},
		platform: runtime.GOOS,
	}
	for _, opt := range opts {
		opt(o)
	}

	h := &o.host
	if h.runner == nil {
		h.runner = newExecRunner(h.cfg.CommandTimeout)
	}
	if h.files == nil {
		h.files = osFiles{}
	}
	if h.registry == nil {
		h.registry = newRegistryReader()
	}
	if h.wmi == nil {
		h.wmi = newWMIQuerier()
	}
	if h.sysctl == nil {
		h.sysctl = newSysctlReader()
	}
	if h.cpuModel == nil {
		h.cpuModel = cpuModelName
	}
	if h.nodeID == nil {
		h.nodeID = uuidNodeID
	}
	if h.ifaceMAC == nil {
		h.ifaceMAC = interfaceMAC
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	if o.source == nil {
		o.source = sourceFor(o.platform, h)
	}

	return &Fingerprinter{
		log:    o.log.WithFields(logrus.Fields{"component": "hwid", "platform": o.platform}),
		source: o.source,
	}
}

// Board returns the normalized board UUID or UnknownBoard.
func (f *Fingerprinter) Board(ctx context.Context) string {
	return f.resolve(ctx, KindBoard)
}

// Processor returns the normalized processor ID or UnknownProcessor.
func (f *Fingerprinter) Processor(ctx context.Context) string {
	return f.resolve(ctx, KindProcessor)
}

// Network returns the 12 hex digit interface address or UnknownNetwork.
func (f *Fingerprinter) Network(ctx context.Context) string {
	return f.resolve(ctx, KindNetwork)
}

func (f *Fingerprinter) resolve(ctx context.Context, kind Kind) string {
	c := f.source.Chain(kind)
	if c.Sentinel == "" {
		c.Sentinel = kind.Sentinel()
	}
	if c.Kind == "" {
		c.Kind = kind
	}
	return c.Resolve(ctx, f.log)
}

// Acquire probes the three identifiers in turn and returns the fingerprint.
// It always returns a complete record.
func (f *Fingerprinter) Acquire(ctx context.Context) Record {
	return NewRecord(f.Board(ctx), f.Processor(ctx), f.Network(ctx))
}

var defaultFingerprinter = func() *Fingerprinter { return New() }

// Acquire returns the fingerprint of the current host using the default
// configuration.
func Acquire(ctx context.Context) Record {
	return defaultFingerprinter().Acquire(ctx)
}
