package hwid

import (
	"fmt"
	"io"
	"strings"
)

// Record is a host fingerprint: three normalized identifiers and the digest
// of each one. Records are plain values; copies never share state.
type Record struct {
	BoardRaw        string `json:"board_uuid_raw" yaml:"board_uuid_raw"`
	ProcessorRaw    string `json:"cpu_id_raw" yaml:"cpu_id_raw"`
	NetworkRaw      string `json:"mac_address_raw" yaml:"mac_address_raw"`
	BoardDigest     string `json:"board_uuid_md5" yaml:"board_uuid_md5"`
	ProcessorDigest string `json:"cpu_id_md5" yaml:"cpu_id_md5"`
	NetworkDigest   string `json:"mac_address_md5" yaml:"mac_address_md5"`
}

// NewRecord normalizes the raw identifiers and computes their digests.
// An identifier that is empty after normalization is replaced by its sentinel.
func NewRecord(board, processor, network string) Record {
	board = normalizeOr(board, UnknownBoard)
	processor = normalizeOr(processor, UnknownProcessor)
	network = normalizeOr(network, UnknownNetwork)
	return Record{
		BoardRaw:        board,
		ProcessorRaw:    processor,
		NetworkRaw:      network,
		BoardDigest:     Digest(board),
		ProcessorDigest: Digest(processor),
		NetworkDigest:   Digest(network),
	}
}

func normalizeOr(s, sentinel string) string {
	if s = Normalize(s); s == "" {
		return sentinel
	}
	return s
}

// Value returns the raw value and digest of one identifier.
func (r Record) Value(kind Kind) (raw, digest string) {
	switch kind {
	case KindBoard:
		return r.BoardRaw, r.BoardDigest
	case KindProcessor:
		return r.ProcessorRaw, r.ProcessorDigest
	case KindNetwork:
		return r.NetworkRaw, r.NetworkDigest
	default:
		return "", ""
	}
}

// Resolved reports whether the identifier holds a real value rather than
// its sentinel.
func (r Record) Resolved(kind Kind) bool {
	raw, _ := r.Value(kind)
	return raw != "" && raw != kind.Sentinel()
}

// Diff returns the identifiers whose digests differ between r and other,
// in record order.
func (r Record) Diff(other Record) []Kind {
	var changed []Kind
	for _, kind := range Kinds {
		_, a := r.Value(kind)
		_, b := other.Value(kind)
		if !strings.EqualFold(a, b) {
			changed = append(changed, kind)
		}
	}
	return changed
}

// 展示用标签
var displayLabels = map[Kind]string{
	KindBoard:     "Board UUID:",
	KindProcessor: "CPU ID:",
	KindNetwork:   "MAC Address:",
}

const bannerWidth = 80

// Render writes the record as text: raw values first, then digests.
func (r Record) Render(w io.Writer) error {
	return r.RenderWithHeadings(w, func(s string) string { return s })
}

// RenderWithHeadings is Render with a decorator applied to the banner and the
// section titles, e.g. to colorize them.
func (r Record) RenderWithHeadings(w io.Writer, heading func(string) string) error {
	banner := strings.Repeat("=", bannerWidth)
	var b strings.Builder
	fmt.Fprintln(&b, heading(banner))
	fmt.Fprintln(&b, heading("Hardware Fingerprint"))
	fmt.Fprintln(&b, heading(banner))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, heading("[Raw identifiers]"))
	for _, kind := range Kinds {
		raw, _ := r.Value(kind)
		fmt.Fprintf(&b, "%-13s %s\n", displayLabels[kind], raw)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, heading("[MD5 digests]"))
	for _, kind := range Kinds {
		_, digest := r.Value(kind)
		fmt.Fprintf(&b, "%-13s %s\n", displayLabels[kind], digest)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, heading(banner))

	_, err := io.WriteString(w, b.String())
	return err
}
