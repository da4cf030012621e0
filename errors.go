package hwid

import (
	"errors"
	"fmt"
)

// ErrorKind 探测失败的类别，仅用于诊断日志，控制流只关心成功与否。
type ErrorKind int

const (
	// LaunchFailed 进程无法启动（可执行文件不存在等）
	LaunchFailed ErrorKind = iota
	// Timeout 外部命令超时被终止
	Timeout
	// NonZeroExit 外部命令以非零状态退出
	NonZeroExit
	// EmptyOutput 来源存在但没有内容
	EmptyOutput
	// ParseMismatch 输出格式与预期不符
	ParseMismatch
	// PermissionDenied 权限不足
	PermissionDenied
	// Unsupported 当前平台不提供该来源
	Unsupported
)

var (
	// ErrEmptyOutput is wrapped by probe errors of kind EmptyOutput.
	ErrEmptyOutput = errors.New("empty output")
	// ErrNotFound is wrapped when the expected field is absent from a source.
	ErrNotFound = errors.New("value not found")
	// ErrUnsupported is wrapped when a binding is not available on this OS.
	ErrUnsupported = errors.New("not supported on this platform")
)

func (k ErrorKind) String() string {
	switch k {
	case LaunchFailed:
		return "launch_failed"
	case Timeout:
		return "timeout"
	case NonZeroExit:
		return "non_zero_exit"
	case EmptyOutput:
		return "empty_output"
	case ParseMismatch:
		return "parse_mismatch"
	case PermissionDenied:
		return "permission_denied"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ProbeError records why a single strategy produced no identifier.
// Use [errors.As] to inspect it.
type ProbeError struct {
	Kind   ErrorKind // 错误类别
	Source string    // 来源，例如 "wmic", "/proc/cpuinfo"
	Err    error     // 原始错误
}

// Error 实现 error 接口
func (e *ProbeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Kind, e.Source)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Source, e.Err)
}

// Unwrap 返回原始错误
func (e *ProbeError) Unwrap() error {
	return e.Err
}

func newProbeError(kind ErrorKind, source string, err error) *ProbeError {
	return &ProbeError{Kind: kind, Source: source, Err: err}
}

func emptyOutput(source string) error {
	return newProbeError(EmptyOutput, source, ErrEmptyOutput)
}

func parseMismatch(source, format string, args ...interface{}) error {
	return newProbeError(ParseMismatch, source, fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...))
}

func unsupported(source string) error {
	return newProbeError(Unsupported, source, ErrUnsupported)
}

// KindOf 返回错误链中的 ProbeError 类别；未分类的错误视为 LaunchFailed。
func KindOf(err error) ErrorKind {
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return LaunchFailed
}
