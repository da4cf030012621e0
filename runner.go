package hwid

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// defaultCommandTimeout bounds every external helper invocation.
const defaultCommandTimeout = 10 * time.Second

// waitDelay 超时后等待子进程输出管道关闭的时间，超过则强制关闭，避免泄漏。
const waitDelay = 2 * time.Second

// Runner executes an external helper and returns its standard output.
// Implementations must discard standard error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// FileReader reads whole files, e.g. DMI pseudo-files.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// execRunner 使用 os/exec 执行外部命令
type execRunner struct {
	timeout time.Duration
}

func newExecRunner(timeout time.Duration) *execRunner {
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	return &execRunner{timeout: timeout}
}

// Run 执行命令，仅捕获标准输出。
// 超时会杀死子进程；Wait 总会被调用，保证进程被回收、管道被关闭。
func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err != nil {
		return nil, classifyRunError(ctx, name, err)
	}
	return stdout.Bytes(), nil
}

func classifyRunError(ctx context.Context, name string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return newProbeError(Timeout, name, ctx.Err())
	}
	if isPermissionError(err) {
		return newProbeError(PermissionDenied, name, err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return newProbeError(NonZeroExit, name, err)
	}
	return newProbeError(LaunchFailed, name, err)
}

func isPermissionError(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM)
}

// osFiles 读取真实文件系统
type osFiles struct{}

func (osFiles) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if isPermissionError(err) {
			return nil, newProbeError(PermissionDenied, name, err)
		}
		return nil, newProbeError(LaunchFailed, name, err)
	}
	return data, nil
}

// decodeConsole 将控制台输出转换为 UTF-8。
//   - wmic 重定向输出时常为带 BOM 的 UTF-16LE
//   - 中文 Windows 的控制台代码页为 GBK
//
// 无法解码的字节直接丢弃。
func decodeConsole(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, _, err := transform.Bytes(dec, b); err == nil {
			return string(out)
		}
	}
	if utf8.Valid(b) {
		return string(b)
	}
	if out, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), b); err == nil && utf8.Valid(out) {
		return string(out)
	}
	return string(bytes.ToValidUTF8(b, nil))
}
