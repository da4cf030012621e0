package hwid

import (
	"bufio"
	"strings"
)

// Normalize trims surrounding whitespace and uppercases s.
// It is idempotent.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// parseWMICValue 解析单列 wmic 输出：第一行为表头，取第二个非空行。
// 若第二行与表头同名则视为无效。
func parseWMICValue(source, output, header string) (string, error) {
	lines := splitNonEmptyLines(output)
	if len(lines) < 2 {
		return "", emptyOutput(source)
	}
	value := lines[1]
	if value == header {
		return "", parseMismatch(source, "second line repeats header %q", header)
	}
	return value, nil
}

// valueAfterLabel 返回第一个包含 label 的行中 label 之后的内容。
func valueAfterLabel(source, output, label string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			value := strings.TrimSpace(line[idx+len(label):])
			if value == "" {
				return "", emptyOutput(source)
			}
			return value, nil
		}
	}
	return "", parseMismatch(source, "no line contains %q", label)
}

// parseCPUInfoSerial scans /proc/cpuinfo content for the first line
// mentioning "serial" (any case) and returns the text after its first colon.
func parseCPUInfoSerial(source, content string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(strings.ToLower(line), "serial") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return "", parseMismatch(source, "serial line has no colon")
		}
		value := strings.TrimSpace(parts[1])
		if value == "" {
			return "", emptyOutput(source)
		}
		return value, nil
	}
	if err := scanner.Err(); err != nil {
		return "", newProbeError(ParseMismatch, source, err)
	}
	return "", parseMismatch(source, "no serial line")
}

// parseIORegUUID 从 ioreg 输出中提取 IOPlatformUUID
func parseIORegUUID(source, output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		if parts := strings.SplitAfter(line, `" = "`); len(parts) == 2 {
			value := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(parts[1]), `"`))
			if value != "" {
				return value, nil
			}
		}
	}
	return "", parseMismatch(source, "no IOPlatformUUID entry")
}

// trimmedOutput 返回去除空白后的非空输出
func trimmedOutput(source string, output string) (string, error) {
	value := strings.TrimSpace(output)
	if value == "" {
		return "", emptyOutput(source)
	}
	return value, nil
}
