package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/darkit/hwid"
	"github.com/darkit/hwid/internal/logger"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// 退出码
const (
	exitOK      = 0
	exitChanged = 1
	exitUsage   = 2
)

type options struct {
	cfg     hwid.Config
	format  string
	compare string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	l := logger.SetupWithOutput(stderr, opts.cfg.LogLevel, opts.cfg.LogFormat)

	f := hwid.New(hwid.WithConfig(opts.cfg), hwid.WithLogger(l))
	record := f.Acquire(ctx)

	if opts.compare != "" {
		return compare(record, opts.compare, stdout, l)
	}

	if err := write(stdout, record, opts.format); err != nil {
		l.Errorf("Writing fingerprint: %v", err)
		return exitUsage
	}
	return exitOK
}

// parseFlags 环境变量提供默认值，命令行参数覆盖
func parseFlags(args []string, stderr io.Writer) (options, error) {
	cfg, err := hwid.LoadConfig(hwid.EnvPrefix)
	if err != nil {
		return options{}, err
	}

	opts := options{cfg: cfg}
	fs := flag.NewFlagSet("hardware", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or yaml")
	fs.DurationVar(&opts.cfg.CommandTimeout, "timeout", cfg.CommandTimeout, "timeout for each external helper command")
	noSudo := fs.Bool("no-sudo", !cfg.Sudo, "run dmidecode without sudo -n")
	fs.StringVar(&opts.cfg.NetworkInterface, "interface", cfg.NetworkInterface, "network interface used for the MAC identifier")
	fs.StringVar(&opts.cfg.LogLevel, "log-level", cfg.LogLevel, "which log level to output")
	fs.StringVar(&opts.cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&opts.compare, "compare", "", "compare against a fingerprint saved as json or yaml")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.cfg.Sudo = !*noSudo

	switch opts.format {
	case formatText, formatJSON, formatYAML:
	default:
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}
	if opts.cfg.CommandTimeout <= 0 {
		return options{}, fmt.Errorf("timeout must be positive")
	}
	return opts, nil
}

func write(w io.Writer, record hwid.Record, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(record)
	default:
		heading := color.New(color.FgCyan, color.Bold).SprintFunc()
		return record.RenderWithHeadings(w, func(s string) string { return heading(s) })
	}
}

func compare(current hwid.Record, path string, stdout io.Writer, l log.FieldLogger) int {
	saved, err := loadRecord(path)
	if err != nil {
		l.Errorf("Loading saved fingerprint: %v", err)
		return exitUsage
	}

	changed := current.Diff(saved)
	if len(changed) == 0 {
		fmt.Fprintln(stdout, color.GreenString("fingerprint matches %s", path))
		return exitOK
	}

	names := make([]string, 0, len(changed))
	for _, kind := range changed {
		names = append(names, string(kind))
	}
	fmt.Fprintln(stdout, color.RedString("fingerprint differs from %s: %s", path, strings.Join(names, ", ")))
	return exitChanged
}

func loadRecord(path string) (hwid.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return hwid.Record{}, err
	}

	var record hwid.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &record)
	default:
		err = json.Unmarshal(data, &record)
	}
	if err != nil {
		return hwid.Record{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return record, nil
}
