package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-logr/logr"
)

type options struct {
	verbosity int
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

// Report summarizes a completed extraction run.
type Report struct {
	FilesScanned int
	FilesSkipped int
	PagesWritten int
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	if argv == nil {
		// cobra falls back to os.Args when given nil.
		argv = []string{}
	}
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := configFromArgs(positionals)
	if err != nil {
		return err
	}
	stderr := app.stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	log := newLogger(stderr, app.opts.verbosity)
	report, err := extractTree(ctx, cfg, app.stdout, log)
	if err != nil {
		return err
	}
	log.V(1).Info("done", "scanned", report.FilesScanned, "skipped", report.FilesSkipped, "pages", report.PagesWritten)
	return nil
}

// extractTree walks cfg.SourceDir and writes every embedded page into
// cfg.OutputDir. Unreadable files are reported on stdout and skipped; any
// other failure stops the run and is returned.
func extractTree(ctx context.Context, cfg Config, stdout io.Writer, log logr.Logger) (Report, error) {
	var report Report
	if err := cfg.Validate(); err != nil {
		return report, err
	}
	walker := &treeWalker{log: log}
	writer := &pageWriter{outDir: cfg.OutputDir, stdout: stdout}
	err := walker.walk(cfg.SourceDir, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := readSource(path)
		if err != nil {
			fmt.Fprintf(stdout, "docgen: %v\n", err)
			report.FilesSkipped++
			return nil
		}
		report.FilesScanned++
		blocks, parseErr := parseBlocks(path, content)
		for _, block := range blocks {
			log.V(2).Info("found man page", "path", path, "name", block.name)
			if err := writer.write(path, block.name, cleanBody(block.body)); err != nil {
				return err
			}
			report.PagesWritten++
		}
		return parseErr
	})
	return report, err
}

func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %s: stream did not contain valid UTF-8", path)
	}
	return string(data), nil
}

var legacyLongFlagSet = map[string]struct{}{
	"verbose": {},
}

// normalizeLegacyArgs rewrites single-dash long flags (-verbose=2) into the
// double-dash form cobra expects.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		suffix := ""
		if idx := strings.Index(name, "="); idx > 0 {
			name, suffix = name[:idx], name[idx:]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name+suffix)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
