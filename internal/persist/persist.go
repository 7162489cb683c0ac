// Package persist writes a search run's append-only log entry under a
// log/ directory and its Gantt SVG under an output/ directory, creating
// both on first use. Directory names are overridable via environment
// variables loaded from an optional .env file, the same local-config
// pattern the pack's shell tool uses. This is pure I/O: pkg/prcpsp and
// pkg/search never import it.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultLogDir    = "log"
	defaultOutputDir = "output"

	envLogDir    = "PRCPSP_LOG_DIR"
	envOutputDir = "PRCPSP_OUTPUT_DIR"
)

// Writer appends run logs and writes SVG artifacts under its configured
// directories.
type Writer struct {
	logDir    string
	outputDir string
}

// New loads an optional .env file from the working directory (a missing
// file is not an error) and resolves the log and output directories from
// PRCPSP_LOG_DIR / PRCPSP_OUTPUT_DIR, falling back to "log" and "output".
func New() *Writer {
	_ = godotenv.Load()

	logDir := os.Getenv(envLogDir)
	if logDir == "" {
		logDir = defaultLogDir
	}
	outputDir := os.Getenv(envOutputDir)
	if outputDir == "" {
		outputDir = defaultOutputDir
	}
	return &Writer{logDir: logDir, outputDir: outputDir}
}

// AppendLog appends one human-readable entry to log/<algo>.log, creating
// the log directory if it does not yet exist.
func (w *Writer) AppendLog(algo, runID string, cost int, entry string) error {
	if err := os.MkdirAll(w.logDir, 0o755); err != nil {
		return fmt.Errorf("persist: creating log dir %s: %w", w.logDir, err)
	}
	path := filepath.Join(w.logDir, algo+".log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("persist: opening %s: %w", path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] run=%s cost=%d\n%s\n\n", time.Now().UTC().Format(time.RFC3339), runID, cost, entry)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("persist: writing %s: %w", path, err)
	}
	return nil
}

// WriteArtifact writes an SVG artifact under output/, naming the file
// <algo>-<runID>.svg, creating the output directory if it does not yet
// exist.
func (w *Writer) WriteArtifact(algo, runID, svg string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("persist: creating output dir %s: %w", w.outputDir, err)
	}
	path := filepath.Join(w.outputDir, algo+"-"+runID+".svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return "", fmt.Errorf("persist: writing %s: %w", path, err)
	}
	return path, nil
}

// FormatCosts renders a search run's log (costs observed per level or
// iteration) as a comma-separated line, for callers that want to record
// the whole trajectory alongside the final AppendLog entry.
func FormatCosts(costs []int) string {
	out := ""
	for i, c := range costs {
		if i > 0 {
			out += ", "
		}
		out += strconv.Itoa(c)
	}
	return out
}
