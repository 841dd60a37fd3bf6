package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const separatorWidth = 80

// Logger appends a human-readable record of every operation of the current
// run to logs/session_YYYYMMDD_HHMMSS.log.
type Logger struct {
	filename string
}

// NewLogger creates the log directory if needed, opens a fresh session file
// and writes its header.
func NewLogger(logsDir string) (*Logger, error) {
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %v", err)
		}
		log.Info().Str("dir", logsDir).Msg("📁 logs directory created")
	}

	now := time.Now()
	l := &Logger{
		filename: filepath.Join(logsDir, fmt.Sprintf("session_%s.log", now.Format("20060102_150405"))),
	}

	header := strings.Repeat("=", separatorWidth) + "\n" +
		fmt.Sprintf("  SESIÓN analizador - %s\n", now.Format("2006-01-02 15:04:05")) +
		strings.Repeat("=", separatorWidth) + "\n\n"
	if err := os.WriteFile(l.filename, []byte(header), 0644); err != nil {
		return nil, fmt.Errorf("failed to write session log header: %v", err)
	}
	return l, nil
}

// Filename returns the path of the session log file.
func (l *Logger) Filename() string {
	return l.filename
}

// Log appends one timestamped entry. The input is truncated to 100 runes;
// map and slice results are expanded as bulleted blocks.
func (l *Logger) Log(action, input string, result any) error {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s\n", time.Now().Format("15:04:05"), action)
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	fmt.Fprintf(&b, "Entrada: %s\n\n", truncate(input, 100))

	writeResult(&b, result)
	b.WriteString("\n" + strings.Repeat("=", separatorWidth) + "\n\n")

	f, err := os.OpenFile(l.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open session log: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append session log entry: %v", err)
	}
	return nil
}

// Error appends an error entry.
func (l *Logger) Error(message string) error {
	return l.Log("ERROR", message, nil)
}

func writeResult(b *strings.Builder, result any) {
	switch v := result.(type) {
	case nil:
	case map[string][]string:
		for _, key := range sortedKeys(v) {
			fmt.Fprintf(b, "  %s:\n", key)
			for _, item := range v[key] {
				fmt.Fprintf(b, "    • %s\n", item)
			}
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			fmt.Fprintf(b, "  %s:\n", key)
			switch items := v[key].(type) {
			case []string:
				for _, item := range items {
					fmt.Fprintf(b, "    • %s\n", item)
				}
			case []any:
				for _, item := range items {
					fmt.Fprintf(b, "    • %v\n", item)
				}
			default:
				fmt.Fprintf(b, "    %v\n", items)
			}
		}
	default:
		fmt.Fprintf(b, "Resultado: %v\n", v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
