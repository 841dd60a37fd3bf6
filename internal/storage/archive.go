package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"analizador/pkg"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// ArchiveManager persists analysis records beyond the lifetime of a session.
type ArchiveManager interface {
	LoadArchive(sessionID string) ([]pkg.AnalysisRecord, error)
	SaveRecord(record pkg.AnalysisRecord) error
}

// JSONArchiveManager implements file-based archival, one JSON file per
// session.
type JSONArchiveManager struct {
	baseDir string
}

// NewJSONArchiveManager creates a JSON-file archive rooted at baseDir.
func NewJSONArchiveManager(baseDir string) ArchiveManager {
	return &JSONArchiveManager{baseDir: baseDir}
}

// LoadArchive loads all archived records for a session. A missing file means
// an empty archive, not an error.
func (j *JSONArchiveManager) LoadArchive(sessionID string) ([]pkg.AnalysisRecord, error) {
	filePath := filepath.Join(j.baseDir, fmt.Sprintf("%s.json", sessionID))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return []pkg.AnalysisRecord{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive file: %v", err)
	}

	var records []pkg.AnalysisRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse archive file: %v", err)
	}
	return records, nil
}

// SaveRecord appends a record to the session's archive file.
func (j *JSONArchiveManager) SaveRecord(record pkg.AnalysisRecord) error {
	if record.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	if err := os.MkdirAll(j.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %v", err)
	}

	records, err := j.LoadArchive(record.SessionID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load existing archive, starting fresh")
		records = []pkg.AnalysisRecord{}
	}
	records = append(records, record)

	data, err := sonic.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive data: %v", err)
	}

	filePath := filepath.Join(j.baseDir, fmt.Sprintf("%s.json", record.SessionID))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write archive file: %v", err)
	}

	log.Debug().Str("file", filePath).Str("operation", record.Operation).Msg("💾 record archived")
	return nil
}
