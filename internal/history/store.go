package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haskel/parafox/internal/analyze"
)

const recordVersion = 1

// Record is one persisted comparison.
type Record struct {
	Version   int       `json:"version"`
	ID        string    `json:"id"`
	SavedAt   time.Time `json:"saved_at"`
	Workload  string    `json:"workload"`
	Names     []string  `json:"names"`
	Workers   []int     `json:"workers"`
	Chunks    []int     `json:"chunks"`
	Backends  []string  `json:"backends"`
	Times     []float64 `json:"times"`
	Speedups  []float64 `json:"speedups"`
	BestIndex int       `json:"best_index"`
}

// Store persists comparison results as JSON files in a data dir, one file
// per record, named by id.
type Store struct {
	dataDir string
	logger  *slog.Logger

	mu sync.Mutex
}

func New(dataDir string, logger *slog.Logger) *Store {
	return &Store{dataDir: dataDir, logger: logger}
}

// Save writes one comparison and returns its identifier.
func (s *Store) Save(workload string, cmp *analyze.Comparison) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	rec := Record{
		Version:   recordVersion,
		ID:        uuid.NewString(),
		SavedAt:   time.Now(),
		Workload:  workload,
		BestIndex: cmp.BestIndex,
		Times:     cmp.Times,
		Speedups:  cmp.Speedups,
	}
	for _, cfg := range cmp.Configs {
		rec.Names = append(rec.Names, cfg.Name)
		rec.Workers = append(rec.Workers, cfg.Workers)
		rec.Chunks = append(rec.Chunks, cfg.ChunkSize)
		rec.Backends = append(rec.Backends, cfg.Backend.String())
	}

	data, err := json.MarshalIndent(&rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	path := s.recordPath(rec.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalize record: %w", err)
	}

	s.logger.Debug("comparison saved", "id", rec.ID, "path", path)
	return rec.ID, nil
}

// Load reads one record by id.
func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", id, err)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *Store) List() ([]*Record, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	var records []*Record
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		rec, err := s.Load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			s.logger.Warn("skipping unreadable record", "file", name, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].SavedAt.After(records[j].SavedAt)
	})
	return records, nil
}

func (s *Store) recordPath(id string) string {
	return filepath.Join(s.dataDir, id+".json")
}
