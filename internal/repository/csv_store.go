package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

var csvHeader = []string{"Name", "Email", "Phone", "Timestamp"}

// CSVStore appends submissions to a local CSV file.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Save(ctx context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, statErr := os.Stat(s.path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		w.Write(csvHeader)
	}
	w.Write([]string{sub.Name, sub.Email, sub.Phone, sub.Timestamp})
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// List returns up to limit rows, newest first.
func (s *CSVStore) List(ctx context.Context, limit int) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	var subs []models.Submission
	for first := true; ; first = false {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
		}
		if first && rec[0] == csvHeader[0] {
			continue
		}
		subs = append(subs, models.Submission{Name: rec[0], Email: rec[1], Phone: rec[2], Timestamp: rec[3]})
	}

	// newest first
	for i, j := 0, len(subs)-1; i < j; i, j = i+1, j-1 {
		subs[i], subs[j] = subs[j], subs[i]
	}
	if len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}
