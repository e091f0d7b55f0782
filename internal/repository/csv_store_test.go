package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

func TestCSVStore_SaveWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.csv")
	store := NewCSVStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, &models.Submission{Name: "Ada", Email: "ada@example.com", Phone: "123", Timestamp: "2024-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, &models.Submission{Name: "Lin, Jr.", Email: "lin@example.com"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), data)
	}
	if lines[0] != "Name,Email,Phone,Timestamp" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if lines[2] != `"Lin, Jr.",lin@example.com,,` {
		t.Errorf("Expected quoted name, got %q", lines[2])
	}
}

func TestCSVStore_ListNewestFirst(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "submissions.csv"))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if err := store.Save(ctx, &models.Submission{Name: name, Email: name + "@example.com"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	subs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 2 || subs[0].Name != "third" || subs[1].Name != "second" {
		t.Errorf("Unexpected submissions %+v", subs)
	}
}

func TestCSVStore_ListMissingFile(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "missing.csv"))

	subs, err := store.List(context.Background(), 10)
	if err != nil || subs != nil {
		t.Errorf("Expected empty result, got %v, %v", subs, err)
	}
}
