package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

type stubStore struct {
	mu       sync.Mutex
	failures int
	saved    []models.Submission
	calls    int
}

func (s *stubStore) Save(ctx context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return errors.New("database unavailable")
	}
	s.saved = append(s.saved, *sub)
	return nil
}

func (s *stubStore) snapshot() []models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Submission(nil), s.saved...)
}

func (s *stubStore) savedCount() int {
	return len(s.snapshot())
}

func newTestClient(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestPool(t *testing.T, client *redis.Client, store *stubStore, workers int) *Pool {
	t.Helper()
	pool := NewPool(client, store, workers)
	pool.pollTimeout = 50 * time.Millisecond
	pool.promoteInterval = 10 * time.Millisecond
	pool.errorBackoff = 10 * time.Millisecond
	pool.backoff = func(int) time.Duration { return 10 * time.Millisecond }
	return pool
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func enqueue(t *testing.T, queue *Queue, sub *models.Submission) {
	t.Helper()
	if err := queue.Enqueue(context.Background(), sub); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
}

func TestPool_SavesQueuedSubmissions(t *testing.T) {
	store := &stubStore{}
	client := newTestClient(t, miniredis.RunT(t))
	pool := newTestPool(t, client, store, 2)
	pool.Start()
	defer pool.Stop()

	queue := NewQueue(client)
	for i := 0; i < 3; i++ {
		enqueue(t, queue, &models.Submission{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"})
	}

	waitFor(t, func() bool { return store.savedCount() == 3 })
}

func TestPool_ProcessesInArrivalOrder(t *testing.T) {
	store := &stubStore{}
	client := newTestClient(t, miniredis.RunT(t))
	queue := NewQueue(client)

	names := []string{"first", "second", "third", "fourth"}
	for _, name := range names {
		enqueue(t, queue, &models.Submission{ID: uuid.New(), Name: name})
	}

	pool := newTestPool(t, client, store, 1)
	pool.Start()
	defer pool.Stop()

	waitFor(t, func() bool { return store.savedCount() == len(names) })
	for i, sub := range store.snapshot() {
		if sub.Name != names[i] {
			t.Errorf("position %d: expected %q, got %q", i, names[i], sub.Name)
		}
	}
}

func TestPool_RetriesFailedSaves(t *testing.T) {
	store := &stubStore{failures: 1}
	client := newTestClient(t, miniredis.RunT(t))
	pool := newTestPool(t, client, store, 2)
	pool.Start()
	defer pool.Stop()

	id := uuid.New()
	enqueue(t, NewQueue(client), &models.Submission{ID: id, Name: "Lin", Email: "lin@example.com"})

	waitFor(t, func() bool { return store.savedCount() == 1 })
	if saved := store.snapshot(); saved[0].ID != id {
		t.Errorf("Expected submission %s, got %s", id, saved[0].ID)
	}
}

func TestPool_DeadLettersAfterMaxAttempts(t *testing.T) {
	store := &stubStore{failures: 100}
	mr := miniredis.RunT(t)
	client := newTestClient(t, mr)
	pool := newTestPool(t, client, store, 2)
	pool.Start()
	defer pool.Stop()

	enqueue(t, NewQueue(client), &models.Submission{ID: uuid.New(), Name: "Kay", Email: "kay@example.com"})

	waitFor(t, func() bool {
		items, err := mr.List(SubmissionDeadQueue)
		return err == nil && len(items) == 1
	})
	if store.savedCount() != 0 {
		t.Error("Expected nothing to be saved")
	}

	var j job
	items, _ := mr.List(SubmissionDeadQueue)
	if err := json.Unmarshal([]byte(items[0]), &j); err != nil {
		t.Fatalf("failed to decode dead letter: %v", err)
	}
	if j.Attempts != maxAttempts {
		t.Errorf("Expected %d attempts, got %d", maxAttempts, j.Attempts)
	}
}

func TestPool_PendingRetrySurvivesShutdown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	failing := &stubStore{failures: 1}
	pool := newTestPool(t, client, failing, 1)
	pool.backoff = func(int) time.Duration { return time.Hour }
	pool.Start()

	id := uuid.New()
	enqueue(t, NewQueue(client), &models.Submission{ID: id, Name: "Mo", Email: "mo@example.com"})

	waitFor(t, func() bool {
		members, err := mr.ZMembers(SubmissionRetryQueue)
		return err == nil && len(members) == 1
	})

	// Same order as the server: workers first, then the Redis client.
	pool.Stop()
	client.Close()

	if members, _ := mr.ZMembers(SubmissionRetryQueue); len(members) != 1 {
		t.Fatalf("Expected the retry to stay scheduled, got %v", members)
	}

	// A restarted pool picks the retry up once it is due.
	store := &stubStore{}
	restarted := newTestPool(t, newTestClient(t, mr), store, 1)
	restarted.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	restarted.Start()
	defer restarted.Stop()

	waitFor(t, func() bool { return store.savedCount() == 1 })
	if saved := store.snapshot(); saved[0].ID != id {
		t.Errorf("Expected submission %s, got %s", id, saved[0].ID)
	}
	if members, _ := mr.ZMembers(SubmissionRetryQueue); len(members) != 0 {
		t.Errorf("Expected retry set to be drained, got %v", members)
	}
}

func TestPool_StopReturns(t *testing.T) {
	pool := newTestPool(t, newTestClient(t, miniredis.RunT(t)), &stubStore{}, 2)
	pool.Start()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
