package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

const (
	SubmissionQueue      = "queue:submissions"
	SubmissionRetryQueue = "queue:submissions:retry" // sorted set scored by retry time (unix ms)
	SubmissionDeadQueue  = "queue:submissions:dead"
	maxAttempts          = 3
	promoteBatch         = 100
)

// promoteDue moves due retries back onto the work list in one step, so a
// job is always in exactly one of the two keys.
var promoteDue = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, ARGV[2])
for _, member in ipairs(due) do
	redis.call('ZREM', KEYS[1], member)
	redis.call('RPUSH', KEYS[2], member)
end
return #due
`)

type submissionStore interface {
	Save(ctx context.Context, s *models.Submission) error
}

// job is the queued envelope around a submission.
type job struct {
	Submission models.Submission `json:"submission"`
	Attempts   int               `json:"attempts"`
}

// Queue pushes submissions onto the Redis list drained by Pool.
type Queue struct {
	redis *redis.Client
}

func NewQueue(redisClient *redis.Client) *Queue {
	return &Queue{redis: redisClient}
}

func (q *Queue) Enqueue(ctx context.Context, s *models.Submission) error {
	data, err := json.Marshal(job{Submission: *s})
	if err != nil {
		return err
	}
	// RPUSH + BLPOP keeps the list first-in first-out.
	if err := q.redis.RPush(ctx, SubmissionQueue, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue submission: %w", err)
	}
	return nil
}

// Pool persists queued submissions with a fixed number of BLPOP workers.
// Failed saves wait in SubmissionRetryQueue, so pending retries survive a
// shutdown.
type Pool struct {
	redis           *redis.Client
	store           submissionStore
	workerCount     int
	pollTimeout     time.Duration
	promoteInterval time.Duration
	errorBackoff    time.Duration
	backoff         func(attempt int) time.Duration
	now             func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPool(redisClient *redis.Client, store submissionStore, workerCount int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		redis:           redisClient,
		store:           store,
		workerCount:     workerCount,
		pollTimeout:     5 * time.Second,
		promoteInterval: time.Second,
		errorBackoff:    time.Second,
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<uint(attempt)) * time.Second
		},
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.wg.Add(1)
	go p.scheduler()

	log.Printf("Started %d submission workers", p.workerCount)
}

// Stop cancels the workers and waits for the in-flight saves to finish.
// Retries that are not yet due stay in Redis for the next start.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		if p.ctx.Err() != nil {
			log.Printf("Worker %d shutting down", id)
			return
		}

		result, err := p.redis.BLPop(p.ctx, p.pollTimeout, SubmissionQueue).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && p.ctx.Err() == nil {
				log.Printf("Worker %d: queue read failed: %v", id, err)
				p.sleep(p.errorBackoff)
			}
			continue
		}
		if len(result) < 2 {
			continue
		}

		var j job
		if err := json.Unmarshal([]byte(result[1]), &j); err != nil {
			log.Printf("Worker %d: failed to parse submission: %v", id, err)
			continue
		}

		// Saves are not cancelled mid-flight on shutdown.
		if err := p.store.Save(context.Background(), &j.Submission); err != nil {
			p.handleFailure(&j, err)
			continue
		}
		log.Printf("Worker %d: saved submission %s", id, j.Submission.ID)
	}
}

// scheduler moves due retries back onto the work list.
func (p *Pool) scheduler() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.promoteInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.promote(p.ctx); err != nil && p.ctx.Err() == nil {
				log.Printf("Failed to promote submission retries: %v", err)
			}
		}
	}
}

func (p *Pool) promote(ctx context.Context) (int, error) {
	due := strconv.FormatInt(p.now().UnixMilli(), 10)
	return promoteDue.Run(ctx, p.redis, []string{SubmissionRetryQueue, SubmissionQueue}, due, promoteBatch).Int()
}

// handleFailure schedules a retry, or dead-letters the job after
// maxAttempts. Both writes happen before the worker takes its next job.
func (p *Pool) handleFailure(j *job, err error) {
	j.Attempts++
	data, _ := json.Marshal(j)
	ctx := context.Background()

	if j.Attempts < maxAttempts {
		retryAt := p.now().Add(p.backoff(j.Attempts))
		zerr := p.redis.ZAdd(ctx, SubmissionRetryQueue, redis.Z{
			Score:  float64(retryAt.UnixMilli()),
			Member: string(data),
		}).Err()
		if zerr == nil {
			log.Printf("Submission %s failed (attempt %d): %v, retrying", j.Submission.ID, j.Attempts, err)
			return
		}
		log.Printf("Submission %s: failed to schedule retry: %v", j.Submission.ID, zerr)
	}

	log.Printf("Submission %s failed permanently: %v", j.Submission.ID, err)
	if derr := p.redis.RPush(ctx, SubmissionDeadQueue, data).Err(); derr != nil {
		log.Printf("❌ Submission %s lost, dead letter push failed: %v (payload: %s)", j.Submission.ID, derr, data)
	}
}

func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.ctx.Done():
	case <-time.After(d):
	}
}
