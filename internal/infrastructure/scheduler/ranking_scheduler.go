package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/doorshop/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// cronTickerInterval is the interval at which the cron loop checks schedules
const cronTickerInterval = time.Minute

const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

// RankingJobs is the work the ranking scheduler drives
type RankingJobs interface {
	RecalculateAll(ctx context.Context) (int, error)
	EnsureRecords(ctx context.Context) (int64, error)
}

// RankingJobExecutor dispatches jobs to RankingJobs by kind
type RankingJobExecutor struct {
	jobs RankingJobs
}

// NewRankingJobExecutor creates the executor
func NewRankingJobExecutor(jobs RankingJobs) *RankingJobExecutor {
	return &RankingJobExecutor{jobs: jobs}
}

// Execute implements JobExecutor. Each run is traced as "ranking.<kind>".
func (e *RankingJobExecutor) Execute(ctx context.Context, job *Job) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "ranking."+string(job.Kind),
		attribute.String("job.id", job.ID.String()),
		attribute.String("job.trigger", job.Trigger),
		attribute.Int("job.retry", job.RetryCount),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	switch job.Kind {
	case JobKindRecalculateRankings:
		n, err := e.jobs.RecalculateAll(ctx)
		span.SetAttributes(attribute.Int("rankings.recalculated", n))
		return err
	case JobKindEnsureRankings:
		n, err := e.jobs.EnsureRecords(ctx)
		span.SetAttributes(attribute.Int64("rankings.created", n))
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownJobKind, job.Kind)
	}
}

// RankingSchedulerConfig holds the cron expressions and pool settings
type RankingSchedulerConfig struct {
	Enabled    bool
	RecalcCron string
	EnsureCron string
	Pool       Config
	Location   *time.Location
}

// JobRunStatus is the last known state of one job kind
type JobRunStatus struct {
	Kind       JobKind    `json:"kind"`
	Schedule   string     `json:"schedule"`
	NextRunAt  *time.Time `json:"next_run_at,omitempty"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	LastStatus JobStatus  `json:"last_status,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
	Retries    int        `json:"retries"`
}

// Status describes the ranking scheduler
type Status struct {
	Enabled   bool           `json:"enabled"`
	IsRunning bool           `json:"is_running"`
	Workers   int            `json:"workers"`
	Jobs      []JobRunStatus `json:"jobs"`
}

// RankingCronScheduler fires the nightly recalculation and the hourly record check
type RankingCronScheduler struct {
	config    RankingSchedulerConfig
	schedules map[JobKind]CronSchedule
	scheduler *Scheduler
	logger    *zap.Logger
	now       func() time.Time

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	lastRuns  map[JobKind]*Job
}

// NewRankingCronScheduler validates the cron expressions and builds the scheduler
func NewRankingCronScheduler(config RankingSchedulerConfig, jobs RankingJobs, logger *zap.Logger) (*RankingCronScheduler, error) {
	recalc, err := ParseCronSchedule(config.RecalcCron)
	if err != nil {
		return nil, fmt.Errorf("recalc schedule: %w", err)
	}
	ensure, err := ParseCronSchedule(config.EnsureCron)
	if err != nil {
		return nil, fmt.Errorf("ensure schedule: %w", err)
	}
	if config.Location == nil {
		config.Location = time.UTC
	}

	s := &RankingCronScheduler{
		config: config,
		schedules: map[JobKind]CronSchedule{
			JobKindRecalculateRankings: recalc,
			JobKindEnsureRankings:      ensure,
		},
		scheduler: NewScheduler(config.Pool, NewRankingJobExecutor(jobs), logger),
		logger:    logger,
		now:       time.Now,
		lastRuns:  make(map[JobKind]*Job),
	}
	s.scheduler.OnJobFinished(s.recordRun)
	return s, nil
}

// Start starts the worker pool and, when enabled, the cron loop
func (s *RankingCronScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	if err := s.scheduler.Start(ctx); err != nil {
		return err
	}
	if !s.config.Enabled {
		s.logger.Info("Ranking cron disabled, manual runs only")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	go s.cronLoop(ctx)

	s.logger.Info("Ranking cron scheduler started",
		zap.String("recalc_cron", s.schedules[JobKindRecalculateRankings].String()),
		zap.String("ensure_cron", s.schedules[JobKindEnsureRankings].String()),
	)
	return nil
}

// Stop stops the cron loop and then the worker pool
func (s *RankingCronScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	if err := s.scheduler.Stop(ctx); err != nil {
		return err
	}
	s.logger.Info("Ranking cron scheduler stopped")
	return nil
}

func (s *RankingCronScheduler) cronLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.tick(t.In(s.config.Location))
		}
	}
}

// tick submits every job whose schedule matches t
func (s *RankingCronScheduler) tick(t time.Time) {
	for _, kind := range AllJobKinds() {
		if !s.schedules[kind].Matches(t) {
			continue
		}
		if err := s.submit(kind, TriggerCron); err != nil {
			s.logger.Error("Failed to submit scheduled job",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
	}
}

func (s *RankingCronScheduler) submit(kind JobKind, trigger string) error {
	job := NewJob(kind, trigger, s.config.Pool.RetryAttempts)
	return s.scheduler.SubmitJob(job)
}

// TriggerManualRun queues a job now. The job runs on the pool, detached from the caller's request.
func (s *RankingCronScheduler) TriggerManualRun(kind JobKind) error {
	if _, ok := s.schedules[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJobKind, kind)
	}
	return s.submit(kind, TriggerManual)
}

func (s *RankingCronScheduler) recordRun(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *job
	s.lastRuns[job.Kind] = &cp
}

// GetStatus returns the scheduler status for the ops endpoint
func (s *RankingCronScheduler) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().In(s.config.Location)
	status := Status{
		Enabled:   s.config.Enabled,
		IsRunning: s.isRunning,
		Workers:   s.scheduler.config.MaxConcurrentJobs,
	}
	for _, kind := range AllJobKinds() {
		sched := s.schedules[kind]
		js := JobRunStatus{Kind: kind, Schedule: sched.String()}
		if s.config.Enabled {
			next := sched.Next(now)
			js.NextRunAt = &next
		}
		if last, ok := s.lastRuns[kind]; ok {
			js.LastRunAt = last.StartedAt
			js.LastStatus = last.Status
			js.LastError = last.Error
			js.Retries = last.RetryCount
		}
		status.Jobs = append(status.Jobs, js)
	}
	return status
}
