package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/infrastructure/scheduler"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRankingScheduler is a mock implementation of RankingScheduler
type MockRankingScheduler struct {
	mock.Mock
}

func (m *MockRankingScheduler) TriggerManualRun(kind scheduler.JobKind) error {
	return m.Called(kind).Error(0)
}

func (m *MockRankingScheduler) GetStatus() scheduler.Status {
	return m.Called().Get(0).(scheduler.Status)
}

var _ RankingScheduler = (*MockRankingScheduler)(nil)

func setupOpsRouter(sched RankingScheduler) (*gin.Engine, *OpsHandler) {
	c := newTestCache()
	h := NewOpsHandler(sched, c)
	r := newTestEngine(func(r *gin.Engine) {
		ops := r.Group("/ops")
		ops.POST("/rankings/recalculate", h.RecalculateRankings)
		ops.POST("/rankings/ensure", h.EnsureRankings)
		ops.GET("/scheduler/status", h.SchedulerStatus)
		ops.DELETE("/cache", h.FlushCache)
	})
	return r, h
}

func TestOpsHandler_TriggerJobs(t *testing.T) {
	sched := new(MockRankingScheduler)
	sched.On("TriggerManualRun", scheduler.JobKindRecalculateRankings).Return(nil).Once()
	sched.On("TriggerManualRun", scheduler.JobKindEnsureRankings).Return(nil).Once()
	r, _ := setupOpsRouter(sched)

	w := doRequest(r, http.MethodPost, "/ops/rankings/recalculate", "")
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	var data JobAcceptedData
	decodeData(t, w, &data)
	assert.Equal(t, "RECALCULATE_RANKINGS", data.Job)

	w = doRequest(r, http.MethodPost, "/ops/rankings/ensure", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	sched.AssertExpectations(t)
}

func TestOpsHandler_TriggerWhenUnavailable(t *testing.T) {
	sched := new(MockRankingScheduler)
	sched.On("TriggerManualRun", scheduler.JobKindRecalculateRankings).Return(scheduler.ErrJobQueueFull)
	sched.On("TriggerManualRun", scheduler.JobKindEnsureRankings).Return(scheduler.ErrSchedulerNotRunning)
	r, _ := setupOpsRouter(sched)

	for _, path := range []string{"/ops/rankings/recalculate", "/ops/rankings/ensure"} {
		w := doRequest(r, http.MethodPost, path, "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Code)
	}
}

func TestOpsHandler_SchedulerStatus(t *testing.T) {
	sched := new(MockRankingScheduler)
	sched.On("GetStatus").Return(scheduler.Status{
		Enabled:   true,
		IsRunning: true,
		Workers:   2,
		Jobs: []scheduler.JobRunStatus{
			{Kind: scheduler.JobKindRecalculateRankings, Schedule: "0 1 * * *"},
		},
	})
	r, _ := setupOpsRouter(sched)

	w := doRequest(r, http.MethodGet, "/ops/scheduler/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	var status scheduler.Status
	decodeData(t, w, &status)
	assert.True(t, status.IsRunning)
	require.Len(t, status.Jobs, 1)
	assert.Equal(t, "0 1 * * *", status.Jobs[0].Schedule)
}

func TestOpsHandler_FlushCache(t *testing.T) {
	r, h := setupOpsRouter(new(MockRankingScheduler))
	ctx := context.Background()
	require.NoError(t, h.cache.Set(ctx, "products:list:a", 1, time.Minute))
	require.NoError(t, h.cache.Set(ctx, "products:featured:8", 1, time.Minute))
	require.NoError(t, h.cache.Set(ctx, "home", 1, time.Minute))

	w := doRequest(r, http.MethodDelete, "/ops/cache", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidationRequired, decodeError(t, w).Code)

	w = doRequest(r, http.MethodDelete, "/ops/cache?pattern=products:*", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data CacheFlushData
	decodeData(t, w, &data)
	assert.Equal(t, CacheFlushData{Pattern: "products:*", Deleted: 2}, data)

	var v int
	found, err := h.cache.Get(ctx, "home", &v)
	require.NoError(t, err)
	assert.True(t, found)
}
