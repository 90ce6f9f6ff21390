package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dataset-pricer/internal/metrics"
	storeMocks "github.com/donaldgifford/dataset-pricer/internal/store/mocks"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// newSchedulerTestEngine returns a test engine and a mock store for use in scheduler tests.
func newSchedulerTestEngine(t *testing.T) (*Engine, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	eng := NewEngine(ms, nil,
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return testNow }),
	)
	return eng, ms
}

func TestNewScheduler_RegistersRepriceEntry(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, 24*time.Hour, 30*time.Minute, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
	assert.NotZero(t, sched.repriceEntryID)
	assert.Equal(t, 30*time.Minute, sched.lockTTL)
}

func TestNewScheduler_DefaultLockTTL(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, defaultLockTTL, sched.lockTTL)
}

func TestNewScheduler_LockHolderIsUnique(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	a, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)
	b, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	assert.NotEqual(t, a.holder, b.holder)
	assert.Contains(t, a.holder, "-")
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, 24*time.Hour, 0, quietLogger())
	require.NoError(t, err)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	next := ptestutil.ToFloat64(metrics.SchedulerNextRepriceTimestamp)
	assert.Greater(t, next, float64(time.Now().Unix()), "next reprice timestamp should be in the future")
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, 5*time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", domain.JobSucceeded, "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", domain.JobFailed, jobErr.Error(), 0).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", mock.Anything).
		Return(nil).Once()

	err = sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 0, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "busy-job", mock.Anything, mock.Anything).
		Return(false, nil).Once()

	err = sched.runJob(context.Background(), "busy-job", time.Minute, func(_ context.Context) (int, error) {
		t.Fatal("job must not run without the lock")
		return 0, nil
	})

	require.NoError(t, err)
	ms.AssertNotCalled(t, "InsertJobRun", mock.Anything, mock.Anything)
	ms.AssertNotCalled(t, "ReleaseSchedulerLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduler_RunJob_LockError(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "lock-job", mock.Anything, mock.Anything).
		Return(false, errors.New("db down")).Once()

	err = sched.runJob(context.Background(), "lock-job", time.Minute, func(_ context.Context) (int, error) {
		return 0, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring lock for lock-job")
}

func TestScheduler_RunJob_InsertRunErrorReleasesLock(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "job").Return("", errors.New("insert failed")).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "job", mock.Anything).Return(nil).Once()

	err = sched.runJob(context.Background(), "job", time.Minute, func(_ context.Context) (int, error) {
		t.Fatal("job must not run when its start was not recorded")
		return 0, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording start of job")
}

func TestScheduler_RunReprice(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, JobAutoReprice, mock.Anything, defaultLockTTL).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobAutoReprice).Return("run-1", nil).Once()
	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return([]string{"item-b"}, nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "item-b").Return(batchItem("item-b", domain.ItemDraft), nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-1", domain.JobSucceeded, "", 0).
		Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobAutoReprice, mock.Anything).Return(nil).Once()

	require.NoError(t, sched.RunReprice(context.Background()))
}

func TestScheduler_RunReprice_ListFailureMarksRunFailed(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, JobAutoReprice, mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobAutoReprice).Return("run-1", nil).Once()
	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return(nil, errors.New("db down")).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-1", domain.JobFailed, mock.Anything, 0).
		Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobAutoReprice, mock.Anything).Return(nil).Once()

	require.Error(t, sched.RunReprice(context.Background()))
}

func TestScheduler_RecoverStaleJobs(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}
