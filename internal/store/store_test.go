package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/training/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "training.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndListPreservesOrderAndFields(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ts := time.Date(2025, 3, 9, 7, 15, 30, 123456789, time.UTC)
	first, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 20, Timestamp: ts})
	require.NoError(t, err)
	second, err := s.AppendRecord(ctx, model.Record{ExerciseType: "squat", Reps: 15, Timestamp: ts.Add(-time.Hour)})
	require.NoError(t, err)
	third, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 30, Timestamp: ts.Add(time.Minute)})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Less(t, first.Seq, second.Seq)
	assert.Less(t, second.Seq, third.Seq)

	records, err := s.ListRecords(ctx, model.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Insertion order, not timestamp order.
	assert.Equal(t, []int{20, 15, 30}, []int{records[0].Reps, records[1].Reps, records[2].Reps})
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, "pushup", records[0].ExerciseType)
	assert.True(t, records[0].Timestamp.Equal(ts), "timestamp round trip: got %v want %v", records[0].Timestamp, ts)
}

func TestAppendRecordDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	r, err := s.AppendRecord(ctx, model.Record{ExerciseType: "plank", Reps: 1})
	require.NoError(t, err)
	assert.True(t, r.Timestamp.Equal(fixed))
}

func TestAppendRecordRejectsRepsAboveMax(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: model.MaxReps + 1})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	_, err = s.SetGoal(ctx, model.Goal{ExerciseType: "pushup", Daily: 1 << 62})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	records, goals, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, records)
	assert.Zero(t, goals)

	_, err = s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: model.MaxReps})
	require.NoError(t, err)
}

func TestAppendRecordRejectsNegativeReps(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: -1})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	n, _, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListRecordsFilter(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	day := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	for i, typ := range []string{"pushup", "squat", "pushup"} {
		_, err := s.AppendRecord(ctx, model.Record{
			ExerciseType: typ,
			Reps:         10 * (i + 1),
			Timestamp:    day.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	pushups, err := s.ListRecords(ctx, model.Filter{ExerciseType: "pushup"})
	require.NoError(t, err)
	require.Len(t, pushups, 2)
	assert.Equal(t, 10, pushups[0].Reps)
	assert.Equal(t, 30, pushups[1].Reps)

	window, err := s.ListRecords(ctx, model.Filter{Since: day.AddDate(0, 0, 1), Until: day.AddDate(0, 0, 2)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "squat", window[0].ExerciseType)
}

func TestSetGoalIsUpsert(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for i := 0; i < 2; i++ {
		_, err := s.SetGoal(ctx, model.Goal{ExerciseType: "pushup", Daily: 50})
		require.NoError(t, err)
	}
	_, err := s.SetGoal(ctx, model.Goal{ExerciseType: "squat", Daily: 30, Weekly: 150})
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "pushup", goals[0].ExerciseType)
	assert.Equal(t, 50, goals[0].Daily)

	_, err = s.SetGoal(ctx, model.Goal{ExerciseType: "pushup", Daily: 80})
	require.NoError(t, err)
	g, err := s.GetGoal(ctx, "pushup")
	require.NoError(t, err)
	assert.Equal(t, 80, g.Daily)

	sq, err := s.GetGoal(ctx, "squat")
	require.NoError(t, err)
	assert.Equal(t, 150, sq.Weekly)
}

func TestGetGoalNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetGoal(context.Background(), "burpee")
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 20})
	require.NoError(t, err)
	_, err = s.SetGoal(ctx, model.Goal{ExerciseType: "pushup", Daily: 50})
	require.NoError(t, err)

	require.NoError(t, s.ClearAll(ctx))

	records, goals, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, records)
	assert.Zero(t, goals)

	// Appending after a clear keeps working.
	_, err = s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 5})
	require.NoError(t, err)
}

func TestClearAllFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 20})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = s.ClearAll(cancelled)
	require.Error(t, err)
	assert.Equal(t, model.KindIO, model.KindOf(err))

	records, _, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, records)
}

func TestClearAllFailsMidTransaction(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 20})
	require.NoError(t, err)
	_, err = s.AppendRecord(ctx, model.Record{ExerciseType: "squat", Reps: 10})
	require.NoError(t, err)

	// The records delete succeeds, the goals delete fails.
	_, err = s.db.ExecContext(ctx, "DROP TABLE goals")
	require.NoError(t, err)

	err = s.ClearAll(ctx)
	require.Error(t, err)
	assert.Equal(t, model.KindIO, model.KindOf(err))

	records, err := s.ListRecords(ctx, model.Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestClearNarrow(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.AppendRecord(ctx, model.Record{ExerciseType: "pushup", Reps: 20})
	require.NoError(t, err)
	_, err = s.AppendRecord(ctx, model.Record{ExerciseType: "squat", Reps: 10})
	require.NoError(t, err)
	_, err = s.SetGoal(ctx, model.Goal{ExerciseType: "pushup", Daily: 50})
	require.NoError(t, err)

	n, err := s.ClearRecords(ctx, model.Filter{ExerciseType: "squat"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.ClearGoals(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	records, goals, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, records)
	assert.Zero(t, goals)
}
