// Package pipeline aggregates exercise records into daily totals, goal
// progress and per-exercise statistics.
package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/training/internal/model"
)

// TypeGroup holds the records of one exercise type in insertion order.
type TypeGroup struct {
	ExerciseType string
	Records      []model.Record
	TotalReps    int
}

// GroupByType groups records by exercise type. Groups appear in order of
// first occurrence and records keep their relative order.
func GroupByType(records []model.Record) []TypeGroup {
	idx := make(map[string]int)
	var groups []TypeGroup
	for _, r := range records {
		i, ok := idx[r.ExerciseType]
		if !ok {
			i = len(groups)
			idx[r.ExerciseType] = i
			groups = append(groups, TypeGroup{ExerciseType: r.ExerciseType})
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].TotalReps += r.Reps
	}
	return groups
}

// AggregateDays computes cumulative reps per local day per exercise type.
// Every day in [since, until) gets an entry for every exercise type present,
// so charts show gaps as zeros. Results are ordered by date, then type.
func AggregateDays(records []model.Record, since, until time.Time) []model.DailyTotal {
	filtered := FilterByTime(records, since, until)

	type key struct{ day, typ string }
	totals := make(map[key]*model.DailyTotal)
	types := make(map[string]struct{})

	for _, r := range filtered {
		k := key{r.Day(), r.ExerciseType}
		dt, ok := totals[k]
		if !ok {
			dt = &model.DailyTotal{Date: model.StartOfDay(r.Timestamp), ExerciseType: r.ExerciseType}
			totals[k] = dt
		}
		dt.Reps += r.Reps
		dt.Entries++
		types[r.ExerciseType] = struct{}{}
	}

	// Fill in every day in the range
	if !since.IsZero() && !until.IsZero() {
		for day := model.StartOfDay(since); day.Before(until); day = day.AddDate(0, 0, 1) {
			dayKey := day.Format(model.DateLayout)
			for typ := range types {
				k := key{dayKey, typ}
				if _, ok := totals[k]; !ok {
					totals[k] = &model.DailyTotal{Date: day, ExerciseType: typ}
				}
			}
		}
	}

	days := make([]model.DailyTotal, 0, len(totals))
	for _, dt := range totals {
		days = append(days, *dt)
	}
	sort.Slice(days, func(i, j int) bool {
		if !days[i].Date.Equal(days[j].Date) {
			return days[i].Date.Before(days[j].Date)
		}
		return days[i].ExerciseType < days[j].ExerciseType
	})
	return days
}

// Percent returns reps as a floored percentage of target, capped at 100.
// A zero target yields zero.
func Percent(reps, target int) int {
	switch {
	case target <= 0 || reps <= 0:
		return 0
	case reps >= target:
		return 100
	}
	// reps < target here, so the floor is at most 99.
	pct := int(float64(reps) * 100 / float64(target))
	return min(max(pct, 0), 99)
}

// Progress computes, for every goal with a daily target, the reps logged
// on the local day containing day.
func Progress(records []model.Record, goals []model.Goal, day time.Time) []model.GoalProgress {
	start := model.StartOfDay(day)
	return progressFor(records, goals, start, start.AddDate(0, 0, 1), func(g model.Goal) int { return g.Daily })
}

// WeeklyProgress is Progress against weekly targets for the Monday-based
// week containing day. Goals without a weekly target are skipped.
func WeeklyProgress(records []model.Record, goals []model.Goal, day time.Time) []model.GoalProgress {
	start := model.StartOfWeek(day)
	return progressFor(records, goals, start, start.AddDate(0, 0, 7), func(g model.Goal) int { return g.Weekly })
}

func progressFor(records []model.Record, goals []model.Goal, since, until time.Time, target func(model.Goal) int) []model.GoalProgress {
	sums := make(map[string]int)
	for _, r := range FilterByTime(records, since, until) {
		sums[r.ExerciseType] += r.Reps
	}

	var out []model.GoalProgress
	for _, g := range goals {
		t := target(g)
		if t <= 0 {
			continue
		}
		reps := sums[g.ExerciseType]
		out = append(out, model.GoalProgress{
			ExerciseType: g.ExerciseType,
			Reps:         reps,
			Target:       t,
			Percent:      Percent(reps, t),
		})
	}
	return out
}

// Stats computes per-exercise statistics over [since, until). Streaks are
// counted backwards from now: a day that has not met its goal yet does not
// break the streak if it is today.
func Stats(records []model.Record, goals []model.Goal, since, until, now time.Time) []model.ExerciseStats {
	daily := make(map[string]int)
	for _, g := range goals {
		daily[g.ExerciseType] = g.Daily
	}

	perDay := make(map[string]map[string]int) // type -> day -> reps
	statMap := make(map[string]*model.ExerciseStats)

	for _, r := range FilterByTime(records, since, until) {
		st, ok := statMap[r.ExerciseType]
		if !ok {
			st = &model.ExerciseStats{ExerciseType: r.ExerciseType}
			statMap[r.ExerciseType] = st
			perDay[r.ExerciseType] = make(map[string]int)
		}
		st.TotalReps += r.Reps
		st.Entries++
		if r.Timestamp.After(st.LastLogged) {
			st.LastLogged = r.Timestamp
		}
		perDay[r.ExerciseType][r.Day()] += r.Reps
	}

	stats := make([]model.ExerciseStats, 0, len(statMap))
	for typ, st := range statMap {
		days := perDay[typ]
		st.ActiveDays = len(days)
		if st.ActiveDays > 0 {
			st.AvgPerDay = float64(st.TotalReps) / float64(st.ActiveDays)
		}
		for dayKey, reps := range days {
			d, _ := time.ParseInLocation(model.DateLayout, dayKey, time.Local)
			if reps > st.BestDayReps || (reps == st.BestDayReps && d.After(st.BestDay)) {
				st.BestDay = d
				st.BestDayReps = reps
			}
			if target := daily[typ]; target > 0 && reps >= target {
				st.DaysGoalMet++
			}
		}
		st.CurrentStreak = streak(days, daily[typ], now)
		stats = append(stats, *st)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].ExerciseType < stats[j].ExerciseType
	})
	return stats
}

func streak(days map[string]int, target int, now time.Time) int {
	if target <= 0 {
		return 0
	}
	day := model.StartOfDay(now)
	if days[day.Format(model.DateLayout)] < target {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for days[day.Format(model.DateLayout)] >= target {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// FilterByTime returns records whose timestamp falls within [since, until).
func FilterByTime(records []model.Record, since, until time.Time) []model.Record {
	return Filter(records, model.Filter{Since: since, Until: until})
}

// FilterByExercise returns records of one exercise type.
func FilterByExercise(records []model.Record, exerciseType string) []model.Record {
	return Filter(records, model.Filter{ExerciseType: exerciseType})
}

// Filter returns records matching f, preserving order.
func Filter(records []model.Record, f model.Filter) []model.Record {
	if f.Empty() {
		return records
	}
	var result []model.Record
	for _, r := range records {
		if f.Match(r) {
			result = append(result, r)
		}
	}
	return result
}
