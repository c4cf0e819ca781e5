package model

import "time"

// DailyTotal holds cumulative reps for one exercise on one calendar day.
type DailyTotal struct {
	Date         time.Time
	ExerciseType string
	Reps         int
	Entries      int
}

// GoalProgress compares logged reps against a goal target.
type GoalProgress struct {
	ExerciseType string
	Reps         int
	Target       int
	Percent      int // floored, capped at 100
}

// Met reports whether the target has been reached.
func (p GoalProgress) Met() bool {
	return p.Target > 0 && p.Reps >= p.Target
}

// ExerciseStats summarises one exercise over a period.
type ExerciseStats struct {
	ExerciseType  string
	TotalReps     int
	Entries       int
	ActiveDays    int
	AvgPerDay     float64 // per active day
	BestDay       time.Time
	BestDayReps   int
	DaysGoalMet   int
	CurrentStreak int // consecutive days ending today meeting the daily goal
	LastLogged    time.Time
}
