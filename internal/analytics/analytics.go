// Package analytics derives progress statistics from completed workouts and
// daily check-ins for the dashboard.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

// recentCheckInDays bounds the check-in window for trend analysis.
const recentCheckInDays = 30

const defaultTopExerciseLimit = 5

// WorkoutSource supplies completed workouts, oldest first.
type WorkoutSource interface {
	Completed(ctx context.Context) ([]workout.Workout, error)
}

// CheckInSource supplies recent check-ins, newest first.
type CheckInSource interface {
	Recent(ctx context.Context, n int) ([]checkin.CheckIn, error)
}

// WorkoutStats summarises completion history and streaks.
type WorkoutStats struct {
	Total         int `json:"total"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	WeeklyCount   int `json:"weeklyCount"`
	MonthlyCount  int `json:"monthlyCount"`
}

// ExerciseStats aggregates one exercise name across completed workouts.
type ExerciseStats struct {
	Name           string    `json:"name"`
	TimesPerformed int       `json:"timesPerformed"`
	AvgDifficulty  float64   `json:"avgDifficulty"`
	LastPerformed  time.Time `json:"lastPerformed"`
	Equipment      string    `json:"equipment"`
}

// MetricPoint is one check-in's physical scores on the trend line.
type MetricPoint struct {
	Date     time.Time `json:"date"`
	Knee     int       `json:"knee"`
	Shoulder int       `json:"shoulder"`
	Energy   int       `json:"energy"`
	Sleep    int       `json:"sleep"`
	Weight   *float64  `json:"weight,omitempty"`
}

// WeightPoint is one weighed-in day.
type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// BodyMetrics covers physical trends over the recent check-in window.
// Improvements compare the first week of the window against the last week, as
// a percentage change of the first-week average.
type BodyMetrics struct {
	Trends              []MetricPoint `json:"trends"`
	AvgKnee             float64       `json:"avgKnee"`
	AvgShoulder         float64       `json:"avgShoulder"`
	AvgEnergy           float64       `json:"avgEnergy"`
	AvgSleep            float64       `json:"avgSleep"`
	KneeImprovement     float64       `json:"kneeImprovement"`
	ShoulderImprovement float64       `json:"shoulderImprovement"`
	EnergyImprovement   float64       `json:"energyImprovement"`
	SleepImprovement    float64       `json:"sleepImprovement"`
	WeightTrend         []WeightPoint `json:"weightTrend"`
	StartWeight         *float64      `json:"startWeight,omitempty"`
	CurrentWeight       *float64      `json:"currentWeight,omitempty"`
	WeightChange        *float64      `json:"weightChange,omitempty"`
}

// StateCount is one bucket of a categorical distribution.
type StateCount struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MentalEmotional covers mental and emotional trends over the recent
// check-in window. StressImprovement is inverted: falling stress reads as a
// positive percentage.
type MentalEmotional struct {
	MentalStates       []StateCount `json:"mentalStates"`
	Emotions           []StateCount `json:"emotions"`
	AvgStress          float64      `json:"avgStress"`
	AvgClarity         float64      `json:"avgClarity"`
	AvgIntensity       float64      `json:"avgIntensity"`
	StressImprovement  float64      `json:"stressImprovement"`
	ClarityImprovement float64      `json:"clarityImprovement"`
}

// Summary bundles every analytics piece for a single dashboard request.
type Summary struct {
	Workouts        WorkoutStats    `json:"workouts"`
	TopExercises    []ExerciseStats `json:"topExercises"`
	BodyMetrics     BodyMetrics     `json:"bodyMetrics"`
	MentalEmotional MentalEmotional `json:"mentalEmotional"`
}

// Service computes analytics on demand. It holds no state of its own.
type Service struct {
	workouts WorkoutSource
	checkins CheckInSource
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(workouts WorkoutSource, checkins CheckInSource, logger *slog.Logger) *Service {
	return &Service{
		workouts: workouts,
		checkins: checkins,
		logger:   logger,
		now:      time.Now,
	}
}

// WorkoutStats computes totals, streaks and trailing-window counts from the
// completed workout history.
func (s *Service) WorkoutStats(ctx context.Context) (WorkoutStats, error) {
	completed, err := s.workouts.Completed(ctx)
	if err != nil {
		return WorkoutStats{}, fmt.Errorf("load completed workouts: %w", err)
	}

	today := day(s.now())
	days := workoutDays(completed)

	stats := WorkoutStats{
		Total:         len(completed),
		CurrentStreak: currentStreak(days, today),
		LongestStreak: longestStreak(days),
	}
	for _, d := range days {
		diff := daysBetween(d, today)
		if diff < 7 {
			stats.WeeklyCount += dayCount(completed, d)
		}
		if diff < 30 {
			stats.MonthlyCount += dayCount(completed, d)
		}
	}
	return stats, nil
}

// TopExercises ranks exercise names by how often they were performed in
// completed workouts. Skipped exercises are excluded; average difficulty is
// taken over the sets that were rated. A limit of zero or less falls back to
// the default of five.
func (s *Service) TopExercises(ctx context.Context, limit int) ([]ExerciseStats, error) {
	if limit <= 0 {
		limit = defaultTopExerciseLimit
	}
	completed, err := s.workouts.Completed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completed workouts: %w", err)
	}

	type tally struct {
		count           int
		difficultySum   int
		difficultyCount int
		lastPerformed   time.Time
		equipment       string
	}
	tallies := make(map[string]*tally)

	for _, w := range completed {
		for _, exercise := range w.Exercises() {
			if exercise.Skipped {
				continue
			}
			entry := tallies[exercise.Name]
			if entry == nil {
				entry = &tally{equipment: string(exercise.Equipment)}
				tallies[exercise.Name] = entry
			}
			entry.count++
			if w.Date.After(entry.lastPerformed) {
				entry.lastPerformed = w.Date
			}
			for _, set := range exercise.Sets {
				if score, ok := workout.DifficultyScore(set.Difficulty); ok {
					entry.difficultySum += score
					entry.difficultyCount++
				}
			}
		}
	}

	stats := make([]ExerciseStats, 0, len(tallies))
	for name, entry := range tallies {
		avg := 0.0
		if entry.difficultyCount > 0 {
			avg = float64(entry.difficultySum) / float64(entry.difficultyCount)
		}
		stats = append(stats, ExerciseStats{
			Name:           name,
			TimesPerformed: entry.count,
			AvgDifficulty:  avg,
			LastPerformed:  entry.lastPerformed,
			Equipment:      entry.equipment,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TimesPerformed != stats[j].TimesPerformed {
			return stats[i].TimesPerformed > stats[j].TimesPerformed
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// BodyMetrics builds the physical trend line from recent check-ins.
func (s *Service) BodyMetrics(ctx context.Context) (BodyMetrics, error) {
	checkIns, err := s.recentCheckInsOldestFirst(ctx)
	if err != nil {
		return BodyMetrics{}, err
	}
	if len(checkIns) == 0 {
		return BodyMetrics{}, nil
	}

	metrics := BodyMetrics{Trends: make([]MetricPoint, 0, len(checkIns))}
	for _, c := range checkIns {
		metrics.Trends = append(metrics.Trends, MetricPoint{
			Date:     c.Date,
			Knee:     c.Physical.Knee,
			Shoulder: c.Physical.Shoulder,
			Energy:   c.Physical.Energy,
			Sleep:    c.Physical.Sleep,
			Weight:   c.Physical.Weight,
		})
		if c.Physical.Weight != nil {
			metrics.WeightTrend = append(metrics.WeightTrend, WeightPoint{Date: c.Date, Weight: *c.Physical.Weight})
		}
	}

	knee := func(p MetricPoint) float64 { return float64(p.Knee) }
	shoulder := func(p MetricPoint) float64 { return float64(p.Shoulder) }
	energy := func(p MetricPoint) float64 { return float64(p.Energy) }
	sleep := func(p MetricPoint) float64 { return float64(p.Sleep) }

	metrics.AvgKnee = averagePoints(metrics.Trends, knee)
	metrics.AvgShoulder = averagePoints(metrics.Trends, shoulder)
	metrics.AvgEnergy = averagePoints(metrics.Trends, energy)
	metrics.AvgSleep = averagePoints(metrics.Trends, sleep)

	first, last := windowWeeks(metrics.Trends)
	metrics.KneeImprovement = improvement(averagePoints(first, knee), averagePoints(last, knee))
	metrics.ShoulderImprovement = improvement(averagePoints(first, shoulder), averagePoints(last, shoulder))
	metrics.EnergyImprovement = improvement(averagePoints(first, energy), averagePoints(last, energy))
	metrics.SleepImprovement = improvement(averagePoints(first, sleep), averagePoints(last, sleep))

	if len(metrics.WeightTrend) > 0 {
		start := metrics.WeightTrend[0].Weight
		current := metrics.WeightTrend[len(metrics.WeightTrend)-1].Weight
		change := current - start
		metrics.StartWeight = &start
		metrics.CurrentWeight = &current
		metrics.WeightChange = &change
	}
	return metrics, nil
}

// MentalEmotional builds state distributions and stress/clarity trends from
// recent check-ins.
func (s *Service) MentalEmotional(ctx context.Context) (MentalEmotional, error) {
	checkIns, err := s.recentCheckInsOldestFirst(ctx)
	if err != nil {
		return MentalEmotional{}, err
	}
	if len(checkIns) == 0 {
		return MentalEmotional{}, nil
	}

	mental := make(map[string]int)
	emotions := make(map[string]int)
	var stressSum, claritySum, intensitySum int
	for _, c := range checkIns {
		mental[string(c.Mental.State)]++
		emotions[string(c.Emotional.Primary)]++
		stressSum += c.Mental.Stress
		claritySum += c.Mental.Clarity
		intensitySum += c.Emotional.Intensity
	}

	total := len(checkIns)
	analysis := MentalEmotional{
		MentalStates: distribution(mental, total),
		Emotions:     distribution(emotions, total),
		AvgStress:    float64(stressSum) / float64(total),
		AvgClarity:   float64(claritySum) / float64(total),
		AvgIntensity: float64(intensitySum) / float64(total),
	}

	first, last := windowWeeksCheckIns(checkIns)
	firstStress := averageCheckIns(first, func(c checkin.CheckIn) float64 { return float64(c.Mental.Stress) })
	lastStress := averageCheckIns(last, func(c checkin.CheckIn) float64 { return float64(c.Mental.Stress) })
	firstClarity := averageCheckIns(first, func(c checkin.CheckIn) float64 { return float64(c.Mental.Clarity) })
	lastClarity := averageCheckIns(last, func(c checkin.CheckIn) float64 { return float64(c.Mental.Clarity) })

	// Falling stress is an improvement, so the sign is flipped relative to
	// clarity.
	if firstStress != 0 {
		analysis.StressImprovement = (firstStress - lastStress) / firstStress * 100
	}
	if firstClarity != 0 {
		analysis.ClarityImprovement = (lastClarity - firstClarity) / firstClarity * 100
	}
	return analysis, nil
}

// Summary computes every analytics piece concurrently and bundles the
// results for the dashboard.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.WorkoutStats(ctx)
		summary.Workouts = stats
		return err
	})
	g.Go(func() error {
		top, err := s.TopExercises(ctx, defaultTopExerciseLimit)
		summary.TopExercises = top
		return err
	})
	g.Go(func() error {
		metrics, err := s.BodyMetrics(ctx)
		summary.BodyMetrics = metrics
		return err
	})
	g.Go(func() error {
		me, err := s.MentalEmotional(ctx)
		summary.MentalEmotional = me
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("compute analytics summary: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "computed analytics summary",
		slog.Int("totalWorkouts", summary.Workouts.Total),
		slog.Int("currentStreak", summary.Workouts.CurrentStreak))
	return summary, nil
}

func (s *Service) recentCheckInsOldestFirst(ctx context.Context) ([]checkin.CheckIn, error) {
	checkIns, err := s.checkins.Recent(ctx, recentCheckInDays)
	if err != nil {
		return nil, fmt.Errorf("load recent check-ins: %w", err)
	}
	sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Date.Before(checkIns[j].Date) })
	return checkIns, nil
}

// day truncates a time to its UTC calendar day.
func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// workoutDays returns the distinct calendar days with at least one completed
// workout, oldest first.
func workoutDays(completed []workout.Workout) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, w := range completed {
		d := day(w.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func dayCount(completed []workout.Workout, d time.Time) int {
	n := 0
	for _, w := range completed {
		if day(w.Date).Equal(d) {
			n++
		}
	}
	return n
}

// currentStreak walks the distinct workout days backwards from the most
// recent one. A most recent workout older than yesterday breaks the streak.
func currentStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}
	last := days[len(days)-1]
	if daysBetween(last, today) > 1 {
		return 0
	}
	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if daysBetween(days[i-1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

func longestStreak(days []time.Time) int {
	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && daysBetween(days[i-1], d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func averagePoints(points []MetricPoint, metric func(MetricPoint) float64) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += metric(p)
	}
	return sum / float64(len(points))
}

func averageCheckIns(checkIns []checkin.CheckIn, metric func(checkin.CheckIn) float64) float64 {
	if len(checkIns) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range checkIns {
		sum += metric(c)
	}
	return sum / float64(len(checkIns))
}

// windowWeeks slices the first and last seven entries of the trend line for
// the improvement comparison. Short histories overlap.
func windowWeeks(points []MetricPoint) (first, last []MetricPoint) {
	n := min(7, len(points))
	return points[:n], points[len(points)-n:]
}

func windowWeeksCheckIns(checkIns []checkin.CheckIn) (first, last []checkin.CheckIn) {
	n := min(7, len(checkIns))
	return checkIns[:n], checkIns[len(checkIns)-n:]
}

func improvement(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

func distribution(counts map[string]int, total int) []StateCount {
	out := make([]StateCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, StateCount{
			Value:      value,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
