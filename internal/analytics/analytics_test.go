package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/ptr"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

type stubWorkouts struct {
	completed []workout.Workout
	err       error
}

func (s stubWorkouts) Completed(context.Context) ([]workout.Workout, error) {
	return s.completed, s.err
}

type stubCheckIns struct {
	checkIns []checkin.CheckIn
	err      error
}

func (s stubCheckIns) Recent(context.Context, int) ([]checkin.CheckIn, error) {
	return s.checkIns, s.err
}

func newTestService(t *testing.T, workouts stubWorkouts, checkIns stubCheckIns, now time.Time) *Service {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	s := NewService(workouts, checkIns, logger)
	s.now = func() time.Time { return now }
	return s
}

func completedOn(date time.Time, exercises ...workout.Exercise) workout.Workout {
	return workout.Workout{
		ID:       "w-" + date.Format(time.DateOnly),
		Date:     date,
		Status:   workout.StatusCompleted,
		Strength: exercises,
	}
}

func ratedExercise(name string, difficulties ...workout.SetDifficulty) workout.Exercise {
	sets := make([]workout.Set, 0, len(difficulties))
	for i, d := range difficulties {
		sets = append(sets, workout.Set{Number: i + 1, Completed: true, Difficulty: d})
	}
	return workout.Exercise{
		InstanceID: name,
		Name:       name,
		Equipment:  catalog.EquipmentDumbbells,
		Phase:      catalog.PhaseStrength,
		Sets:       sets,
	}
}

func TestWorkoutStats_Streaks(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	date := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	tests := []struct {
		name string
		days []int
		want WorkoutStats
	}{
		{
			name: "no workouts",
			days: nil,
			want: WorkoutStats{},
		},
		{
			name: "three consecutive days ending today",
			days: []int{2, 1, 0},
			want: WorkoutStats{Total: 3, CurrentStreak: 3, LongestStreak: 3, WeeklyCount: 3, MonthlyCount: 3},
		},
		{
			name: "streak ending yesterday still counts",
			days: []int{2, 1},
			want: WorkoutStats{Total: 2, CurrentStreak: 2, LongestStreak: 2, WeeklyCount: 2, MonthlyCount: 2},
		},
		{
			name: "gap over one day zeroes the current streak",
			days: []int{5, 4, 3},
			want: WorkoutStats{Total: 3, CurrentStreak: 0, LongestStreak: 3, WeeklyCount: 3, MonthlyCount: 3},
		},
		{
			name: "same day counts once for streaks",
			days: []int{1, 1, 0},
			want: WorkoutStats{Total: 3, CurrentStreak: 2, LongestStreak: 2, WeeklyCount: 3, MonthlyCount: 3},
		},
		{
			name: "longest streak in the past beats the current one",
			days: []int{20, 19, 18, 17, 1, 0},
			want: WorkoutStats{Total: 6, CurrentStreak: 2, LongestStreak: 4, WeeklyCount: 2, MonthlyCount: 6},
		},
		{
			name: "old workouts fall out of the trailing windows",
			days: []int{40, 10, 0},
			want: WorkoutStats{Total: 3, CurrentStreak: 1, LongestStreak: 1, WeeklyCount: 1, MonthlyCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var completed []workout.Workout
			for _, d := range tt.days {
				completed = append(completed, completedOn(date(d)))
			}
			s := newTestService(t, stubWorkouts{completed: completed}, stubCheckIns{}, now)

			got, err := s.WorkoutStats(context.Background())
			if err != nil {
				t.Fatalf("WorkoutStats: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WorkoutStats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTopExercises(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	skipped := ratedExercise("Barbell Squat", workout.SetGood)
	skipped.Skipped = true

	completed := []workout.Workout{
		completedOn(now.AddDate(0, 0, -2),
			ratedExercise("Band Row", workout.SetEasy, workout.SetGood),
			ratedExercise("Goblet Squat", workout.SetHard),
		),
		completedOn(now.AddDate(0, 0, -1),
			ratedExercise("Band Row", workout.SetPain),
			skipped,
		),
	}
	s := newTestService(t, stubWorkouts{completed: completed}, stubCheckIns{}, now)

	got, err := s.TopExercises(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopExercises: %v", err)
	}

	want := []ExerciseStats{
		{
			Name:           "Band Row",
			TimesPerformed: 2,
			AvgDifficulty:  (1.0 + 2.0 + 4.0) / 3.0,
			LastPerformed:  now.AddDate(0, 0, -1),
			Equipment:      string(catalog.EquipmentDumbbells),
		},
		{
			Name:           "Goblet Squat",
			TimesPerformed: 1,
			AvgDifficulty:  3,
			LastPerformed:  now.AddDate(0, 0, -2),
			Equipment:      string(catalog.EquipmentDumbbells),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopExercises mismatch (-want +got):\n%s", diff)
	}
}

func TestTopExercises_Limit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	completed := []workout.Workout{completedOn(now,
		ratedExercise("A"), ratedExercise("B"), ratedExercise("C"),
	)}
	s := newTestService(t, stubWorkouts{completed: completed}, stubCheckIns{}, now)

	got, err := s.TopExercises(context.Background(), 2)
	if err != nil {
		t.Fatalf("TopExercises: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got))
	}
}

func trendCheckIn(date time.Time, knee, shoulder int, weight *float64) checkin.CheckIn {
	return checkin.CheckIn{
		ID:   "c-" + date.Format(time.DateOnly),
		Date: date,
		Physical: checkin.Physical{
			Knee:     knee,
			Shoulder: shoulder,
			Energy:   6,
			Sleep:    7,
			Weight:   weight,
		},
		Mental:    checkin.Mental{State: checkin.MentalClear, Stress: 4, Clarity: 7},
		Emotional: checkin.Emotional{Primary: checkin.EmotionPeaceful, Intensity: 5},
	}
}

func TestBodyMetrics(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	// Recent returns newest first; the service must re-sort ascending.
	checkIns := []checkin.CheckIn{
		trendCheckIn(now, 8, 8, ptr.Ref(80.0)),
		trendCheckIn(now.AddDate(0, 0, -1), 6, 7, nil),
		trendCheckIn(now.AddDate(0, 0, -2), 4, 6, ptr.Ref(82.0)),
	}
	s := newTestService(t, stubWorkouts{}, stubCheckIns{checkIns: checkIns}, now)

	got, err := s.BodyMetrics(context.Background())
	if err != nil {
		t.Fatalf("BodyMetrics: %v", err)
	}

	if got.AvgKnee != 6 {
		t.Errorf("AvgKnee = %v, want 6", got.AvgKnee)
	}
	if got.AvgShoulder != 7 {
		t.Errorf("AvgShoulder = %v, want 7", got.AvgShoulder)
	}
	if len(got.Trends) != 3 || !got.Trends[0].Date.Before(got.Trends[2].Date) {
		t.Errorf("trends not sorted oldest first: %+v", got.Trends)
	}
	if len(got.WeightTrend) != 2 {
		t.Fatalf("WeightTrend length = %d, want 2", len(got.WeightTrend))
	}
	if got.StartWeight == nil || *got.StartWeight != 82 {
		t.Errorf("StartWeight = %v, want 82", got.StartWeight)
	}
	if got.CurrentWeight == nil || *got.CurrentWeight != 80 {
		t.Errorf("CurrentWeight = %v, want 80", got.CurrentWeight)
	}
	if got.WeightChange == nil || *got.WeightChange != -2 {
		t.Errorf("WeightChange = %v, want -2", got.WeightChange)
	}
	// First and last windows overlap fully with three entries, so the
	// improvement percentages collapse to zero.
	if got.KneeImprovement != 0 {
		t.Errorf("KneeImprovement = %v, want 0", got.KneeImprovement)
	}
}

func TestBodyMetrics_Improvement(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	var checkIns []checkin.CheckIn
	for i := 0; i < 14; i++ {
		knee := 4
		if i >= 7 {
			knee = 8
		}
		checkIns = append(checkIns, trendCheckIn(now.AddDate(0, 0, i-13), knee, 7, nil))
	}
	s := newTestService(t, stubWorkouts{}, stubCheckIns{checkIns: checkIns}, now)

	got, err := s.BodyMetrics(context.Background())
	if err != nil {
		t.Fatalf("BodyMetrics: %v", err)
	}
	if got.KneeImprovement != 100 {
		t.Errorf("KneeImprovement = %v, want 100", got.KneeImprovement)
	}
	if got.ShoulderImprovement != 0 {
		t.Errorf("ShoulderImprovement = %v, want 0", got.ShoulderImprovement)
	}
}

func TestBodyMetrics_Empty(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	s := newTestService(t, stubWorkouts{}, stubCheckIns{}, now)

	got, err := s.BodyMetrics(context.Background())
	if err != nil {
		t.Fatalf("BodyMetrics: %v", err)
	}
	if diff := cmp.Diff(BodyMetrics{}, got); diff != "" {
		t.Errorf("BodyMetrics mismatch (-want +got):\n%s", diff)
	}
}

func TestMentalEmotional(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	mood := func(daysAgo int, state checkin.MentalState, stress, clarity int, emotion checkin.Emotion) checkin.CheckIn {
		c := trendCheckIn(now.AddDate(0, 0, -daysAgo), 7, 7, nil)
		c.Mental.State = state
		c.Mental.Stress = stress
		c.Mental.Clarity = clarity
		c.Emotional.Primary = emotion
		return c
	}

	checkIns := []checkin.CheckIn{
		mood(0, checkin.MentalClear, 2, 8, checkin.EmotionJoyful),
		mood(1, checkin.MentalClear, 4, 6, checkin.EmotionPeaceful),
		mood(2, checkin.MentalAnxious, 6, 4, checkin.EmotionAnxious),
		mood(3, checkin.MentalClear, 8, 2, checkin.EmotionPeaceful),
	}
	s := newTestService(t, stubWorkouts{}, stubCheckIns{checkIns: checkIns}, now)

	got, err := s.MentalEmotional(context.Background())
	if err != nil {
		t.Fatalf("MentalEmotional: %v", err)
	}

	wantMental := []StateCount{
		{Value: string(checkin.MentalClear), Count: 3, Percentage: 75},
		{Value: string(checkin.MentalAnxious), Count: 1, Percentage: 25},
	}
	if diff := cmp.Diff(wantMental, got.MentalStates); diff != "" {
		t.Errorf("MentalStates mismatch (-want +got):\n%s", diff)
	}
	wantEmotions := []StateCount{
		{Value: string(checkin.EmotionPeaceful), Count: 2, Percentage: 50},
		{Value: string(checkin.EmotionAnxious), Count: 1, Percentage: 25},
		{Value: string(checkin.EmotionJoyful), Count: 1, Percentage: 25},
	}
	if diff := cmp.Diff(wantEmotions, got.Emotions); diff != "" {
		t.Errorf("Emotions mismatch (-want +got):\n%s", diff)
	}
	if got.AvgStress != 5 {
		t.Errorf("AvgStress = %v, want 5", got.AvgStress)
	}
	if got.AvgClarity != 5 {
		t.Errorf("AvgClarity = %v, want 5", got.AvgClarity)
	}
	// Windows fully overlap with four entries, so improvements are zero.
	if got.StressImprovement != 0 || got.ClarityImprovement != 0 {
		t.Errorf("improvements = %v/%v, want 0/0", got.StressImprovement, got.ClarityImprovement)
	}
}

func TestMentalEmotional_StressInverted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	var checkIns []checkin.CheckIn
	for i := 0; i < 14; i++ {
		stress := 8
		clarity := 4
		if i >= 7 {
			stress = 4
			clarity = 8
		}
		c := trendCheckIn(now.AddDate(0, 0, i-13), 7, 7, nil)
		c.Mental.Stress = stress
		c.Mental.Clarity = clarity
		checkIns = append(checkIns, c)
	}
	s := newTestService(t, stubWorkouts{}, stubCheckIns{checkIns: checkIns}, now)

	got, err := s.MentalEmotional(context.Background())
	if err != nil {
		t.Fatalf("MentalEmotional: %v", err)
	}
	if got.StressImprovement != 50 {
		t.Errorf("StressImprovement = %v, want 50", got.StressImprovement)
	}
	if got.ClarityImprovement != 100 {
		t.Errorf("ClarityImprovement = %v, want 100", got.ClarityImprovement)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	completed := []workout.Workout{completedOn(now, ratedExercise("Band Row", workout.SetGood))}
	checkIns := []checkin.CheckIn{trendCheckIn(now, 7, 7, nil)}
	s := newTestService(t, stubWorkouts{completed: completed}, stubCheckIns{checkIns: checkIns}, now)

	got, err := s.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.Workouts.Total != 1 || got.Workouts.CurrentStreak != 1 {
		t.Errorf("Workouts = %+v, want total 1 streak 1", got.Workouts)
	}
	if len(got.TopExercises) != 1 || got.TopExercises[0].Name != "Band Row" {
		t.Errorf("TopExercises = %+v, want Band Row", got.TopExercises)
	}
	if got.BodyMetrics.AvgKnee != 7 {
		t.Errorf("AvgKnee = %v, want 7", got.BodyMetrics.AvgKnee)
	}
	if got.MentalEmotional.AvgStress != 4 {
		t.Errorf("AvgStress = %v, want 4", got.MentalEmotional.AvgStress)
	}
}

func TestSummary_PropagatesErrors(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	wantErr := errors.New("database gone")
	s := newTestService(t, stubWorkouts{err: wantErr}, stubCheckIns{}, now)

	if _, err := s.Summary(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Summary error = %v, want %v", err, wantErr)
	}
}
