// Package checkin models the athlete's daily readiness check-in and the
// post-workout check captured when a session finishes.
package checkin

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no check-in exists for the requested day.
var ErrNotFound = errors.New("check-in not found")

// DateFormat is the canonical day format for check-in dates.
const DateFormat = "2006-01-02"

// MentalState captures the athlete's self-reported state of mind.
type MentalState string

const (
	MentalClear       MentalState = "clear"
	MentalAnxious     MentalState = "anxious"
	MentalFoggy       MentalState = "foggy"
	MentalHeavy       MentalState = "heavy"
	MentalOverwhelmed MentalState = "overwhelmed"
)

// Emotion is a primary or secondary emotion named in the check-in.
type Emotion string

const (
	EmotionPeaceful   Emotion = "peaceful"
	EmotionAnxious    Emotion = "anxious"
	EmotionFrustrated Emotion = "frustrated"
	EmotionSad        Emotion = "sad"
	EmotionJoyful     Emotion = "joyful"
	EmotionNumb       Emotion = "numb"
)

// Physical holds the morning body readings. Scores run 1-10 where 10 is best
// for energy and sleep and worst for joint pain.
type Physical struct {
	Knee     int      `json:"knee"`
	Shoulder int      `json:"shoulder"`
	Energy   int      `json:"energy"`
	Sleep    int      `json:"sleep"`
	Weight   *float64 `json:"weight,omitempty"`
}

// Mental holds the morning state of mind readings.
type Mental struct {
	State   MentalState `json:"state"`
	Stress  int         `json:"stress"`
	Clarity int         `json:"clarity"`
	Notes   string      `json:"notes,omitempty"`
}

// Emotional holds the morning emotional readings.
type Emotional struct {
	Primary   Emotion `json:"primary"`
	Intensity int     `json:"intensity"`
	Secondary Emotion `json:"secondary,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// CheckIn is one morning check-in. There is at most one per calendar day.
type CheckIn struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Physical  Physical  `json:"physical"`
	Mental    Mental    `json:"mental"`
	Emotional Emotional `json:"emotional"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate reports the first problem with the check-in fields.
func (c CheckIn) Validate() error {
	for _, score := range []struct {
		name  string
		value int
	}{
		{"physical.knee", c.Physical.Knee},
		{"physical.shoulder", c.Physical.Shoulder},
		{"physical.energy", c.Physical.Energy},
		{"physical.sleep", c.Physical.Sleep},
		{"mental.stress", c.Mental.Stress},
		{"mental.clarity", c.Mental.Clarity},
		{"emotional.intensity", c.Emotional.Intensity},
	} {
		if score.value < 1 || score.value > 10 {
			return fmt.Errorf("%s must be between 1 and 10, got %d", score.name, score.value)
		}
	}
	if c.Physical.Weight != nil && *c.Physical.Weight <= 0 {
		return fmt.Errorf("physical.weight must be positive, got %v", *c.Physical.Weight)
	}
	switch c.Mental.State {
	case MentalClear, MentalAnxious, MentalFoggy, MentalHeavy, MentalOverwhelmed:
	default:
		return fmt.Errorf("unknown mental state %q", c.Mental.State)
	}
	if err := validEmotion(c.Emotional.Primary); err != nil {
		return fmt.Errorf("emotional.primary: %w", err)
	}
	if c.Emotional.Secondary != "" {
		if err := validEmotion(c.Emotional.Secondary); err != nil {
			return fmt.Errorf("emotional.secondary: %w", err)
		}
	}
	return nil
}

func validEmotion(e Emotion) error {
	switch e {
	case EmotionPeaceful, EmotionAnxious, EmotionFrustrated, EmotionSad, EmotionJoyful, EmotionNumb:
		return nil
	default:
		return fmt.Errorf("unknown emotion %q", e)
	}
}

// PostWorkoutOverall grades the overall physical feeling after a workout.
type PostWorkoutOverall string

const (
	OverallEnergized PostWorkoutOverall = "energized"
	OverallGood      PostWorkoutOverall = "good"
	OverallTired     PostWorkoutOverall = "tired"
	OverallExhausted PostWorkoutOverall = "exhausted"
)

// PostWorkoutMood is the primary mood after a workout.
type PostWorkoutMood string

const (
	MoodUplifted   PostWorkoutMood = "uplifted"
	MoodCalm       PostWorkoutMood = "calm"
	MoodNeutral    PostWorkoutMood = "neutral"
	MoodDrained    PostWorkoutMood = "drained"
	MoodFrustrated PostWorkoutMood = "frustrated"
)

// PostWorkoutCheck is captured when the athlete finishes a workout. It is
// stored on the workout itself, not as a standalone row.
type PostWorkoutCheck struct {
	Physical struct {
		Knee     int                `json:"knee"`
		Shoulder int                `json:"shoulder"`
		Overall  PostWorkoutOverall `json:"overall"`
		Energy   int                `json:"energy"`
	} `json:"physical"`
	Mental struct {
		Clarity int `json:"clarity"`
		Stress  int `json:"stress"`
		Focus   int `json:"focus"`
	} `json:"mental"`
	Emotional struct {
		Mood      PostWorkoutMood `json:"mood"`
		Intensity int             `json:"intensity"`
		Outlook   int             `json:"outlook"`
	} `json:"emotional"`
	Notes       string    `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// Validate reports the first problem with the post-workout check fields.
func (p PostWorkoutCheck) Validate() error {
	for _, score := range []struct {
		name  string
		value int
	}{
		{"physical.knee", p.Physical.Knee},
		{"physical.shoulder", p.Physical.Shoulder},
		{"physical.energy", p.Physical.Energy},
		{"mental.clarity", p.Mental.Clarity},
		{"mental.stress", p.Mental.Stress},
		{"mental.focus", p.Mental.Focus},
		{"emotional.intensity", p.Emotional.Intensity},
		{"emotional.outlook", p.Emotional.Outlook},
	} {
		if score.value < 1 || score.value > 10 {
			return fmt.Errorf("%s must be between 1 and 10, got %d", score.name, score.value)
		}
	}
	switch p.Physical.Overall {
	case OverallEnergized, OverallGood, OverallTired, OverallExhausted:
	default:
		return fmt.Errorf("unknown overall feeling %q", p.Physical.Overall)
	}
	switch p.Emotional.Mood {
	case MoodUplifted, MoodCalm, MoodNeutral, MoodDrained, MoodFrustrated:
	default:
		return fmt.Errorf("unknown mood %q", p.Emotional.Mood)
	}
	return nil
}
