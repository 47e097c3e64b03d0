package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
)

func newStubClient(t *testing.T, reply string, err error) *Client {
	t.Helper()
	c := NewClient(Config{APIKey: "test-key"}, testhelpers.NewLogger(testhelpers.NewWriter(t)))
	c.complete = func(context.Context, string, string) (string, error) {
		return reply, err
	}
	return c
}

func verseCheckIn(emotion checkin.Emotion) checkin.CheckIn {
	return checkin.CheckIn{
		Mental:    checkin.Mental{State: checkin.MentalAnxious, Stress: 8, Clarity: 4},
		Emotional: checkin.Emotional{Primary: emotion, Intensity: 7},
	}
}

func TestEncouragement_ParsesReply(t *testing.T) {
	t.Parallel()

	reply := "```json\n" + `{
  "reference": "Isaiah 41:10",
  "text": "So do not fear, for I am with you.",
  "reason": "A promise of presence for an anxious morning"
}` + "\n```"
	c := newStubClient(t, reply, nil)

	got := c.Encouragement(context.Background(), verseCheckIn(checkin.EmotionAnxious))

	want := Verse{
		Reference: "Isaiah 41:10",
		Text:      "So do not fear, for I am with you.",
		Reason:    "A promise of presence for an anxious morning",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encouragement mismatch (-want +got):\n%s", diff)
	}
}

func TestEncouragement_FallbackOnAPIError(t *testing.T) {
	t.Parallel()

	c := newStubClient(t, "", errors.New("rate limited"))

	got := c.Encouragement(context.Background(), verseCheckIn(checkin.EmotionSad))
	if got.Reference != "Psalm 30:5" {
		t.Errorf("Reference = %q, want the sadness fallback Psalm 30:5", got.Reference)
	}
}

func TestEncouragement_FallbackOnBadReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
	}{
		{name: "not JSON", reply: "Here is a verse for you today."},
		{name: "missing reference", reply: `{"text": "some text", "reason": "why"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newStubClient(t, tt.reply, nil)
			got := c.Encouragement(context.Background(), verseCheckIn(checkin.EmotionNumb))
			if got.Reference != "Psalm 42:11" {
				t.Errorf("Reference = %q, want the numbness fallback Psalm 42:11", got.Reference)
			}
		})
	}
}

func TestFallbackVerse_CoversAllEmotions(t *testing.T) {
	t.Parallel()

	emotions := []checkin.Emotion{
		checkin.EmotionPeaceful,
		checkin.EmotionAnxious,
		checkin.EmotionFrustrated,
		checkin.EmotionSad,
		checkin.EmotionJoyful,
		checkin.EmotionNumb,
	}
	seen := make(map[string]bool)
	for _, e := range emotions {
		v := fallbackVerse(e)
		if v.Reference == "" || v.Text == "" || v.Reason == "" {
			t.Errorf("fallbackVerse(%s) incomplete: %+v", e, v)
		}
		if seen[v.Reference] {
			t.Errorf("fallbackVerse(%s) reuses reference %s", e, v.Reference)
		}
		seen[v.Reference] = true
	}

	if v := fallbackVerse("unknown"); v.Reference != "Philippians 4:13" {
		t.Errorf("unknown emotion fallback = %q, want Philippians 4:13", v.Reference)
	}
}

func TestBuildVersePrompt(t *testing.T) {
	t.Parallel()

	prompt := buildVersePrompt(verseCheckIn(checkin.EmotionAnxious))

	for _, want := range []string{
		"Stress level: 8/10 HIGH",
		"Mental clarity: 4/10",
		"Primary emotion: anxious",
		"Intensity: 7/10",
		`"reference"`,
		"Respond ONLY with JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestStressBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stress int
		want   string
	}{
		{stress: 2, want: "LOW"},
		{stress: 4, want: "LOW"},
		{stress: 5, want: "MODERATE"},
		{stress: 7, want: "MODERATE"},
		{stress: 8, want: "HIGH"},
	}
	for _, tt := range tests {
		if got := stressBand(tt.stress); got != tt.want {
			t.Errorf("stressBand(%d) = %q, want %q", tt.stress, got, tt.want)
		}
	}
}
