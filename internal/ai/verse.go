package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stronghold-fit/stronghold/internal/checkin"
)

// Verse is a short scripture passage matched to the athlete's state.
type Verse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Reason    string `json:"reason"`
}

const verseSystemPrompt = `You are a pastoral care assistant helping select meaningful Bible verses for daily encouragement.

Your task: Select ONE appropriate Bible verse based on the user's mental and emotional state.

Key principles:
1. RELEVANCE - verse must genuinely speak to their current state
2. AUTHENTICITY - no generic "feel good" verses unless truly fitting
3. ACCURACY - use exact verse text and correct reference
4. ENCOURAGEMENT - point toward hope, strength, or God's character
5. WISDOM - match the nuance of their state (anxious vs overwhelmed vs heavy are different)

Respond ONLY with valid JSON. No markdown, no explanation.`

// Encouragement asks the model for a scripture passage fitting today's
// check-in. Any failure, from the API or from an unparseable reply, falls
// back to a fixed passage keyed by the primary emotion so the dashboard
// always has something to show.
func (c *Client) Encouragement(ctx context.Context, today checkin.CheckIn) Verse {
	raw, err := c.complete(ctx, verseSystemPrompt, buildVersePrompt(today))
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "verse generation failed, using fallback",
			slog.String("emotion", string(today.Emotional.Primary)),
			slog.String("error", err.Error()))
		return fallbackVerse(today.Emotional.Primary)
	}

	verse, err := parseVerse(raw)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "verse reply unparseable, using fallback",
			slog.String("emotion", string(today.Emotional.Primary)),
			slog.String("error", err.Error()))
		return fallbackVerse(today.Emotional.Primary)
	}
	return verse
}

func buildVersePrompt(today checkin.CheckIn) string {
	var b strings.Builder

	b.WriteString("Select a Bible verse for today based on this state:\n\n")
	b.WriteString("MENTAL STATE:\n")
	fmt.Fprintf(&b, "- State: %s\n", today.Mental.State)
	fmt.Fprintf(&b, "- Stress level: %d/10 %s\n", today.Mental.Stress, stressBand(today.Mental.Stress))
	fmt.Fprintf(&b, "- Mental clarity: %d/10\n\n", today.Mental.Clarity)
	b.WriteString("EMOTIONAL STATE:\n")
	fmt.Fprintf(&b, "- Primary emotion: %s\n", today.Emotional.Primary)
	fmt.Fprintf(&b, "- Intensity: %d/10\n\n", today.Emotional.Intensity)

	b.WriteString(`PROVIDE VERSE IN THIS EXACT JSON FORMAT:
{
  "reference": "<Book Chapter:Verse>",
  "text": "<Full verse text from NIV or ESV>",
  "reason": "<1 sentence why this verse fits their state today>"
}

GUIDELINES:
1. Choose verses that speak to their CURRENT state (anxious -> peace, joyful -> gratitude, etc.)
2. Avoid cliche verses - choose thoughtfully based on nuance of their state
3. For high stress (>7): verses about God's peace, strength, or provision
4. For low clarity (<5): verses about wisdom, guidance, or trust
5. For emotional struggles: verses of comfort, hope, or encouragement
6. For positive states: verses of gratitude, worship, or mission
7. Use accurate verse references and complete verse text
8. Keep reason brief (1 sentence max)

Respond ONLY with JSON. No markdown, no explanation.`)

	return b.String()
}

func stressBand(stress int) string {
	switch {
	case stress > 7:
		return "HIGH"
	case stress > 4:
		return "MODERATE"
	default:
		return "LOW"
	}
}

func parseVerse(raw string) (Verse, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var verse Verse
	if err := json.Unmarshal([]byte(cleaned), &verse); err != nil {
		return Verse{}, fmt.Errorf("parse verse reply: %w", err)
	}
	if verse.Reference == "" || verse.Text == "" {
		return Verse{}, fmt.Errorf("parse verse reply: missing reference or text")
	}
	return verse, nil
}

// fallbackVerse returns the fixed passage for a primary emotion. Unknown
// emotions get a general passage about strength.
func fallbackVerse(emotion checkin.Emotion) Verse {
	switch emotion {
	case checkin.EmotionPeaceful:
		return Verse{
			Reference: "Psalm 46:10",
			Text:      "Be still, and know that I am God.",
			Reason:    "Rest in God's presence during this peaceful state",
		}
	case checkin.EmotionAnxious:
		return Verse{
			Reference: "Philippians 4:6-7",
			Text:      "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God. And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus.",
			Reason:    "God's peace guards your anxious heart",
		}
	case checkin.EmotionFrustrated:
		return Verse{
			Reference: "Psalm 34:18",
			Text:      "The Lord is close to the brokenhearted and saves those who are crushed in spirit.",
			Reason:    "God is near even in frustration",
		}
	case checkin.EmotionSad:
		return Verse{
			Reference: "Psalm 30:5",
			Text:      "Weeping may stay for the night, but rejoicing comes in the morning.",
			Reason:    "Hope that joy will return",
		}
	case checkin.EmotionJoyful:
		return Verse{
			Reference: "Psalm 118:24",
			Text:      "This is the day that the Lord has made; let us rejoice and be glad in it.",
			Reason:    "Celebrate today with gratitude",
		}
	case checkin.EmotionNumb:
		return Verse{
			Reference: "Psalm 42:11",
			Text:      "Why, my soul, are you downcast? Why so disturbed within me? Put your hope in God, for I will yet praise him, my Savior and my God.",
			Reason:    "Even when numb, hope remains in God",
		}
	default:
		return Verse{
			Reference: "Philippians 4:13",
			Text:      "I can do all things through Christ who strengthens me.",
			Reason:    "A reminder of God's strength in all circumstances",
		}
	}
}
