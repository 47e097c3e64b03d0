package workout

import (
	"fmt"
	"strings"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/checkin"
)

// SystemPrompt frames the model as an adaptive coach for this athlete.
const SystemPrompt = `You are an expert fitness coach specializing in adaptive training for 50+ adults with joint issues.

Your task: Generate a safe, effective workout in JSON format based on daily check-in data.

Key principles:
1. SAFETY FIRST - never risk injury for gains
2. ADAPT TO STATE - same person, different capacities daily
3. PROGRESSIVE - but patient and sustainable
4. JOINT-FRIENDLY - always provide modifications
5. ROWING IS THERAPEUTIC - use it strategically for both cardio and stress relief

Respond ONLY with valid JSON. No markdown, no explanation, just the JSON object.`

// BuildPrompt renders the drafting prompt from today's check-in and recent
// history. The JSON shape in the prompt must stay in lockstep with
// ParseDraft.
func BuildPrompt(today checkin.CheckIn, history []checkin.CheckIn) string {
	var b strings.Builder

	b.WriteString("Generate today's workout based on this morning's check-in:\n\n")

	p := today.Physical
	fmt.Fprintf(&b, "PHYSICAL STATE:\n")
	fmt.Fprintf(&b, "- Left knee: %d/10 %s\n", p.Knee, painLabel(p.Knee))
	fmt.Fprintf(&b, "- Shoulder: %d/10 %s\n", p.Shoulder, painLabel(p.Shoulder))
	fmt.Fprintf(&b, "- Energy: %d/10 %s\n", p.Energy, levelLabel(p.Energy))
	fmt.Fprintf(&b, "- Sleep quality: %d/10 %s\n", p.Sleep, sleepLabel(p.Sleep))
	if p.Weight != nil {
		fmt.Fprintf(&b, "- Weight: %.1f lbs\n", *p.Weight)
	}

	m := today.Mental
	fmt.Fprintf(&b, "\nMENTAL STATE:\n")
	fmt.Fprintf(&b, "- State: %s\n", m.State)
	fmt.Fprintf(&b, "- Stress level: %d/10 %s\n", m.Stress, stressLabel(m.Stress))
	fmt.Fprintf(&b, "- Mental clarity: %d/10\n", m.Clarity)

	e := today.Emotional
	fmt.Fprintf(&b, "\nEMOTIONAL STATE:\n")
	fmt.Fprintf(&b, "- Primary emotion: %s\n", e.Primary)
	fmt.Fprintf(&b, "- Intensity: %d/10\n", e.Intensity)

	if len(history) > 0 {
		fmt.Fprintf(&b, "\nRECENT CHECK-INS (newest first):\n")
		for _, c := range history {
			fmt.Fprintf(&b, "- %s: knee %d, shoulder %d, energy %d, stress %d, %s/%s\n",
				c.Date.Format(checkin.DateFormat),
				c.Physical.Knee, c.Physical.Shoulder, c.Physical.Energy,
				c.Mental.Stress, c.Mental.State, c.Emotional.Primary)
		}
	}

	fmt.Fprintf(&b, "\nAVAILABLE EQUIPMENT:\n")
	for _, equipment := range catalog.AvailableEquipment() {
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(string(equipment), "_", " "))
	}

	b.WriteString(`
PROVIDE WORKOUT IN THIS EXACT JSON FORMAT:
` + "```json" + `
{
  "type": "upper_body" | "lower_body" | "full_body" | "cardio" | "recovery",
  "estimatedDuration": <number in minutes>,
  "reasoning": "<1-2 sentences why this workout today>",
  "warmup": {
    "exercises": [
      {
        "name": "<exercise name>",
        "equipment": "rowing_machine" | "resistance_bands" | "cables" | "barbell" | "ez_bar" | "dumbbells" | "stability_ball" | "bodyweight",
        "duration": <minutes if timed, or null>,
        "reps": <number or null>,
        "sets": 1,
        "restSeconds": 0,
        "formCues": ["<cue 1>", "<cue 2>"],
        "instructions": "<brief instructions>"
      }
    ]
  },
  "strength": {
    "exercises": [
      {
        "name": "<exercise name from equipment>",
        "equipment": "<equipment type>",
        "sets": <number>,
        "reps": <number>,
        "targetWeight": <number in lbs or null>,
        "restSeconds": <60-120>,
        "formCues": ["<important form cue 1>", "<important form cue 2>"],
        "modifications": "<knee/shoulder adaptations if needed>"
      }
    ]
  },
  "cooldown": {
    "exercises": [
      {
        "name": "<stretch or light exercise>",
        "duration": <minutes>,
        "instructions": "<how to do it>"
      }
    ]
  },
  "coachingNotes": "<Encouraging 1-2 sentence message to the athlete>"
}
` + "```" + `

CRITICAL RULES:
1. If knee < 5/10: NO loaded knee flexion (squats, lunges, leg press)
2. If shoulder < 5/10: NO overhead pressing, use bands instead of cables
3. If stress > 7/10: START with 10-15 min contemplative rowing (proven to reduce anxiety)
4. If energy < 5/10: Reduce total volume by 30%, focus on quality over quantity
5. If sleep < 6/10: Moderate intensity, avoid going to failure
6. ALWAYS include at least 5 min of rowing (warm-up or cardio)
7. Total workout: 30-40 minutes including warm-up and cool-down
8. Use exercises that are actually available (check equipment list)
9. Provide ONLY the JSON, no other text

Generate the workout now:`)

	return b.String()
}

func painLabel(score int) string {
	switch {
	case score < 5:
		return "PAINFUL"
	case score < 7:
		return "SORE"
	default:
		return "OKAY"
	}
}

func levelLabel(score int) string {
	switch {
	case score < 5:
		return "LOW"
	case score < 7:
		return "MODERATE"
	default:
		return "HIGH"
	}
}

func sleepLabel(score int) string {
	switch {
	case score < 6:
		return "POOR"
	case score < 8:
		return "DECENT"
	default:
		return "GREAT"
	}
}

func stressLabel(score int) string {
	switch {
	case score > 7:
		return "HIGH"
	case score > 4:
		return "MODERATE"
	default:
		return "LOW"
	}
}
