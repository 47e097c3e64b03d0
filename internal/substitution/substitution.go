// Package substitution finds replacement exercises for a movement the
// athlete cannot or does not want to perform, honoring equipment and joint
// constraints. Results always keep catalog order; there is no ranking.
package substitution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/ptr"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

// ErrNoEligible is returned when no template satisfies any fallback tier.
var ErrNoEligible = errors.New("no eligible substitution")

// Criteria filters the catalog. Nil fields are unconstrained.
type Criteria struct {
	Phase            *catalog.Phase
	Equipment        *catalog.Equipment
	Difficulty       *catalog.Difficulty
	KneeFriendly     *bool
	ShoulderFriendly *bool
	TargetMuscles    []string
}

// Find returns the templates that could replace current, filtered by the
// criteria. The current exercise's own template is always excluded, and the
// phase defaults to the current exercise's phase when not set. Muscles match
// when any criteria muscle is a case-insensitive substring of any template
// muscle.
func Find(current workout.Exercise, c Criteria) []catalog.Template {
	phase := current.Phase
	if c.Phase != nil {
		phase = *c.Phase
	}

	var out []catalog.Template
	for _, t := range catalog.All() {
		if t.ID == current.TemplateID {
			continue
		}
		if t.Phase != phase {
			continue
		}
		if c.Equipment != nil && t.Equipment != *c.Equipment {
			continue
		}
		if c.KneeFriendly != nil && t.KneeFriendly != *c.KneeFriendly {
			continue
		}
		if c.ShoulderFriendly != nil && t.ShoulderFriendly != *c.ShoulderFriendly {
			continue
		}
		if c.Difficulty != nil && t.Difficulty != *c.Difficulty {
			continue
		}
		if len(c.TargetMuscles) > 0 && !musclesOverlap(c.TargetMuscles, t.TargetMuscles) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func musclesOverlap(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), strings.ToLower(w)) {
				return true
			}
		}
	}
	return false
}

// Health carries today's joint readings on the 1-10 scale where low numbers
// mean pain. Scores of 6 or below trigger joint-friendly filtering.
type Health struct {
	Knee     int
	Shoulder int
}

const jointFriendlyThreshold = 6

// Tier names which fallback level produced a suggestion list.
type Tier int

const (
	TierPersonalized Tier = iota + 1
	TierSameEquipment
	TierSamePhase
)

func (t Tier) String() string {
	switch t {
	case TierPersonalized:
		return "personalized"
	case TierSameEquipment:
		return "same_equipment"
	case TierSamePhase:
		return "same_phase"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Suggest runs the fallback cascade for current and reports which tier
// produced the result. Tier one filters only on joint health, across all
// equipment: a joint-friendly filter applies for any joint scoring at or
// below the threshold, and healthy joints leave the criteria empty. Tier
// two drops the joint filters and keeps the current equipment; tier three
// keeps only the phase.
func Suggest(current workout.Exercise, health Health) ([]catalog.Template, Tier, error) {
	var personalized Criteria
	if health.Knee <= jointFriendlyThreshold {
		personalized.KneeFriendly = ptr.Ref(true)
	}
	if health.Shoulder <= jointFriendlyThreshold {
		personalized.ShoulderFriendly = ptr.Ref(true)
	}

	tiers := []struct {
		tier     Tier
		criteria Criteria
	}{
		{TierPersonalized, personalized},
		{TierSameEquipment, Criteria{Equipment: ptr.Ref(current.Equipment)}},
		{TierSamePhase, Criteria{}},
	}
	for _, t := range tiers {
		if found := Find(current, t.criteria); len(found) > 0 {
			return found, t.tier, nil
		}
	}
	return nil, 0, ErrNoEligible
}

// Mode selects how the substitution browser filters the catalog.
type Mode string

const (
	// ModeSmart runs the fallback cascade.
	ModeSmart Mode = "smart"
	// ModeSameEquipment lists same-phase movements on the same equipment,
	// with no fallback.
	ModeSameEquipment Mode = "same_equipment"
	// ModeAll lists the whole catalog regardless of phase, optionally
	// narrowed to one piece of equipment.
	ModeAll Mode = "all"
)

// ParseMode interprets a mode query parameter. Empty defaults to smart.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeSmart, nil
	case ModeSmart, ModeSameEquipment, ModeAll:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown substitution mode %q", s)
}

// Browse lists candidate replacements for current in the given mode. The
// equipment facet applies only in ModeAll. The returned tier is zero outside
// ModeSmart.
func Browse(current workout.Exercise, mode Mode, equipment *catalog.Equipment, health Health) ([]catalog.Template, Tier, error) {
	switch mode {
	case ModeSmart:
		return Suggest(current, health)
	case ModeSameEquipment:
		return Find(current, Criteria{Equipment: ptr.Ref(current.Equipment)}), 0, nil
	case ModeAll:
		var out []catalog.Template
		for _, t := range catalog.All() {
			if t.ID == current.TemplateID {
				continue
			}
			if equipment != nil && t.Equipment != *equipment {
				continue
			}
			out = append(out, t)
		}
		return out, 0, nil
	}
	return nil, 0, fmt.Errorf("unknown substitution mode %q", mode)
}

// Search narrows templates by a case-insensitive substring match on the name
// or any target muscle. A blank query returns the input unchanged.
func Search(templates []catalog.Template, query string) []catalog.Template {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return templates
	}
	var out []catalog.Template
	for _, t := range templates {
		if strings.Contains(strings.ToLower(t.Name), query) {
			out = append(out, t)
			continue
		}
		for _, m := range t.TargetMuscles {
			if strings.Contains(strings.ToLower(m), query) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
