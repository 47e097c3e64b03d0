// Package catalog holds the built-in exercise template library for the
// athlete's home gym. Templates are the raw material for workout drafting and
// substitution; they carry per-movement defaults and joint-safety flags.
package catalog

// Equipment identifies a piece of equipment in the home gym.
type Equipment string

const (
	EquipmentRowingMachine   Equipment = "rowing_machine"
	EquipmentResistanceBands Equipment = "resistance_bands"
	EquipmentCables          Equipment = "cables"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentEZBar           Equipment = "ez_bar"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentStabilityBall   Equipment = "stability_ball"
	EquipmentBodyweight      Equipment = "bodyweight"
)

// Phase is the workout phase a template belongs to.
type Phase string

const (
	PhaseWarmup   Phase = "warmup"
	PhaseStrength Phase = "strength"
	PhaseCardio   Phase = "cardio"
	PhaseCooldown Phase = "cooldown"
)

// Difficulty grades how demanding a template is to perform with good form.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Template describes one movement with its defaults.
//
// Reps == 0 marks a duration-based movement (rowing pieces, planks, holds).
type Template struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Equipment        Equipment  `json:"equipment"`
	Phase            Phase      `json:"phase"`
	Sets             int        `json:"sets"`
	Reps             int        `json:"reps"`
	RestSeconds      int        `json:"restSeconds"`
	FormCues         []string   `json:"formCues,omitempty"`
	Modifications    string     `json:"modifications,omitempty"`
	TargetMuscles    []string   `json:"targetMuscles,omitempty"`
	Difficulty       Difficulty `json:"difficulty"`
	KneeFriendly     bool       `json:"kneeFriendly"`
	ShoulderFriendly bool       `json:"shoulderFriendly"`
}

// Timed reports whether the template is duration-based rather than rep-based.
func (t Template) Timed() bool {
	return t.Reps == 0
}

// AvailableEquipment lists the equipment in the athlete's gym. The order is
// the order equipment is presented in prompts and browse facets.
func AvailableEquipment() []Equipment {
	return []Equipment{
		EquipmentRowingMachine,
		EquipmentResistanceBands,
		EquipmentCables,
		EquipmentBarbell,
		EquipmentEZBar,
		EquipmentDumbbells,
		EquipmentStabilityBall,
		EquipmentBodyweight,
	}
}

// All returns every template in catalog order. Callers must not mutate the
// returned slice or the templates' slices.
func All() []Template {
	return templates
}

// ByID looks up a template by its identifier.
func ByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ByName looks up a template by its display name.
func ByName(name string) (Template, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// ByEquipment returns the templates for one piece of equipment in catalog order.
func ByEquipment(equipment Equipment) []Template {
	var out []Template
	for _, t := range templates {
		if t.Equipment == equipment {
			out = append(out, t)
		}
	}
	return out
}

// ByPhase returns the templates for one workout phase in catalog order.
func ByPhase(phase Phase) []Template {
	var out []Template
	for _, t := range templates {
		if t.Phase == phase {
			out = append(out, t)
		}
	}
	return out
}

// KneeFriendly returns every template flagged safe for sore knees.
func KneeFriendly() []Template {
	var out []Template
	for _, t := range templates {
		if t.KneeFriendly {
			out = append(out, t)
		}
	}
	return out
}

// ShoulderFriendly returns every template flagged safe for sore shoulders.
func ShoulderFriendly() []Template {
	var out []Template
	for _, t := range templates {
		if t.ShoulderFriendly {
			out = append(out, t)
		}
	}
	return out
}
