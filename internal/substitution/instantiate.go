package substitution

import (
	"strings"

	"github.com/google/uuid"
	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

// defaultTimedMinutes is applied to duration-based movements when the
// template carries no rep target.
const defaultTimedMinutes = 20

// Overrides adjusts the template defaults when instantiating. Zero or nil
// fields keep the template's values.
type Overrides struct {
	Sets   int
	Reps   *int
	Weight *float64
}

// Instantiate builds a workout exercise from a catalog template. The
// instance ID is the template ID plus a unique suffix so the same movement
// can appear more than once in a workout.
func Instantiate(t catalog.Template, o Overrides) workout.Exercise {
	numSets := t.Sets
	if o.Sets > 0 {
		numSets = o.Sets
	}
	reps := t.Reps
	if o.Reps != nil {
		reps = *o.Reps
	}

	sets := make([]workout.Set, numSets)
	for i := range sets {
		sets[i] = workout.Set{
			Number:       i + 1,
			TargetReps:   reps,
			TargetWeight: o.Weight,
			RestSeconds:  t.RestSeconds,
			Completed:    false,
		}
	}

	e := workout.Exercise{
		InstanceID:    t.ID + "_" + instanceSuffix(),
		TemplateID:    t.ID,
		Name:          t.Name,
		Equipment:     t.Equipment,
		Phase:         t.Phase,
		Sets:          sets,
		FormCues:      t.FormCues,
		Modifications: t.Modifications,
		TargetMuscles: t.TargetMuscles,
	}
	if reps == 0 {
		e.DurationMinutes = defaultTimedMinutes
	}
	return e
}

func instanceSuffix() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
