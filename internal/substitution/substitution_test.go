package substitution_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/ptr"
	"github.com/stronghold-fit/stronghold/internal/substitution"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

// exerciseFromCatalog builds a minimal current exercise for a catalog ID.
func exerciseFromCatalog(t *testing.T, id string) workout.Exercise {
	t.Helper()
	tmpl, ok := catalog.ByID(id)
	if !ok {
		t.Fatalf("template %s not in catalog", id)
	}
	return substitution.Instantiate(tmpl, substitution.Overrides{})
}

func TestFind_ExcludesCurrentAndMatchesPhase(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "cable_chest_press")
	found := substitution.Find(current, substitution.Criteria{})

	if len(found) == 0 {
		t.Fatal("no substitutions found")
	}
	for _, tmpl := range found {
		if tmpl.ID == "cable_chest_press" {
			t.Error("current exercise offered as its own substitution")
		}
		if tmpl.Phase != catalog.PhaseStrength {
			t.Errorf("template %s has phase %q, want strength", tmpl.ID, tmpl.Phase)
		}
	}
}

func TestFind_FiltersByEquipmentAndFlags(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "barbell_squat")
	found := substitution.Find(current, substitution.Criteria{
		Equipment:    ptr.Ref(catalog.EquipmentBarbell),
		KneeFriendly: ptr.Ref(true),
	})

	if len(found) == 0 {
		t.Fatal("no substitutions found")
	}
	for _, tmpl := range found {
		if tmpl.Equipment != catalog.EquipmentBarbell {
			t.Errorf("template %s has equipment %q, want barbell", tmpl.ID, tmpl.Equipment)
		}
		if !tmpl.KneeFriendly {
			t.Errorf("template %s is not knee friendly", tmpl.ID)
		}
	}
}

func TestFind_MuscleOverlapIsSubstring(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "cable_chest_press")
	found := substitution.Find(current, substitution.Criteria{
		TargetMuscles: []string{"delts"},
	})

	if len(found) == 0 {
		t.Fatal("no substitutions found for delts")
	}
	for _, tmpl := range found {
		var hit bool
		for _, m := range tmpl.TargetMuscles {
			if strings.Contains(strings.ToLower(m), "delts") {
				hit = true
			}
		}
		if !hit {
			t.Errorf("template %s has no delts muscle: %v", tmpl.ID, tmpl.TargetMuscles)
		}
	}
}

func TestFind_KeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "band_row")
	found := substitution.Find(current, substitution.Criteria{})

	pos := make(map[string]int)
	for i, tmpl := range catalog.All() {
		pos[tmpl.ID] = i
	}
	for i := 1; i < len(found); i++ {
		if pos[found[i-1].ID] > pos[found[i].ID] {
			t.Fatalf("results out of catalog order: %s before %s", found[i-1].ID, found[i].ID)
		}
	}
}

func TestSuggest_PersonalizedTier(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "barbell_bench_press")
	found, tier, err := substitution.Suggest(current, substitution.Health{Knee: 4, Shoulder: 3})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if tier != substitution.TierPersonalized {
		t.Fatalf("got tier %v, want personalized", tier)
	}
	var offBarbell bool
	for _, tmpl := range found {
		if !tmpl.KneeFriendly || !tmpl.ShoulderFriendly {
			t.Errorf("template %s is not joint friendly", tmpl.ID)
		}
		if tmpl.Equipment != current.Equipment {
			offBarbell = true
		}
	}
	// The personalized tier searches every piece of equipment, not just
	// the one the current exercise uses.
	if !offBarbell {
		t.Error("suggestions stayed pinned to the barbell")
	}
}

func TestSuggest_SoreShoulderFindsBandPress(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "cable_chest_press")
	found, tier, err := substitution.Suggest(current, substitution.Health{Knee: 8, Shoulder: 4})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if tier != substitution.TierPersonalized {
		t.Fatalf("got tier %v, want personalized", tier)
	}

	ids := make(map[string]bool, len(found))
	for _, tmpl := range found {
		ids[tmpl.ID] = true
		if !tmpl.ShoulderFriendly {
			t.Errorf("template %s is not shoulder friendly", tmpl.ID)
		}
	}
	if !ids["band_chest_press"] {
		t.Error("band_chest_press missing despite matching the shoulder filter")
	}
	if ids["cable_shoulder_press"] {
		t.Error("shoulder-unfriendly cable_shoulder_press offered")
	}
}

func TestSuggest_HealthyJointsSkipFlagFilters(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "barbell_bench_press")
	found, tier, err := substitution.Suggest(current, substitution.Health{Knee: 9, Shoulder: 9})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if tier != substitution.TierPersonalized {
		t.Fatalf("got tier %v, want personalized", tier)
	}

	// With healthy joints the criteria are empty, so every strength peer is
	// eligible whatever its flags or equipment.
	if want := substitution.Find(current, substitution.Criteria{}); len(found) != len(want) {
		t.Errorf("got %d templates, want all %d phase peers", len(found), len(want))
	}
	var hasSquat bool
	for _, tmpl := range found {
		if tmpl.ID == "barbell_squat" {
			hasSquat = true
		}
	}
	if !hasSquat {
		t.Error("barbell_squat missing from unfiltered suggestions")
	}
}

func TestSuggest_SoreJointsCrossEquipment(t *testing.T) {
	t.Parallel()

	// Easy rowing is the only rowing machine warmup, but the personalized
	// tier still matches the joint-friendly band warmups.
	current := exerciseFromCatalog(t, "easy_rowing")
	found, tier, err := substitution.Suggest(current, substitution.Health{Knee: 2, Shoulder: 2})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if tier != substitution.TierPersonalized {
		t.Fatalf("got tier %v, want personalized", tier)
	}
	ids := make(map[string]bool, len(found))
	for _, tmpl := range found {
		ids[tmpl.ID] = true
		if tmpl.Phase != catalog.PhaseWarmup {
			t.Errorf("template %s has phase %q, want warmup", tmpl.ID, tmpl.Phase)
		}
	}
	if !ids["band_pull_apart"] || !ids["band_ytwl"] {
		t.Errorf("band warmups missing from suggestions: %v", ids)
	}
}

func TestBrowse_AllModeIgnoresPhase(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "cable_chest_press")
	found, tier, err := substitution.Browse(current, substitution.ModeAll, nil, substitution.Health{Knee: 10, Shoulder: 10})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if tier != 0 {
		t.Errorf("got tier %v, want 0 outside smart mode", tier)
	}
	if want := len(catalog.All()) - 1; len(found) != want {
		t.Errorf("got %d templates, want %d (catalog minus current)", len(found), want)
	}

	equipment := catalog.EquipmentDumbbells
	found, _, err = substitution.Browse(current, substitution.ModeAll, &equipment, substitution.Health{})
	if err != nil {
		t.Fatalf("browse with facet: %v", err)
	}
	for _, tmpl := range found {
		if tmpl.Equipment != catalog.EquipmentDumbbells {
			t.Errorf("template %s has equipment %q, want dumbbells", tmpl.ID, tmpl.Equipment)
		}
	}
}

func TestBrowse_UnknownMode(t *testing.T) {
	t.Parallel()

	current := exerciseFromCatalog(t, "cable_chest_press")
	if _, _, err := substitution.Browse(current, "bogus", nil, substitution.Health{}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := substitution.ParseMode("")
	if err != nil || mode != substitution.ModeSmart {
		t.Errorf("got (%v, %v), want smart default", mode, err)
	}
	if _, err := substitution.ParseMode("suggested"); err == nil {
		t.Error("expected error for unknown mode string")
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	all := catalog.All()

	byName := substitution.Search(all, "goblet")
	if len(byName) != 1 || byName[0].ID != "dumbbell_goblet_squat" {
		t.Errorf("search by name: got %v", byName)
	}

	byMuscle := substitution.Search(all, "HAMSTRING")
	if len(byMuscle) == 0 {
		t.Fatal("search by muscle found nothing")
	}
	for _, tmpl := range byMuscle {
		var hit bool
		for _, m := range tmpl.TargetMuscles {
			if strings.Contains(strings.ToLower(m), "hamstring") {
				hit = true
			}
		}
		if !hit {
			t.Errorf("template %s does not target hamstrings", tmpl.ID)
		}
	}

	if got := substitution.Search(all, "  "); len(got) != len(all) {
		t.Errorf("blank query narrowed results: %d != %d", len(got), len(all))
	}
}

func TestSuggest_NoEligible(t *testing.T) {
	t.Parallel()

	// A fabricated phase no template carries exhausts every tier.
	current := workout.Exercise{
		InstanceID: "ghost_1",
		TemplateID: "ghost",
		Equipment:  "trapeze",
		Phase:      "flight",
	}
	_, _, err := substitution.Suggest(current, substitution.Health{Knee: 10, Shoulder: 10})
	if !errors.Is(err, substitution.ErrNoEligible) {
		t.Errorf("got %v, want ErrNoEligible", err)
	}
}

func TestInstantiate(t *testing.T) {
	t.Parallel()

	tmpl, ok := catalog.ByID("band_chest_press")
	if !ok {
		t.Fatal("band_chest_press not in catalog")
	}

	e := substitution.Instantiate(tmpl, substitution.Overrides{})
	if !strings.HasPrefix(e.InstanceID, "band_chest_press_") {
		t.Errorf("instance ID %q missing template prefix", e.InstanceID)
	}
	if e.TemplateID != "band_chest_press" {
		t.Errorf("got template ID %q", e.TemplateID)
	}
	if len(e.Sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(e.Sets))
	}
	for i, set := range e.Sets {
		if set.Number != i+1 {
			t.Errorf("set %d numbered %d", i, set.Number)
		}
		if set.TargetReps != 12 || set.RestSeconds != 60 || set.Completed {
			t.Errorf("set %d has unexpected defaults: %+v", i, set)
		}
	}
	if e.DurationMinutes != 0 {
		t.Errorf("rep-based exercise got duration %d", e.DurationMinutes)
	}

	other := substitution.Instantiate(tmpl, substitution.Overrides{})
	if other.InstanceID == e.InstanceID {
		t.Error("instance IDs are not unique")
	}
}

func TestInstantiate_TimedAndOverrides(t *testing.T) {
	t.Parallel()

	rowing, ok := catalog.ByID("easy_rowing")
	if !ok {
		t.Fatal("easy_rowing not in catalog")
	}
	e := substitution.Instantiate(rowing, substitution.Overrides{})
	if e.DurationMinutes != 20 {
		t.Errorf("got duration %d, want 20", e.DurationMinutes)
	}
	if !e.Timed() {
		t.Error("rowing instance should be timed")
	}

	press, ok := catalog.ByID("dumbbell_chest_press")
	if !ok {
		t.Fatal("dumbbell_chest_press not in catalog")
	}
	e = substitution.Instantiate(press, substitution.Overrides{
		Sets:   4,
		Reps:   ptr.Ref(8),
		Weight: ptr.Ref(22.5),
	})
	if len(e.Sets) != 4 {
		t.Fatalf("got %d sets, want 4", len(e.Sets))
	}
	if e.Sets[0].TargetReps != 8 {
		t.Errorf("got target reps %d, want 8", e.Sets[0].TargetReps)
	}
	if e.Sets[0].TargetWeight == nil || *e.Sets[0].TargetWeight != 22.5 {
		t.Errorf("got target weight %v, want 22.5", e.Sets[0].TargetWeight)
	}
}
