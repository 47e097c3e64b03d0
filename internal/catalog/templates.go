package catalog

//nolint:gochecknoglobals // the template library is immutable reference data.
var templates = []Template{
	// Rowing machine
	{
		ID:          "easy_rowing",
		Name:        "Easy Rowing",
		Equipment:   EquipmentRowingMachine,
		Phase:       PhaseWarmup,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Legs push first, then lean back, then pull arms",
			"Recovery is slow and controlled",
			"Keep core engaged",
			"Breathing: exhale on drive, inhale on recovery",
		},
		TargetMuscles:    []string{"full body", "cardiovascular"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "steady_rowing",
		Name:        "Steady State Rowing",
		Equipment:   EquipmentRowingMachine,
		Phase:       PhaseCardio,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Maintain consistent pace",
			"Target 20-24 SPM for steady state",
			"Focus on form over speed",
			"Keep shoulders relaxed",
		},
		TargetMuscles:    []string{"full body", "cardiovascular"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "contemplative_rowing",
		Name:        "Contemplative Rowing",
		Equipment:   EquipmentRowingMachine,
		Phase:       PhaseCardio,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Slow, meditative pace",
			"Focus on breath and rhythm",
			"Use for stress relief",
			"HR under 130 bpm",
		},
		Modifications:    "Excellent for anxiety relief - proven to reduce stress 60%",
		TargetMuscles:    []string{"full body", "mental clarity"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Cable machine
	{
		ID:          "cable_chest_press",
		Name:        "Cable Chest Press",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Elbows at 45-degree angle to body",
			"Press straight forward",
			"Controlled return",
			"Engage core throughout",
		},
		TargetMuscles:    []string{"chest", "triceps", "shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "cable_row",
		Name:        "Cable Row",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Pull elbows back, not just hands",
			"Squeeze shoulder blades together",
			"Keep core tight",
			"Slight lean back is okay",
		},
		TargetMuscles:    []string{"back", "biceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "cable_shoulder_press",
		Name:        "Cable Shoulder Press",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Start at shoulder height",
			"Press straight up",
			"Don't arch back",
			"Control the descent",
		},
		Modifications:    "Skip if shoulder pain > 6/10",
		TargetMuscles:    []string{"shoulders", "triceps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: false,
	},
	{
		ID:          "cable_tricep_extension",
		Name:        "Cable Tricep Extension",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Keep elbows fixed by sides",
			"Extend arms fully",
			"Squeeze at bottom",
			"Slow and controlled",
		},
		TargetMuscles:    []string{"triceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "cable_lat_pulldown",
		Name:        "Cable Lat Pulldown",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Pull bar to upper chest",
			"Lean back slightly",
			"Lead with elbows",
			"Squeeze lats at bottom",
		},
		TargetMuscles:    []string{"back", "biceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Dual cable movements on the power cage
	{
		ID:          "dual_cable_chest_press",
		Name:        "Dual Cable Chest Press",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Stand between cables, handles at chest height",
			"Step forward into split stance",
			"Press both handles forward and together",
			"Squeeze chest at peak contraction",
			"Control the return - feel the stretch",
		},
		Modifications:    "Superior to single cable - allows natural convergence like dumbbell press",
		TargetMuscles:    []string{"chest", "triceps", "front delts"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_fly",
		Name:        "Dual Cable Chest Fly",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Cables at shoulder height behind you",
			"Slight bend in elbows (locked position)",
			"Bring handles together in front of chest",
			"Think: hugging a tree",
			"Constant tension throughout movement",
		},
		Modifications:    "Excellent chest isolation. Lower cables for upper chest emphasis.",
		TargetMuscles:    []string{"chest", "front delts"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_row",
		Name:        "Dual Cable Seated Row",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Sit facing cables with handles",
			"Pull both handles to sides of torso",
			"Keep elbows close to body",
			"Squeeze shoulder blades together",
			"Slight lean back at end (10-15 degrees)",
		},
		Modifications:    "Independent cables allow natural pulling path for each arm",
		TargetMuscles:    []string{"lats", "rhomboids", "traps", "biceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_shoulder_press",
		Name:        "Dual Cable Shoulder Press",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Cables low, handles at shoulder height",
			"Press both handles overhead",
			"Keep core tight - no lower back arch",
			"Lower with control to shoulders",
			"Can be done seated or standing",
		},
		Modifications:    "Standing version adds core stability work. Seated is more shoulder-focused.",
		TargetMuscles:    []string{"shoulders", "triceps", "core"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_bicep_curl",
		Name:        "Dual Cable Bicep Curl",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Cables low, stand in center",
			"Curl both handles simultaneously",
			"Keep elbows pinned at sides",
			"Squeeze biceps at top",
			"Constant tension - no rest at bottom",
		},
		Modifications:    "Can also do alternating for focus. Cables provide constant tension vs dumbbells.",
		TargetMuscles:    []string{"biceps", "forearms"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_tricep_extension",
		Name:        "Dual Cable Overhead Tricep Extension",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Cables high, face away from machine",
			"Handles behind head, elbows up",
			"Extend both arms overhead",
			"Keep elbows stationary",
			"Feel stretch in triceps at bottom",
		},
		Modifications:    "Can also do facing machine with cables low for pushdown variation",
		TargetMuscles:    []string{"triceps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_crossover",
		Name:        "Dual Cable Crossover",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Cables high, handles in each hand",
			"Step forward, slight forward lean",
			"Bring handles down and across body",
			"Cross at belly button level",
			"Peak contraction squeeze",
		},
		Modifications:    "High-to-low targets lower chest. Low-to-high targets upper chest.",
		TargetMuscles:    []string{"chest", "front delts"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dual_cable_lateral_raise",
		Name:        "Dual Cable Lateral Raise",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Stand in center, cables crossed low",
			"Right hand holds left cable, left holds right",
			"Raise both arms out to sides",
			"Lead with elbows, slight bend",
			"Stop at shoulder height",
		},
		Modifications:    "Cables provide constant tension throughout range - superior to dumbbells for delts",
		TargetMuscles:    []string{"side delts", "traps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Resistance bands
	{
		ID:          "band_chest_press",
		Name:        "Band Chest Press",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Anchor band at chest height",
			"Step forward for tension",
			"Press forward and together",
			"Control the return",
		},
		TargetMuscles:    []string{"chest", "triceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_row",
		Name:        "Band Row",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Anchor band at waist height",
			"Pull elbows back",
			"Squeeze shoulder blades",
			"Can sit on stability ball for core work",
		},
		TargetMuscles:    []string{"back", "biceps", "core"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_shoulder_press",
		Name:        "Band Shoulder Press",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Stand on band",
			"Hands at shoulder height",
			"Press straight up",
			"More joint-friendly than cables",
		},
		Modifications:    "Safer alternative if shoulder issues",
		TargetMuscles:    []string{"shoulders", "triceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_lateral_walk",
		Name:        "Band Lateral Walk",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Band around thighs",
			"Quarter squat position",
			"Step sideways, maintain tension",
			"Excellent for knee stability",
		},
		Modifications:    "GREAT for knee health - do often",
		TargetMuscles:    []string{"glutes", "hip stabilizers"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_bicep_curl",
		Name:        "Band Bicep Curl",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Stand on band",
			"Keep elbows by sides",
			"Curl up slowly",
			"Control the descent",
		},
		TargetMuscles:    []string{"biceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_lateral_raise",
		Name:        "Band Lateral Raise",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Stand on band",
			"Raise arms to sides",
			"Stop at shoulder height",
			"Light resistance, high control",
		},
		TargetMuscles:    []string{"shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Stability ball
	{
		ID:          "ball_wall_squat",
		Name:        "Stability Ball Wall Squat",
		Equipment:   EquipmentStabilityBall,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Ball between back and wall",
			"Quarter squat only (knee protection)",
			"Push through heels",
			"Control up and down",
		},
		Modifications:    "Knee-friendly leg work",
		TargetMuscles:    []string{"quads", "glutes"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "ball_crunch",
		Name:        "Stability Ball Crunch",
		Equipment:   EquipmentStabilityBall,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        20,
		RestSeconds: 45,
		FormCues: []string{
			"Lie back on ball",
			"Feet flat on floor",
			"Crunch up, don't sit up",
			"Control the movement",
		},
		TargetMuscles:    []string{"abs"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "ball_plank",
		Name:        "Stability Ball Plank",
		Equipment:   EquipmentStabilityBall,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        0,
		RestSeconds: 60,
		FormCues: []string{
			"Forearms on ball",
			"Body straight from head to heels",
			"Engage core",
			"Start with 20-30 seconds",
			"Keep shoulders packed and stable",
		},
		Modifications:    "Drop to knees if shoulder feels unstable",
		TargetMuscles:    []string{"core", "shoulders"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "glute_bridge",
		Name:        "Glute Bridge",
		Equipment:   EquipmentStabilityBall,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Lie on back, feet on ball (advanced) or floor (easier)",
			"Lift hips up",
			"Squeeze glutes at top",
			"Lower slowly",
		},
		Modifications:    "Excellent for knee health",
		TargetMuscles:    []string{"glutes", "hamstrings"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "ball_pass",
		Name:        "Stability Ball Pass",
		Equipment:   EquipmentStabilityBall,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Lie on back",
			"Pass ball from hands to feet",
			"Keep ball controlled",
			"Lower back stays on floor",
		},
		TargetMuscles:    []string{"abs", "hip flexors"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Bodyweight
	{
		ID:          "push_up_modified",
		Name:        "Modified Push-Up",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Knees on ground",
			"Hands slightly wider than shoulders",
			"Lower chest to ground",
			"Push back up",
		},
		TargetMuscles:    []string{"chest", "triceps", "shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: false,
	},
	{
		ID:          "dead_bug",
		Name:        "Dead Bug",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 45,
		FormCues: []string{
			"Lie on back",
			"Opposite arm and leg extend",
			"Keep low back pressed down",
			"Slow and controlled",
		},
		TargetMuscles:    []string{"abs", "core stability"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "plank_on_knees",
		Name:        "Plank (on knees)",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        0,
		RestSeconds: 60,
		FormCues: []string{
			"Forearms on ground",
			"Knees on ground",
			"Body straight from knees to head",
			"Start with 20-30 seconds",
		},
		TargetMuscles:    []string{"core"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Barbell
	{
		ID:          "barbell_rdl",
		Name:        "Barbell Romanian Deadlift (RDL)",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 120,
		FormCues: []string{
			"Hinge at hips, not lower back",
			"Keep bar close to shins",
			"Slight knee bend throughout",
			"Feel stretch in hamstrings",
			"Push hips forward to stand",
		},
		Modifications:    "Start with light weight (just the bar). Excellent for posterior chain.",
		TargetMuscles:    []string{"hamstrings", "glutes", "lower back"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_rack_pull",
		Name:        "Barbell Rack Pull",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        8,
		RestSeconds: 120,
		FormCues: []string{
			"Set bar at knee height on rack",
			"Pull bar up by standing tall",
			"Squeeze glutes at top",
			"Control the descent",
		},
		Modifications:    "Knee-friendly deadlift alternative. Less range of motion.",
		TargetMuscles:    []string{"back", "glutes", "traps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_bent_row",
		Name:        "Barbell Bent-Over Row",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Hinge forward 45 degrees",
			"Pull bar to lower chest",
			"Elbows close to body",
			"Squeeze shoulder blades together",
		},
		TargetMuscles:    []string{"back", "lats", "biceps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_hip_thrust",
		Name:        "Barbell Hip Thrust",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Upper back on bench",
			"Bar across hips (use pad)",
			"Drive through heels",
			"Squeeze glutes hard at top",
			"Avoid arching lower back",
		},
		Modifications:    "THE best glute builder. Critical for knee health and mobility.",
		TargetMuscles:    []string{"glutes", "hamstrings"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_floor_press",
		Name:        "Barbell Floor Press",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Lie on floor, knees bent",
			"Lower bar until elbows touch floor",
			"Press back up explosively",
			"Reduced range = shoulder-friendly",
		},
		Modifications:    "Safer than bench press for shoulder issues",
		TargetMuscles:    []string{"chest", "triceps", "shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_bench_press",
		Name:        "Barbell Bench Press",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        8,
		RestSeconds: 120,
		FormCues: []string{
			"Retract shoulder blades, arch back slightly",
			"Lower bar to mid-chest",
			"Elbows at 45-degree angle",
			"Press straight up",
			"Use spotter or safety bars in power cage",
		},
		Modifications:    "Use safety bars at appropriate height. Switch to floor press if shoulder hurts.",
		TargetMuscles:    []string{"chest", "triceps", "shoulders"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: false,
	},
	{
		ID:          "barbell_squat",
		Name:        "Barbell Back Squat",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        8,
		RestSeconds: 120,
		FormCues: []string{
			"Bar on upper back (high bar) or rear delts (low bar)",
			"Squat to comfortable depth",
			"Knees track over toes",
			"Drive through heels",
			"Use safety bars in power cage",
		},
		Modifications:    "Quarter or half squats if knees hurt. Box squats are safer. Goblet squat is easiest alternative.",
		TargetMuscles:    []string{"quads", "glutes", "hamstrings", "core"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     false,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_box_squat",
		Name:        "Barbell Box Squat",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Squat back to box or bench",
			"Pause briefly on box",
			"Stand back up",
			"Teaches proper squat pattern",
			"Safer for knees - controls depth",
		},
		Modifications:    "THE most knee-friendly barbell squat. Height of box determines depth.",
		TargetMuscles:    []string{"quads", "glutes", "hamstrings"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_overhead_press",
		Name:        "Barbell Overhead Press",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        8,
		RestSeconds: 90,
		FormCues: []string{
			"Start at shoulder height",
			"Press straight overhead",
			"Lock out at top",
			"Lower with control",
			"Keep core braced",
		},
		Modifications:    "Skip if shoulder pain. Use safety bars. Try seated variation.",
		TargetMuscles:    []string{"shoulders", "triceps", "upper chest"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: false,
	},
	{
		ID:          "barbell_front_squat",
		Name:        "Barbell Front Squat",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        8,
		RestSeconds: 120,
		FormCues: []string{
			"Bar rests on front delts",
			"Elbows high",
			"Squat keeping torso upright",
			"More quad emphasis than back squat",
			"Easier on lower back",
		},
		Modifications:    "Harder to learn but easier on back. Use safety bars.",
		TargetMuscles:    []string{"quads", "core", "upper back"},
		Difficulty:       DifficultyAdvanced,
		KneeFriendly:     false,
		ShoulderFriendly: false,
	},
	{
		ID:          "barbell_inverted_row",
		Name:        "Inverted Row (Bar in Rack)",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Set bar at waist height in rack",
			"Hang underneath, body straight",
			"Pull chest to bar",
			"Excellent bodyweight back exercise",
			"Lower = harder, higher = easier",
		},
		Modifications:    "Adjust bar height for difficulty. Great for building pull-up strength.",
		TargetMuscles:    []string{"back", "biceps", "core"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_pin_press",
		Name:        "Pin Press (from safety bars)",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        6,
		RestSeconds: 120,
		FormCues: []string{
			"Set pins at chest height",
			"Bar rests on pins",
			"Press from dead stop",
			"Builds explosive strength",
			"Very shoulder-safe - no eccentric",
		},
		Modifications:    "Excellent for shoulder issues - removes stretch reflex",
		TargetMuscles:    []string{"chest", "triceps", "shoulders"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "barbell_pin_squat",
		Name:        "Pin Squat (from safety bars)",
		Equipment:   EquipmentBarbell,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        6,
		RestSeconds: 120,
		FormCues: []string{
			"Set pins at desired squat depth",
			"Squat down to pins",
			"Pause, then drive up",
			"Builds bottom position strength",
			"Very safe - can bail anytime",
		},
		Modifications:    "Perfect for working on weak points. Pin height controls depth for knee safety.",
		TargetMuscles:    []string{"quads", "glutes"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// EZ bar
	{
		ID:          "ez_bar_curl",
		Name:        "EZ Bar Bicep Curl",
		Equipment:   EquipmentEZBar,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Grip angles reduce wrist strain",
			"Keep elbows stationary",
			"Curl to shoulders",
			"Lower with control",
		},
		TargetMuscles:    []string{"biceps", "forearms"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "ez_bar_skull_crusher",
		Name:        "EZ Bar Skull Crusher",
		Equipment:   EquipmentEZBar,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Lie on bench or floor",
			"Lower bar to forehead",
			"Keep elbows pointed up",
			"Extend arms fully",
			"EZ bar is easier on elbows than straight bar",
		},
		TargetMuscles:    []string{"triceps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "ez_bar_upright_row",
		Name:        "EZ Bar Upright Row",
		Equipment:   EquipmentEZBar,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Narrow grip on angled part",
			"Pull bar to upper chest",
			"Elbows lead upward",
			"Stop at chest height (not chin)",
		},
		Modifications:    "Only do if shoulder feels good. Skip if shoulder pain > 5/10",
		TargetMuscles:    []string{"shoulders", "traps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: false,
	},
	{
		ID:          "ez_bar_preacher_curl",
		Name:        "EZ Bar Preacher Curl",
		Equipment:   EquipmentEZBar,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Rest arms on stability ball or bench",
			"Strict form, no momentum",
			"Squeeze biceps at top",
			"Slow negative",
		},
		TargetMuscles:    []string{"biceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Dumbbells
	{
		ID:          "dumbbell_goblet_squat",
		Name:        "Goblet Squat",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Hold dumbbell at chest",
			"Squat as deep as comfortable",
			"Chest up, weight in heels",
			"Elbows inside knees at bottom",
		},
		Modifications:    "Quarter or half squats if knees hurt. Most knee-friendly squat variation.",
		TargetMuscles:    []string{"quads", "glutes", "core"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dumbbell_single_arm_row",
		Name:        "Single-Arm Dumbbell Row",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Hand and knee on bench",
			"Pull dumbbell to hip",
			"Keep back flat",
			"Squeeze shoulder blade back",
		},
		TargetMuscles:    []string{"back", "lats", "biceps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dumbbell_chest_press",
		Name:        "Dumbbell Chest Press",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Lie on bench or floor",
			"Lower dumbbells to chest level",
			"Elbows at 45-degree angle",
			"Press up and slightly together",
		},
		Modifications:    "Floor press version if no bench. More shoulder-friendly than barbell.",
		TargetMuscles:    []string{"chest", "triceps", "shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dumbbell_shoulder_press",
		Name:        "Dumbbell Shoulder Press",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        10,
		RestSeconds: 90,
		FormCues: []string{
			"Seated or standing",
			"Start at shoulder height",
			"Press straight overhead",
			"Don't let dumbbells drift forward",
		},
		Modifications:    "Skip if shoulder pain. Use bands instead.",
		TargetMuscles:    []string{"shoulders", "triceps"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: false,
	},
	{
		ID:          "dumbbell_rdl",
		Name:        "Dumbbell Romanian Deadlift",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        12,
		RestSeconds: 90,
		FormCues: []string{
			"Dumbbells hang in front of thighs",
			"Hinge at hips, push butt back",
			"Lower dumbbells to mid-shin",
			"Feel hamstring stretch",
			"Stand by squeezing glutes",
		},
		Modifications:    "Easier to learn than barbell version",
		TargetMuscles:    []string{"hamstrings", "glutes", "lower back"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dumbbell_split_squat",
		Name:        "Dumbbell Split Squat",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 60,
		FormCues: []string{
			"Dumbbells at sides",
			"One foot forward, one back",
			"Lower back knee toward floor",
			"Front knee stays over ankle",
			"Excellent for balance and fall prevention",
		},
		Modifications:    "Hold wall for balance. Critical exercise for 50+ mobility.",
		TargetMuscles:    []string{"quads", "glutes", "balance"},
		Difficulty:       DifficultyIntermediate,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dumbbell_lateral_raise",
		Name:        "Dumbbell Lateral Raise",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        15,
		RestSeconds: 45,
		FormCues: []string{
			"Light weight, strict form",
			"Raise to shoulder height",
			"Lead with elbows, not hands",
			"Slight bend in elbows",
		},
		TargetMuscles:    []string{"shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "dumbbell_hammer_curl",
		Name:        "Dumbbell Hammer Curl",
		Equipment:   EquipmentDumbbells,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        12,
		RestSeconds: 60,
		FormCues: []string{
			"Palms facing each other (neutral grip)",
			"Curl dumbbells to shoulders",
			"Keep elbows stationary",
			"Easier on wrists than supinated curls",
		},
		TargetMuscles:    []string{"biceps", "forearms", "brachialis"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Rotational core
	{
		ID:          "cable_woodchop",
		Name:        "Cable Woodchop",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 45,
		FormCues: []string{
			"Cable high, pull down and across",
			"Rotate through torso",
			"Keep arms extended",
			"Control the return",
		},
		Modifications:    "Critical for rotational strength and core stability",
		TargetMuscles:    []string{"obliques", "core rotation"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "cable_pallof_press",
		Name:        "Pallof Press",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        10,
		RestSeconds: 45,
		FormCues: []string{
			"Cable at chest height",
			"Stand perpendicular to cable",
			"Press straight out",
			"Resist rotation",
			"Hold for 2 seconds",
		},
		Modifications:    "THE best anti-rotation core exercise",
		TargetMuscles:    []string{"core", "obliques", "anti-rotation"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_rotation",
		Name:        "Standing Band Rotation",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseStrength,
		Sets:        2,
		Reps:        12,
		RestSeconds: 45,
		FormCues: []string{
			"Band at chest height",
			"Rotate away from anchor",
			"Keep hips facing forward",
			"Arms extended",
		},
		TargetMuscles:    []string{"obliques", "core rotation"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Scapular stability
	{
		ID:          "cable_face_pull",
		Name:        "Cable Face Pull",
		Equipment:   EquipmentCables,
		Phase:       PhaseStrength,
		Sets:        3,
		Reps:        15,
		RestSeconds: 60,
		FormCues: []string{
			"Cable at face height",
			"Pull rope to face",
			"Elbows high and wide",
			"Squeeze shoulder blades together",
			"CRITICAL for shoulder health",
		},
		Modifications:    "Do this exercise often! Counteracts rowing/desk posture.",
		TargetMuscles:    []string{"rear delts", "rhomboids", "traps"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_pull_apart",
		Name:        "Band Pull-Apart",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseWarmup,
		Sets:        2,
		Reps:        20,
		RestSeconds: 30,
		FormCues: []string{
			"Hold band at chest height",
			"Pull band apart to chest",
			"Squeeze shoulder blades",
			"Slow and controlled",
		},
		Modifications:    "Excellent warmup for shoulders. Do before rowing.",
		TargetMuscles:    []string{"rear delts", "rhomboids", "scapular stability"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "band_ytwl",
		Name:        "Band YTWL",
		Equipment:   EquipmentResistanceBands,
		Phase:       PhaseWarmup,
		Sets:        1,
		Reps:        10,
		RestSeconds: 30,
		FormCues: []string{
			"Bend forward 45 degrees",
			"Form Y, T, W, L shapes with arms",
			"Light band, high reps",
			"Focus on squeezing shoulder blades",
		},
		Modifications:    "Physical therapy exercise for shoulder stability",
		TargetMuscles:    []string{"shoulders", "scapular stabilizers", "rotator cuff"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},

	// Cooldown stretches
	{
		ID:          "hip_flexor_stretch",
		Name:        "Kneeling Hip Flexor Stretch",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseCooldown,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Kneel on one knee",
			"Push hips forward",
			"Feel stretch in front of hip",
			"Hold 30-60 seconds each side",
		},
		Modifications:    "Critical for desk workers and people who sit. Hold 60 seconds.",
		TargetMuscles:    []string{"hip flexors"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "hamstring_stretch",
		Name:        "Standing Hamstring Stretch",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseCooldown,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Place heel on low bench or step",
			"Hinge forward at hips",
			"Keep back straight",
			"Hold 30-60 seconds each leg",
		},
		TargetMuscles:    []string{"hamstrings"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "chest_doorway_stretch",
		Name:        "Doorway Chest Stretch",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseCooldown,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Arm on doorframe at shoulder height",
			"Step forward, lean into stretch",
			"Feel stretch across chest",
			"Hold 30-60 seconds each side",
		},
		Modifications:    "Counteracts rounded shoulders from desk work",
		TargetMuscles:    []string{"chest", "front shoulders"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "shoulder_cross_body_stretch",
		Name:        "Cross-Body Shoulder Stretch",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseCooldown,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Pull arm across chest",
			"Use other arm to pull gently",
			"Keep shoulders down",
			"Hold 30 seconds each side",
		},
		TargetMuscles:    []string{"shoulders", "rear delts"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "cat_cow_stretch",
		Name:        "Cat-Cow Stretch",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseCooldown,
		Sets:        1,
		Reps:        10,
		RestSeconds: 0,
		FormCues: []string{
			"On hands and knees",
			"Arch back (cow), then round back (cat)",
			"Slow, flowing movement",
			"10 repetitions",
		},
		Modifications:    "Excellent for spine mobility",
		TargetMuscles:    []string{"spine", "core"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
	{
		ID:          "child_pose",
		Name:        "Child's Pose",
		Equipment:   EquipmentBodyweight,
		Phase:       PhaseCooldown,
		Sets:        1,
		Reps:        0,
		RestSeconds: 0,
		FormCues: []string{
			"Kneel, sit back on heels",
			"Reach arms forward on ground",
			"Rest forehead on floor",
			"Hold 60 seconds, breathe deeply",
		},
		Modifications:    "Relaxing stretch for entire back and shoulders",
		TargetMuscles:    []string{"back", "shoulders", "hips"},
		Difficulty:       DifficultyBeginner,
		KneeFriendly:     true,
		ShoulderFriendly: true,
	},
}
