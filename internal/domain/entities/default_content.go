package entities

// DefaultMilestones is the milestone table every new record starts with,
// ordered by threshold.
var DefaultMilestones = []Milestone{
	{ID: "first_spark", Title: "First Spark", UnlockThreshold: 15},
	{ID: "trusted_friend", Title: "Trusted Friend", UnlockThreshold: 30},
	{ID: "first_date", Title: "First Date", UnlockThreshold: 50},
	{ID: "heartfelt_confession", Title: "Heartfelt Confession", UnlockThreshold: 70},
	{ID: "commitment", Title: "Commitment", UnlockThreshold: 85},
	{ID: "bonded_souls", Title: "Bonded Souls", UnlockThreshold: 100},
}

// DefaultPhotoUnlocks is the gallery table every new record starts with.
var DefaultPhotoUnlocks = []PhotoUnlock{
	{ID: "portrait", Title: "Portrait", UnlockThreshold: 20},
	{ID: "candid_smile", Title: "Candid Smile", UnlockThreshold: 40},
	{ID: "stargazing", Title: "Stargazing Together", UnlockThreshold: 60},
	{ID: "homeworld", Title: "Homeworld Visit", UnlockThreshold: 80},
	{ID: "private_moment", Title: "Private Moment", UnlockThreshold: 95},
}

// DefaultRoster is the built-in companion content.
var DefaultRoster = []CharacterProfile{
	{
		ID:      "zyx",
		Name:    "Zyx'thara",
		Species: "Crystalline Vaelori",
		Interests: []Interest{
			{Category: InterestScience, Intensity: 5},
			{Category: InterestPhilosophy, Intensity: 4},
			{Category: InterestMusic, Intensity: 2},
		},
		ConversationStyle:   StylePhilosophical,
		Values:              []PersonalValue{ValueKnowledge, ValueHonesty, ValueHarmony},
		PreferredActivities: []ActivityType{ActivityIntellectual, ActivityRelaxing},
		Dealbreakers:        []string{"dishonesty", "willful ignorance"},
	},
	{
		ID:      "korrin",
		Name:    "Korrin Vex",
		Species: "Drakari",
		Interests: []Interest{
			{Category: InterestAdventure, Intensity: 5},
			{Category: InterestExploration, Intensity: 4},
			{Category: InterestCuisine, Intensity: 2},
		},
		ConversationStyle:   StyleDirect,
		Values:              []PersonalValue{ValueAdventure, ValueFreedom, ValueHonesty},
		PreferredActivities: []ActivityType{ActivityAdventure, ActivitySocial},
		Dealbreakers:        []string{"cowardice", "possessiveness"},
	},
	{
		ID:      "luma",
		Name:    "Luma Soleil",
		Species: "Florae",
		Interests: []Interest{
			{Category: InterestNature, Intensity: 5},
			{Category: InterestArts, Intensity: 4},
			{Category: InterestMusic, Intensity: 3},
		},
		ConversationStyle:   StyleEmpathetic,
		Values:              []PersonalValue{ValueCompassion, ValueHarmony},
		PreferredActivities: []ActivityType{ActivityRomantic, ActivityCreative, ActivityRelaxing},
		Dealbreakers:        []string{"cruelty to living things"},
	},
	{
		ID:      "nyx",
		Name:    "Nyx-7",
		Species: "Synthetic Collective",
		Interests: []Interest{
			{Category: InterestTechnology, Intensity: 5},
			{Category: InterestScience, Intensity: 3},
		},
		ConversationStyle:   StyleAnalytical,
		Values:              []PersonalValue{ValueInnovation, ValueKnowledge},
		PreferredActivities: []ActivityType{ActivityIntellectual, ActivityCreative},
		Dealbreakers:        []string{"technophobia"},
	},
	{
		ID:      "aurelio",
		Name:    "Aurelio Quen",
		Species: "Celestine",
		Interests: []Interest{
			{Category: InterestCulture, Intensity: 5},
			{Category: InterestArts, Intensity: 3},
			{Category: InterestCuisine, Intensity: 3},
		},
		ConversationStyle:   StylePoetic,
		Values:              []PersonalValue{ValueTradition, ValueCompassion},
		PreferredActivities: []ActivityType{ActivityRomantic, ActivitySocial},
		Dealbreakers:        []string{"rudeness", "broken promises"},
	},
}

// DefaultConflictTemplates is the table conflicts are drawn from.
var DefaultConflictTemplates = []ConflictTemplate{
	{
		Type:             ConflictMisunderstanding,
		Severity:         SeverityMinor,
		AffectionPenalty: 3,
		Description:      "A throwaway remark was taken the wrong way.",
		Options: []ResolutionOption{
			{ID: "clarify", Approach: "clarify", Description: "Explain what you meant.", BaseSuccessChance: 70, BaseAffectionChange: 4,
				StatRequirement: &StatRequirement{Stat: StatCharisma, MinValue: 40}},
			{ID: "laugh_it_off", Approach: "humor", Description: "Make light of it together.", BaseSuccessChance: 55, BaseAffectionChange: 5},
		},
	},
	{
		Type:             ConflictJealousy,
		Severity:         SeverityModerate,
		AffectionPenalty: 6,
		Description:      "They saw you spending time with another companion.",
		Options: []ResolutionOption{
			{ID: "reassure", Approach: "reassurance", Description: "Reassure them of your feelings.", BaseSuccessChance: 60, BaseAffectionChange: 7,
				StatRequirement: &StatRequirement{Stat: StatEmpathy, MinValue: 50}},
			{ID: "give_space", Approach: "space", Description: "Give them some time alone.", BaseSuccessChance: 50, BaseAffectionChange: 4},
		},
	},
	{
		Type:             ConflictForgottenPromise,
		Severity:         SeverityModerate,
		AffectionPenalty: 8,
		Description:      "You forgot something you promised to do.",
		Options: []ResolutionOption{
			{ID: "apologize", Approach: "apology", Description: "Apologize sincerely.", BaseSuccessChance: 65, BaseAffectionChange: 6},
			{ID: "make_amends", Approach: "amends", Description: "Plan something to make up for it.", BaseSuccessChance: 55, BaseAffectionChange: 10,
				StatRequirement: &StatRequirement{Stat: StatAdventure, MinValue: 50}},
		},
	},
	{
		Type:             ConflictCulturalClash,
		Severity:         SeverityMajor,
		AffectionPenalty: 10,
		Description:      "You unknowingly broke a custom of their homeworld.",
		Options: []ResolutionOption{
			{ID: "learn_custom", Approach: "learning", Description: "Ask them to teach you the custom.", BaseSuccessChance: 55, BaseAffectionChange: 12,
				StatRequirement: &StatRequirement{Stat: StatIntelligence, MinValue: 60}},
			{ID: "apologize", Approach: "apology", Description: "Apologize for the offense.", BaseSuccessChance: 50, BaseAffectionChange: 6},
		},
	},
	{
		Type:             ConflictValueDisagreement,
		Severity:         SeverityCritical,
		AffectionPenalty: 15,
		Description:      "A deep disagreement about what matters most.",
		Options: []ResolutionOption{
			{ID: "heart_to_heart", Approach: "honesty", Description: "Have an honest heart-to-heart.", BaseSuccessChance: 50, BaseAffectionChange: 15,
				StatRequirement: &StatRequirement{Stat: StatEmpathy, MinValue: 70}},
			{ID: "compromise", Approach: "compromise", Description: "Find a middle ground.", BaseSuccessChance: 45, BaseAffectionChange: 10,
				StatRequirement: &StatRequirement{Stat: StatCharisma, MinValue: 60}},
			{ID: "agree_to_disagree", Approach: "acceptance", Description: "Agree to disagree.", BaseSuccessChance: 80, BaseAffectionChange: 3},
		},
	},
}

// DefaultRosterIDs returns the IDs of the built-in companions.
func DefaultRosterIDs() []string {
	ids := make([]string, len(DefaultRoster))
	for i, c := range DefaultRoster {
		ids[i] = c.ID
	}
	return ids
}
