package matching

// Weights is the factor weighting used by the aggregator. Passed by value
// into the engine so tests can swap it without touching shared state.
//
// EmploymentType is intentionally absent: the factor is scored (always the
// neutral constant) but carries no weight in the aggregate. Changing that is
// a product decision, not a bug fix.
type Weights struct {
	Skills       float64
	Experience   float64
	Location     float64
	Salary       float64
	Availability float64
	Education    float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:       0.35,
		Experience:   0.20,
		Location:     0.15,
		Salary:       0.15,
		Availability: 0.10,
		Education:    0.05,
	}
}

// ExperienceRange maps a job's experience level to the years band it
// expects, with the ideal point used for the in-range deviation penalty.
type ExperienceRange struct {
	Min   int
	Max   int
	Ideal int
}

var experienceRanges = map[ExperienceLevel]ExperienceRange{
	ExperienceEntry:     {Min: 0, Max: 3, Ideal: 1},
	ExperienceMid:       {Min: 2, Max: 7, Ideal: 4},
	ExperienceSenior:    {Min: 5, Max: 15, Ideal: 8},
	ExperienceExecutive: {Min: 10, Max: 30, Ideal: 15},
}

var availabilityScores = map[Availability]float64{
	AvailabilityImmediately:   1.0,
	AvailabilityWithinMonth:   0.8,
	AvailabilityWithin3Months: 0.5,
	AvailabilityNotLooking:    0.0,
}

const (
	requiredSkillWeight  = 0.8
	preferredSkillWeight = 0.2

	missingYearPenalty = 0.2
	excessYearPenalty  = 0.05
	overqualifiedFloor = 0.7
	idealDevPenalty    = 0.3

	sameStateScore  = 0.8
	relocationScore = 0.6
	locationFloor   = 0.2

	missingSalaryScore  = 0.8
	defaultDesiredSpan  = 1.2
	defaultOfferedSpan  = 1.3
	belowOfferedScore   = 0.9
	unknownAvailability = 0.3
)
