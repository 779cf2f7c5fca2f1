package matching

// Education and employment-type requirements are not modeled yet. Both
// scorers return fixed neutral constants so the aggregator's shape stays
// stable once real logic lands.
const (
	// StubEducationScore is returned until degree requirements are modeled.
	StubEducationScore = 0.8
	// StubEmploymentTypeScore is returned until contract/full-time matching
	// is modeled. Note the aggregator gives this factor no weight.
	StubEmploymentTypeScore = 1.0
)

func ScoreEducation(_ JobProfile, _ CandidateProfile) float64 {
	return StubEducationScore
}

func ScoreEmploymentType(_ JobProfile, _ CandidateProfile) float64 {
	return StubEmploymentTypeScore
}
