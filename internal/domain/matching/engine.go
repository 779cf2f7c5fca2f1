package matching

import "math"

// Engine combines the factor scorers with a weight table. It holds no
// mutable state and is safe for concurrent use; every call is an
// independent pure computation over the snapshots it is given.
type Engine struct {
	weights Weights
}

func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Score computes all seven factor scores for one job-candidate pair and the
// aggregate 0-100 match score.
func (e *Engine) Score(in Input) (FactorScores, int) {
	f := FactorScores{
		Skills:         ScoreSkills(in.Job, in.Candidate),
		Experience:     ScoreExperience(in.Job, in.Candidate),
		Location:       ScoreLocation(in.Job, in.Candidate),
		Salary:         ScoreSalary(in.Job, in.Candidate),
		Availability:   ScoreAvailability(in.Candidate),
		Education:      ScoreEducation(in.Job, in.Candidate),
		EmploymentType: ScoreEmploymentType(in.Job, in.Candidate),
	}
	return f, e.Aggregate(f)
}

// Aggregate folds factor scores into an integer percentage. Factor contracts
// keep every input in [0,1] and the weights sum to 1.0, so the result lands
// in [0,100]; the clamp guards against malformed hand-built FactorScores.
func (e *Engine) Aggregate(f FactorScores) int {
	sum := e.weights.Skills*f.Skills +
		e.weights.Experience*f.Experience +
		e.weights.Location*f.Location +
		e.weights.Salary*f.Salary +
		e.weights.Availability*f.Availability +
		e.weights.Education*f.Education

	score := int(math.Round(sum * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// NeutralFactors returns the factor set used when only the skills dimension
// can be computed precisely (the recommendation pool path, where the full
// candidate context is not loaded per job). Callers overwrite Skills.
func NeutralFactors() FactorScores {
	return FactorScores{
		Skills:         1.0,
		Experience:     0.8,
		Location:       1.0,
		Salary:         missingSalaryScore,
		Availability:   1.0,
		Education:      StubEducationScore,
		EmploymentType: StubEmploymentTypeScore,
	}
}
