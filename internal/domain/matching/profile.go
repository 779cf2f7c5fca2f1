package matching

import "github.com/google/uuid"

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

type Availability string

const (
	AvailabilityImmediately   Availability = "immediately"
	AvailabilityWithinMonth   Availability = "within_month"
	AvailabilityWithin3Months Availability = "within_3_months"
	AvailabilityNotLooking    Availability = "not_looking"
)

type RemotePreference string

const (
	RemoteOnly   RemotePreference = "remote"
	RemoteHybrid RemotePreference = "hybrid"
	RemoteOnsite RemotePreference = "onsite"
)

// SkillRequirement is one skill a job asks for. Required skills drive 80% of
// the skills factor, preferred skills the remaining 20%.
type SkillRequirement struct {
	SkillID          uuid.UUID
	SkillName        string
	IsRequired       bool
	MinYearsRequired int
}

type CandidateSkill struct {
	SkillID         uuid.UUID
	SkillName       string
	YearsExperience int
}

// JobProfile is the read-only snapshot of a job used for scoring.
type JobProfile struct {
	Skills          []SkillRequirement
	ExperienceLevel ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
	City            string
	State           string
	Remote          bool
}

// CandidateProfile is the read-only snapshot of a candidate used for scoring.
type CandidateProfile struct {
	Skills            []CandidateSkill
	YearsExperience   int
	DesiredSalaryMin  *int
	DesiredSalaryMax  *int
	City              string
	State             string
	WillingToRelocate bool
	RemotePreference  RemotePreference
	Availability      Availability
}

// Input is one job-candidate pair. Built by the caller from pre-loaded
// snapshots; the engine itself performs no I/O.
type Input struct {
	Job       JobProfile
	Candidate CandidateProfile
}

// FactorScores holds the per-dimension scores, each in [0,1]. They are
// ephemeral: only the aggregate is ever persisted.
type FactorScores struct {
	Skills         float64
	Experience     float64
	Location       float64
	Salary         float64
	Availability   float64
	Education      float64
	EmploymentType float64
}
