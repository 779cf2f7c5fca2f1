package usecase

import (
	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"
)

func jobProfileFromRow(j repository.JobMatchRow) matching.JobProfile {
	skills := make([]matching.SkillRequirement, 0, len(j.Skills))
	for _, s := range j.Skills {
		minYears := s.MinYearsRequired
		if minYears < 0 {
			minYears = 0
		}
		skills = append(skills, matching.SkillRequirement{
			SkillID:          s.SkillID,
			SkillName:        s.SkillName,
			IsRequired:       s.IsRequired,
			MinYearsRequired: minYears,
		})
	}

	return matching.JobProfile{
		Skills:          skills,
		ExperienceLevel: matching.ExperienceLevel(j.ExperienceLevel),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		City:            j.City,
		State:           j.State,
		Remote:          j.IsRemote,
	}
}

func candidateProfileFromRow(c repository.CandidateMatchRow) matching.CandidateProfile {
	skills := make([]matching.CandidateSkill, 0, len(c.Skills))
	for _, s := range c.Skills {
		years := s.YearsExperience
		if years < 0 {
			years = 0
		}
		skills = append(skills, matching.CandidateSkill{
			SkillID:         s.SkillID,
			SkillName:       s.SkillName,
			YearsExperience: years,
		})
	}

	years := c.YearsExperience
	if years < 0 {
		years = 0
	}

	return matching.CandidateProfile{
		Skills:            skills,
		YearsExperience:   years,
		DesiredSalaryMin:  c.DesiredSalaryMin,
		DesiredSalaryMax:  c.DesiredSalaryMax,
		City:              c.City,
		State:             c.State,
		WillingToRelocate: c.WillingToRelocate,
		RemotePreference:  matching.RemotePreference(c.RemotePreference),
		Availability:      matching.Availability(c.Availability),
	}
}
