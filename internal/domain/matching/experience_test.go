package matching

import "testing"

func TestScoreExperience_IdealYears(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceMid}
	candidate := CandidateProfile{YearsExperience: 4}

	if got := ScoreExperience(job, candidate); !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0 at the ideal point, got %v", got)
	}
}

func TestScoreExperience_FarBelowMinimum(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceSenior} // min 5
	candidate := CandidateProfile{YearsExperience: 0}

	// max(0, 1 - 0.2*5)
	if got := ScoreExperience(job, candidate); !almostEqual(got, 0.0) {
		t.Fatalf("expected 0.0 five years under the senior minimum, got %v", got)
	}
}

func TestScoreExperience_OneYearUnderMinimum(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceSenior}
	candidate := CandidateProfile{YearsExperience: 4}

	if got := ScoreExperience(job, candidate); !almostEqual(got, 0.8) {
		t.Fatalf("expected 0.8 one year under, got %v", got)
	}
}

func TestScoreExperience_Overqualified(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceEntry} // max 3
	candidate := CandidateProfile{YearsExperience: 5}

	// 1 - 0.05*2
	if got := ScoreExperience(job, candidate); !almostEqual(got, 0.9) {
		t.Fatalf("expected 0.9 two years over, got %v", got)
	}
}

func TestScoreExperience_OverqualifiedFloor(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceEntry}
	candidate := CandidateProfile{YearsExperience: 40}

	if got := ScoreExperience(job, candidate); !almostEqual(got, 0.7) {
		t.Fatalf("expected floor 0.7 for extreme over-qualification, got %v", got)
	}
}

func TestScoreExperience_WithinBandDeviation(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceSenior} // 5-15, ideal 8
	candidate := CandidateProfile{YearsExperience: 15}

	// maxDeviation = max(8-5, 15-8) = 7; 1 - 0.3*(7/7)
	if got := ScoreExperience(job, candidate); !almostEqual(got, 0.7) {
		t.Fatalf("expected 0.7 at the far band edge, got %v", got)
	}
}

func TestScoreExperience_UnknownLevelDefaultsToMid(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceLevel("principal")}
	candidate := CandidateProfile{YearsExperience: 4}

	if got := ScoreExperience(job, candidate); !almostEqual(got, 1.0) {
		t.Fatalf("expected unknown level to use the mid band, got %v", got)
	}
}

func TestScoreExperience_NegativeYearsClamped(t *testing.T) {
	job := JobProfile{ExperienceLevel: ExperienceEntry} // min 0, ideal 1
	candidate := CandidateProfile{YearsExperience: -2}

	want := ScoreExperience(job, CandidateProfile{YearsExperience: 0})
	if got := ScoreExperience(job, candidate); !almostEqual(got, want) {
		t.Fatalf("expected negative years to score like zero, got %v want %v", got, want)
	}
}

func TestScoreExperience_Bounds(t *testing.T) {
	levels := []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive, ExperienceLevel("weird")}
	for _, lvl := range levels {
		for years := -1; years <= 50; years++ {
			got := ScoreExperience(JobProfile{ExperienceLevel: lvl}, CandidateProfile{YearsExperience: years})
			if got < 0 || got > 1 {
				t.Fatalf("level=%s years=%d score out of [0,1]: %v", lvl, years, got)
			}
		}
	}
}
