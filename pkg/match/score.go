package match

import (
	"math"
	"strings"
)

// Score is the computed relationship between one resume and one job posting.
// TotalScore equals SkillsScore until weighted experience/education
// sub-scores are reintroduced.
type Score struct {
	TotalScore  float64 `json:"totalScore"`
	SkillsScore float64 `json:"skillsScore"`
}

// ComputeScore returns the fraction (0-100) of the job's declared skills
// that the resume keyword set can account for. A keyword counts as matching
// when at least one job skill contains it case-insensitively as a substring;
// one keyword may satisfy several skills, which is accepted.
//
// Pure and deterministic: identical inputs always yield identical output.
func ComputeScore(resumeKeywords []string, jobSkills []string) Score {
	declared := 0
	lowered := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		declared++
		lowered = append(lowered, strings.ToLower(s))
	}
	// An empty skill list scores a defined 0, not a division by zero.
	if declared == 0 {
		return Score{}
	}

	matching := 0
	for _, kw := range resumeKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, skill := range lowered {
			if strings.Contains(skill, kw) {
				matching++
				break
			}
		}
	}
	// Several keywords may land on the same skill, so the count can exceed
	// the number of declared skills; the score stays within 0..100.
	if matching > declared {
		matching = declared
	}

	skills := round2(100 * float64(matching) / float64(declared))
	return Score{TotalScore: skills, SkillsScore: skills}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
