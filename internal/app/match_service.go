package app

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"internmatch/internal/common"
	"internmatch/internal/domain/analytics"
	"internmatch/internal/domain/job"
	"internmatch/internal/domain/user"
)

const (
	skillPoints   = 20
	keywordPoints = 10
	maxScore      = 100
)

// MatchService scores students against open jobs. Scoring is a pure
// function of the profile and the job text; the keyword vocabulary is
// configuration, not code.
type MatchService struct {
	jobs      job.Repository
	users     user.Repository
	analytics analytics.Repository
	keywords  []string
}

func NewMatchService(jobs job.Repository, users user.Repository, analyticsRepo analytics.Repository, keywords []string) *MatchService {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			normalized = append(normalized, keyword)
		}
	}
	return &MatchService{jobs: jobs, users: users, analytics: analyticsRepo, keywords: normalized}
}

// Score computes the 0-100 match between one candidate and one job.
// Each résumé skill found in the job's searchable text adds 20 points;
// each vocabulary keyword present in both the job text and the résumé
// text adds 10. A candidate without a résumé scores 0 everywhere.
func (s *MatchService) Score(candidate user.User, j job.Job) int {
	if candidate.Resume == nil {
		return 0
	}
	jobText := strings.ToLower(j.Title + " " + j.Description + " " + j.Requirements)
	resumeText := strings.ToLower(candidate.Resume.Text + " " + candidate.Resume.Education + " " + candidate.Resume.Experience)

	score := 0
	for _, skill := range candidate.Resume.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(jobText, skill) {
			score += skillPoints
		}
	}
	for _, keyword := range s.keywords {
		if strings.Contains(jobText, keyword) && strings.Contains(resumeText, keyword) {
			score += keywordPoints
		}
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// ComputeMatches returns every open job annotated with the student's
// match score, sorted descending. Ties keep store order (stable sort).
// A student without a résumé still gets the full list, all zeros.
func (s *MatchService) ComputeMatches(ctx context.Context, studentID common.ID) ([]job.Match, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	open, err := s.jobs.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]job.Match, 0, len(open))
	for _, j := range open {
		matches = append(matches, job.Match{Job: j, MatchScore: s.Score(*student, j)})
	}
	sort.SliceStable(matches, func(i, k int) bool {
		return matches[i].MatchScore > matches[k].MatchScore
	})
	_ = s.analytics.Create(ctx, analytics.Event{Name: "matches.computed", UserID: &studentID, Payload: map[string]string{"count": strconv.Itoa(len(matches))}})
	return matches, nil
}
