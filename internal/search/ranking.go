package search

import (
	"sort"
	"strings"
	"time"

	"hireall/internal/fuzzy"
	"hireall/internal/repository"
)

type JobScore struct {
	Relevance     float64
	Freshness     float64
	SourceQuality float64
	DataQuality   float64
	FinalScore    float64
}

// SourceWeights reflects how much structure each board hands over. API
// submissions carry whatever the caller resolved, so they sit in the middle.
var SourceWeights = map[string]float64{
	"reed":      3,
	"totaljobs": 2,
	"api":       2,
	"unknown":   1,
}

func ComputeRelevance(job repository.StoredJob, queryVariants []string) float64 {
	if len(queryVariants) == 0 {
		return 0
	}

	title := strings.ToLower(job.NormTitle)
	if title == "" {
		title = strings.ToLower(job.Title)
	}
	desc := strings.ToLower(job.Description)

	score := 0.0
	for _, v := range queryVariants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if title != "" {
			if strings.Contains(title, v) {
				score += 3
			} else {
				score += 3 * fuzzy.WordOverlap(title, v)
			}
		}
		if desc != "" && strings.Contains(desc, v) {
			score += 1
		}
		if score >= 10 {
			return 10
		}
	}
	if score > 10 {
		score = 10
	}
	return score
}

func ComputeFreshness(job repository.StoredJob) float64 {
	if job.CreatedAt.IsZero() {
		return 0
	}

	age := time.Since(job.CreatedAt)
	if age < 0 {
		age = 0
	}

	switch {
	case age <= 24*time.Hour:
		return 5
	case age <= 3*24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 3
	case age <= 14*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1
	default:
		return 0
	}
}

func ComputeSourceQuality(source string) float64 {
	source = strings.TrimSpace(strings.ToLower(source))
	if source == "" {
		source = "unknown"
	}
	if w, ok := SourceWeights[source]; ok {
		return w
	}
	return 1
}

func ComputeDataQuality(job repository.StoredJob) float64 {
	score := 0.0
	if strings.TrimSpace(job.Title) != "" {
		score += 1
	}
	if strings.TrimSpace(job.Company) != "" {
		score += 1
	}
	if strings.TrimSpace(job.Location) != "" {
		score += 1
	}
	if len(strings.TrimSpace(job.Description)) > 100 {
		score += 1
	}
	if job.SOCCode != "" {
		score += 1
	}
	return score
}

func ScoreJob(job repository.StoredJob, queryVariants []string) JobScore {
	rel := ComputeRelevance(job, queryVariants)
	fresh := ComputeFreshness(job)
	src := ComputeSourceQuality(job.Source)
	qual := ComputeDataQuality(job)

	return JobScore{
		Relevance:     rel,
		Freshness:     fresh,
		SourceQuality: src,
		DataQuality:   qual,
		FinalScore:    rel*2.0 + fresh*1.5 + src*1.0 + qual*0.5,
	}
}

// RankJobs orders jobs by final score, falling back to the stored order
// when no job matches any variant.
func RankJobs(jobs []repository.StoredJob, queryVariants []string) []repository.StoredJob {
	if len(jobs) == 0 {
		return jobs
	}

	type scored struct {
		idx   int
		score float64
	}
	maxScore := 0.0
	all := make([]scored, len(jobs))
	for i := range jobs {
		s := ScoreJob(jobs[i], queryVariants).FinalScore
		all[i] = scored{idx: i, score: s}
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore == 0 {
		return jobs
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	out := make([]repository.StoredJob, 0, len(jobs))
	for _, it := range all {
		out = append(out, jobs[it.idx])
	}
	return out
}
