package emailfinder

import (
	"regexp"
	"sort"
	"strings"

	"lead_scraper/internal/domain"
)

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	bareLocalPart   = regexp.MustCompile(`^[a-z]+@`)
	rejectFragments = []string{
		".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp",
		"example.com", "sentry", "wixpress", "placeholder",
	}
)

type rule struct {
	match string
	score int
}

var (
	prefixBonuses = []rule{
		{"info@", 30},
		{"contact@", 30},
		{"hello@", 25},
		{"sales@", 25},
		{"support@", 20},
		{"admin@", 15},
	}
	penalties = []rule{
		{"noreply", -50},
		{"no-reply", -50},
		{"donotreply", -50},
		{"unsubscribe", -30},
		{"privacy", -20},
	}
)

// Candidate is an extracted address with its heuristic score.
type Candidate struct {
	Email string
	Score int
}

// Extract pulls every plausible business address out of a page. Asset
// filenames and tracking domains are dropped and repeats are collapsed
// case-insensitively, keeping the first spelling seen.
func Extract(text string) []string {
	matches := emailPattern.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		lower := strings.ToLower(m)
		if rejected(lower) {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, m)
	}
	return out
}

func rejected(lower string) bool {
	for _, frag := range rejectFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// Score rates how likely an address is the one a business wants contacted.
func Score(email string) int {
	lower := strings.ToLower(email)

	score := 0
	for _, b := range prefixBonuses {
		if strings.HasPrefix(lower, b.match) {
			score += b.score
		}
	}
	if bareLocalPart.MatchString(lower) {
		score += 10
	}
	for _, p := range penalties {
		if strings.Contains(lower, p.match) {
			score += p.score
		}
	}
	return score
}

// Best returns the highest scoring candidate, preferring the earliest on
// ties. ok is false when there is nothing worth returning.
func Best(emails []string) (Candidate, bool) {
	if len(emails) == 0 {
		return Candidate{}, false
	}

	candidates := make([]Candidate, len(emails))
	for i, e := range emails {
		candidates[i] = Candidate{Email: e, Score: Score(e)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	best := candidates[0]
	if best.Score <= 0 {
		return Candidate{}, false
	}
	return best, true
}

func ScoreConfidence(score int) domain.Confidence {
	switch {
	case score >= 25:
		return domain.ConfidenceHigh
	case score >= 10:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func hunterConfidence(confidence int) domain.Confidence {
	switch {
	case confidence >= 80:
		return domain.ConfidenceHigh
	case confidence >= 50:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// GuessPatterns lists the role addresses most businesses use.
func GuessPatterns(domainName string) []string {
	locals := []string{"info", "contact", "hello", "sales", "support", "admin"}
	out := make([]string, len(locals))
	for i, l := range locals {
		out[i] = l + "@" + domainName
	}
	return out
}
