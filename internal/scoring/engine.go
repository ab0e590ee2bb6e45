// Package scoring assigns a severity score and priority label to aid
// requests. Scoring is pure: the same request always yields the same score,
// label and explanation, and nothing is ever written back to the store.
package scoring

import (
	"fmt"
	"strings"

	"solidaria/pkg/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const baseline = 0.5

// Label thresholds, evaluated top-down; first match wins.
const (
	criticalThreshold = 0.90
	highThreshold     = 0.75
	mediumThreshold   = 0.60
)

type keywordWeight struct {
	keyword string
	weight  float64
}

// Risk and domain terms matched as substrings of the lower-cased
// title+description. Requests are written in Spanish, so the table carries
// both accented and plain spellings. Order matters: matched keywords are
// listed in table order in the explanation.
var keywordWeights = []keywordWeight{
	{"emergencia", 0.25},
	{"urgencia", 0.20},
	{"urgente", 0.20},
	{"operación", 0.20},
	{"operacion", 0.20},
	{"corazón", 0.20},
	{"corazon", 0.20},
	{"viernes", 0.05},
	{"niño", 0.05},
	{"nino", 0.05},
	{"escuela", 0.05},
	{"techo", 0.05},
	{"lluvia", 0.05},
}

// Amounts are printed with es-BO style grouping ("15.000").
var amountPrinter = message.NewPrinter(language.EuropeanSpanish)

// Score annotates a single request. It is total: zero keyword matches, an
// unknown category or a zero amount are all valid inputs.
func Score(req types.AidRequest) types.ScoredRequest {
	score := baseline
	text := strings.ToLower(req.Title + " " + req.Description)

	var matched []string
	for _, kw := range keywordWeights {
		if strings.Contains(text, kw.keyword) {
			score += kw.weight
			matched = append(matched, kw.keyword)
		}
	}

	score += categoryBoost(req.Category)

	if req.RequestedAmount > 10000 {
		score += 0.05
	} else if req.RequestedAmount < 2000 {
		score -= 0.05
	}

	score = clamp(score)
	priority := PriorityFor(score)

	return types.ScoredRequest{
		AidRequest:  req,
		Score:       score,
		Priority:    priority,
		Explanation: explain(req, priority, matched),
	}
}

// ScoreAll scores every request independently, preserving input order.
// Ranking by score is the caller's concern.
func ScoreAll(reqs []types.AidRequest) []types.ScoredRequest {
	out := make([]types.ScoredRequest, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, Score(req))
	}
	return out
}

// PriorityFor maps a clamped score to its label.
func PriorityFor(score float64) types.Priority {
	switch {
	case score >= criticalThreshold:
		return types.PriorityCritical
	case score >= highThreshold:
		return types.PriorityHigh
	case score >= mediumThreshold:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

func categoryBoost(category string) float64 {
	switch strings.ToUpper(strings.TrimSpace(category)) {
	case types.CategoryHealth, "SALUD":
		return 0.20
	case types.CategoryInfrastructure, "INFRAESTRUCTURA":
		return 0.05
	default:
		return 0
	}
}

func clamp(score float64) float64 {
	return max(0, min(1, score))
}

func explain(req types.AidRequest, priority types.Priority, matched []string) string {
	var b strings.Builder

	switch priority {
	case types.PriorityCritical:
		b.WriteString("Critical risk.")
	case types.PriorityHigh:
		b.WriteString("High risk.")
	case types.PriorityMedium:
		b.WriteString("Medium risk.")
	default:
		b.WriteString("Low risk.")
	}

	if len(matched) > 0 {
		quoted := make([]string, 0, len(matched))
		for _, kw := range matched {
			quoted = append(quoted, "'"+kw+"'")
		}
		fmt.Fprintf(&b, " Risk keywords detected: %s.", strings.Join(quoted, ", "))
	}

	fmt.Fprintf(&b, " Category: %s.", strings.ToLower(req.Category))
	fmt.Fprintf(&b, " Requested amount: Bs. %s.",
		amountPrinter.Sprint(number.Decimal(req.RequestedAmount)))

	return b.String()
}
