// Package scorer computes a bounded cloud-native relevance score for
// discovered events.
package scorer

import (
	"strings"

	"github.com/confscout/eventscout/internal/event"
)

// MaxScore caps the relevance score.
const MaxScore = 10.0

// Weights for keyword and bonus contributions.
const (
	titleKeywordWeight       = 2.0
	descriptionKeywordWeight = 1.0
	flagshipBonus            = 5.0
	primarySourceBonus       = 1.0
)

// flagshipMarker in a title marks the flagship conference.
const flagshipMarker = "kubecon"

// keywords indicating cloud-native relevance.
var keywords = []string{
	"kubernetes", "kubecon", "cncf", "cloud native", "container", "microservices",
	"devops", "gitops", "observability", "service mesh", "istio", "prometheus",
	"grafana", "helm", "operators", "cri-o", "containerd", "etcd",
}

// primarySources earn a flat bonus.
var primarySources = map[string]bool{
	event.SourceLinuxFoundation: true,
	event.SourceCNCF:            true,
}

// Score computes the relevance score for an event: +2 per keyword in the
// title, +1 per keyword in the description, +5 for the flagship marker in
// the title, +1 for a primary source. The result is clamped to MaxScore and
// can never be negative. Pure and deterministic.
func Score(evt *event.Event) float64 {
	title := strings.ToLower(evt.Title)
	description := strings.ToLower(evt.Description)

	score := 0.0
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			score += titleKeywordWeight
		}
		if strings.Contains(description, kw) {
			score += descriptionKeywordWeight
		}
	}

	if strings.Contains(title, flagshipMarker) {
		score += flagshipBonus
	}
	if primarySources[evt.Source] {
		score += primarySourceBonus
	}

	if score > MaxScore {
		score = MaxScore
	}
	return score
}
