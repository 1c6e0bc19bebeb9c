package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/confscout/eventscout/internal/llm"
)

const travelSystemPrompt = "You are an advisor helping community contributors write strong travel funding requests for cloud native conferences."

// FundingSource describes one travel funding program.
type FundingSource struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	MaxAmount    int      `json:"max_amount"`
	Currency     string   `json:"currency"`
	Requirements []string `json:"requirements"`
	Coverage     []string `json:"coverage"`
	Deadline     string   `json:"deadline"`
}

// fundingSources holds the known travel funds keyed by source ID.
var fundingSources = map[string]FundingSource{
	"cncf_travel": {
		Name:      "CNCF Travel Fund",
		URL:       "https://www.cncf.io/community/travel-fund/",
		MaxAmount: 2000,
		Currency:  "USD",
		Requirements: []string{
			"CNCF project contributor",
			"Active participation in community",
			"Financial need",
			"Clear justification for travel",
		},
		Coverage: []string{"Airfare", "Accommodation", "Ground transportation", "Meals (per diem)"},
		Deadline: "6 weeks before travel",
	},
	"linux_foundation_travel": {
		Name:      "Linux Foundation Travel Fund",
		URL:       "https://www.linuxfoundation.org/about/diversity-inclusivity/",
		MaxAmount: 1500,
		Currency:  "USD",
		Requirements: []string{
			"Underrepresented group in technology",
			"Demonstrated community involvement",
			"Financial need",
		},
		Coverage: []string{"Travel expenses", "Accommodation", "Conference registration"},
		Deadline: "8 weeks before travel",
	},
}

// Per-trip cost estimation rates in USD.
const (
	airfareDefault       = 600
	airfareDomestic      = 550
	airfareInternational = 1400
	mealsPerDay          = 75
	airportTransfer      = 50
	dailyTransport       = 25
)

// nightlyRates maps accommodation preference to a nightly rate.
var nightlyRates = map[string]int{
	"budget":   80,
	"standard": 150,
	"premium":  250,
}

// CostLine is one component of a travel cost estimate.
type CostLine struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// TravelAgent estimates trip costs and drafts funding requests through an
// llm.Client.
type TravelAgent struct {
	Base
	llm llm.Client
}

// NewTravel creates the travel funding assistant agent.
func NewTravel(client llm.Client) *TravelAgent {
	return &TravelAgent{
		Base: NewBase("TravelFundingAssistantAgent", "Assists with travel funding applications for cloud native events"),
		llm:  client,
	}
}

// ProcessRequest dispatches on the request type. An absent type defaults to
// info.
func (a *TravelAgent) ProcessRequest(ctx context.Context, req Request) Response {
	switch t := requestType(req, "info"); t {
	case "info":
		return a.Info(req)
	case "estimate_costs":
		return a.EstimateCosts(req)
	case "draft_request":
		return a.DraftRequest(ctx, req)
	default:
		return Fail("unknown request type: %s", t)
	}
}

// Info lists the known travel funding sources.
func (a *TravelAgent) Info(req Request) Response {
	a.LogActivity("Listing travel funding sources", nil)
	return Response{
		"success":         true,
		"funding_sources": fundingSources,
		"total_sources":   len(fundingSources),
	}
}

// EstimateCosts builds a cost estimate from flat rates. No external pricing
// service is involved; the numbers are planning figures, not quotes.
func (a *TravelAgent) EstimateCosts(req Request) Response {
	a.LogActivity("Estimating travel costs", nil)

	details := mapField(req, "event_details")
	prefs := mapField(req, "travel_preferences")

	location := mapString(details, "location")
	days := mapInt(details, "duration_days", 3)
	departure := mapString(prefs, "departure_location")
	accommodation := mapString(prefs, "accommodation")
	if _, ok := nightlyRates[accommodation]; !ok {
		accommodation = "standard"
	}

	airfare := estimateAirfare(departure, location)
	lodging := nightlyRates[accommodation] * days
	meals := mealsPerDay * days
	transport := airportTransfer + dailyTransport*days

	breakdown := map[string]CostLine{
		"airfare": {
			Amount:      airfare,
			Description: fmt.Sprintf("Round-trip from %s to %s", orUnknown(departure), orUnknown(location)),
		},
		"accommodation": {
			Amount:      lodging,
			Description: fmt.Sprintf("%d nights at %s level", days, accommodation),
		},
		"meals": {
			Amount:      meals,
			Description: fmt.Sprintf("%d days of meals and incidentals", days),
		},
		"transportation": {
			Amount:      transport,
			Description: fmt.Sprintf("Local transportation for %d days", days),
		},
	}

	return Response{
		"success":        true,
		"total_cost":     airfare + lodging + meals + transport,
		"cost_breakdown": breakdown,
		"currency":       "USD",
		"estimated_at":   time.Now().UTC().Format(time.RFC3339),
	}
}

// DraftRequest drafts a funding request (justification, budget narrative,
// impact statement) for a funding source.
func (a *TravelAgent) DraftRequest(ctx context.Context, req Request) Response {
	sourceID := stringField(req, "funding_source")
	source, ok := fundingSources[sourceID]
	if !ok {
		return Fail("invalid funding source: %s", sourceID)
	}

	a.LogActivity("Drafting travel funding request", nil)

	details := mapField(req, "event_details")
	applicant := mapField(req, "applicant_info")

	prompt := fmt.Sprintf(`Draft a travel funding request to the %s (covers up to %d %s).

Fund requirements:
- %s

Event: %s in %s
Applicant background: %s

Write three sections:
1. Justification for attending.
2. Budget narrative tied to the fund's coverage (%s).
3. Impact statement (what the applicant will bring back to the community).

Each section 100-150 words, first person, concrete.`,
		source.Name, source.MaxAmount, source.Currency,
		strings.Join(source.Requirements, "\n- "),
		orUnknown(mapString(details, "title")),
		orUnknown(mapString(details, "location")),
		applicantText(applicant),
		strings.Join(source.Coverage, ", "))

	draft, err := a.llm.Generate(ctx, prompt, travelSystemPrompt)
	if err != nil {
		return Fail("drafting funding request: %v", err)
	}

	return Response{
		"success":        true,
		"funding_source": source.Name,
		"request":        draft,
		"deadline":       source.Deadline,
		"generated_at":   time.Now().UTC().Format(time.RFC3339),
	}
}

// usCities approximates the domestic/international split for airfare.
var usCities = []string{"new york", "san francisco", "chicago", "los angeles", "boston", "seattle"}

func estimateAirfare(departure, destination string) int {
	if departure == "" || destination == "" {
		return airfareDefault
	}
	if isUSCity(departure) && isUSCity(destination) {
		return airfareDomestic
	}
	return airfareInternational
}

func isUSCity(location string) bool {
	lower := strings.ToLower(location)
	for _, city := range usCities {
		if strings.Contains(lower, city) {
			return true
		}
	}
	return false
}

func mapString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func mapInt(m map[string]interface{}, key string, fallback int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
