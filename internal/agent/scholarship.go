package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/confscout/eventscout/internal/llm"
)

const scholarshipSystemPrompt = "You are an advisor helping applicants write strong diversity scholarship applications for cloud native conferences."

// ScholarshipProgram describes one scholarship program an applicant can
// apply to.
type ScholarshipProgram struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Deadline     string   `json:"deadline"`
	Requirements []string `json:"requirements"`
	Coverage     []string `json:"coverage"`
}

// scholarshipPrograms holds the known programs keyed by program ID.
var scholarshipPrograms = map[string]ScholarshipProgram{
	"kubecon": {
		Name:     "KubeCon + CloudNativeCon Scholarship",
		URL:      "https://events.linuxfoundation.org/kubecon-cloudnativecon-north-america/attend/scholarships/",
		Deadline: "2 months before event",
		Requirements: []string{
			"Student or early career professional",
			"Demonstrated interest in cloud-native technologies",
			"Financial need",
			"Not previously awarded a scholarship",
		},
		Coverage: []string{
			"Conference registration",
			"Travel expenses (up to $500)",
			"Accommodation (shared room)",
		},
	},
	"linux_foundation": {
		Name:     "Linux Foundation Diversity Scholarship",
		URL:      "https://www.linuxfoundation.org/about/diversity-inclusivity/",
		Deadline: "3 months before event",
		Requirements: []string{
			"Underrepresented group in technology",
			"Demonstrated interest in open source",
			"Financial need",
		},
		Coverage: []string{
			"Conference registration",
			"Travel expenses",
			"Accommodation",
		},
	},
}

// RequirementCheck is the eligibility verdict for one program requirement.
type RequirementCheck struct {
	Requirement string `json:"requirement"`
	Eligible    bool   `json:"eligible"`
}

// ScholarshipAgent answers scholarship program questions, checks
// eligibility, and drafts applications through an llm.Client.
type ScholarshipAgent struct {
	Base
	llm llm.Client
}

// NewScholarship creates the scholarship assistant agent.
func NewScholarship(client llm.Client) *ScholarshipAgent {
	return &ScholarshipAgent{
		Base: NewBase("ScholarshipAssistantAgent", "Assists with scholarship applications for cloud native events"),
		llm:  client,
	}
}

// ProcessRequest dispatches on the request type. An absent type defaults to
// info.
func (a *ScholarshipAgent) ProcessRequest(ctx context.Context, req Request) Response {
	switch t := requestType(req, "info"); t {
	case "info":
		return a.Info(req)
	case "check_eligibility":
		return a.CheckEligibility(req)
	case "draft_application":
		return a.DraftApplication(ctx, req)
	default:
		return Fail("unknown request type: %s", t)
	}
}

// Info lists the known scholarship programs.
func (a *ScholarshipAgent) Info(req Request) Response {
	a.LogActivity("Listing scholarship programs", nil)
	return Response{
		"success":        true,
		"programs":       scholarshipPrograms,
		"total_programs": len(scholarshipPrograms),
	}
}

// CheckEligibility checks the applicant against each requirement of a
// program. Requirements with no mapped applicant field pass by default.
func (a *ScholarshipAgent) CheckEligibility(req Request) Response {
	programID := stringField(req, "program_id")
	program, ok := scholarshipPrograms[programID]
	if !ok {
		return Fail("invalid program ID: %s", programID)
	}
	applicant := mapField(req, "applicant_info")

	a.LogActivity("Checking eligibility", nil)

	checks := make([]RequirementCheck, 0, len(program.Requirements))
	eligible := true
	for _, requirement := range program.Requirements {
		met := meetsRequirement(requirement, applicant)
		checks = append(checks, RequirementCheck{Requirement: requirement, Eligible: met})
		if !met {
			eligible = false
		}
	}

	return Response{
		"success":            true,
		"program":            program,
		"eligible":           eligible,
		"requirements_check": checks,
	}
}

// DraftApplication drafts personal, financial-need, and goals statements
// for a program application.
func (a *ScholarshipAgent) DraftApplication(ctx context.Context, req Request) Response {
	programID := stringField(req, "program_id")
	program, ok := scholarshipPrograms[programID]
	if !ok {
		return Fail("invalid program ID: %s", programID)
	}
	applicant := mapField(req, "applicant_info")

	a.LogActivity("Drafting scholarship application", nil)

	prompt := fmt.Sprintf(`Draft a scholarship application for the %s.

Program requirements:
- %s

Applicant background: %s

Write three sections:
1. Personal statement (community involvement and interest in cloud native).
2. Financial need statement.
3. Goals statement (what attending would enable).

Each section 100-150 words, first person, sincere and specific.`,
		program.Name,
		strings.Join(program.Requirements, "\n- "),
		applicantText(applicant))

	draft, err := a.llm.Generate(ctx, prompt, scholarshipSystemPrompt)
	if err != nil {
		return Fail("drafting application: %v", err)
	}

	return Response{
		"success":      true,
		"program":      program.Name,
		"application":  draft,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}
}

func meetsRequirement(requirement string, applicant map[string]interface{}) bool {
	lower := strings.ToLower(requirement)
	switch {
	case strings.Contains(lower, "student"):
		if boolField(applicant, "is_student") {
			return true
		}
		return strings.Contains(lower, "early career") && yearsExperience(applicant) <= 3
	case strings.Contains(lower, "financial need"):
		return boolField(applicant, "financial_need")
	case strings.Contains(lower, "underrepresented"):
		return boolField(applicant, "is_underrepresented")
	case strings.Contains(lower, "not previously awarded"):
		return !boolField(applicant, "previously_awarded")
	default:
		return true
	}
}

func boolField(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func yearsExperience(m map[string]interface{}) int {
	switch v := m["years_experience"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func applicantText(applicant map[string]interface{}) string {
	if len(applicant) == 0 {
		return "not provided"
	}
	keys := make([]string, 0, len(applicant))
	for k := range applicant {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, applicant[k]))
	}
	return strings.Join(parts, ", ")
}
