package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/confscout/eventscout/internal/llm"
)

const proposalSystemPrompt = "You are an experienced conference program committee member helping speakers write strong cloud native talk proposals."

// trendingTopics seeds topic suggestions when the requester gives no topic.
var trendingTopics = []string{
	"Kubernetes Operators and Custom Resources",
	"Service Mesh Implementation with Istio",
	"GitOps and ArgoCD",
	"Observability with Prometheus and Grafana",
	"Security in Cloud-Native Applications",
	"Multi-cluster Management",
	"Serverless with Knative",
	"Edge Computing with Kubernetes",
	"Machine Learning on Kubernetes",
	"Cost Optimization in Cloud-Native Environments",
}

var submissionTips = []string{
	"Submit early, committees review proposals as they come in",
	"Be specific about what attendees will learn",
	"Include real-world examples and case studies",
	"Clearly state your expertise and experience",
	"Follow the event's submission guidelines exactly",
}

// ProposalAgent drafts and reviews talk proposals through an llm.Client.
type ProposalAgent struct {
	Base
	llm llm.Client
}

// NewProposal creates the proposal writer agent.
func NewProposal(client llm.Client) *ProposalAgent {
	return &ProposalAgent{
		Base: NewBase("ProposalGeneratorAgent", "Generates and reviews talk proposals for cloud native conferences"),
		llm:  client,
	}
}

// ProcessRequest dispatches on the request type. An absent type defaults to
// generate.
func (a *ProposalAgent) ProcessRequest(ctx context.Context, req Request) Response {
	switch t := requestType(req, "generate"); t {
	case "generate":
		return a.Generate(ctx, req)
	case "review":
		return a.Review(ctx, req)
	case "suggest_topics":
		return a.SuggestTopics(ctx, req)
	default:
		return Fail("unknown request type: %s", t)
	}
}

// Generate drafts a full proposal (title, abstract, outline) for the
// requested topic. Without a topic it picks one matching the speaker's
// expertise.
func (a *ProposalAgent) Generate(ctx context.Context, req Request) Response {
	a.LogActivity("Generating proposal", nil)

	topic := stringField(req, "topic")
	expertise := stringSliceField(req, "speaker_expertise")
	audience := stringField(req, "target_audience")
	if audience == "" {
		audience = "intermediate"
	}
	talkType := stringField(req, "talk_type")
	if talkType == "" {
		talkType = "session"
	}
	if topic == "" {
		topic = suggestTopic(expertise)
	}

	prompt := fmt.Sprintf(`Write a complete conference talk proposal about %q.

Talk type: %s
Target audience: %s
Speaker expertise: %s

Include, in this order:
1. An engaging title of 60 characters or less.
2. A 150-200 word abstract that states what attendees will learn.
3. 3-5 learning objectives, each starting with an action verb.
4. A timed outline from introduction to conclusion and Q&A.`,
		topic, talkType, audience, expertiseText(expertise))

	draft, err := a.llm.Generate(ctx, prompt, proposalSystemPrompt)
	if err != nil {
		return Fail("generating proposal: %v", err)
	}

	a.AddToHistory("assistant", "Generated proposal for topic: "+topic)
	return Response{
		"success":         true,
		"proposal":        draft,
		"topic":           topic,
		"talk_type":       talkType,
		"target_audience": audience,
		"submission_tips": submissionTips,
		"generated_at":    time.Now().UTC().Format(time.RFC3339),
	}
}

// Review critiques an existing proposal and suggests an improved version.
func (a *ProposalAgent) Review(ctx context.Context, req Request) Response {
	proposal := stringField(req, "proposal")
	if proposal == "" {
		return Fail("proposal text is required")
	}
	a.LogActivity("Reviewing proposal", nil)

	prompt := fmt.Sprintf(`Review this conference talk proposal:

%s

First list its strengths and weaknesses against what program committees
look for (clear learning objectives, specific content, real-world
examples). Then rewrite it as an improved version.`, proposal)

	review, err := a.llm.Generate(ctx, prompt, proposalSystemPrompt)
	if err != nil {
		return Fail("reviewing proposal: %v", err)
	}

	return Response{
		"success":           true,
		"original_proposal": proposal,
		"review":            review,
	}
}

// SuggestTopics proposes talk topics matching the speaker's expertise.
func (a *ProposalAgent) SuggestTopics(ctx context.Context, req Request) Response {
	a.LogActivity("Suggesting topics", nil)

	expertise := stringSliceField(req, "speaker_expertise")
	prompt := fmt.Sprintf(`Suggest 5 conference talk topics for a speaker with expertise in %s.

Currently trending areas:
%s

For each suggestion give the topic and one sentence on why it would
land with a cloud native audience. Return a numbered list.`,
		expertiseText(expertise), "- "+strings.Join(trendingTopics, "\n- "))

	suggestions, err := a.llm.Generate(ctx, prompt, proposalSystemPrompt)
	if err != nil {
		return Fail("suggesting topics: %v", err)
	}

	return Response{
		"success":     true,
		"suggestions": suggestions,
		"based_on":    expertise,
	}
}

// suggestTopic picks the first trending topic overlapping the expertise
// list, falling back to the top trending topic.
func suggestTopic(expertise []string) string {
	for _, topic := range trendingTopics {
		lower := strings.ToLower(topic)
		for _, e := range expertise {
			for _, word := range strings.Fields(strings.ToLower(e)) {
				if strings.Contains(lower, word) {
					return topic
				}
			}
		}
	}
	return trendingTopics[0]
}

func expertiseText(expertise []string) string {
	if len(expertise) == 0 {
		return "cloud-native technologies"
	}
	return strings.Join(expertise, ", ")
}
