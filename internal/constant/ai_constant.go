package constant

const (
	// MaxMatchResults caps how many experts the matcher returns.
	MaxMatchResults = 3

	// ExpertMatchPromptV1 takes the quoted user request and the JSON
	// candidate list, in that order.
	ExpertMatchPromptV1 = `You are an expert matching engine for a service marketplace.
User Request: %q
Available Experts: %s

Task: Return a JSON array of strings containing the 'id' of the top %d experts that best match the user's request.
Sort by relevance.
Only return the IDs.`

	SessionSummaryPromptV1 = "Generate a concise summary and a list of action items from this meeting transcript:\n\n%s"

	SummaryMissingCredential   = "API Key missing."
	SummaryGenerationFailed    = "Failed to generate summary."
	SummaryFailureActionItem   = "Check server logs for errors."
	SummaryJSONFieldSummary    = "summary"
	SummaryJSONFieldActionItem = "actionItems"
)

// Result sources, reported alongside AI results so callers can tell a model
// answer from a degraded one.
const (
	SourceModel             = "model"
	SourceFallbackNoKey     = "fallback_missing_credential"
	SourceFallbackTransport = "fallback_transport_error"
	SourceFallbackParse     = "fallback_parse_error"
	SourceEmpty             = "empty_input"
)
