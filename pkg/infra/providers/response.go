package providers

// CompletionResponse is the provider-agnostic result of one completion call.
// Quota accounting meters requests, not tokens, so token counts are not
// carried.
type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
}
