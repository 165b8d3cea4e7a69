package request

type CreateDreamRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Tags    string `json:"tags"`
}

type CheckoutRequest struct {
	Plan string `json:"plan"`
}
