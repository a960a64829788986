package model

const (
	DecisionRejected = 0
	DecisionAccepted = 1
)

// ModerationResult is the structured verdict the model returns for a post.
type ModerationResult struct {
	Decision int    `json:"decision"`
	Reason   string `json:"reason"`
}

func (r *ModerationResult) Accepted() bool {
	return r.Decision == DecisionAccepted
}
