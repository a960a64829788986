package dto

import (
	"errors"

	"github.com/tidwall/gjson"
)

var ErrPostRequired = errors.New("Post content is required")

const (
	ModerationStatusAccepted = "accepted"
	ModerationStatusRejected = "rejected"
)

type ModerationRequest struct {
	Post string `json:"post"`
}

type ModerationResponse struct {
	Decision int    `json:"decision"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
}

// ParseModerationRequest reads the /moderate body. A body that is not a JSON
// object, or has no "post" key, is reported as ErrPostRequired. Non-string
// post values are used in their JSON text form; null becomes "".
func ParseModerationRequest(body []byte) (*ModerationRequest, error) {
	root, ok := parseObject(body)
	if !ok {
		return nil, ErrPostRequired
	}

	post := root.Get("post")
	if !post.Exists() {
		return nil, ErrPostRequired
	}
	return &ModerationRequest{Post: post.String()}, nil
}

// parseObject returns the body as a gjson object, or false when the body is
// empty, malformed, or not a non-empty object.
func parseObject(body []byte) (gjson.Result, bool) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return gjson.Result{}, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, false
	}
	return root, true
}
