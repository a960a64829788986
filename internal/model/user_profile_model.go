package model

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// UserProfile mirrors the profile document the platform sends along with a
// chatbot request. Every field is optional; numeric fields coming from the
// profile store (years) are kept as text.
type UserProfile struct {
	FullName       string        `json:"fullName"`
	Role           string        `json:"role"`
	Bio            string        `json:"bio"`
	Branch         string        `json:"branch"`
	GraduationYear string        `json:"graduationYear"`
	Location       string        `json:"location"`
	JobTitle       string        `json:"jobTitle"`
	Skills         []string      `json:"skills"`
	Experiences    []Experience  `json:"experiences"`
	Achievements   []Achievement `json:"achievements"`
	Education      []Education   `json:"education"`
}

type Experience struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description"`
}

type Achievement struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// DecodeUserProfile converts a loosely typed profile value into a
// UserProfile. Empty values (null, "", false, 0, empty list or object) yield
// a nil profile; any other non-object value is an error.
func DecodeUserProfile(raw any) (*UserProfile, error) {
	if isEmptyValue(raw) {
		return nil, nil
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid user_profile: expected an object, got %T", raw)
	}

	var profile UserProfile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, fmt.Errorf("invalid user_profile: %w", err)
	}
	return &profile, nil
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
