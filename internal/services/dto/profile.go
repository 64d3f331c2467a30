package dto

import (
	"encoding/json"
	"strings"
	"time"

	"jobboard_backend/internal/models"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string, which clients sending form-built payloads use.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*s = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*s = out
	return nil
}

type SaveProfileRequest struct {
	Bio        string     `json:"bio"`
	Skills     StringList `json:"skills"`
	Resume     string     `json:"resume"`
	Experience string     `json:"experience"`
}

type ProfileResponse struct {
	ID         models.ProfileID `json:"id"`
	UserID     models.UserID    `json:"user_id"`
	Bio        string           `json:"bio"`
	Skills     []string         `json:"skills"`
	Resume     string           `json:"resume"`
	Experience string           `json:"experience"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
