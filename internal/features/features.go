package features

import (
	"errors"
	"net/url"
	"strings"
)

// FieldCount is the number of fields in a Record, reported to clients as
// features_analyzed.
const FieldCount = 5

var ErrInvalidURL = errors.New("invalid URL")

// Record is the fixed-shape feature vector sent to the classifier.
type Record struct {
	HasUsername     bool `json:"has_username"`
	HasQueryParams  bool `json:"has_query_params"`
	URLLength       int  `json:"url_length"`
	HasSpecialChars int  `json:"has_special_chars"`
	Platform        int  `json:"platform"`
}

const specialChars = "!@#$%^&*"

// PlatformCode maps a platform label to its numeric code. Unrecognized
// labels fall into the generic 0 bucket.
func PlatformCode(platform string) int {
	switch platform {
	case "instagram":
		return 1
	case "linkedin":
		return 2
	default:
		return 0
	}
}

// Extract derives the feature record for a profile URL. It is pure and
// deterministic; the only failure mode is a malformed URL.
func Extract(rawURL, platform string) (Record, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Record{}, ErrInvalidURL
	}

	rec := Record{
		HasUsername:    len(u.Path) > 1,
		HasQueryParams: u.RawQuery != "",
		URLLength:      len(rawURL),
		Platform:       PlatformCode(platform),
	}
	if strings.ContainsAny(rawURL, specialChars) {
		rec.HasSpecialChars = 1
	}
	return rec, nil
}
