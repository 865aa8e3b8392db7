package entities

import (
	"strings"
	"time"

	"ruleset/internal/shared/round"
)

type AssetType string

const (
	AssetTypeRule     AssetType = "rule"
	AssetTypeSkill    AssetType = "skill"
	AssetTypeAgent    AssetType = "agent"
	AssetTypeWorkflow AssetType = "workflow"
)

// ListingMetrics is the telemetry bundle reported for a listing.
// Percentage fields are clamped to [0,100] at the producer edge (seed loader,
// store constructor); scoring clamps its derived values again defensively.
type ListingMetrics struct {
	SuccessRate      float64
	AvgSetupMinutes  float64
	ReuseRate        float64
	SupportScore     float64
	RefundRate       float64
	Adoption30d      int
	IssuesPer100Runs float64
}

type Listing struct {
	ListingID   string
	SellerID    string
	Title       string
	Description string
	Type        AssetType
	PriceUSD    float64
	Tags        []string
	CreatedAt   time.Time
	Likes       int
	Metrics     ListingMetrics
}

func IsSupportedAssetType(value AssetType) bool {
	switch value {
	case AssetTypeRule, AssetTypeSkill, AssetTypeAgent, AssetTypeWorkflow:
		return true
	default:
		return false
	}
}

// MatchesQuery reports whether the listing text matches a lowercase free-text
// query. An empty query matches everything.
func (l Listing) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(l.Title + " " + l.Description + " " + strings.Join(l.Tags, " "))
	return strings.Contains(haystack, q)
}

func (l Listing) MatchesType(assetType AssetType) bool {
	return assetType == "" || l.Type == assetType
}

// Normalized clamps percentage metrics to [0,100] and counters to >= 0.
func (m ListingMetrics) Normalized() ListingMetrics {
	out := m
	out.SuccessRate = round.Clamp(m.SuccessRate, 0, 100)
	out.ReuseRate = round.Clamp(m.ReuseRate, 0, 100)
	out.SupportScore = round.Clamp(m.SupportScore, 0, 100)
	out.RefundRate = round.Clamp(m.RefundRate, 0, 100)
	if out.AvgSetupMinutes < 0 {
		out.AvgSetupMinutes = 0
	}
	if out.IssuesPer100Runs < 0 {
		out.IssuesPer100Runs = 0
	}
	if out.Adoption30d < 0 {
		out.Adoption30d = 0
	}
	return out
}
