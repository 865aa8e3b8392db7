package sla

import (
	"sort"

	"ruleset/contexts/marketplace-core/messaging-service/domain/entities"
	"ruleset/internal/shared/round"
)

const onTimeThresholdHours = 24.0

// SellerSLAStat is a seller user's responsiveness summary. It is derived on
// demand from the message history and never persisted.
type SellerSLAStat struct {
	SellerUserID          string
	Conversations         int
	AvgFirstResponseHours float64
	OnTimeRatePercent     float64
}

// Compute derives responsiveness stats from the full message history touching
// the seller user. Every inbound message counts as a conversation; only
// inbound messages with a reply contribute response-time samples. The reply is
// the earliest later message on the same listing sent by the seller back to
// the original sender.
func Compute(sellerUserID string, history []entities.Message) SellerSLAStat {
	all := append([]entities.Message(nil), history...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SentAt.Before(all[j].SentAt)
	})

	stat := SellerSLAStat{SellerUserID: sellerUserID}
	replied := 0
	onTime := 0
	totalHours := 0.0

	for _, incoming := range all {
		if incoming.RecipientUserID != sellerUserID {
			continue
		}
		stat.Conversations++
		for _, candidate := range all {
			if candidate.ListingID != incoming.ListingID ||
				candidate.SenderUserID != sellerUserID ||
				candidate.RecipientUserID != incoming.SenderUserID ||
				!candidate.SentAt.After(incoming.SentAt) {
				continue
			}
			hours := candidate.SentAt.Sub(incoming.SentAt).Hours()
			replied++
			totalHours += hours
			if hours <= onTimeThresholdHours {
				onTime++
			}
			break
		}
	}

	if replied > 0 {
		stat.AvgFirstResponseHours = round.To2(totalHours / float64(replied))
		stat.OnTimeRatePercent = round.To2(float64(onTime) / float64(replied) * 100)
	}
	return stat
}
