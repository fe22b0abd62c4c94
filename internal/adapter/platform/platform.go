// Package platform holds one outbound adapter per ad network. Each adapter
// maps a generated plan onto its network's campaign shape, allocates that
// network's share of the daily budget and reports the created campaign back.
//
// Real API integration is not wired; with mock mode on (or when a network's
// credentials are absent) the adapter logs the request payload and mints a
// mock platform campaign id.
package platform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Fixed shares of the plan's daily budget, summing to 1.0.
const (
	googleBudgetShare = 0.4
	metaBudgetShare   = 0.4
	amazonBudgetShare = 0.2
)

// mockCampaignID mints an external-looking campaign id for mock mode.
func mockCampaignID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
