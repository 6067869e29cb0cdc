package salary

import (
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/award"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus"
)

// ResolvedItem is one bonus application or award grant folded into a record,
// kept for payslip breakdowns.
type ResolvedItem struct {
	Kind        string `json:"kind"` // BONUS or AWARD
	RefID       string `json:"ref_id"`
	Name        string `json:"name,omitempty"`
	AmountMinor int64  `json:"amount_minor"`
}

// ResolveBonusAwards aggregates the period's APPLIED bonus applications and
// PENDING award grants. Pure: it never touches status, the orchestrator flips
// both to PAID only after the payout lands.
func ResolveBonusAwards(applications []bonus.BonusApplication, grants []award.EmployeeAward) (bonusMinor, awardMinor int64, items []ResolvedItem) {
	for _, app := range applications {
		if app.Status != bonus.StatusApplied {
			continue
		}
		bonusMinor += app.AmountMinor
		items = append(items, ResolvedItem{
			Kind:        "BONUS",
			RefID:       app.ID.String(),
			AmountMinor: app.AmountMinor,
		})
	}

	for _, g := range grants {
		if g.Status != award.StatusPending {
			continue
		}
		awardMinor += g.AmountMinor
		items = append(items, ResolvedItem{
			Kind:        "AWARD",
			RefID:       g.ID.String(),
			AmountMinor: g.AmountMinor,
		})
	}

	return bonusMinor, awardMinor, items
}
