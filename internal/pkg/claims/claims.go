// Package claims serves the fixed sample claims shown on the claims page.
package claims

import "time"

const (
	StatusApproved   = "Approved"
	StatusProcessing = "Processing"
	StatusDenied     = "Denied"
)

type Claim struct {
	ID          string
	ClaimNumber string
	Date        time.Time
	Description string
	Status      string
	Amount      string
	Documents   []string
}

// StatusClass returns the badge class for the claim status.
func (c Claim) StatusClass() string {
	return StatusClass(c.Status)
}

// FormattedDate renders the claim date like "Sep 10, 2024".
func (c Claim) FormattedDate() string {
	return c.Date.Format("Jan 2, 2006")
}

func StatusClass(status string) string {
	switch status {
	case StatusApproved:
		return "badge-approved"
	case StatusProcessing:
		return "badge-processing"
	case StatusDenied:
		return "badge-denied"
	default:
		return "badge-unknown"
	}
}

// Sample returns the sample claims, newest first.
func Sample() []Claim {
	return []Claim{
		{
			ID:          "1",
			ClaimNumber: "CLM-28475",
			Date:        time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC),
			Description: "Water damage from burst pipe",
			Status:      StatusApproved,
			Amount:      "$3,200",
			Documents:   []string{"Insurance_Report.pdf", "Damage_Photos.zip"},
		},
		{
			ID:          "2",
			ClaimNumber: "CLM-31942",
			Date:        time.Date(2024, time.June, 22, 0, 0, 0, 0, time.UTC),
			Description: "Wind damage to roof",
			Status:      StatusProcessing,
			Amount:      "$5,750",
			Documents:   []string{"Contractor_Estimate.pdf", "Roof_Photos.jpg"},
		},
		{
			ID:          "3",
			ClaimNumber: "CLM-29103",
			Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			Description: "Theft of personal property",
			Status:      StatusDenied,
			Amount:      "$1,800",
			Documents:   []string{"Police_Report.pdf"},
		},
	}
}
