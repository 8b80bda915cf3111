package entities

type FlaggedShop struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	Issues []HoursIssue `json:"issues"`
}

type AuditReport struct {
	Checked      int           `json:"checked"`
	Flagged      []FlaggedShop `json:"flagged"`
	NewlyFlagged int           `json:"newly_flagged"`
	Cleared      int           `json:"cleared"`
}
