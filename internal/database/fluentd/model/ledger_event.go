package model

// LedgerEvent 每次 OR ledger mutation 成功或失敗都送一筆
type LedgerEvent struct {
	RequestID       string   `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Op              string   `bson:"op" json:"op"`
	TechnicalUnitID string   `bson:"technical_unit_id" json:"technical_unit_id"`
	Category        string   `bson:"category,omitempty" json:"category,omitempty"`
	EmployeeIDs     []string `bson:"employee_ids,omitempty" json:"employee_ids,omitempty"`
	Inserted        int      `bson:"inserted" json:"inserted"`
	Deleted         int      `bson:"deleted" json:"deleted"`
	Reordered       int      `bson:"reordered" json:"reordered"`
	Skipped         int      `bson:"skipped,omitempty" json:"skipped,omitempty"`
	Result          string   `bson:"result" json:"result"`
	Error           string   `bson:"error,omitempty" json:"error,omitempty"`
	Version         string   `bson:"version" json:"version"`
	LoggedAt        string   `bson:"logged_at" json:"logged_at"`
}
