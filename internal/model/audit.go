package model

import "time"

// AuditAction names what happened to a bill.
type AuditAction string

const (
	AuditActionGenerate   AuditAction = "generate"
	AuditActionRegenerate AuditAction = "regenerate"
	AuditActionConfirm    AuditAction = "confirm"
	AuditActionPayment    AuditAction = "payment"
	AuditActionPaid       AuditAction = "paid"
)

// BillAuditLog records a status change or recalculation of a bill.
type BillAuditLog struct {
	ID         string      `json:"id"`
	BillID     string      `json:"bill_id"`
	Action     AuditAction `json:"action"`
	FromStatus BillStatus  `json:"from_status,omitempty"`
	ToStatus   BillStatus  `json:"to_status"`
	Operator   string      `json:"operator"`
	Remark     string      `json:"remark,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// AuditStats summarizes audit activity over a time range.
type AuditStats struct {
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	Total      int            `json:"total"`
	ByAction   map[string]int `json:"by_action"`
	ByOperator map[string]int `json:"by_operator"`
}
