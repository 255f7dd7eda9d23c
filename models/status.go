package models

// Report lifecycle codes. Every report starts as pending.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusInProgress = "in_progress"
	StatusRejected   = "rejected"
	StatusResolved   = "resolved"
)

type Status struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code string `gorm:"unique;not null;type:varchar(15)" json:"code"`
}

func (Status) TableName() string {
	return "status"
}

// StatusCodes lists every valid lifecycle code, in seed order.
var StatusCodes = []string{
	StatusPending,
	StatusApproved,
	StatusInProgress,
	StatusRejected,
	StatusResolved,
}
