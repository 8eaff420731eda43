package domain

import (
	"time"
)

type User struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PhoneNumber string
	Role        RoleType
	IsActive    bool
}

// Account денежный счет пользователя. Баланс хранится в минимальных единицах валюты и никогда не
// бывает отрицательным.
type Account struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Balance   int64
}

type Category struct {
	ID                  int64
	CreatedAt           time.Time
	Name                string
	PayoutAmount        int64
	IgnoreOperatorSplit bool
}

// CollectionPoint точка сбора (бокс). OperatorUserID может отсутствовать, тогда вся сумма уходит сдавшему.
type CollectionPoint struct {
	ID                       int64
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Name                     string
	SimModule                string
	OperatorUserID           *int64
	CommissionPercent        int64
	CumulativeOperatorShare  int64
	IsFandomat               bool
	AdvanceCapacityRemaining int64
}

// HasOperator сообщает, закреплен ли за точкой оператор.
func (c *CollectionPoint) HasOperator() bool {
	return c.OperatorUserID != nil
}

type ScanCode struct {
	ID                int64
	CreatedAt         time.Time
	Family            CodeFamily
	Code              string
	CategoryID        *int64
	OwnerUserID       *int64
	CollectionPointID *int64
	ClaimedAt         *time.Time
	ConsumedAt        *time.Time
}

func (s *ScanCode) IsConsumed() bool {
	return s.ConsumedAt != nil
}

// Posting запись леджера. После создания может быть изменена только один раз - при наложении штрафа.
type Posting struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AccountID         int64
	Amount            int64
	Label             string
	CollectionPointID *int64
	ScanCodeID        *int64
	IsPenalty         bool
	PenaltyAmount     int64
	Reason            string
}

type WithdrawalRequest struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AccountID     int64
	Kind          WithdrawalKind
	Amount        int64
	State         WithdrawalState
	Card          string
	CardName      string
	AdminUserID   *int64
	ApplicationID *int64
}

type Application struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AgentUserID       int64
	CollectionPointID int64
	Amount            int64
	PaymentType       PaymentType
	ContainersCount   int64
	Comment           string
	Status            ApplicationStatus
	RejectedReason    string
	ReviewedBy        *int64
}

type ScanCheckLog struct {
	ID        int64
	CreatedAt time.Time
	Code      string
	IP        string
	UserAgent string
	Result    CheckResult
	Exists    bool
}
