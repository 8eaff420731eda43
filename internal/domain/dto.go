package domain

type RoleType string

const (
	RolePopulation RoleType = "population"
	RoleAgent      RoleType = "agent"
	RoleAdmin      RoleType = "admin"
)

// CodeFamily семейство кодов. У каждого семейства свое пространство кодов и свой способ определения сдавшего.
type CodeFamily string

const (
	// CodeFamilyEcopacket коды экопакетов, заранее привязываемые к пользователю.
	CodeFamilyEcopacket CodeFamily = "ecopacket"
	// CodeFamilyBarcode штрихкоды тары (flask). Сдавший определяется по номеру телефона в запросе.
	CodeFamilyBarcode CodeFamily = "barcode"
)

func (f CodeFamily) Valid() bool {
	return f == CodeFamilyEcopacket || f == CodeFamilyBarcode
}

type CheckResult string

const (
	CheckResultEcopacket CheckResult = "ecopacket"
	CheckResultBarcode   CheckResult = "barcode"
	CheckResultNotFound  CheckResult = "not_found"
)

type WithdrawalKind string

const (
	WithdrawalKindPayOut      WithdrawalKind = "payout"
	WithdrawalKindPayMe       WithdrawalKind = "payme"
	WithdrawalKindApplication WithdrawalKind = "application"
)

type WithdrawalState string

const (
	WithdrawalStatePending  WithdrawalState = "pending"
	WithdrawalStateApproved WithdrawalState = "approved"
	WithdrawalStateRejected WithdrawalState = "rejected"
	WithdrawalStatePaid     WithdrawalState = "paid"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusInWay     ApplicationStatus = "in_way"
	ApplicationStatusDelivered ApplicationStatus = "delivered"
)

// applicationTransitions допустимые переходы статусов заявки после одобрения.
var applicationTransitions = map[ApplicationStatus]ApplicationStatus{
	ApplicationStatusApproved: ApplicationStatusInWay,
	ApplicationStatusInWay:    ApplicationStatusDelivered,
}

// CanAdvanceTo проверяет, что заявку можно перевести в статус next.
func (s ApplicationStatus) CanAdvanceTo(next ApplicationStatus) bool {
	allowed, ok := applicationTransitions[s]
	return ok && allowed == next
}

type PaymentType string

const (
	PaymentTypeCash PaymentType = "cash"
	PaymentTypeCard PaymentType = "card"
)
