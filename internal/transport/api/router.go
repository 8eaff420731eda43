package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/ecoledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	OTPRoute       = "/auth/otp"
	OTPVerifyRoute = "/auth/otp/verify"

	EcopacketScanRoute  = "/iot/ecopacket/scan"
	EcopacketBatchRoute = "/iot/ecopacket/scan/batch"
	BarcodeScanRoute    = "/iot/barcode/scan"
	BarcodeBatchRoute   = "/iot/barcode/scan/batch"
	UniversalScanRoute  = "/iot/scan"

	CodeCheckRoute = "/codes/:code/check"

	ClaimRoute        = "/user/codes/claim"
	BalanceRoute      = "/user/balance"
	PostingsRoute     = "/user/postings"
	WithdrawalsRoute  = "/user/withdrawals"
	PayMeRoute        = "/user/payme"
	ApplicationsRoute = "/user/applications"

	AdminPayOutRoute             = "/admin/payouts"
	AdminWithdrawalPaidRoute     = "/admin/payme/:id/paid"
	AdminWithdrawalRejectRoute   = "/admin/payme/:id/reject"
	AdminApplicationApproveRoute = "/admin/applications/:id/approve"
	AdminApplicationRejectRoute  = "/admin/applications/:id/reject"
	AdminApplicationStatusRoute  = "/admin/applications/:id/status"
	AdminPenaltyRoute            = "/admin/postings/:id/penalty"
	AdminCategoriesRoute         = "/admin/categories"
	AdminCollectionPointsRoute   = "/admin/collection-points"
	AdminCodesRoute              = "/admin/codes"
	AdminReconcileRoute          = "/admin/accounts/:id/reconcile"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	AuthService       AuthServicer
	SettlementService SettlementServicer
	LedgerService     LedgerServicer
	WithdrawalService WithdrawalServicer
	PenaltyService    PenaltyServicer
	CodeService       CodeServicer
	CatalogService    CatalogServicer
	JWTSecretKey      []byte
	DeviceAPIKey      string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics(), middlewares.Errors())

	authHandler := NewAuthHandler(args.AuthService)
	settlementHandler := NewSettlementHandler(args.SettlementService)
	codeHandler := NewCodeHandler(args.CodeService)
	ledgerHandler := NewLedgerHandler(args.LedgerService)
	withdrawalHandler := NewWithdrawalHandler(args.WithdrawalService)
	adminHandler := NewAdminHandler(args.PenaltyService, args.CatalogService)

	api := r.Group(RouteGroup)

	api.POST(OTPRoute, authHandler.RequestOTP)
	api.POST(OTPVerifyRoute, authHandler.VerifyOTP)
	api.GET(CodeCheckRoute, codeHandler.Check)

	device := api.Group("", middlewares.DeviceKeyRequired(args.DeviceAPIKey))
	device.POST(EcopacketScanRoute, settlementHandler.ScanEcopacket)
	device.POST(EcopacketBatchRoute, settlementHandler.ScanEcopacketBatch)
	device.POST(BarcodeScanRoute, settlementHandler.ScanBarcode)
	device.POST(BarcodeBatchRoute, settlementHandler.ScanBarcodeBatch)
	device.POST(UniversalScanRoute, settlementHandler.ScanAny)

	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.POST(ClaimRoute, codeHandler.Claim)
	user.GET(BalanceRoute, ledgerHandler.Balance)
	user.GET(PostingsRoute, ledgerHandler.Postings)
	user.GET(WithdrawalsRoute, ledgerHandler.Withdrawals)
	user.POST(PayMeRoute, withdrawalHandler.PayMe)
	user.POST(ApplicationsRoute, withdrawalHandler.CreateApplication)

	// ниже маршруты только для администраторов.
	admin := user.Group("", middlewares.AdminRequired())
	admin.POST(AdminPayOutRoute, withdrawalHandler.PayOut)
	admin.PATCH(AdminWithdrawalPaidRoute, withdrawalHandler.MarkPaid)
	admin.PATCH(AdminWithdrawalRejectRoute, withdrawalHandler.Reject)
	admin.POST(AdminApplicationApproveRoute, withdrawalHandler.ApproveApplication)
	admin.POST(AdminApplicationRejectRoute, withdrawalHandler.RejectApplication)
	admin.PATCH(AdminApplicationStatusRoute, withdrawalHandler.ApplicationStatus)
	admin.POST(AdminPenaltyRoute, adminHandler.Penalty)
	admin.POST(AdminCategoriesRoute, adminHandler.CreateCategory)
	admin.POST(AdminCollectionPointsRoute, adminHandler.CreateCollectionPoint)
	admin.POST(AdminCodesRoute, codeHandler.CreateCodes)
	admin.GET(AdminReconcileRoute, ledgerHandler.Reconcile)

	return r, nil
}
