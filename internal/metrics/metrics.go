// Package metrics счетчики prometheus для денежных операций и HTTP.
package metrics

import (
	"strconv"
	"sync"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ecoledger"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	SettlementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement attempts by code family and result kind",
		},
		[]string{"family", "result"},
	)

	SettledAmountTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_amount_total",
			Help:      "Amount credited by settlements, minor units",
		},
		[]string{"party"}, // client|operator
	)

	WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Withdrawal requests by kind and result kind",
		},
		[]string{"kind", "result"},
	)

	PenaltiesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "penalties_total",
			Help:      "Penalty applications by result kind",
		},
		[]string{"result"},
	)

	OTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_requests_total",
			Help:      "OTP requests by result",
		},
		[]string{"result"},
	)
)

var Handler = promhttp.Handler

var initOnce sync.Once

// Init регистрирует метрики в стандартном реестре. Повторные вызовы ничего не делают.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			SettlementsTotal,
			SettledAmountTotal,
			WithdrawalsTotal,
			PenaltiesTotal,
			OTPRequestsTotal,
		)
	})
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return domain.ErrorKind(err)
}

func ObserveSettlement(family domain.CodeFamily, clientAmount, operatorAmount int64, err error) {
	SettlementsTotal.WithLabelValues(string(family), resultLabel(err)).Inc()
	if err != nil {
		return
	}
	SettledAmountTotal.WithLabelValues("client").Add(float64(clientAmount))
	SettledAmountTotal.WithLabelValues("operator").Add(float64(operatorAmount))
}

func ObserveWithdrawal(kind domain.WithdrawalKind, err error) {
	WithdrawalsTotal.WithLabelValues(string(kind), resultLabel(err)).Inc()
}

func ObservePenalty(err error) {
	PenaltiesTotal.WithLabelValues(resultLabel(err)).Inc()
}

func ObserveOTPRequest(result string) {
	OTPRequestsTotal.WithLabelValues(result).Inc()
}

func ObserveRequest(route, method string, status int) {
	RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}
