package rest

import (
	"errors"
	"net/http"

	"rwrd/core"
	"rwrd/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	poolStr core.IPoolStore,
	depositStr core.IDepositStore,
	loanStr core.ILoanStore,
	transferStr core.ITransferStore,
	eventStr core.IEventStore,
	poolSrv core.IPoolService,
	depositSrv core.IDepositService,
	paymentSrv core.IPaymentService,
	loanSrv core.ILoanService,
	merchantSrv core.IMerchantService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pool", poolHandler(poolStr, poolSrv))
	router.Get("/rates", ratesHandler(poolStr, poolSrv))
	router.Get("/deposits/{user}", depositsHandler(depositStr))
	router.Get("/loans/{merchant}", loansHandler(loanStr))
	router.Get("/merchants/{id}", merchantHandler(merchantSrv))
	router.Get("/transfers", transfersHandler(transferStr))
	router.Get("/events", eventsHandler(eventStr))

	router.Post("/deposits", createDepositHandler(depositSrv))
	router.Post("/withdrawals", createWithdrawalHandler(depositSrv))
	router.Post("/payments", createPaymentHandler(paymentSrv))
	router.Post("/borrows", createBorrowHandler(loanSrv))
	router.Post("/repayments", createRepaymentHandler(loanSrv))

	return router
}
