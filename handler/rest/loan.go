package rest

import (
	"net/http"
	"time"

	"rwrd/core"
	"rwrd/handler/param"
	"rwrd/handler/render"
	"rwrd/handler/views"
	"rwrd/pkg/lending"
	"rwrd/pkg/number"

	"github.com/go-chi/chi"
)

// response all loans of one merchant, outstanding computed at read time
func loansHandler(loanStr core.ILoanStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		merchantID := chi.URLParam(r, "merchant")
		loans, e := loanStr.FindByMerchant(ctx, merchantID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		now := time.Now().Unix()
		loanViews := make([]*views.Loan, 0, len(loans))
		for _, l := range loans {
			loanViews = append(loanViews, views.NewLoan(l, lending.OutstandingAmount(l, now)))
		}

		render.JSON(w, loanViews)
	}
}

func createBorrowHandler(loanSrv core.ILoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			MerchantID string        `json:"merchant_id"`
			AssetID    string        `json:"asset_id"`
			Amount     number.Uint64 `json:"amount"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		loan, e := loanSrv.Borrow(ctx, params.MerchantID, params.AssetID, uint64(params.Amount))
		if e != nil {
			render.Code(w, e)
			return
		}

		render.JSON(w, views.NewLoan(loan, lending.OutstandingAmount(loan, time.Now().Unix())))
	}
}

func createRepaymentHandler(loanSrv core.ILoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			MerchantID string        `json:"merchant_id"`
			AssetID    string        `json:"asset_id"`
			Amount     number.Uint64 `json:"amount"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		loan, e := loanSrv.Repay(ctx, params.MerchantID, params.AssetID, uint64(params.Amount))
		if e != nil {
			render.Code(w, e)
			return
		}

		render.JSON(w, views.NewLoan(loan, lending.OutstandingAmount(loan, time.Now().Unix())))
	}
}
