package rest

import (
	"net/http"

	"rwrd/core"
	"rwrd/handler/param"
	"rwrd/handler/render"
	"rwrd/pkg/number"

	"github.com/go-chi/chi"
)

// response all deposit records of one user
func depositsHandler(depositStr core.IDepositStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := chi.URLParam(r, "user")
		deposits, e := depositStr.FindByUser(ctx, userID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, deposits)
	}
}

func createDepositHandler(depositSrv core.IDepositService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID  string        `json:"user_id"`
			AssetID string        `json:"asset_id"`
			Amount  number.Uint64 `json:"amount"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		deposit, e := depositSrv.Deposit(ctx, params.UserID, params.AssetID, uint64(params.Amount))
		if e != nil {
			render.Code(w, e)
			return
		}

		render.JSON(w, deposit)
	}
}

func createWithdrawalHandler(depositSrv core.IDepositService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID  string        `json:"user_id"`
			AssetID string        `json:"asset_id"`
			Amount  number.Uint64 `json:"amount"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		deposit, e := depositSrv.Withdraw(ctx, params.UserID, params.AssetID, uint64(params.Amount))
		if e != nil {
			render.Code(w, e)
			return
		}

		render.JSON(w, deposit)
	}
}
