package rest

import (
	"net/http"

	"rwrd/core"
	"rwrd/handler/param"
	"rwrd/handler/render"
	"rwrd/pkg/number"
)

func createPaymentHandler(paymentSrv core.IPaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			PayerID    string        `json:"payer_id"`
			MerchantID string        `json:"merchant_id"`
			AssetID    string        `json:"asset_id"`
			Amount     number.Uint64 `json:"amount"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		split, e := paymentSrv.Pay(ctx, params.PayerID, params.MerchantID, params.AssetID, uint64(params.Amount))
		if e != nil {
			render.Code(w, e)
			return
		}

		render.JSON(w, split)
	}
}
