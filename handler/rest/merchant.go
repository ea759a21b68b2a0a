package rest

import (
	"net/http"

	"rwrd/core"
	"rwrd/handler/render"

	"github.com/go-chi/chi"
)

func merchantHandler(merchantSrv core.IMerchantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		merchant, e := merchantSrv.Find(ctx, chi.URLParam(r, "id"))
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		if merchant.ID == 0 {
			render.Code(w, core.ErrMerchantNotFound)
			return
		}

		render.JSON(w, merchant)
	}
}
