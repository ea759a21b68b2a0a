package rest

import (
	"net/http"

	"rwrd/core"
	"rwrd/handler/param"
	"rwrd/handler/render"
)

// response recent transfers, newest first
func transfersHandler(transferStr core.ITransferStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Limit int `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		transfers, e := transferStr.Top(ctx, limit)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, transfers)
	}
}
