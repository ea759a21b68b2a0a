package rest

import (
	"net/http"

	"rwrd/core"
	"rwrd/handler/param"
	"rwrd/handler/render"
	"rwrd/handler/views"
)

func poolHandler(poolStr core.IPoolStore, poolSrv core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			AssetID string `json:"asset_id"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		if params.AssetID == "" {
			pools, e := poolStr.All(ctx)
			if e != nil {
				render.BadRequest(w, e)
				return
			}

			poolViews := make([]*views.Pool, 0, len(pools))
			for _, p := range pools {
				poolViews = append(poolViews, views.NewPool(p, poolSrv))
			}

			render.JSON(w, poolViews)
			return
		}

		pool, e := poolStr.Find(ctx, params.AssetID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		if pool.ID == 0 {
			render.Code(w, core.ErrPoolNotFound)
			return
		}

		render.JSON(w, views.NewPool(pool, poolSrv))
	}
}

func ratesHandler(poolStr core.IPoolStore, poolSrv core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			AssetID string `json:"asset_id"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		pool, e := poolStr.Find(ctx, params.AssetID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		if pool.ID == 0 {
			render.Code(w, core.ErrPoolNotFound)
			return
		}

		render.JSON(w, views.NewRates(pool, poolSrv))
	}
}
