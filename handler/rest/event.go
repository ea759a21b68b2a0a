package rest

import (
	"net/http"

	"rwrd/core"
	"rwrd/handler/param"
	"rwrd/handler/render"
	"rwrd/handler/views"
)

// response the event stream, paged by id
func eventsHandler(eventStr core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Offset int64 `json:"offset"`
			Limit  int   `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > 500 {
			limit = 500
		}

		events, e := eventStr.List(ctx, params.Offset, limit)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		eventViews := make([]*views.Event, 0, len(events))
		for _, event := range events {
			eventViews = append(eventViews, views.NewEvent(event))
		}

		render.JSON(w, eventViews)
	}
}
