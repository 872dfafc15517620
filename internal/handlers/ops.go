package handlers

import (
	"errors"
	"net/http"
	"time"

	"catalog-manager/functions/internal/config"
	"catalog-manager/functions/internal/domain/catalog"
	"catalog-manager/functions/internal/httpjson"
	"catalog-manager/functions/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type OpsDeps struct {
	Cfg     config.Config
	Catalog *catalog.Service
}

type refreshMediaReq struct {
	ObjectPath string `json:"objectPath"` // e.g. "books/{bookId}/cover.jpg"
}

// NewOpsRouter serves the small operational surface next to the event
// handlers: health checks and manual media URL refresh (signed URLs expire,
// so support needs a way to re-issue one without re-uploading).
func NewOpsRouter(d OpsDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, map[string]any{
			"ok": true,
			"ts": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Post("/v1/media/refresh", func(w http.ResponseWriter, req *http.Request) {
		var body refreshMediaReq
		if err := httpjson.Read(req, &body); err != nil || body.ObjectPath == "" {
			httpjson.Error(w, http.StatusBadRequest, "objectPath is required")
			return
		}

		url, err := d.Catalog.Refresh(req.Context(), d.Cfg.StorageBucket, body.ObjectPath)
		if errors.Is(err, catalog.ErrBadRequest) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpjson.Write(w, http.StatusOK, map[string]any{"mediaUrl": url})
	})

	return r
}
