package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"newsd/internal/providers"
	"newsd/internal/services"
)

type VisitController struct {
	logger  providers.Logger
	service services.VisitorServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewVisitController(logger providers.Logger, service services.VisitorServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *VisitController {
	return &VisitController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

type visitResponse struct {
	Counted bool           `json:"counted"`
	Total   int            `json:"total"`
	ByOS    map[string]int `json:"by_os"`
}

func (vc *VisitController) RecordVisit(w http.ResponseWriter, r *http.Request) {
	result, err := vc.service.RecordVisit(
		cookieValue(r, "visitor_id"),
		cookieValue(r, "last_visit"),
		r.Header.Get("User-Agent"),
	)
	if err != nil {
		vc.logger.Errorf(providers.TypePost, "Record visit failed: %s", err)
		writeError(w, err)
		return
	}

	if result.Counted {
		vc.metrics.IncVisits(result.OS)
		http.SetCookie(w, &http.Cookie{
			Name:     "visitor_id",
			Value:    result.VisitorID,
			MaxAge:   365 * 24 * 3600,
			Path:     "/",
			HttpOnly: true,
		})
		http.SetCookie(w, &http.Cookie{
			Name:     "last_visit",
			Value:    result.Today,
			MaxAge:   24 * 3600,
			Path:     "/",
			HttpOnly: true,
		})
	}

	writeJSON(w, http.StatusOK, visitResponse{
		Counted: result.Counted,
		Total:   result.Total,
		ByOS:    result.ByOS,
	})
}

func (vc *VisitController) GetStats(w http.ResponseWriter, r *http.Request) {
	vc.serveFromCacheOrCompute(w, "stats", func() (any, error) {
		return vc.service.Stats()
	})
}

func (vc *VisitController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := vc.cache.Get(cacheKey); ok {
		vc.metrics.IncCacheHits()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	vc.metrics.IncCacheMisses()

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
