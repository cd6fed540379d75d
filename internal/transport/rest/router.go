package rest

import (
	"net/http"
)

// NewRouter registers all REST routes on a fresh ServeMux. Method-qualified
// patterns (Go 1.22 routing) keep dispatch in the mux instead of per-handler
// method switches.
func NewRouter(styles *StyleHandler, curation *CurationHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/styles/process", styles.ProcessFiles)
	mux.HandleFunc("GET /api/styles", styles.List)
	mux.HandleFunc("GET /api/styles/lookup", styles.Lookup)
	mux.HandleFunc("GET /api/styles/{id}", styles.Get)
	mux.HandleFunc("PATCH /api/styles/{id}", styles.Update)
	mux.HandleFunc("DELETE /api/styles/{id}", styles.Delete)

	mux.HandleFunc("POST /api/styles/{id}/pairs", curation.AddPair)
	mux.HandleFunc("PATCH /api/styles/{id}/pairs/{pairId}", curation.EditPair)
	mux.HandleFunc("DELETE /api/styles/{id}/pairs/{pairId}", curation.DeletePair)
	mux.HandleFunc("POST /api/styles/{id}/pairs/{pairId}/refine", curation.RefinePair)
	mux.HandleFunc("POST /api/styles/{id}/conflicts/{conflictId}/resolve", curation.ResolveConflict)
	mux.HandleFunc("POST /api/styles/{id}/conflicts/{conflictId}/unresolve", curation.UnresolveConflict)

	return mux
}
