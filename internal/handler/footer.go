package handler

import (
	"net/http"

	"github.com/Sugatraj/password-generator/internal/service"
)

// FooterHandler serves the developer credit footer.
type FooterHandler struct {
	service *service.FooterService
}

// NewFooterHandler creates a new FooterHandler.
func NewFooterHandler(svc *service.FooterService) *FooterHandler {
	return &FooterHandler{service: svc}
}

// HandleFooter handles GET /api/v1/footer requests.
func (h *FooterHandler) HandleFooter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Footer())
}
