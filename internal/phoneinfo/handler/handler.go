package handler

import (
	"strings"

	"phone_info_backend/internal/phoneinfo/service"
	"phone_info_backend/internal/phoneinfo/transport"
	"phone_info_backend/platform/apperr"
	"phone_info_backend/platform/httpkit"
	"phone_info_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the phone lookup endpoints.
type Handler struct {
	svc           *service.Service
	val           *validator.Validator
	defaultRegion string
}

// New creates the handler. defaultRegion is used when the caller supplies no
// default_region parameter.
func New(svc *service.Service, val *validator.Validator, defaultRegion string) *Handler {
	return &Handler{svc: svc, val: val, defaultRegion: defaultRegion}
}

// Lookup handles GET /phone-info?phone_number=...&default_region=...
// All outcomes, including errors, are delivered with HTTP 200; the body
// distinguishes success from the typed error taxonomy.
func (h *Handler) Lookup(c *gin.Context) {
	var req transport.LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.OK(c, transport.ErrorResponse{
			Error:  apperr.KindInvalidFormat.Label(),
			Detail: "query parameter 'phone_number' is required",
		})
		return
	}

	region := strings.ToUpper(strings.TrimSpace(req.DefaultRegion))
	if region == "" {
		region = h.defaultRegion
	}
	if err := h.val.Var(region, "len=2,alpha"); err != nil {
		httpkit.OK(c, transport.ErrorResponse{
			Error:  apperr.KindInvalidFormat.Label(),
			Detail: "default_region must be a two-letter region code",
		})
		return
	}

	result, err := h.svc.Lookup(c.Request.Context(), req.PhoneNumber, region)
	if err != nil {
		httpkit.OK(c, transport.FromError(err))
		return
	}

	httpkit.OK(c, transport.FromResult(result))
}

// Types handles GET /phone-types: the wire-code to type-name mapping.
func (h *Handler) Types(c *gin.Context) {
	httpkit.OK(c, h.svc.TypeNames())
}
