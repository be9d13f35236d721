// Package phoneinfo provides the phone number information bounded context.
package phoneinfo

import (
	apphttp "phone_info_backend/internal/http"
	"phone_info_backend/internal/phoneinfo/handler"
	"phone_info_backend/internal/phoneinfo/service"
	"phone_info_backend/platform/config"
	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/validator"
)

// Module is the phoneinfo bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the phoneinfo module.
func NewModule(meta service.Metadata, cfg config.LookupConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(meta, log)
	h := handler.New(svc, val, cfg.GetDefaultRegion())

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "phoneinfo"
}

// Service returns the service layer for non-HTTP consumers (the phonecheck CLI).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the lookup routes at the engine root; the paths are
// part of the published API contract.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/phone-info", m.handler.Lookup)
	ctx.Engine.GET("/phone-types", m.handler.Types)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
