// Package transport defines the wire types for the phoneinfo module.
package transport

import (
	"errors"

	"phone_info_backend/internal/phoneinfo/service"
	"phone_info_backend/platform/apperr"
)

// LookupRequest represents the query parameters of GET /phone-info.
type LookupRequest struct {
	PhoneNumber   string `form:"phone_number" binding:"required"`
	DefaultRegion string `form:"default_region"`
}

// PhoneInfoResponse is the success payload.
type PhoneInfoResponse struct {
	CountryCode     int    `json:"country_code"`
	NationalNumber  uint64 `json:"national_number"`
	Country         string `json:"country"`
	Region          string `json:"region"`
	Carrier         string `json:"carrier"`
	Type            string `json:"type"`
	IsValid         bool   `json:"is_valid"`
	FormattedNumber string `json:"formatted_number"`
}

// ErrorResponse is the error payload; delivered with HTTP 200.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// FromResult maps a pipeline result to the wire format.
func FromResult(res *service.Result) PhoneInfoResponse {
	return PhoneInfoResponse{
		CountryCode:     res.CallingCode,
		NationalNumber:  res.NationalNumber,
		Country:         res.Country,
		Region:          res.Region,
		Carrier:         res.Carrier,
		Type:            res.TypeCode,
		IsValid:         res.IsValid,
		FormattedNumber: res.FormattedNumber,
	}
}

// FromError maps a pipeline error to the wire format. Untyped errors are
// reported with the internal label and a generic detail.
func FromError(err error) ErrorResponse {
	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		return ErrorResponse{
			Error:  domainErr.Kind.Label(),
			Detail: domainErr.Message,
		}
	}
	return ErrorResponse{
		Error:  apperr.KindInternal.Label(),
		Detail: "an unexpected error occurred while processing the phone number",
	}
}
