package dto

import (
	"salon/internal/domains/booking/model"
	"salon/shared"
	"strings"
)

const (
	resultSuccess  = "success"
	unknownMessage = "unknown"
)

// ContactInfo is what the customer types in next to the selection.
type ContactInfo struct {
	CustomerName string `json:"customerName" validate:"notblank,max=100"`
	Phone        string `json:"phone"        validate:"notblank,max=20"`
	Email        string `json:"email"        validate:"omitempty,email,max=100"`
	Notes        string `json:"notes"        validate:"max=1000"`
	ImageData    string `json:"imageData"    validate:"omitempty,mimetypes=image/png image/jpeg image/webp image/gif,maxfilesize=5"`
}

// Trimmed drops surrounding whitespace from every typed field.
func (c ContactInfo) Trimmed() ContactInfo {
	return ContactInfo{
		CustomerName: strings.TrimSpace(c.CustomerName),
		Phone:        strings.TrimSpace(c.Phone),
		Email:        strings.TrimSpace(c.Email),
		Notes:        strings.TrimSpace(c.Notes),
		ImageData:    c.ImageData,
	}
}

// HasRequired reports whether name and phone are present.
func (c ContactInfo) HasRequired() bool {
	return strings.TrimSpace(c.CustomerName) != "" && strings.TrimSpace(c.Phone) != ""
}

// BookingRequest is the upstream payload. It is only built at submit time.
type BookingRequest struct {
	Action       string  `json:"action"`
	DateStr      string  `json:"dateStr"`
	TimeStr      string  `json:"timeStr"`
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	Price        int     `json:"price"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Notes        string  `json:"notes"`
	ImageData    *string `json:"imageData"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

func NewBookingRequest(sel model.Selection, service model.ServiceOption, contact ContactInfo) BookingRequest {
	req := BookingRequest{
		Action:       model.ActionCreateBooking,
		DateStr:      sel.Date,
		TimeStr:      sel.Time,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		Price:        service.Price,
		CustomerName: contact.CustomerName,
		Phone:        contact.Phone,
		Email:        contact.Email,
		Notes:        contact.Notes,
	}

	if contact.ImageData != "" {
		imageData := contact.ImageData
		req.ImageData = &imageData
	}

	return req
}

// WithImageURL replaces the inline image with a stored copy.
func (r BookingRequest) WithImageURL(url string) BookingRequest {
	r.ImageData = nil
	r.ImageURL = url

	return r
}

// UpstreamReply accepts both reply conventions: {ok, msg} from the gateway binding and
// {result, message} from the direct binding.
type UpstreamReply struct {
	OK      *bool  `json:"ok"`
	Msg     string `json:"msg"`
	Result  string `json:"result"`
	Message string `json:"message"`
}

// ToResult normalizes the reply. An explicit ok wins; otherwise result must be "success".
func (r UpstreamReply) ToResult() model.BookingResult {
	success := r.Result == resultSuccess
	if r.OK != nil {
		success = *r.OK
	}

	if success {
		return model.BookingResult{OK: true}
	}

	return model.BookingResult{OK: false, Message: shared.FirstNonEmpty(r.Msg, r.Message, unknownMessage)}
}
