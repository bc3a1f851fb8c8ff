package dto

import (
	"net/http"
	"net/url"
	"salon/internal/domains/gateway/model"
	"salon/shared/constant"
)

// ForwardRequest is one inbound gateway call translated for the upstream.
type ForwardRequest struct {
	Action      model.Action
	Query       url.Values
	Body        []byte
	ContentType string
	RequestID   string
}

// FromRequest captures everything the upstream needs from r. The body is read by the
// caller so size limits stay in the handler.
func FromRequest(action model.Action, r *http.Request, body []byte) ForwardRequest {
	contentType := r.Header.Get(constant.RequestHeaderContentType)
	if contentType == "" {
		contentType = constant.ContentTypeJSON
	}

	requestID, _ := r.Context().Value(constant.ContextKeyRequestID).(string)

	return ForwardRequest{
		Action:      action,
		Query:       r.URL.Query(),
		Body:        body,
		ContentType: contentType,
		RequestID:   requestID,
	}
}

// UpstreamURL appends the action and the caller's query to base. The action always wins
// over a caller supplied `action` parameter.
func (f ForwardRequest) UpstreamURL(base string) (string, error) {
	target, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	query := target.Query()
	for key, values := range f.Query {
		if key == constant.RequestParamAction {
			continue
		}

		query[key] = append([]string(nil), values...)
	}

	query.Set(constant.RequestParamAction, f.Action.String())
	target.RawQuery = query.Encode()

	return target.String(), nil
}
