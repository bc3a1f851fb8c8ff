package response

import (
	"encoding/json"
	"net/http"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/logger"
)

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Envelope is the body every gateway error is reported with.
type Envelope struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
	Err string `json:"err,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends payload as the whole response body.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithEnvelope reports err as {ok:false,msg} with the failure status code.
func WithEnvelope(writer http.ResponseWriter, err error) {
	withGatewayHeaders(writer)
	response(writer, failure.GetCode(err), Envelope{OK: false, Msg: err.Error()})
}

// WithEnvelopeDetail is WithEnvelope with the underlying cause attached.
func WithEnvelopeDetail(writer http.ResponseWriter, code int, msg string, cause error) {
	env := Envelope{OK: false, Msg: msg}
	if cause != nil {
		env.Err = cause.Error()
	}

	withGatewayHeaders(writer)
	response(writer, code, env)
}

// WithUpstream writes an upstream JSON body unchanged.
func WithUpstream(writer http.ResponseWriter, code int, body []byte) {
	withGatewayHeaders(writer)
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithPreflight answers a CORS preflight with no body.
func WithPreflight(writer http.ResponseWriter) {
	withGatewayHeaders(writer)
	writer.Header().Set(constant.RequestHeaderAllowMethods, constant.CORSAllowedMethods)
	writer.Header().Set(constant.RequestHeaderAllowHeaders, constant.CORSAllowedHeaders)
	writer.WriteHeader(http.StatusNoContent)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func withGatewayHeaders(writer http.ResponseWriter) {
	writer.Header().Set(constant.RequestHeaderAllowOrigin, constant.CORSAllowAll)
	writer.Header().Set(constant.RequestHeaderCacheControl, constant.CacheControlNoStore)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
