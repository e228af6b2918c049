package utils

import (
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json"
)

// InternalErrorBody is the generic body sent when a response cannot be built.
const InternalErrorBody = "Internal Server Error"

// EncodeJSON marshals payload with sonic; output matches encoding/json.
func EncodeJSON(payload interface{}) ([]byte, error) {
	return sonic.ConfigStd.Marshal(payload)
}

// DecodeJSON is the sonic counterpart of json.Unmarshal.
func DecodeJSON(data []byte, v interface{}) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// Respond writes the status, Content-Type and body.
func Respond(w http.ResponseWriter, status int, contentType string, body []byte) error {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// RespondText sends a plain text response.
func RespondText(w http.ResponseWriter, status int, body string) error {
	return Respond(w, status, ContentTypeText, []byte(body))
}

// RespondHTML sends an HTML response.
func RespondHTML(w http.ResponseWriter, status int, body string) error {
	return Respond(w, status, ContentTypeHTML, []byte(body))
}
