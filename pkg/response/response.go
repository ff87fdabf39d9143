package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages returned in Body.Message.
const (
	MessageCreated       = "Registration successful"
	MessageInternalError = "Internal Server Error"
)

// Body is the registration API response envelope.
type Body struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Response is a transport-neutral HTTP response. The gin server and the
// Lambda entrypoint both render it.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// CORSHeaders returns the cross-origin headers sent on every response.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

// JSON builds a response with a JSON body and CORS headers.
func JSON(status int, body Body) Response {
	raw, _ := json.Marshal(body) // only string fields
	headers := CORSHeaders()
	headers["Content-Type"] = "application/json"
	return Response{StatusCode: status, Headers: headers, Body: raw}
}

// Preflight answers a CORS preflight: 200 with an empty body.
func Preflight() Response {
	return Response{StatusCode: http.StatusOK, Headers: CORSHeaders()}
}

// Created sends 201 with the new registration id.
func Created(id string) Response {
	return JSON(http.StatusCreated, Body{Message: MessageCreated, ID: id})
}

// BadRequest sends 400 with message.
func BadRequest(message string) Response {
	return JSON(http.StatusBadRequest, Body{Message: message})
}

// Internal sends 500 with the stringified cause.
func Internal(cause string) Response {
	return JSON(http.StatusInternalServerError, Body{Message: MessageInternalError, Error: cause})
}

// Write renders r through gin.
func Write(c *gin.Context, r Response) {
	for k, v := range r.Headers {
		c.Header(k, v)
	}
	if len(r.Body) == 0 {
		c.Status(r.StatusCode)
		return
	}
	contentType := r.Headers["Content-Type"]
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(r.StatusCode, contentType, r.Body)
}

// OK sends a 200 JSON response with data, for endpoints outside the registration flow.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
