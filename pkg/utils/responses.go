package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
)

// errorDocsURL is the base of error links; empty means links are omitted.
var errorDocsURL atomic.Value

// SetErrorDocsURL sets the documentation base used for error links.
// Set once at startup from configuration, never from request data.
func SetErrorDocsURL(base string) {
	errorDocsURL.Store(strings.TrimRight(base, "/"))
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorObject follows the JSON:API error object layout.
type ErrorObject struct {
	Status  int          `json:"status"`
	Code    string       `json:"code"`
	Title   string       `json:"title"`
	Details string       `json:"details"`
	Source  *ErrorSource `json:"source,omitempty"`
	Links   *ErrorLinks  `json:"links,omitempty"`
}

type ErrorSource struct {
	Pointer string `json:"pointer"`
}

type ErrorLinks struct {
	About string `json:"about"`
	Type  string `json:"type"`
}

type ErrorResponse struct {
	Errors []ErrorObject `json:"errors"`
}

// ResponseJSON writes any payload as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Envelope responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// ResponseFailure writes the envelope with success=false and no data.
func ResponseFailure(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, Response{Success: false, Message: message, Data: nil})
}

// ------------- JSON:API error responses -------------

// ResponseErrors writes one or more error objects, filling links from the request host.
func ResponseErrors(w http.ResponseWriter, r *http.Request, status int, errs ...ErrorObject) {
	for i := range errs {
		if errs[i].Links == nil {
			errs[i].Links = errorLinks(errs[i].Code)
		}
	}
	ResponseJSON(w, status, ErrorResponse{Errors: errs})
}

func ResponseAppError(w http.ResponseWriter, r *http.Request, appErr *AppError) {
	ResponseErrors(w, r, appErr.Status, ErrorObject{
		Status:  appErr.Status,
		Code:    appErr.Code,
		Title:   appErr.Title,
		Details: appErr.Detail,
	})
}

// returns 400 with one error object per invalid field, ordered by field name
func ResponseValidation(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	errs := make([]ErrorObject, 0, len(names))
	for _, name := range names {
		errs = append(errs, ErrorObject{
			Status:  http.StatusBadRequest,
			Code:    CodeValidation,
			Title:   "Validation failed",
			Details: fmt.Sprintf("%s: %s", name, fields[name]),
			Source:  &ErrorSource{Pointer: "/" + name},
		})
	}
	ResponseErrors(w, r, http.StatusBadRequest, errs...)
}

// returns 400 for bodies that are not valid JSON
func ResponseBadRequest(w http.ResponseWriter, r *http.Request, detail string) {
	ResponseAppError(w, r, NewBadRequest(CodeBadRequest, detail))
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, r *http.Request, detail string) {
	ResponseAppError(w, r, NewNotFound(detail))
}

// returns 500 with a generic message; reference lets support find the log entry
func ResponseInternalError(w http.ResponseWriter, r *http.Request, reference string) {
	appErr := NewInternal(nil)
	if reference != "" {
		appErr.Detail = fmt.Sprintf("%s Reference: %s", appErr.Detail, reference)
	}
	ResponseAppError(w, r, appErr)
}

func errorLinks(code string) *ErrorLinks {
	base, _ := errorDocsURL.Load().(string)
	if base == "" {
		return nil
	}
	return &ErrorLinks{
		About: base + "/" + code,
		Type:  base,
	}
}
