package upstream

import (
	"encoding/json"
	"fmt"
)

// Result represents normalized upstream outcome, either Body (success) or Failure
type Result struct {
	Body    json.RawMessage
	Failure *Failure
}

// Failure represents upstream rejection (status >= 400); Message is the raw response text
type Failure struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Error returns error message
func (f *Failure) Error() string {
	return fmt.Sprintf("upstream rejected request: %d: %s", f.StatusCode, f.Message)
}

// IsSuccess returns true if upstream accepted the request
func (r *Result) IsSuccess() bool {
	return r.Failure == nil
}

// Err returns Failure as an error or nil
func (r *Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

func newResult(statusCode int, body []byte) *Result {
	if statusCode >= 400 {
		return &Result{Failure: &Failure{StatusCode: statusCode, Message: string(body)}}
	}
	if len(body) > 0 && json.Valid(body) {
		return &Result{Body: body}
	}
	placeholder, _ := json.Marshal(struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	}{Message: "Success", StatusCode: statusCode})
	return &Result{Body: placeholder}
}
