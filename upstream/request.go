package upstream

import "net/http"

// Request represents a single upstream call
type Request struct {
	Name          string //tool name, used for logging and metrics only
	Method        string
	Path          string
	Tenant        string
	Authorization string
	Payload       interface{}
}

func isSupportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
