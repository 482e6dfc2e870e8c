package upstream

import "encoding/base64"

// Credentials represents self-service user credentials
type Credentials struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// IsEmpty returns true if neither username nor password is set
func (c *Credentials) IsEmpty() bool {
	return c == nil || (c.Username == "" && c.Password == "")
}

// Header returns Authorization header value
func (c *Credentials) Header() string {
	return BasicAuth(c.Username, c.Password)
}

// BasicAuth returns Basic authorization header value for the supplied credentials
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
