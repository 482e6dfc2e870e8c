package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	var testCases = []struct {
		description string
		username    string
		password    string
		expect      string
	}{
		{description: "regular credentials", username: "alice", password: "secret", expect: "Basic YWxpY2U6c2VjcmV0"},
		{description: "colon in password", username: "mifos", password: "pa:ss", expect: "Basic bWlmb3M6cGE6c3M="},
		{description: "empty credentials", expect: "Basic Og=="},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, BasicAuth(testCase.username, testCase.password), testCase.description)
	}
}

func TestCredentials_IsEmpty(t *testing.T) {
	var nilCredentials *Credentials
	assert.True(t, nilCredentials.IsEmpty())
	assert.True(t, (&Credentials{}).IsEmpty())
	assert.False(t, (&Credentials{Username: "alice"}).IsEmpty())
	assert.Equal(t, "Basic YWxpY2U6c2VjcmV0", (&Credentials{Username: "alice", Password: "secret"}).Header())
}
