package banking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTools(t *testing.T) {
	expect := map[string]struct {
		method string
		path   string
		auth   bool
	}{
		ToolRegister:               {"POST", "/self/registration", false},
		ToolConfirmRegistration:    {"POST", "/self/registration/user", false},
		ToolLogin:                  {"POST", "/self/authentication", false},
		ToolGetClientInfo:          {"GET", "/self/clients", true},
		ToolGetClientAccounts:      {"GET", "/self/clients/{clientId}/accounts", true},
		ToolGetClientCharges:       {"GET", "/self/clients/{clientId}/charges", true},
		ToolGetClientTransactions:  {"GET", "/self/clients/{clientId}/transactions", true},
		ToolGetBeneficiaries:       {"GET", "/self/beneficiaries/tpt", true},
		ToolGetBeneficiaryTemplate: {"GET", "/self/beneficiaries/tpt/{accountNumber}", true},
		ToolAddBeneficiary:         {"POST", "/self/beneficiaries/tpt", true},
		ToolUpdateBeneficiary:      {"PUT", "/self/beneficiaries/tpt/{beneficiaryId}", true},
		ToolDeleteBeneficiary:      {"DELETE", "/self/beneficiaries/tpt/{beneficiaryId}", true},
		ToolGetTransferTemplate:    {"GET", `/self/accounttransfers/template?type="tpt"`, true},
		ToolMakeTransfer:           {"POST", `/self/accounttransfers?type="tpt"`, true},
	}
	require.Len(t, Tools(), len(expect))
	for _, tool := range Tools() {
		expected, ok := expect[tool.Name]
		require.True(t, ok, tool.Name)
		assert.Equal(t, expected.method, tool.Method, tool.Name)
		assert.Equal(t, expected.path, tool.Path, tool.Name)
		assert.Equal(t, expected.auth, tool.Auth, tool.Name)
		input := tool.NewInput()
		_, authenticated := input.(Authenticated)
		assert.Equal(t, tool.Auth, authenticated, tool.Name)
	}
}

func TestTool_Expand(t *testing.T) {
	tool, ok := Lookup(ToolGetBeneficiaryTemplate)
	require.True(t, ok)
	assert.Equal(t, "/self/beneficiaries/tpt/000%2F12", tool.Expand(map[string]string{"accountNumber": "000/12"}))
	_, ok = Lookup("unknown")
	assert.False(t, ok)
}

func TestTool_Decode(t *testing.T) {
	tool, _ := Lookup(ToolUpdateBeneficiary)
	input, err := tool.Decode([]byte(`{"beneficiary_id":5,"transfer_limit":10.5}`))
	require.NoError(t, err)
	update, ok := input.(*UpdateBeneficiaryInput)
	require.True(t, ok)
	assert.EqualValues(t, 5, update.BeneficiaryID)
	require.NotNil(t, update.TransferLimit)
	assert.Equal(t, 10.5, *update.TransferLimit)
	assert.Equal(t, "", update.Name)

	_, err = tool.Decode([]byte(`{"beneficiary_id":"five"}`))
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	input, err = tool.Decode(nil)
	require.NoError(t, err)
	assert.IsType(t, &UpdateBeneficiaryInput{}, input)
}
