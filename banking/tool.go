package banking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Tool names
const (
	ToolRegister               = "register"
	ToolConfirmRegistration    = "confirmRegistration"
	ToolLogin                  = "login"
	ToolGetClientInfo          = "getClientInfo"
	ToolGetClientAccounts      = "getClientAccounts"
	ToolGetClientCharges       = "getClientCharges"
	ToolGetClientTransactions  = "getClientTransactions"
	ToolGetBeneficiaries       = "getBeneficiaries"
	ToolGetBeneficiaryTemplate = "getBeneficiaryTemplate"
	ToolAddBeneficiary         = "addBeneficiary"
	ToolUpdateBeneficiary      = "updateBeneficiary"
	ToolDeleteBeneficiary      = "deleteBeneficiary"
	ToolGetTransferTemplate    = "getTransferTemplate"
	ToolMakeTransfer           = "makeTransfer"
)

// CredentialFields are input fields carrying caller credentials of authenticated tools
var CredentialFields = []string{"username", "password"}

// Tool represents a declarative upstream call site
type Tool struct {
	Name        string
	Description string
	Method      string
	Path        string //path template, {name} placeholders are expanded from input
	Auth        bool
	NewInput    func() interface{}
}

// Expand returns path with placeholders replaced by escaped values
func (t *Tool) Expand(values map[string]string) string {
	path := t.Path
	for name, value := range values {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	return path
}

// Decode decodes raw JSON arguments into the tool input
func (t *Tool) Decode(data []byte) (interface{}, error) {
	input := t.NewInput()
	if len(data) == 0 {
		return input, nil
	}
	if err := json.Unmarshal(data, input); err != nil {
		return nil, &ValidationError{Tool: t.Name, Reason: fmt.Sprintf("invalid arguments: %v", err)}
	}
	return input, nil
}

var tools = []*Tool{
	{
		Name:        ToolRegister,
		Description: "Register a new self-service user for mobile banking; returns registration response with request ID",
		Method:      http.MethodPost,
		Path:        "/self/registration",
		NewInput:    func() interface{} { return &RegisterInput{} },
	},
	{
		Name:        ToolConfirmRegistration,
		Description: "Confirm self-service user registration with the token received via email/SMS",
		Method:      http.MethodPost,
		Path:        "/self/registration/user",
		NewInput:    func() interface{} { return &ConfirmRegistrationInput{} },
	},
	{
		Name:        ToolLogin,
		Description: "Login to self-service mobile banking; returns authentication response with user details",
		Method:      http.MethodPost,
		Path:        "/self/authentication",
		NewInput:    func() interface{} { return &LoginInput{} },
	},
	{
		Name:        ToolGetClientInfo,
		Description: "Get client information for the authenticated user",
		Method:      http.MethodGet,
		Path:        "/self/clients",
		Auth:        true,
		NewInput:    func() interface{} { return &CredentialsInput{} },
	},
	{
		Name:        ToolGetClientAccounts,
		Description: "Get list of accounts (savings, loans) for a client",
		Method:      http.MethodGet,
		Path:        "/self/clients/{clientId}/accounts",
		Auth:        true,
		NewInput:    func() interface{} { return &ClientInput{} },
	},
	{
		Name:        ToolGetClientCharges,
		Description: "Get list of charges for a client",
		Method:      http.MethodGet,
		Path:        "/self/clients/{clientId}/charges",
		Auth:        true,
		NewInput:    func() interface{} { return &ClientInput{} },
	},
	{
		Name:        ToolGetClientTransactions,
		Description: "Get list of transactions for a client",
		Method:      http.MethodGet,
		Path:        "/self/clients/{clientId}/transactions",
		Auth:        true,
		NewInput:    func() interface{} { return &ClientInput{} },
	},
	{
		Name:        ToolGetBeneficiaries,
		Description: "Get list of beneficiaries for third-party transfers",
		Method:      http.MethodGet,
		Path:        "/self/beneficiaries/tpt",
		Auth:        true,
		NewInput:    func() interface{} { return &CredentialsInput{} },
	},
	{
		Name:        ToolGetBeneficiaryTemplate,
		Description: "Get beneficiary template for a specific account",
		Method:      http.MethodGet,
		Path:        "/self/beneficiaries/tpt/{accountNumber}",
		Auth:        true,
		NewInput:    func() interface{} { return &BeneficiaryTemplateInput{} },
	},
	{
		Name:        ToolAddBeneficiary,
		Description: "Add a new beneficiary for third-party transfers",
		Method:      http.MethodPost,
		Path:        "/self/beneficiaries/tpt",
		Auth:        true,
		NewInput:    func() interface{} { return &AddBeneficiaryInput{} },
	},
	{
		Name:        ToolUpdateBeneficiary,
		Description: "Update an existing beneficiary name and/or transfer limit",
		Method:      http.MethodPut,
		Path:        "/self/beneficiaries/tpt/{beneficiaryId}",
		Auth:        true,
		NewInput:    func() interface{} { return &UpdateBeneficiaryInput{} },
	},
	{
		Name:        ToolDeleteBeneficiary,
		Description: "Delete a beneficiary",
		Method:      http.MethodDelete,
		Path:        "/self/beneficiaries/tpt/{beneficiaryId}",
		Auth:        true,
		NewInput:    func() interface{} { return &BeneficiaryInput{} },
	},
	{
		Name:        ToolGetTransferTemplate,
		Description: "Get transfer template with available options for third-party transfers",
		Method:      http.MethodGet,
		Path:        `/self/accounttransfers/template?type="tpt"`,
		Auth:        true,
		NewInput:    func() interface{} { return &CredentialsInput{} },
	},
	{
		Name:        ToolMakeTransfer,
		Description: "Make a third-party transfer; transfer_date uses dd MMMM yyyy format (e.g. 03 March 2025)",
		Method:      http.MethodPost,
		Path:        `/self/accounttransfers?type="tpt"`,
		Auth:        true,
		NewInput:    func() interface{} { return &TransferInput{} },
	},
}

var toolsByName = func() map[string]*Tool {
	ret := make(map[string]*Tool, len(tools))
	for _, tool := range tools {
		ret[tool.Name] = tool
	}
	return ret
}()

// Tools returns all tools in declaration order
func Tools() []*Tool {
	return tools
}

// Lookup returns a tool by name
func Lookup(name string) (*Tool, bool) {
	tool, ok := toolsByName[name]
	return tool, ok
}

func mustLookup(name string) *Tool {
	tool, ok := toolsByName[name]
	if !ok {
		panic("unknown tool: " + name)
	}
	return tool
}
