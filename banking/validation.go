package banking

import (
	"fmt"
	"strings"
)

// ValidationError represents invalid tool input, it never reaches the upstream
type ValidationError struct {
	Tool   string
	Fields []string
	Reason string
}

// Error returns error message
func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%v: missing required fields: %v", e.Tool, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%v: %v", e.Tool, e.Reason)
}

type required struct {
	fields []string
}

func (r *required) text(name, value string) {
	if strings.TrimSpace(value) == "" {
		r.fields = append(r.fields, name)
	}
}

func (r *required) id(name string, value int64) {
	if value <= 0 {
		r.fields = append(r.fields, name)
	}
}

func (r *required) err(tool string) error {
	if len(r.fields) == 0 {
		return nil
	}
	return &ValidationError{Tool: tool, Fields: r.fields}
}

func (i *RegisterInput) validate(tool string) error {
	r := &required{}
	r.text("username", i.Username)
	r.text("account_number", i.AccountNumber)
	r.text("password", i.Password)
	r.text("first_name", i.FirstName)
	r.text("last_name", i.LastName)
	r.text("mobile_number", i.MobileNumber)
	r.text("email", i.Email)
	return r.err(tool)
}

func (i *ConfirmRegistrationInput) validate(tool string) error {
	r := &required{}
	r.id("request_id", i.RequestID)
	r.text("authentication_token", i.AuthenticationToken)
	return r.err(tool)
}

func (i *LoginInput) validate(tool string) error {
	r := &required{}
	r.text("username", i.Username)
	r.text("password", i.Password)
	return r.err(tool)
}

func (i *ClientInput) validate(tool string) error {
	r := &required{}
	r.id("client_id", i.ClientID)
	return r.err(tool)
}

func (i *BeneficiaryTemplateInput) validate(tool string) error {
	r := &required{}
	r.text("account_number", i.AccountNumber)
	return r.err(tool)
}

func (i *AddBeneficiaryInput) validate(tool string) error {
	r := &required{}
	r.text("name", i.Name)
	r.text("office_name", i.OfficeName)
	r.text("account_number", i.AccountNumber)
	r.id("account_type", int64(i.AccountType))
	return r.err(tool)
}

func (i *UpdateBeneficiaryInput) validate(tool string) error {
	r := &required{}
	r.id("beneficiary_id", i.BeneficiaryID)
	return r.err(tool)
}

func (i *BeneficiaryInput) validate(tool string) error {
	r := &required{}
	r.id("beneficiary_id", i.BeneficiaryID)
	return r.err(tool)
}

func (i *TransferInput) validate(tool string) error {
	r := &required{}
	r.text("from_account_id", i.FromAccountID)
	r.text("to_account_id", i.ToAccountID)
	r.text("transfer_date", i.TransferDate)
	if err := r.err(tool); err != nil {
		return err
	}
	if i.TransferAmount <= 0 {
		return &ValidationError{Tool: tool, Reason: "transfer_amount must be positive"}
	}
	return nil
}
