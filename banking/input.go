package banking

import "github.com/viant/mifos-mcp/upstream"

type (
	// RegisterInput represents self-service registration tool input
	RegisterInput struct {
		Username           string `json:"username" description:"desired username"`
		AccountNumber      string `json:"account_number" description:"existing account number"`
		Password           string `json:"password" description:"strong password for the account"`
		FirstName          string `json:"first_name" description:"user's first name"`
		LastName           string `json:"last_name" description:"user's last name"`
		MobileNumber       string `json:"mobile_number" description:"mobile phone number"`
		Email              string `json:"email" description:"email address"`
		AuthenticationMode string `json:"authentication_mode,omitempty" description:"mode of authentication (default: email)"`
	}

	// ConfirmRegistrationInput represents registration confirmation tool input
	ConfirmRegistrationInput struct {
		RequestID           int64  `json:"request_id" description:"registration request ID"`
		AuthenticationToken string `json:"authentication_token" description:"token received via email/SMS"`
	}

	// LoginInput represents login tool input
	LoginInput struct {
		Username string `json:"username" description:"username"`
		Password string `json:"password" description:"password"`
	}

	// CredentialsInput represents input of authenticated tools without parameters
	CredentialsInput struct {
		Username string `json:"username,omitempty" description:"username for authentication"`
		Password string `json:"password,omitempty" description:"password for authentication"`
	}

	// ClientInput represents client scoped tool input
	ClientInput struct {
		ClientID int64  `json:"client_id" description:"client ID"`
		Username string `json:"username,omitempty" description:"username for authentication"`
		Password string `json:"password,omitempty" description:"password for authentication"`
	}

	// BeneficiaryTemplateInput represents beneficiary template tool input
	BeneficiaryTemplateInput struct {
		AccountNumber string `json:"account_number" description:"account number"`
		Username      string `json:"username,omitempty" description:"username for authentication"`
		Password      string `json:"password,omitempty" description:"password for authentication"`
	}

	// AddBeneficiaryInput represents add beneficiary tool input
	AddBeneficiaryInput struct {
		Name          string  `json:"name" description:"beneficiary name"`
		OfficeName    string  `json:"office_name" description:"office name (e.g. Head Office)"`
		AccountNumber string  `json:"account_number" description:"beneficiary account number"`
		AccountType   int     `json:"account_type" description:"account type (1=Savings, 2=Loan)"`
		TransferLimit float64 `json:"transfer_limit" description:"maximum transfer limit"`
		Username      string  `json:"username,omitempty" description:"username for authentication"`
		Password      string  `json:"password,omitempty" description:"password for authentication"`
	}

	// UpdateBeneficiaryInput represents update beneficiary tool input, unset fields are left unchanged
	UpdateBeneficiaryInput struct {
		BeneficiaryID int64    `json:"beneficiary_id" description:"beneficiary ID to update"`
		Name          string   `json:"name,omitempty" description:"new beneficiary name (optional)"`
		TransferLimit *float64 `json:"transfer_limit,omitempty" description:"new transfer limit (optional)"`
		Username      string   `json:"username,omitempty" description:"username for authentication"`
		Password      string   `json:"password,omitempty" description:"password for authentication"`
	}

	// BeneficiaryInput represents beneficiary scoped tool input
	BeneficiaryInput struct {
		BeneficiaryID int64  `json:"beneficiary_id" description:"beneficiary ID"`
		Username      string `json:"username,omitempty" description:"username for authentication"`
		Password      string `json:"password,omitempty" description:"password for authentication"`
	}

	// TransferInput represents third-party transfer tool input
	TransferInput struct {
		FromAccountID       string  `json:"from_account_id" description:"source account ID"`
		FromAccountType     string  `json:"from_account_type,omitempty" description:"source account type"`
		FromClientID        int64   `json:"from_client_id,omitempty" description:"source client ID"`
		FromOfficeID        int64   `json:"from_office_id,omitempty" description:"source office ID"`
		ToAccountID         string  `json:"to_account_id" description:"destination account ID"`
		ToAccountType       int     `json:"to_account_type,omitempty" description:"destination account type (1=Savings, 2=Loan)"`
		ToClientID          int64   `json:"to_client_id,omitempty" description:"destination client ID"`
		ToOfficeID          int64   `json:"to_office_id,omitempty" description:"destination office ID"`
		TransferAmount      float64 `json:"transfer_amount" description:"amount to transfer"`
		TransferDate        string  `json:"transfer_date" description:"transfer date (format: dd MMMM yyyy)"`
		TransferDescription string  `json:"transfer_description,omitempty" description:"transfer description"`
		Username            string  `json:"username,omitempty" description:"username for authentication"`
		Password            string  `json:"password,omitempty" description:"password for authentication"`
	}
)

// Authenticated is implemented by inputs carrying caller credentials
type Authenticated interface {
	Credentials() *upstream.Credentials
	SetCredentials(credentials *upstream.Credentials)
}

func (i *CredentialsInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *CredentialsInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}

func (i *ClientInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *ClientInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}

func (i *BeneficiaryTemplateInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *BeneficiaryTemplateInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}

func (i *AddBeneficiaryInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *AddBeneficiaryInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}

func (i *UpdateBeneficiaryInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *UpdateBeneficiaryInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}

func (i *BeneficiaryInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *BeneficiaryInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}

func (i *TransferInput) Credentials() *upstream.Credentials {
	return &upstream.Credentials{Username: i.Username, Password: i.Password}
}

func (i *TransferInput) SetCredentials(c *upstream.Credentials) {
	i.Username, i.Password = c.Username, c.Password
}
