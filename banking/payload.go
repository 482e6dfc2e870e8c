package banking

const (
	// TransferDateFormat is the upstream date pattern transfer dates are expressed in
	TransferDateFormat = "dd MMMM yyyy"
	// Locale is sent with locale sensitive payloads
	Locale = "en"
	// DefaultAuthenticationMode is used when registration does not name one
	DefaultAuthenticationMode = "email"
)

type (
	// RegistrationPayload represents upstream self-service registration request
	RegistrationPayload struct {
		Username           string `json:"username"`
		AccountNumber      string `json:"accountNumber"`
		Password           string `json:"password"`
		FirstName          string `json:"firstName"`
		MobileNumber       string `json:"mobileNumber"`
		LastName           string `json:"lastName"`
		Email              string `json:"email"`
		AuthenticationMode string `json:"authenticationMode"`
	}

	// ConfirmRegistrationPayload represents upstream registration confirmation request
	ConfirmRegistrationPayload struct {
		RequestID           int64  `json:"requestId"`
		AuthenticationToken string `json:"authenticationToken"`
	}

	// LoginPayload represents upstream authentication request
	LoginPayload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// BeneficiaryPayload represents upstream beneficiary creation request
	BeneficiaryPayload struct {
		Locale        string  `json:"locale"`
		Name          string  `json:"name"`
		OfficeName    string  `json:"officeName"`
		AccountNumber string  `json:"accountNumber"`
		AccountType   int     `json:"accountType"`
		TransferLimit float64 `json:"transferLimit"`
	}

	// BeneficiaryUpdatePayload represents upstream partial beneficiary update
	BeneficiaryUpdatePayload struct {
		Name          string   `json:"name,omitempty"`
		TransferLimit *float64 `json:"transferLimit,omitempty"`
	}

	// TransferPayload represents upstream third-party transfer request, optional fields left unset are omitted
	TransferPayload struct {
		ToOfficeID          int64   `json:"toOfficeId,omitempty"`
		ToClientID          int64   `json:"toClientId,omitempty"`
		ToAccountType       int     `json:"toAccountType,omitempty"`
		ToAccountID         string  `json:"toAccountId"`
		TransferAmount      float64 `json:"transferAmount"`
		TransferDate        string  `json:"transferDate"`
		TransferDescription string  `json:"transferDescription,omitempty"`
		DateFormat          string  `json:"dateFormat"`
		Locale              string  `json:"locale"`
		FromAccountID       string  `json:"fromAccountId"`
		FromAccountType     string  `json:"fromAccountType,omitempty"`
		FromClientID        int64   `json:"fromClientId,omitempty"`
		FromOfficeID        int64   `json:"fromOfficeId,omitempty"`
	}
)

func (i *RegisterInput) payload() *RegistrationPayload {
	mode := i.AuthenticationMode
	if mode == "" {
		mode = DefaultAuthenticationMode
	}
	return &RegistrationPayload{
		Username:           i.Username,
		AccountNumber:      i.AccountNumber,
		Password:           i.Password,
		FirstName:          i.FirstName,
		MobileNumber:       i.MobileNumber,
		LastName:           i.LastName,
		Email:              i.Email,
		AuthenticationMode: mode,
	}
}

func (i *ConfirmRegistrationInput) payload() *ConfirmRegistrationPayload {
	return &ConfirmRegistrationPayload{RequestID: i.RequestID, AuthenticationToken: i.AuthenticationToken}
}

func (i *LoginInput) payload() *LoginPayload {
	return &LoginPayload{Username: i.Username, Password: i.Password}
}

func (i *AddBeneficiaryInput) payload() *BeneficiaryPayload {
	return &BeneficiaryPayload{
		Locale:        Locale,
		Name:          i.Name,
		OfficeName:    i.OfficeName,
		AccountNumber: i.AccountNumber,
		AccountType:   i.AccountType,
		TransferLimit: i.TransferLimit,
	}
}

func (i *UpdateBeneficiaryInput) payload() *BeneficiaryUpdatePayload {
	return &BeneficiaryUpdatePayload{Name: i.Name, TransferLimit: i.TransferLimit}
}

func (i *TransferInput) payload() *TransferPayload {
	return &TransferPayload{
		ToOfficeID:          i.ToOfficeID,
		ToClientID:          i.ToClientID,
		ToAccountType:       i.ToAccountType,
		ToAccountID:         i.ToAccountID,
		TransferAmount:      i.TransferAmount,
		TransferDate:        i.TransferDate,
		TransferDescription: i.TransferDescription,
		DateFormat:          TransferDateFormat,
		Locale:              Locale,
		FromAccountID:       i.FromAccountID,
		FromAccountType:     i.FromAccountType,
		FromClientID:        i.FromClientID,
		FromOfficeID:        i.FromOfficeID,
	}
}
