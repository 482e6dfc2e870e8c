package banking

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/mifos-mcp/upstream"
)

// Service represents self-service banking tools
type Service struct {
	forwarder upstream.Forwarder
	defaults  *upstream.Credentials
}

// Option represents service option
type Option func(s *Service)

// WithDefaultCredentials enables falling back to the supplied credentials when a caller omits both username and password
func WithDefaultCredentials(credentials *upstream.Credentials) Option {
	return func(s *Service) {
		if !credentials.IsEmpty() {
			s.defaults = credentials
		}
	}
}

// HasDefaultCredentials returns true if credential fallback is enabled
func (s *Service) HasDefaultCredentials() bool {
	return s.defaults != nil
}

// RequiresCredentials returns true if callers of tool must supply CredentialFields
func (s *Service) RequiresCredentials(tool *Tool) bool {
	return tool.Auth && !s.HasDefaultCredentials()
}

// Register registers a new self-service user
func (s *Service) Register(ctx context.Context, input *RegisterInput) (*upstream.Result, error) {
	tool := mustLookup(ToolRegister)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	return s.forward(ctx, tool, tool.Path, "", input.payload())
}

// ConfirmRegistration confirms registration with the received token
func (s *Service) ConfirmRegistration(ctx context.Context, input *ConfirmRegistrationInput) (*upstream.Result, error) {
	tool := mustLookup(ToolConfirmRegistration)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	return s.forward(ctx, tool, tool.Path, "", input.payload())
}

// Login authenticates a self-service user, credentials travel in the payload
func (s *Service) Login(ctx context.Context, input *LoginInput) (*upstream.Result, error) {
	tool := mustLookup(ToolLogin)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	return s.forward(ctx, tool, tool.Path, "", input.payload())
}

// GetClientInfo returns clients of the authenticated user
func (s *Service) GetClientInfo(ctx context.Context, input *CredentialsInput) (*upstream.Result, error) {
	return s.credentialsOnly(ctx, mustLookup(ToolGetClientInfo), input)
}

// GetClientAccounts returns client accounts
func (s *Service) GetClientAccounts(ctx context.Context, input *ClientInput) (*upstream.Result, error) {
	return s.client(ctx, mustLookup(ToolGetClientAccounts), input)
}

// GetClientCharges returns client charges
func (s *Service) GetClientCharges(ctx context.Context, input *ClientInput) (*upstream.Result, error) {
	return s.client(ctx, mustLookup(ToolGetClientCharges), input)
}

// GetClientTransactions returns client transactions
func (s *Service) GetClientTransactions(ctx context.Context, input *ClientInput) (*upstream.Result, error) {
	return s.client(ctx, mustLookup(ToolGetClientTransactions), input)
}

// GetBeneficiaries returns third-party transfer beneficiaries
func (s *Service) GetBeneficiaries(ctx context.Context, input *CredentialsInput) (*upstream.Result, error) {
	return s.credentialsOnly(ctx, mustLookup(ToolGetBeneficiaries), input)
}

// GetBeneficiaryTemplate returns beneficiary template for an account
func (s *Service) GetBeneficiaryTemplate(ctx context.Context, input *BeneficiaryTemplateInput) (*upstream.Result, error) {
	tool := mustLookup(ToolGetBeneficiaryTemplate)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	path := tool.Expand(map[string]string{"accountNumber": input.AccountNumber})
	return s.forward(ctx, tool, path, authorization, nil)
}

// AddBeneficiary adds a third-party transfer beneficiary
func (s *Service) AddBeneficiary(ctx context.Context, input *AddBeneficiaryInput) (*upstream.Result, error) {
	tool := mustLookup(ToolAddBeneficiary)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, tool, tool.Path, authorization, input.payload())
}

// UpdateBeneficiary updates only the supplied beneficiary fields
func (s *Service) UpdateBeneficiary(ctx context.Context, input *UpdateBeneficiaryInput) (*upstream.Result, error) {
	tool := mustLookup(ToolUpdateBeneficiary)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	path := tool.Expand(map[string]string{"beneficiaryId": strconv.FormatInt(input.BeneficiaryID, 10)})
	return s.forward(ctx, tool, path, authorization, input.payload())
}

// DeleteBeneficiary deletes a beneficiary
func (s *Service) DeleteBeneficiary(ctx context.Context, input *BeneficiaryInput) (*upstream.Result, error) {
	tool := mustLookup(ToolDeleteBeneficiary)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	path := tool.Expand(map[string]string{"beneficiaryId": strconv.FormatInt(input.BeneficiaryID, 10)})
	return s.forward(ctx, tool, path, authorization, nil)
}

// GetTransferTemplate returns third-party transfer template
func (s *Service) GetTransferTemplate(ctx context.Context, input *CredentialsInput) (*upstream.Result, error) {
	return s.credentialsOnly(ctx, mustLookup(ToolGetTransferTemplate), input)
}

// MakeTransfer makes a third-party transfer
func (s *Service) MakeTransfer(ctx context.Context, input *TransferInput) (*upstream.Result, error) {
	tool := mustLookup(ToolMakeTransfer)
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, tool, tool.Path, authorization, input.payload())
}

// Invoke runs a tool by name with decoded input (see Tool.Decode)
func (s *Service) Invoke(ctx context.Context, name string, input interface{}) (*upstream.Result, error) {
	switch name {
	case ToolRegister:
		return invoke(ctx, name, input, s.Register)
	case ToolConfirmRegistration:
		return invoke(ctx, name, input, s.ConfirmRegistration)
	case ToolLogin:
		return invoke(ctx, name, input, s.Login)
	case ToolGetClientInfo:
		return invoke(ctx, name, input, s.GetClientInfo)
	case ToolGetClientAccounts:
		return invoke(ctx, name, input, s.GetClientAccounts)
	case ToolGetClientCharges:
		return invoke(ctx, name, input, s.GetClientCharges)
	case ToolGetClientTransactions:
		return invoke(ctx, name, input, s.GetClientTransactions)
	case ToolGetBeneficiaries:
		return invoke(ctx, name, input, s.GetBeneficiaries)
	case ToolGetBeneficiaryTemplate:
		return invoke(ctx, name, input, s.GetBeneficiaryTemplate)
	case ToolAddBeneficiary:
		return invoke(ctx, name, input, s.AddBeneficiary)
	case ToolUpdateBeneficiary:
		return invoke(ctx, name, input, s.UpdateBeneficiary)
	case ToolDeleteBeneficiary:
		return invoke(ctx, name, input, s.DeleteBeneficiary)
	case ToolGetTransferTemplate:
		return invoke(ctx, name, input, s.GetTransferTemplate)
	case ToolMakeTransfer:
		return invoke(ctx, name, input, s.MakeTransfer)
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}

func invoke[T any](ctx context.Context, name string, input interface{}, fn func(context.Context, T) (*upstream.Result, error)) (*upstream.Result, error) {
	typed, ok := input.(T)
	if !ok {
		return nil, fmt.Errorf("invalid %v input type: %T", name, input)
	}
	return fn(ctx, typed)
}

func (s *Service) credentialsOnly(ctx context.Context, tool *Tool, input *CredentialsInput) (*upstream.Result, error) {
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, tool, tool.Path, authorization, nil)
}

func (s *Service) client(ctx context.Context, tool *Tool, input *ClientInput) (*upstream.Result, error) {
	if err := input.validate(tool.Name); err != nil {
		return nil, err
	}
	authorization, err := s.authorization(tool.Name, input)
	if err != nil {
		return nil, err
	}
	path := tool.Expand(map[string]string{"clientId": strconv.FormatInt(input.ClientID, 10)})
	return s.forward(ctx, tool, path, authorization, nil)
}

func (s *Service) authorization(tool string, input Authenticated) (string, error) {
	credentials := input.Credentials()
	if credentials.IsEmpty() && s.defaults != nil {
		credentials = s.defaults
	}
	if credentials.Username == "" || credentials.Password == "" {
		return "", &ValidationError{Tool: tool, Reason: "username and password are required"}
	}
	return credentials.Header(), nil
}

func (s *Service) forward(ctx context.Context, tool *Tool, path, authorization string, payload interface{}) (*upstream.Result, error) {
	return s.forwarder.Forward(ctx, &upstream.Request{
		Name:          tool.Name,
		Method:        tool.Method,
		Path:          path,
		Tenant:        tenantFrom(ctx),
		Authorization: authorization,
		Payload:       payload,
	})
}

// New creates banking tools service
func New(forwarder upstream.Forwarder, options ...Option) *Service {
	ret := &Service{forwarder: forwarder}
	for _, option := range options {
		option(ret)
	}
	return ret
}
