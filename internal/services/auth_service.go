package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

// AccountStore abstracts persistence operations required by AuthService.
type AccountStore interface {
	FindAccountByTaxID(taxID string) (*database.Account, error)
	FindAccountByEmail(email string) (*database.Account, error)
	FindAccountByID(id string) (*database.Account, error)
	AddAccount(a *database.Account) error
}

// TokenSigner issues a bearer credential for the given account id.
type TokenSigner func(accountID string, ttl time.Duration) (string, error)

type AuthService struct {
	store      AccountStore
	now        func() time.Time
	idGen      func() string
	signToken  TokenSigner
	tokenTTL   time.Duration
	bcryptCost int
}

type AuthResult struct {
	Token   string
	Account *database.Account
}

// RegisterRequest carries the sanitized registration form into the service.
type RegisterRequest struct {
	CompanyName     string
	TaxID           string
	ContactEmail    string
	Password        string
	PasswordConfirm string
}

func NewAuthService(store AccountStore, signer TokenSigner, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		store:      store,
		now:        func() time.Time { return time.Now().UTC() },
		idGen:      uuid.NewString,
		signToken:  signer,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates a company account. Every validation problem is collected
// and reported together so the caller can fix the whole form in one pass.
func (s *AuthService) Register(req RegisterRequest) (*AuthResult, error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.TaxID = strings.TrimSpace(req.TaxID)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)

	var problems []string
	if req.CompanyName == "" {
		problems = append(problems, "el nombre de la empresa es obligatorio")
	}
	if req.TaxID == "" {
		problems = append(problems, "el RUT es obligatorio")
	}
	if req.Password == "" {
		problems = append(problems, "la contraseña es obligatoria")
	}
	if req.Password != req.PasswordConfirm {
		problems = append(problems, "las contraseñas no coinciden")
	}
	if req.TaxID != "" {
		existing, err := s.store.FindAccountByTaxID(req.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			problems = append(problems, "el RUT ya está registrado")
		}
	}
	if req.ContactEmail != "" {
		existing, err := s.store.FindAccountByEmail(req.ContactEmail)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			problems = append(problems, "el email ya está registrado")
		}
	}
	if len(problems) > 0 {
		return nil, NewValidationError(problems...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	account := &database.Account{
		ID:           s.idGen(),
		CompanyName:  req.CompanyName,
		TaxID:        req.TaxID,
		ContactEmail: req.ContactEmail,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.store.AddAccount(account); err != nil {
		return nil, err
	}
	token, err := s.signToken(account.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: account}, nil
}

// Authenticate verifies tax ID and password. A missing account and a wrong
// password produce the same error so the caller cannot probe registrations.
func (s *AuthService) Authenticate(taxID, password string) (*AuthResult, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" || password == "" {
		return nil, NewUnauthorizedError("RUT o contraseña incorrectos")
	}
	account, err := s.store.FindAccountByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, NewUnauthorizedError("RUT o contraseña incorrectos")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, NewUnauthorizedError("RUT o contraseña incorrectos")
	}
	token, err := s.signToken(account.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: account}, nil
}

func (s *AuthService) TokenTTL() time.Duration { return s.tokenTTL }
