// Package accounts implements registration and authentication of site
// accounts against the external record store, including provisioning of
// each account's private stats table at signup.
package accounts

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/server/auth"
	"github.com/vrajdev/sadhana-backend/internal/server/config"
	"github.com/vrajdev/sadhana-backend/internal/server/teable"
)

// RecordStore is the subset of the record store client used by this service.
type RecordStore interface {
	ListRecords(ctx context.Context, tableID string) ([]teable.Record, error)
	CreateRecord(ctx context.Context, tableID string, fields map[string]any) (*teable.Record, error)
	CreateTable(ctx context.Context, baseID string, name string, fields []teable.FieldSpec) (string, error)
}

// Account is one row of the accounts table.
type Account struct {
	Email        string
	Password     string
	IsPrivileged bool
	TableID      string
}

// Session is the result of a successful signup or login.
type Session struct {
	Token        string
	IsPrivileged bool
	RedirectTo   string
	TableID      string
}

type Service struct {
	store         RecordStore
	accountsTable string
	baseID        string
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(store RecordStore, cfg *config.Config) *Service {
	return &Service{
		store:         store,
		accountsTable: cfg.AccountsTableID,
		baseID:        cfg.TeableBaseID,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// statsTableSchema is the fixed schema of every per-account stats table.
var statsTableSchema = []teable.FieldSpec{
	{Name: "date", Type: "date"},
	{Name: "rounds", Type: "number"},
	{Name: "reading-time", Type: "number"},
}

func accountFromRecord(r teable.Record) Account {
	a := Account{}
	if v, ok := r.Fields["email"].(string); ok {
		a.Email = v
	}
	if v, ok := r.Fields["password"].(string); ok {
		a.Password = v
	}
	if v, ok := r.Fields["is_sadhaka"].(bool); ok {
		a.IsPrivileged = v
	}
	if v, ok := r.Fields["table_id"].(string); ok {
		a.TableID = v
	}
	return a
}

func redirectFor(privileged bool) string {
	if privileged {
		return "dashboard"
	}
	return "home"
}

// Signup registers a new account, provisions its private stats table and
// issues a session token.
//
// The uniqueness check and the account write are two separate upstream
// calls; two concurrent signups with the same email can both pass the
// check before either writes. The external store is the only consistency
// authority, so this race is accepted.
func (s *Service) Signup(ctx context.Context, email string, password string, privileged bool) (*Session, error) {

	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	existing, err := s.store.ListRecords(ctx, s.accountsTable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	for _, r := range existing {
		if accountFromRecord(r).Email == email {
			return nil, common.ErrorAccountExists
		}
	}

	tableID, err := s.store.CreateTable(ctx, s.baseID, "stats_"+email, statsTableSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorProvisioning, err)
	}
	if tableID == "" {
		return nil, common.ErrorProvisioning
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	_, err = s.store.CreateRecord(ctx, s.accountsTable, map[string]any{
		"email":      email,
		"password":   string(hash),
		"is_sadhaka": privileged,
		"table_id":   tableID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamWrite, err)
	}

	token, err := auth.GenerateToken(email, privileged, tableID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{
		Token:        token,
		IsPrivileged: privileged,
		RedirectTo:   redirectFor(privileged),
		TableID:      tableID,
	}, nil
}

// checkPassword verifies the supplied password against the stored value.
// New accounts store a bcrypt hash; rows written by the previous system
// hold the password as plain text and are compared in constant time.
func checkPassword(stored string, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// Login authenticates an existing account by email (case-insensitive) and
// password and issues a session token. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email string, password string) (*Session, error) {

	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	records, err := s.store.ListRecords(ctx, s.accountsTable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	var account *Account
	for _, r := range records {
		a := accountFromRecord(r)
		if strings.EqualFold(a.Email, email) {
			account = &a
			break
		}
	}

	if account == nil || !checkPassword(account.Password, password) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(account.Email, account.IsPrivileged, account.TableID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{
		Token:        token,
		IsPrivileged: account.IsPrivileged,
		RedirectTo:   redirectFor(account.IsPrivileged),
		TableID:      account.TableID,
	}, nil
}
