package identity

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CustomerList decodes either a single JSON string or an array of strings.
type CustomerList []string

func (l *CustomerList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = CustomerList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("customer list must be a string or an array of strings: %w", err)
	}
	*l = many
	return nil
}

// CustomerAccount is one password login. CustomerNames wins over the legacy
// single CustomerName when both are present.
type CustomerAccount struct {
	PasswordHash  string       `json:"password_hash"`
	CustomerNames CustomerList `json:"customer_names,omitempty"`
	CustomerName  string       `json:"customer_name,omitempty"`
}

func (a CustomerAccount) Names() []string {
	if a.CustomerNames != nil {
		return cleanNames(a.CustomerNames)
	}
	return cleanNames([]string{a.CustomerName})
}

// CustomerAccounts maps usernames to accounts and decodes from a JSON object.
type CustomerAccounts map[string]CustomerAccount

func (a *CustomerAccounts) UnmarshalText(text []byte) error {
	m := map[string]CustomerAccount{}
	if err := json.Unmarshal(text, &m); err != nil {
		return fmt.Errorf("decode customer accounts: %w", err)
	}
	*a = m
	return nil
}

// LinkTokens maps opaque link tokens to the customers they grant.
type LinkTokens map[string]CustomerList

func (t *LinkTokens) UnmarshalText(text []byte) error {
	m := map[string]CustomerList{}
	if err := json.Unmarshal(text, &m); err != nil {
		return fmt.Errorf("decode link tokens: %w", err)
	}
	*t = m
	return nil
}

// AdminAccount is the single operator login that sees the unmasked book.
type AdminAccount struct {
	Username     string
	PasswordHash string
}

// Directory answers who a caller is and which customers they may see.
// It is read-only after construction.
type Directory struct {
	customers CustomerAccounts
	tokens    LinkTokens
	admin     AdminAccount
}

func NewDirectory(customers CustomerAccounts, tokens LinkTokens, admin AdminAccount) *Directory {
	if customers == nil {
		customers = CustomerAccounts{}
	}
	if tokens == nil {
		tokens = LinkTokens{}
	}
	return &Directory{customers: customers, tokens: tokens, admin: admin}
}

// VerifyLogin returns the customers granted to username. An account granting
// no customers never logs in.
func (d *Directory) VerifyLogin(username, password string) ([]string, bool) {
	acct, ok := d.customers[strings.TrimSpace(username)]
	if !ok || !passwordMatches(acct.PasswordHash, password) {
		return nil, false
	}
	names := acct.Names()
	if len(names) == 0 {
		return nil, false
	}
	return names, true
}

func (d *Directory) ResolveToken(token string) ([]string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}
	list, ok := d.tokens[token]
	if !ok {
		return nil, false
	}
	names := cleanNames(list)
	if len(names) == 0 {
		return nil, false
	}
	return names, true
}

func (d *Directory) VerifyAdmin(username, password string) bool {
	if d.admin.Username == "" || d.admin.PasswordHash == "" {
		return false
	}
	return strings.TrimSpace(username) == d.admin.Username &&
		passwordMatches(d.admin.PasswordHash, password)
}

func passwordMatches(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// cleanNames trims, drops blanks and removes duplicates while keeping order.
func cleanNames(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
