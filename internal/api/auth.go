package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/AaronLay10/SaiScope/internal/config"
)

// Role represents an authorization role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleReader Role = "reader"
)

type credential struct {
	user, pass string
}

func (c credential) set() bool {
	return c.user != "" && c.pass != ""
}

// Auth holds basic auth credentials. A nil *Auth allows everything.
type Auth struct {
	admin  credential
	reader credential
}

// NewAuth returns an Auth for the given credentials, or nil when the admin
// pair is incomplete.
func NewAuth(adminUser, adminPass, readerUser, readerPass string) *Auth {
	a := &Auth{
		admin:  credential{adminUser, adminPass},
		reader: credential{readerUser, readerPass},
	}
	if !a.admin.set() {
		return nil
	}
	return a
}

// LoadAuth reads SAISCOPE_ADMIN_USER, SAISCOPE_ADMIN_PASS,
// SAISCOPE_READER_USER and SAISCOPE_READER_PASS, each honouring the *_FILE
// convention. Without admin credentials authentication is disabled.
func LoadAuth() (*Auth, error) {
	vals := make([]string, 4)
	for i, name := range []string{"SAISCOPE_ADMIN_USER", "SAISCOPE_ADMIN_PASS", "SAISCOPE_READER_USER", "SAISCOPE_READER_PASS"} {
		v, err := config.ResolveSecret(name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		vals[i] = v
	}
	return NewAuth(vals[0], vals[1], vals[2], vals[3]), nil
}

// Enabled reports whether credentials are checked.
func (a *Auth) Enabled() bool {
	return a != nil
}

// authenticate checks basic auth credentials and returns the role if valid.
// Returns empty string if credentials are invalid.
func (a *Auth) authenticate(r *http.Request) Role {
	if a == nil {
		return RoleAdmin
	}

	user, pass, ok := r.BasicAuth()
	if !ok {
		return ""
	}
	if a.admin.matches(user, pass) {
		return RoleAdmin
	}
	if a.reader.set() && a.reader.matches(user, pass) {
		return RoleReader
	}
	return ""
}

func (c credential) matches(user, pass string) bool {
	// both halves are always compared
	u := subtle.ConstantTimeCompare([]byte(user), []byte(c.user))
	p := subtle.ConstantTimeCompare([]byte(pass), []byte(c.pass))
	return u&p == 1
}

// require wraps a handler and requires one of the specified roles.
func (a *Auth) require(handler http.HandlerFunc, allowed ...Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := a.authenticate(r)
		if role == "" {
			w.Header().Set("WWW-Authenticate", `Basic realm="SaiScope"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		for _, want := range allowed {
			if role == want {
				handler(w, r)
				return
			}
		}
		http.Error(w, "Forbidden", http.StatusForbidden)
	}
}

func (a *Auth) anyRole(h http.HandlerFunc) http.HandlerFunc {
	return a.require(h, RoleAdmin, RoleReader)
}

func (a *Auth) adminOnly(h http.HandlerFunc) http.HandlerFunc {
	return a.require(h, RoleAdmin)
}
