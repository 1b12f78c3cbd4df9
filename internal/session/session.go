// Package session supplies the authorization context the guard consumes:
// who the viewer is, what role they hold, and a permission lookup. Accounts
// are fixed demo fixtures; there is no real identity provider in scope.
package session

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName"`
	Role         authz.Role `json:"role"`
	passwordHash []byte
}

// OwnerLookup resolves the owner of a resource instance, so permission
// checks can honor ownership. Resource kinds without an owner return false.
type OwnerLookup func(resource, resourceID string) (ownerID string, ok bool)

type Manager struct {
	secret    []byte
	accessTTL time.Duration
	accounts  []Account
	grants    map[authz.Role]map[string]bool
	ownerOf   OwnerLookup
}

func NewManager(secret string, accessTTL time.Duration, ownerOf OwnerLookup) *Manager {
	return &Manager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		accounts:  demoAccounts(),
		grants:    defaultGrants(),
		ownerOf:   ownerOf,
	}
}

// Authenticate checks demo-account credentials.
func (m *Manager) Authenticate(email, password string) (Account, bool) {
	for _, a := range m.accounts {
		if a.Email == email {
			if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil {
				return a, true
			}
			return Account{}, false
		}
	}
	return Account{}, false
}

// Account returns the demo account with the given id.
func (m *Manager) Account(id string) (Account, bool) {
	for _, a := range m.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Viewer builds the guard context for an account. A fresh permission
// checker is built per call so decisions always see current ownership.
func (m *Manager) Viewer(a Account) authz.Context {
	return authz.Context{
		Authenticated: true,
		UserID:        a.ID,
		Role:          a.Role,
		Permissions: &permissionChecker{
			userID:  a.ID,
			role:    a.Role,
			grants:  m.grants,
			ownerOf: m.ownerOf,
		},
	}
}

// Guest is the context for unauthenticated viewers.
func Guest() authz.Context {
	return authz.Context{Role: authz.RoleGuest}
}

type permissionChecker struct {
	userID  string
	role    authz.Role
	grants  map[authz.Role]map[string]bool
	ownerOf OwnerLookup
}

func (p *permissionChecker) HasPermission(resource, action, resourceID string) bool {
	if p.role == authz.RoleAdmin {
		return true
	}
	if p.grants[p.role][resource+":"+action] {
		return true
	}
	if resourceID != "" && p.ownerOf != nil {
		if owner, ok := p.ownerOf(resource, resourceID); ok && owner == p.userID {
			return true
		}
	}
	return false
}

// defaultGrants maps roles to their blanket (resource, action) grants.
// Anything not granted here falls back to the ownership check; notably
// booking:respond is ownership-only, so a DJ can answer only requests
// addressed to them.
func defaultGrants() map[authz.Role]map[string]bool {
	return map[authz.Role]map[string]bool{
		authz.RoleOrganizer: {
			"booking:create":  true,
			"playlist:create": true,
			"playlist:import": true,
		},
		authz.RoleDJ: {
			"playlist:create": true,
			"playlist:import": true,
		},
	}
}

// Demo fixtures. All accounts share the password "demo1234"; hashing at
// startup keeps the literal hash out of the source.
func demoAccounts() []Account {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost.
		panic(err)
	}
	return []Account{
		{
			ID:           "user-organizer-1",
			Email:        "organizer@demo.local",
			DisplayName:  "Olivia Events",
			Role:         authz.RoleOrganizer,
			passwordHash: hash,
		},
		{
			ID:           "user-dj-1",
			Email:        "dj@demo.local",
			DisplayName:  "DJ Nexus",
			Role:         authz.RoleDJ,
			passwordHash: hash,
		},
		{
			ID:           "user-admin-1",
			Email:        "admin@demo.local",
			DisplayName:  "Site Admin",
			Role:         authz.RoleAdmin,
			passwordHash: hash,
		},
	}
}
