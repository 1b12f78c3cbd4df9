// Package authz implements the role/permission guard that gates protected
// resources. Decisions are pure and computed fresh on every call; the guard
// holds no state of its own and only reads the context it is handed.
package authz

// Role is one of the fixed viewer roles.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleDJ        Role = "dj"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// PermissionChecker answers fine-grained (resource, action, resourceId)
// permission queries. It is supplied by the session layer.
type PermissionChecker interface {
	HasPermission(resource, action, resourceID string) bool
}

// Context is the viewer's authorization state at decision time. UserID is
// carried for handlers that need the caller's identity; Decide never reads
// it.
type Context struct {
	Authenticated bool
	UserID        string
	Role          Role
	Permissions   PermissionChecker
}

// Requirement describes what a protected resource demands. All fields are
// optional and combinable.
type Requirement struct {
	RequireAuth  bool
	AllowedRoles []Role
	Resource     string
	Action       string
	ResourceID   string
}

// DenialCategory identifies which check failed. Each category maps to a
// distinct user-facing notice.
type DenialCategory int

const (
	DenialNone DenialCategory = iota
	DenialAuthRequired
	DenialRoleNotPermitted
	DenialPermissionDenied
)

// Notice is the explanatory presentation shown when a caller opts into
// denial notices instead of a fallback.
type Notice struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// Decision is the outcome of a guard evaluation.
type Decision struct {
	Allowed  bool
	Category DenialCategory
}

// Decide evaluates the requirement against the viewer context. Checks run
// in order and the first failing check determines the denial category:
// authentication, then role membership, then the specific permission. The
// admin role bypasses role checks unconditionally.
func Decide(ctx Context, req Requirement) Decision {
	if req.RequireAuth && !ctx.Authenticated {
		return Decision{Category: DenialAuthRequired}
	}

	if len(req.AllowedRoles) > 0 && ctx.Role != RoleAdmin {
		allowed := false
		for _, r := range req.AllowedRoles {
			if ctx.Role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			return Decision{Category: DenialRoleNotPermitted}
		}
	}

	if req.Resource != "" && req.Action != "" {
		if ctx.Permissions == nil || !ctx.Permissions.HasPermission(req.Resource, req.Action, req.ResourceID) {
			return Decision{Category: DenialPermissionDenied}
		}
	}

	return Decision{Allowed: true}
}

// NoticeFor returns the presentation for a denial category.
func NoticeFor(c DenialCategory) Notice {
	switch c {
	case DenialAuthRequired:
		return Notice{
			Title:       "Sign in required",
			Explanation: "You need to sign in to view this content.",
		}
	case DenialRoleNotPermitted:
		return Notice{
			Title:       "Not available for your account",
			Explanation: "Your account type does not have access to this area.",
		}
	case DenialPermissionDenied:
		return Notice{
			Title:       "Permission denied",
			Explanation: "You do not have permission to perform this action.",
		}
	}
	return Notice{}
}
