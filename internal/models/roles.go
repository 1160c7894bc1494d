package models

// Role values stored on a user row.
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// RoleHead is what the signup form sends for a superadmin-tier request.
// It is never stored; NormalizeRole maps it to RoleSuperadmin.
const RoleHead = "head"

// NormalizeRole translates a registration role into the stored role and the
// initial approval state. Customers are usable immediately; admin and
// superadmin accounts stay locked until a superadmin approves them.
func NormalizeRole(requested string) (role string, approved bool, ok bool) {
	switch requested {
	case RoleCustomer:
		return RoleCustomer, true, true
	case RoleAdmin:
		return RoleAdmin, false, true
	case RoleHead:
		return RoleSuperadmin, false, true
	default:
		return "", false, false
	}
}

// AdminTier reports whether the role is subject to approval gating.
func AdminTier(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}
