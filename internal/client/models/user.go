package models

// Role is one of the closed set of account kinds the backend recognizes.
// It governs which actions and screens are available to a session.
type Role string

const (
	RoleListener Role = "listener"
	RoleCreator  Role = "creator"
	RoleExpert   Role = "expert"
	RoleLabel    Role = "label"
	RoleAdmin    Role = "admin"
)

// Roles available at registration time. Admin accounts are provisioned
// out of band and cannot be self-registered.
var RegistrableRoles = []Role{RoleListener, RoleCreator, RoleExpert, RoleLabel}

func (r Role) Valid() bool {
	switch r {
	case RoleListener, RoleCreator, RoleExpert, RoleLabel, RoleAdmin:
		return true
	}
	return false
}

// CanPublish reports whether the role is allowed to upload content.
func (r Role) CanPublish() bool {
	switch r {
	case RoleCreator, RoleExpert, RoleLabel:
		return true
	}
	return false
}

// User is the backend's record of the signed-in identity. The client keeps
// a transient read-mostly copy fetched on demand and discards it on logout.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	IsVerified  bool   `json:"is_verified"`
	BadgeStatus string `json:"badge_status,omitempty"`
}
