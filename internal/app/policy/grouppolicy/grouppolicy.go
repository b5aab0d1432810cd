// internal/app/policy/grouppolicy.go
package grouppolicy

import (
	"github.com/geonotes/geonotes/internal/domain/models"
)

// Group permissions are decided here and nowhere else. The functions
// take the caller's own membership role in the group (attached
// per-caller by the backend) and decide which controls to render and
// which mutations to attempt. The backend enforces the same rules
// authoritatively; these gates exist so a member never even sees a
// control that would be rejected.
//
// Rules:
//   - owner or admin: edit group metadata, add members
//   - owner only: delete the group, change member roles
//   - owner removes anyone but themselves; admin removes only plain
//     members (not other admins, never the owner)
//   - nobody gets a control targeting their own membership row

// CanEditGroup reports whether the caller may edit group metadata.
func CanEditGroup(role string) bool {
	return role == models.RoleOwner || role == models.RoleAdmin
}

// CanDeleteGroup reports whether the caller may delete the group.
func CanDeleteGroup(role string) bool {
	return role == models.RoleOwner
}

// CanAddMember reports whether the caller may add new members.
func CanAddMember(role string) bool {
	return role == models.RoleOwner || role == models.RoleAdmin
}

// CanRemoveMember reports whether the caller may remove the target
// member. Self-removal is never offered through these controls.
func CanRemoveMember(actorRole, actorID string, target models.Member) bool {
	if target.UserID == actorID {
		return false
	}
	switch actorRole {
	case models.RoleOwner:
		return true
	case models.RoleAdmin:
		return target.Role == models.RoleMember
	default:
		return false
	}
}

// CanAssignRole reports whether the caller may change the target
// member's role. Only the owner can, and never on their own row.
func CanAssignRole(actorRole, actorID string, target models.Member) bool {
	return actorRole == models.RoleOwner && target.UserID != actorID
}

// NextRole returns the role toggle offered for a target member:
// member→admin promotion or admin→member demotion. The owner row has
// no toggle.
func NextRole(target models.Member) (string, bool) {
	switch target.Role {
	case models.RoleMember:
		return models.RoleAdmin, true
	case models.RoleAdmin:
		return models.RoleMember, true
	default:
		return "", false
	}
}
