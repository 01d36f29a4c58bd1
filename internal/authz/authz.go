// Package authz holds the pure authorization predicates applied per
// endpoint. Every predicate is evaluated against the requester's verified
// token claims and, where relevant, the resource's recorded owner.
package authz

import "inkwell/internal/token"

// AdminOnly allows only admins. Applied to post creation and the user and
// comment admin listings.
func AdminOnly(claims token.Claims) bool {
	return claims.IsAdmin
}

// Self allows only the owner itself. Applied to user profile updates.
func Self(claims token.Claims, ownerID uint) bool {
	return claims.UserID == ownerID
}

// SelfOrAdmin allows the owner or any admin. Applied to user reads and
// deletions and to comment edits and deletions.
func SelfOrAdmin(claims token.Claims, ownerID uint) bool {
	return claims.UserID == ownerID || claims.IsAdmin
}

// OwnerAdmin allows only an admin acting on a resource it owns. Applied to
// post updates and deletions: posts are created by admins and remain
// manageable solely by their owning admin.
func OwnerAdmin(claims token.Claims, ownerID uint) bool {
	return claims.IsAdmin && claims.UserID == ownerID
}
