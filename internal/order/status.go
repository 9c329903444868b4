package order

import "bakery-be/internal/user"

// CanChange reports whether actingRole may move an order from its
// current status to next. Transitions only move forward:
//
//	pending   -> preparing  (production, admin)
//	preparing -> ready      (production, admin)
//	ready     -> delivered  (cashier, admin)
//
// No transition to paid is ever granted here; payment collection is a
// privileged write handled separately. Callers must treat false as a
// client error, not silently ignore it.
func CanChange(current, next Status, actingRole string) bool {
	switch current {
	case StatusPending:
		return next == StatusPreparing && isProductionOrAdmin(actingRole)
	case StatusPreparing:
		return next == StatusReady && isProductionOrAdmin(actingRole)
	case StatusReady:
		return next == StatusDelivered &&
			(actingRole == user.RoleCashier || actingRole == user.RoleAdmin)
	default:
		return false
	}
}

func isProductionOrAdmin(role string) bool {
	return role == user.RoleProduction || role == user.RoleAdmin
}
