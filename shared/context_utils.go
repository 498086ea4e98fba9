package shared

import (
	"github.com/l3montree-dev/vulify/database/models"
)

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetSession panics if no session middleware ran before - routes using
// it are always registered behind the session group.
func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetCustomer(ctx Context, customer models.Customer) {
	ctx.Set("customer", customer)
}

func GetCustomer(ctx Context) models.Customer {
	return ctx.Get("customer").(models.Customer)
}

func SetScan(ctx Context, scan models.Scan) {
	ctx.Set("scan", scan)
}

func GetScan(ctx Context) models.Scan {
	return ctx.Get("scan").(models.Scan)
}
