// Package auth holds the role model, capability checks, signed tokens and
// the per-request session object.
package auth

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	Admin   Role = "admin"
	Manager Role = "manager"
	Cashier Role = "cashier"
)

var ErrUnknownRole = errors.New("unknown role")

// Roles lists every valid role, most privileged first.
var Roles = []Role{Admin, Manager, Cashier}

// ParseRole accepts only the three known roles (case-insensitive).
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case Admin, Manager, Cashier:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type Capability string

const (
	ViewDashboard     Capability = "view_dashboard"
	ViewInventory     Capability = "view_inventory"
	ManageInventory   Capability = "manage_inventory"
	ManageCustomers   Capability = "manage_customers"
	CreateBills       Capability = "create_bills"
	ViewPendingBills  Capability = "view_pending_bills"
	ApproveBills      Capability = "approve_bills"
	CreateQuotations  Capability = "create_quotations"
	ConvertQuotations Capability = "convert_quotations"
	ManageUsers       Capability = "manage_users"
	UseAssistant      Capability = "use_assistant"
)

var capabilities = map[Capability][]Role{
	ViewDashboard:     {Admin, Manager, Cashier},
	ViewInventory:     {Admin, Manager, Cashier},
	ManageInventory:   {Admin, Manager},
	ManageCustomers:   {Admin, Manager, Cashier},
	CreateBills:       {Admin, Manager, Cashier},
	ViewPendingBills:  {Admin},
	ApproveBills:      {Admin},
	CreateQuotations:  {Admin, Manager, Cashier},
	ConvertQuotations: {Admin, Manager, Cashier},
	ManageUsers:       {Admin},
	UseAssistant:      {Admin, Manager, Cashier},
}

// Can is the single gate used for route guards and for the capability list
// handed to the UI. Unknown roles and unknown capabilities are denied.
func Can(role Role, capability Capability) bool {
	for _, r := range capabilities[capability] {
		if r == role {
			return true
		}
	}
	return false
}

// CapabilitiesOf returns the capabilities granted to role in a stable order.
func CapabilitiesOf(role Role) []Capability {
	all := []Capability{
		ViewDashboard, ViewInventory, ManageInventory, ManageCustomers,
		CreateBills, ViewPendingBills, ApproveBills,
		CreateQuotations, ConvertQuotations, ManageUsers, UseAssistant,
	}
	granted := make([]Capability, 0, len(all))
	for _, c := range all {
		if Can(role, c) {
			granted = append(granted, c)
		}
	}
	return granted
}
