// Package entity contains the core business objects of the project.
package entity

import "strings"

// AddressType is the classification code of a structured postal address as stored by the contact store.
type AddressType int

const (
	// AddressTypeCustom indicates the address carries a user-defined label.
	AddressTypeCustom AddressType = 0
	// AddressTypeHome indicates a home address.
	AddressTypeHome AddressType = 1
	// AddressTypeWork indicates a work address.
	AddressTypeWork AddressType = 2
	// AddressTypeOther indicates any other address.
	AddressTypeOther AddressType = 3
)

// String returns the string representation of the AddressType.
func (t AddressType) String() string {
	switch t {
	case AddressTypeCustom:
		return "custom"
	case AddressTypeHome:
		return "home"
	case AddressTypeWork:
		return "work"
	case AddressTypeOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsValid checks if the AddressType is a known code.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeCustom, AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

// ParseAddressType converts a name such as "home" into an AddressType.
func ParseAddressType(name string) (AddressType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "custom":
		return AddressTypeCustom, true
	case "home":
		return AddressTypeHome, true
	case "work":
		return AddressTypeWork, true
	case "other", "":
		return AddressTypeOther, true
	default:
		return AddressTypeOther, false
	}
}
