package service

import "navshortcut/internal/domain/entity"

// LabelService turns address classification codes into human-readable text.
type LabelService interface {
	// TypeLabel returns the display label for an address type. For entity.AddressTypeCustom a
	// non-empty custom label is returned verbatim.
	TypeLabel(addressType entity.AddressType, customLabel string) string
}
