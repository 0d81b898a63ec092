package entity

// Logical column names understood by the address store.
const (
	ColumnDisplayName      = "display_name"
	ColumnPhotoID          = "photo_id"
	ColumnFormattedAddress = "formatted_address"
	ColumnType             = "type"
	ColumnLabel            = "label"
	ColumnPhoto            = "photo"
)

// AddressRecord is a read-only snapshot of one structured postal address, fetched once per request.
type AddressRecord struct {
	Ref              string      // The opaque reference the record was fetched for.
	Found            bool        // Whether the store returned a row for Ref.
	DisplayName      *string     // The contact display name; nil when absent.
	PhotoID          int64       // The associated photo identifier; 0 means none.
	FormattedAddress *string     // The formatted, human-readable address; nil when absent.
	Type             AddressType // The address classification code.
	Label            *string     // The custom label, meaningful only when Type is AddressTypeCustom.
}

// CustomLabel returns the custom label or the empty string.
func (r AddressRecord) CustomLabel() string {
	if r.Label == nil {
		return ""
	}

	return *r.Label
}

// PhotoBlob holds raw encoded image bytes. A nil blob means no photo.
type PhotoBlob []byte

// AddressSummary is a listing entry used by pickers to present selectable addresses.
type AddressSummary struct {
	Ref              string      `json:"ref"`
	DisplayName      string      `json:"displayName"`
	FormattedAddress string      `json:"formattedAddress"`
	Type             AddressType `json:"type"`
	Label            string      `json:"label,omitempty"`
	HasPhoto         bool        `json:"hasPhoto"`
}
