package command

import (
	"os"
	"path/filepath"
	"testing"

	"navshortcut/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadContactsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "photos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photos", "ada.png"), []byte("photo-bytes"), 0o644))

	path := filepath.Join(dir, "contacts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
contacts:
  - name: Ada Lovelace
    photo: photos/ada.png
    addresses:
      - address: "12 St James's Square, London"
        type: home
      - address: 1 Analytical Row
        type: custom
        label: Workshop
  - name: Charles Babbage
    addresses:
      - address: 1 Dorset St
`), 0o644))

	contacts, err := ReadContactsFile(path)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	ada := contacts[0]
	assert.Equal(t, "Ada Lovelace", ada.DisplayName)
	assert.Equal(t, "photo-bytes", string(ada.Photo))
	require.Len(t, ada.Addresses, 2)
	assert.Equal(t, "12 St James's Square, London", ada.Addresses[0].FormattedAddress)
	assert.Equal(t, entity.AddressTypeHome, ada.Addresses[0].Type)
	assert.Equal(t, entity.AddressTypeCustom, ada.Addresses[1].Type)
	assert.Equal(t, "Workshop", ada.Addresses[1].Label)

	charles := contacts[1]
	assert.Nil(t, charles.Photo)
	require.Len(t, charles.Addresses, 1)
	assert.Equal(t, entity.AddressTypeOther, charles.Addresses[0].Type, "missing type defaults to other")
}

func TestParseContacts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown address type",
			yaml:    "contacts:\n  - name: A\n    addresses:\n      - address: x\n        type: boat\n",
			wantErr: `unknown address type "boat"`,
		},
		{
			name:    "unknown field",
			yaml:    "contacts:\n  - name: A\n    phone: 123\n",
			wantErr: "failed to parse contacts file",
		},
		{
			name:    "missing photo",
			yaml:    "contacts:\n  - name: A\n    photo: nope.jpg\n",
			wantErr: "failed to read photo",
		},
		{
			name:    "malformed yaml",
			yaml:    "contacts: [",
			wantErr: "failed to parse contacts file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseContacts([]byte(tt.yaml), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadContactsFile_Missing(t *testing.T) {
	_, err := ReadContactsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read contacts file")
}
