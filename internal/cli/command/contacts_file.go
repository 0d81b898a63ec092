package command

import (
	"bytes"
	"os"
	"path/filepath"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/errors"

	"gopkg.in/yaml.v3"
)

// contactsFile is the YAML layout accepted by the import command:
//
//	contacts:
//	  - name: Ada Lovelace
//	    photo: photos/ada.jpg
//	    addresses:
//	      - address: 12 St James's Square, London
//	        type: home
//	      - address: 1 Analytical Row
//	        type: custom
//	        label: Workshop
//
// Photo paths are relative to the file itself.
type contactsFile struct {
	Contacts []contactEntry `yaml:"contacts"`
}

type contactEntry struct {
	Name      string         `yaml:"name"`
	Photo     string         `yaml:"photo"`
	Addresses []addressEntry `yaml:"addresses"`
}

type addressEntry struct {
	Address string `yaml:"address"`
	Type    string `yaml:"type"`
	Label   string `yaml:"label"`
}

// ReadContactsFile parses a contacts file and loads the photos it references.
func ReadContactsFile(path string) ([]repository.ContactImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read contacts file")
	}

	return parseContacts(data, filepath.Dir(path))
}

func parseContacts(data []byte, baseDir string) ([]repository.ContactImport, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file contactsFile
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "failed to parse contacts file")
	}

	contacts := make([]repository.ContactImport, 0, len(file.Contacts))
	for i, entry := range file.Contacts {
		contact := repository.ContactImport{DisplayName: entry.Name}

		if entry.Photo != "" {
			photoPath := entry.Photo
			if !filepath.IsAbs(photoPath) {
				photoPath = filepath.Join(baseDir, photoPath)
			}
			photo, err := os.ReadFile(photoPath)
			if err != nil {
				return nil, errors.Wrapf(err, "contact #%d: failed to read photo", i+1)
			}
			contact.Photo = photo
		}

		for _, address := range entry.Addresses {
			addressType, ok := entity.ParseAddressType(address.Type)
			if !ok {
				return nil, errors.Errorf("contact #%d: unknown address type %q", i+1, address.Type)
			}
			contact.Addresses = append(contact.Addresses, repository.AddressImport{
				FormattedAddress: address.Address,
				Type:             addressType,
				Label:            address.Label,
			})
		}

		contacts = append(contacts, contact)
	}

	return contacts, nil
}
