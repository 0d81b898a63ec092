package sqlite

import (
	"net/url"
	"strconv"
	"strings"

	"navshortcut/internal/domain/repository"
	"navshortcut/internal/errors"
)

const (
	referenceScheme    = "content"
	referenceAuthority = "contacts"
	referencePrefix    = "/data/"
)

// FormatReference builds the opaque reference of a postal address row,
// e.g. content://contacts/data/42.
func FormatReference(addressID int64) string {
	return referenceScheme + "://" + referenceAuthority + referencePrefix + strconv.FormatInt(addressID, 10)
}

// ParseReference extracts the postal address row id from a reference.
func ParseReference(ref string) (int64, error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return 0, errors.Wrapf(repository.ErrInvalidReference, "parse %q", ref)
	}
	if u.Scheme != referenceScheme || u.Host != referenceAuthority || !strings.HasPrefix(u.Path, referencePrefix) {
		return 0, errors.Wrapf(repository.ErrInvalidReference, "unsupported reference %q", ref)
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(u.Path, referencePrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(repository.ErrInvalidReference, "bad row id in %q", ref)
	}

	return id, nil
}
