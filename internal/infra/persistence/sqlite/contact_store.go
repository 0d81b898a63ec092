package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"navshortcut/internal/domain/entity"
	domainerrors "navshortcut/internal/domain/errors"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/errors"
)

// addressProjection maps logical column names to SQL expressions of the address query.
var addressProjection = map[string]string{
	entity.ColumnDisplayName:      "c.display_name",
	entity.ColumnPhotoID:          "c.photo_id",
	entity.ColumnFormattedAddress: "a.formatted_address",
	entity.ColumnType:             "a.type",
	entity.ColumnLabel:            "a.label",
}

// ContactStore implements repository.AddressStore and repository.AddressCatalog on SQLite.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore is the constructor for ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// QueryAddress selects the requested columns of the postal address identified by ref.
// The returned cursor yields zero or one row.
func (s *ContactStore) QueryAddress(ctx context.Context, ref string, columns []string) (repository.Cursor, error) {
	if len(columns) == 0 {
		return nil, errors.Wrap(repository.ErrUnknownColumn, "no columns requested")
	}

	id, err := ParseReference(ref)
	if err != nil {
		return nil, err
	}

	exprs := make([]string, 0, len(columns))
	for _, column := range columns {
		expr, ok := addressProjection[column]
		if !ok {
			return nil, errors.Wrapf(repository.ErrUnknownColumn, "column %q", column)
		}
		exprs = append(exprs, expr)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+strings.Join(exprs, ", ")+`
		 FROM postal_addresses a
		 JOIN contacts c ON c.id = a.contact_id
		 WHERE a.id = ?
		 LIMIT 1`,
		id,
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query address")
	}

	return rows, nil
}

// QueryPhoto selects the raw bytes of a photo. The returned cursor yields zero or one row.
func (s *ContactStore) QueryPhoto(ctx context.Context, photoID int64) (repository.Cursor, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM photos WHERE id = ? LIMIT 1`, photoID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query photo")
	}

	return rows, nil
}

// ListAddresses returns every stored postal address ordered by contact name.
func (s *ContactStore) ListAddresses(ctx context.Context) ([]*entity.AddressSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT a.id, c.display_name, a.formatted_address, a.type, a.label, c.photo_id
		 FROM postal_addresses a
		 JOIN contacts c ON c.id = a.contact_id
		 ORDER BY c.display_name, a.id`,
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}
	defer rows.Close()

	var summaries []*entity.AddressSummary
	for rows.Next() {
		var (
			id          int64
			displayName sql.NullString
			formatted   sql.NullString
			addressType int
			label       sql.NullString
			photoID     int64
		)
		if err := rows.Scan(&id, &displayName, &formatted, &addressType, &label, &photoID); err != nil {
			return nil, errors.Wrap(err, "failed to scan address summary")
		}

		summaries = append(summaries, &entity.AddressSummary{
			Ref:              FormatReference(id),
			DisplayName:      displayName.String,
			FormattedAddress: formatted.String,
			Type:             entity.AddressType(addressType),
			Label:            label.String,
			HasPhoto:         photoID != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate address summaries")
	}

	return summaries, nil
}

// ImportContacts inserts contacts, photos and addresses in one transaction.
func (s *ContactStore) ImportContacts(ctx context.Context, contacts []repository.ContactImport) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to begin import")
	}
	defer func() { _ = tx.Rollback() }()

	var refs []string
	for _, contact := range contacts {
		contactRefs, err := importContact(ctx, tx, contact)
		if err != nil {
			return nil, err
		}
		refs = append(refs, contactRefs...)
	}

	if err := tx.Commit(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to commit import")
	}

	return refs, nil
}

func importContact(ctx context.Context, tx *sql.Tx, contact repository.ContactImport) ([]string, error) {
	result, err := tx.ExecContext(ctx, `INSERT INTO contacts (display_name) VALUES (?)`, nullString(contact.DisplayName))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert contact")
	}
	contactID, err := result.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read contact id")
	}

	if len(contact.Photo) > 0 {
		result, err := tx.ExecContext(ctx, `INSERT INTO photos (contact_id, data) VALUES (?, ?)`, contactID, []byte(contact.Photo))
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert photo")
		}
		photoID, err := result.LastInsertId()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read photo id")
		}
		if _, err := tx.ExecContext(ctx, `UPDATE contacts SET photo_id = ? WHERE id = ?`, photoID, contactID); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to link photo")
		}
	}

	refs := make([]string, 0, len(contact.Addresses))
	for _, address := range contact.Addresses {
		result, err := tx.ExecContext(
			ctx,
			`INSERT INTO postal_addresses (contact_id, formatted_address, type, label) VALUES (?, ?, ?, ?)`,
			contactID,
			nullString(address.FormattedAddress),
			int(address.Type),
			nullString(address.Label),
		)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert address")
		}
		addressID, err := result.LastInsertId()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read address id")
		}
		refs = append(refs, FormatReference(addressID))
	}

	return refs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
