package impl

import (
	"context"
	"database/sql"
	"log/slog"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/usecase"
)

// addressColumns is the projection of the address query, in scan order.
var addressColumns = []string{
	entity.ColumnDisplayName,
	entity.ColumnPhotoID,
	entity.ColumnFormattedAddress,
	entity.ColumnType,
	entity.ColumnLabel,
}

type addressResolver struct {
	store  repository.AddressStore
	logger *slog.Logger
}

// NewAddressResolver creates a resolver reading from store
func NewAddressResolver(store repository.AddressStore, logger *slog.Logger) usecase.AddressResolver {
	return &addressResolver{
		store:  store,
		logger: logger,
	}
}

// Resolve fetches the address fields, then the photo when the contact has one.
// It never fails: whatever could not be read is left unset.
func (r *addressResolver) Resolve(ctx context.Context, ref string) (*entity.AddressRecord, entity.PhotoBlob) {
	record := &entity.AddressRecord{Ref: ref}
	r.fetchAddress(ctx, record)

	if record.PhotoID == 0 {
		return record, nil
	}

	return record, r.fetchPhoto(ctx, ref, record.PhotoID)
}

func (r *addressResolver) fetchAddress(ctx context.Context, record *entity.AddressRecord) {
	cursor, err := r.store.QueryAddress(ctx, record.Ref, addressColumns)
	if err != nil {
		r.logger.Warn("Address query failed", slog.String("ref", record.Ref), slog.Any("error", err))

		return
	}
	defer r.closeCursor(cursor, record.Ref)

	if !cursor.Next() {
		if err := cursor.Err(); err != nil {
			r.logger.Warn("Address query iteration failed", slog.String("ref", record.Ref), slog.Any("error", err))

			return
		}
		r.logger.Debug("Address not found", slog.String("ref", record.Ref))

		return
	}

	var (
		displayName sql.NullString
		photoID     sql.NullInt64
		formatted   sql.NullString
		addressType sql.NullInt64
		label       sql.NullString
	)
	if err := cursor.Scan(&displayName, &photoID, &formatted, &addressType, &label); err != nil {
		r.logger.Warn("Address row unreadable", slog.String("ref", record.Ref), slog.Any("error", err))

		return
	}

	record.Found = true
	record.DisplayName = stringPtr(displayName)
	record.PhotoID = photoID.Int64
	record.FormattedAddress = stringPtr(formatted)
	record.Type = entity.AddressType(addressType.Int64)
	record.Label = stringPtr(label)
}

func (r *addressResolver) fetchPhoto(ctx context.Context, ref string, photoID int64) entity.PhotoBlob {
	cursor, err := r.store.QueryPhoto(ctx, photoID)
	if err != nil {
		r.logger.Warn("Photo query failed", slog.String("ref", ref), slog.Int64("photoID", photoID), slog.Any("error", err))

		return nil
	}
	defer r.closeCursor(cursor, ref)

	if !cursor.Next() {
		if err := cursor.Err(); err != nil {
			r.logger.Warn("Photo query iteration failed", slog.String("ref", ref), slog.Any("error", err))
		}

		return nil
	}

	var data []byte
	if err := cursor.Scan(&data); err != nil {
		r.logger.Warn("Photo row unreadable", slog.String("ref", ref), slog.Int64("photoID", photoID), slog.Any("error", err))

		return nil
	}
	if len(data) == 0 {
		return nil
	}

	return entity.PhotoBlob(data)
}

func (r *addressResolver) closeCursor(cursor repository.Cursor, ref string) {
	if err := cursor.Close(); err != nil {
		r.logger.Debug("Closing cursor failed", slog.String("ref", ref), slog.Any("error", err))
	}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}
