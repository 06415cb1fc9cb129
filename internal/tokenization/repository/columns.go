// Package repository implements card token persistence for PostgreSQL and
// memory. The MySQL store lives in the mysql subpackage.
package repository

import (
	"encoding/json"

	apperrors "github.com/allisson/cardvault/internal/errors"
)

const cardTokenColumns = `id, token, fingerprint, encrypted_pan, bin, last4, brand, expiry_month, expiry_year, metadata, created_at, updated_at`

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal metadata")
	}
	return metadataJSON, nil
}

func unmarshalMetadata(metadataJSON []byte) (map[string]any, error) {
	if len(metadataJSON) == 0 {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal metadata")
	}
	return metadata, nil
}
