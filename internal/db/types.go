package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/achievement-blocks/internal/types"
)

// StoredBlock is a block row with its storage identity
type StoredBlock struct {
	ID        uuid.UUID   `json:"id"`
	ImportID  uuid.UUID   `json:"import_id"`
	Block     types.Block `json:"block"`
	CreatedAt time.Time   `json:"created_at"`
}

// ImportRun records one SaveCatalog call
type ImportRun struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"`
	Owner     string    `json:"owner,omitempty"`
	Version   string    `json:"version,omitempty"`
	Imported  int       `json:"imported"`
	Skipped   int       `json:"skipped"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportInput describes the catalog being saved
type ImportInput struct {
	Source  string
	Owner   string
	Version string
	Blocks  []types.Block
}
