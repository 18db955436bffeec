package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/achievement-blocks/internal/types"
)

const insertBlockSQL = `INSERT INTO blocks
	(id, import_id, category, subcategory, title, content, skills, keywords, strength_level, role_types, company_types)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (title, category) DO NOTHING`

const selectBlockColumns = `id, import_id, category, subcategory, title, content,
	skills, keywords, strength_level, role_types, company_types, created_at`

// SaveCatalog stores blocks in one transaction. Blocks whose (title, category) already
// exist are skipped, not updated. The returned run carries the imported and skipped counts.
func (db *DB) SaveCatalog(ctx context.Context, input ImportInput) (*ImportRun, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after Commit returns ErrTxClosed and is ignored.
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	run := &ImportRun{
		ID:      uuid.New(),
		Source:  input.Source,
		Owner:   input.Owner,
		Version: input.Version,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO block_imports (id, source, owner, version)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		run.ID, run.Source, run.Owner, run.Version,
	).Scan(&run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create import run: %w", err)
	}

	batch := &pgx.Batch{}
	for _, b := range input.Blocks {
		batch.Queue(insertBlockSQL, blockArgs(uuid.New(), run.ID, b)...)
	}
	results := tx.SendBatch(ctx, batch)
	for i := range input.Blocks {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return nil, fmt.Errorf("failed to insert block %q: %w", input.Blocks[i].Title, err)
		}
		if tag.RowsAffected() == 1 {
			run.Imported++
		} else {
			run.Skipped++
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish block batch: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE block_imports SET imported = $1, skipped = $2 WHERE id = $3`,
		run.Imported, run.Skipped, run.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update import run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return run, nil
}

// ListBlocks returns every stored block in insertion order
func (db *DB) ListBlocks(ctx context.Context) ([]StoredBlock, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+selectBlockColumns+` FROM blocks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	defer rows.Close()

	blocks := make([]StoredBlock, 0)
	for rows.Next() {
		sb, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *sb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blocks: %w", err)
	}
	return blocks, nil
}

// GetBlock retrieves a block by ID; it returns nil when no row exists
func (db *DB) GetBlock(ctx context.Context, id uuid.UUID) (*StoredBlock, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+selectBlockColumns+` FROM blocks WHERE id = $1`, id)
	sb, err := scanBlock(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return sb, nil
}

// GetImportRun retrieves an import run by ID; it returns nil when no row exists
func (db *DB) GetImportRun(ctx context.Context, id uuid.UUID) (*ImportRun, error) {
	var run ImportRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, source, owner, version, imported, skipped, created_at
		 FROM block_imports WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.Source, &run.Owner, &run.Version, &run.Imported, &run.Skipped, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get import run: %w", err)
	}
	return &run, nil
}

// Blocks strips storage identity from stored blocks, keeping their order
func Blocks(stored []StoredBlock) []types.Block {
	out := make([]types.Block, 0, len(stored))
	for _, sb := range stored {
		out = append(out, sb.Block)
	}
	return out
}

func blockArgs(id, importID uuid.UUID, b types.Block) []any {
	b = b.Clone()
	return []any{
		id, importID, b.Category, b.Subcategory, b.Title, b.Content,
		b.Skills, b.Keywords, string(b.StrengthLevel), b.RoleTypes, b.CompanyTypes,
	}
}

func scanBlock(row pgx.Row) (*StoredBlock, error) {
	var sb StoredBlock
	var strength string
	err := row.Scan(
		&sb.ID, &sb.ImportID, &sb.Block.Category, &sb.Block.Subcategory, &sb.Block.Title, &sb.Block.Content,
		&sb.Block.Skills, &sb.Block.Keywords, &strength, &sb.Block.RoleTypes, &sb.Block.CompanyTypes, &sb.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan block: %w", err)
	}
	sb.Block.StrengthLevel = types.StrengthLevel(strength)
	sb.Block = sb.Block.Clone()
	return &sb, nil
}
