package repository

import (
    "database/sql"
    "time"

    "github.com/unclebandit/recruitbase-backend/internal/model"
)

type ExportAuditRepository struct {
    DB *sql.DB
}

// Create inserts a new export audit row and returns the created ID
func (r *ExportAuditRepository) Create(audit *model.ExportAudit) error {
    audit.CreatedAt = time.Now()

    query := `
        INSERT INTO export_audits (entity, role, total_fetched, total_exported, exported_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
    return r.DB.QueryRow(
        query,
        audit.Entity,
        audit.Role,
        audit.TotalFetched,
        audit.TotalExported,
        audit.ExportedAt,
        audit.CreatedAt,
    ).Scan(&audit.ID)
}
