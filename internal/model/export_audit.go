package model

import "time"

// ExportAudit records one completed CSV export.
type ExportAudit struct {
    ID            int       `db:"id" json:"id"`
    Entity        string    `db:"entity" json:"entity"` // applications, candidates
    Role          string    `db:"role" json:"role"`
    TotalFetched  int       `db:"total_fetched" json:"total_fetched"`
    TotalExported int       `db:"total_exported" json:"total_exported"`
    ExportedAt    time.Time `db:"exported_at" json:"exported_at"`
    CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
