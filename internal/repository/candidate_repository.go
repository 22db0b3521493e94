package repository

import (
    "database/sql"

    appErrors "github.com/unclebandit/recruitbase-backend/internal/errors"
    "github.com/unclebandit/recruitbase-backend/internal/model"
)

// CandidateRepositoryInterface defines methods used by the export service
type CandidateRepositoryInterface interface {
    ListByRole(role string) ([]*model.Candidate, error)
}

type CandidateRepository struct {
    DB *sql.DB
}

// ListByRole fetches every candidate for the (already normalized) role,
// newest first. Rows without a created_at sort last.
func (r *CandidateRepository) ListByRole(role string) ([]*model.Candidate, error) {
    query := `
        SELECT id, name, email, phone, role, status, created_at, cv_url
        FROM candidates
        WHERE role = $1
        ORDER BY created_at DESC NULLS LAST
    `
    rows, err := r.DB.Query(query, role)
    if err != nil {
        return nil, appErrors.NewFetchError("candidates", err)
    }
    defer rows.Close()

    candidates := []*model.Candidate{}
    for rows.Next() {
        var c model.Candidate
        var name, email, phone, crole, status, created, key sql.NullString
        if err := rows.Scan(&c.ID, &name, &email, &phone, &crole, &status, &created, &key); err != nil {
            return nil, appErrors.NewFetchError("candidates", err)
        }
        c.Name = name.String
        c.Email = email.String
        c.Phone = phone.String
        c.Role = crole.String
        c.Status = status.String
        c.CreatedAt = created.String
        c.CVKey = key.String
        candidates = append(candidates, &c)
    }
    if err := rows.Err(); err != nil {
        return nil, appErrors.NewFetchError("candidates", err)
    }

    return candidates, nil
}

var _ CandidateRepositoryInterface = (*CandidateRepository)(nil)
