package repository

import (
    "database/sql"

    appErrors "github.com/unclebandit/recruitbase-backend/internal/errors"
    "github.com/unclebandit/recruitbase-backend/internal/model"
)

// ApplicationRepositoryInterface defines methods used by the export service
type ApplicationRepositoryInterface interface {
    ListByPosition(position string) ([]*model.CampaignApplication, error)
}

type ApplicationRepository struct {
    DB *sql.DB
}

// ListByPosition fetches every application for the (already normalized)
// position, newest first. Rows without a created_at sort last.
func (r *ApplicationRepository) ListByPosition(position string) ([]*model.CampaignApplication, error) {
    query := `
        SELECT id, name, email, phone, position, segment, status, created_at, cv_url, cv_filename
        FROM campaign_applications
        WHERE position = $1
        ORDER BY created_at DESC NULLS LAST
    `
    rows, err := r.DB.Query(query, position)
    if err != nil {
        return nil, appErrors.NewFetchError("campaign_applications", err)
    }
    defer rows.Close()

    apps := []*model.CampaignApplication{}
    for rows.Next() {
        var a model.CampaignApplication
        var name, email, phone, pos, segment, status, created, cvKey, cvFilename sql.NullString
        if err := rows.Scan(&a.ID, &name, &email, &phone, &pos, &segment, &status, &created, &cvKey, &cvFilename); err != nil {
            return nil, appErrors.NewFetchError("campaign_applications", err)
        }
        a.Name = name.String
        a.Email = email.String
        a.Phone = phone.String
        a.Position = pos.String
        a.Segment = segment.String
        a.Status = status.String
        a.CreatedAt = created.String
        a.CVKey = cvKey.String
        a.CVFilename = cvFilename.String
        apps = append(apps, &a)
    }
    if err := rows.Err(); err != nil {
        return nil, appErrors.NewFetchError("campaign_applications", err)
    }

    return apps, nil
}

var _ ApplicationRepositoryInterface = (*ApplicationRepository)(nil)
