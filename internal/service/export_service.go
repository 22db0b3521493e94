package service

import (
    "log"
    "strings"
    "sync"
    "time"

    "github.com/unclebandit/recruitbase-backend/internal/csvutil"
    "github.com/unclebandit/recruitbase-backend/internal/model"
    "github.com/unclebandit/recruitbase-backend/internal/queue"
    "github.com/unclebandit/recruitbase-backend/internal/repository"
    "github.com/unclebandit/recruitbase-backend/internal/storage"
)

// ApplicationColumns is the fixed header of the campaign-application export.
var ApplicationColumns = []string{
    "application_id", "name", "email", "phone", "position", "segment",
    "status", "created_at", "cv_key", "cv_filename", "cv_download_url", "cv_error",
}

// CandidateColumns is the fixed header of the candidate export.
var CandidateColumns = []string{
    "candidate_id", "name", "email", "phone", "role",
    "status", "created_at", "cv_key", "cv_download_url", "cv_error",
}

type ExportService struct {
    ApplicationRepo repository.ApplicationRepositoryInterface
    CandidateRepo   repository.CandidateRepositoryInterface
    Signer          storage.URLSigner
    Queue           queue.Queue
}

// ExportOptions carries the normalized request parameters for one export.
type ExportOptions struct {
    Role           string // already trimmed and lower-cased
    IncludeMissing bool
    Bucket         string
    ExpirySeconds  int64
}

// Result struct for the export endpoints
type ExportResult struct {
    CSV           string
    TotalFetched  int
    TotalExported int
}

// cvLink holds the outcome of one signed-URL resolution.
type cvLink struct {
    URL string
    Err string
}

// ExportApplications builds the CSV export of campaign applications for one position.
func (s *ExportService) ExportApplications(opts ExportOptions) (*ExportResult, error) {
    apps, err := s.ApplicationRepo.ListByPosition(opts.Role)
    if err != nil {
        return nil, err
    }

    retained := []*model.CampaignApplication{}
    for _, a := range apps {
        if !opts.IncludeMissing && strings.TrimSpace(a.CVKey) == "" {
            continue
        }
        retained = append(retained, a)
    }

    ids := make([]string, len(retained))
    keys := make([]string, len(retained))
    for i, a := range retained {
        ids[i] = a.ID
        keys[i] = a.CVKey
    }
    links := s.resolveCVLinks(ids, keys, opts.Bucket, opts.ExpirySeconds)

    lines := make([]string, 0, len(retained)+1)
    lines = append(lines, csvutil.Line(ApplicationColumns))
    for i, a := range retained {
        position := a.Position
        if strings.TrimSpace(position) == "" {
            position = opts.Role
        }
        lines = append(lines, csvutil.Line([]string{
            a.ID, a.Name, a.Email, a.Phone, position, a.Segment,
            a.Status, a.CreatedAt, a.CVKey, a.CVFilename, links[i].URL, links[i].Err,
        }))
    }

    result := &ExportResult{
        CSV:           strings.Join(lines, "\n"),
        TotalFetched:  len(apps),
        TotalExported: len(retained),
    }
    s.publishAudit("applications", opts.Role, result.TotalFetched, result.TotalExported)
    return result, nil
}

// ExportCandidates builds the CSV export of candidates for one role.
func (s *ExportService) ExportCandidates(opts ExportOptions) (*ExportResult, error) {
    candidates, err := s.CandidateRepo.ListByRole(opts.Role)
    if err != nil {
        return nil, err
    }

    retained := []*model.Candidate{}
    for _, c := range candidates {
        if !opts.IncludeMissing && strings.TrimSpace(c.CVKey) == "" {
            continue
        }
        retained = append(retained, c)
    }

    ids := make([]string, len(retained))
    keys := make([]string, len(retained))
    for i, c := range retained {
        ids[i] = c.ID
        keys[i] = c.CVKey
    }
    links := s.resolveCVLinks(ids, keys, opts.Bucket, opts.ExpirySeconds)

    lines := make([]string, 0, len(retained)+1)
    lines = append(lines, csvutil.Line(CandidateColumns))
    for i, c := range retained {
        role := c.Role
        if strings.TrimSpace(role) == "" {
            role = opts.Role
        }
        lines = append(lines, csvutil.Line([]string{
            c.ID, c.Name, c.Email, c.Phone, role,
            c.Status, c.CreatedAt, c.CVKey, links[i].URL, links[i].Err,
        }))
    }

    result := &ExportResult{
        CSV:           strings.Join(lines, "\n"),
        TotalFetched:  len(candidates),
        TotalExported: len(retained),
    }
    s.publishAudit("candidates", opts.Role, result.TotalFetched, result.TotalExported)
    return result, nil
}

// resolveCVLinks resolves a download URL per row, concurrently. Each goroutine
// writes only its own slot, so the original row order is preserved. Absolute
// URLs pass through without a store call; blank keys resolve to nothing.
// Signing failures become per-row error text, never a request failure.
func (s *ExportService) resolveCVLinks(ids, keys []string, bucket string, expirySeconds int64) []cvLink {
    links := make([]cvLink, len(keys))
    expiresIn := time.Duration(expirySeconds) * time.Second

    var wg sync.WaitGroup
    for i := range keys {
        key := strings.TrimSpace(keys[i])
        if key == "" {
            continue
        }
        if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
            links[i].URL = key
            continue
        }

        wg.Add(1)
        go func(i int, id, key string) {
            defer wg.Done()
            url, err := s.Signer.SignedURL(bucket, key, expiresIn)
            if err != nil {
                log.Println("⚠️ failed to sign CV for record", id, ":", err)
                links[i].Err = err.Error()
                return
            }
            links[i].URL = url
        }(i, ids[i], key)
    }
    wg.Wait()

    return links
}

// publishAudit emits a fire-and-forget export event for the audit worker.
func (s *ExportService) publishAudit(entity, role string, fetched, exported int) {
    if s.Queue == nil {
        return
    }
    audit := model.ExportAudit{
        Entity:        entity,
        Role:          role,
        TotalFetched:  fetched,
        TotalExported: exported,
        ExportedAt:    time.Now().UTC(),
    }
    if err := s.Queue.Publish(queue.ExportsTopic, audit); err != nil {
        log.Println("⚠️ failed to publish export audit:", err)
    }
}
