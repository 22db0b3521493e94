package controller

import (
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/unclebandit/recruitbase-backend/internal/auth"
    "github.com/unclebandit/recruitbase-backend/internal/service"
)

type ExportController struct {
    ExportService *service.ExportService
    Auth          *auth.Authorizer
    DefaultRole   string
    DefaultBucket string
}

// ExportCampaignApplications handles GET /exports/campaign-applications
func (c *ExportController) ExportCampaignApplications(w http.ResponseWriter, r *http.Request) {
    q := r.URL.Query()

    if !c.Auth.Authorize(q.Get("secret")) {
        writeJSONError(w, http.StatusForbidden, "Forbidden")
        return
    }

    position := c.normalizeRole(q.Get("position"))
    if position == "" {
        writeJSONError(w, http.StatusBadRequest, "Missing position")
        return
    }

    opts := service.ExportOptions{
        Role:           position,
        IncludeMissing: q.Get("includeMissing") == "true",
        Bucket:         c.normalizeBucket(q.Get("bucket")),
        ExpirySeconds:  service.ResolveExpirySeconds(q.Get("expiresInSeconds"), q.Get("expiresInDays")),
    }

    result, err := c.ExportService.ExportApplications(opts)
    if err != nil {
        log.Println("❌ [export] failed to fetch applications:", err)
        writeJSONError(w, http.StatusInternalServerError, "Kunne ikke hente søknader")
        return
    }

    writeCSV(w, "applications", position, "X-Total-Applications", result)
}

// ExportCandidates handles GET /exports/candidates
func (c *ExportController) ExportCandidates(w http.ResponseWriter, r *http.Request) {
    q := r.URL.Query()

    if !c.Auth.Authorize(q.Get("secret")) {
        writeJSONError(w, http.StatusForbidden, "Forbidden")
        return
    }

    raw := q.Get("role")
    if strings.TrimSpace(raw) == "" {
        raw = q.Get("position")
    }
    role := c.normalizeRole(raw)
    if role == "" {
        writeJSONError(w, http.StatusBadRequest, "Missing role")
        return
    }

    opts := service.ExportOptions{
        Role:           role,
        IncludeMissing: q.Get("includeMissing") == "true",
        Bucket:         c.normalizeBucket(q.Get("bucket")),
        ExpirySeconds:  service.ResolveExpirySeconds(q.Get("expiresInSeconds"), q.Get("expiresInDays")),
    }

    result, err := c.ExportService.ExportCandidates(opts)
    if err != nil {
        log.Println("❌ [export] failed to fetch candidates:", err)
        writeJSONError(w, http.StatusInternalServerError, "Kunne ikke hente kandidater")
        return
    }

    writeCSV(w, "candidates", role, "X-Total-Candidates", result)
}

func (c *ExportController) normalizeRole(raw string) string {
    role := strings.ToLower(strings.TrimSpace(raw))
    if role == "" {
        role = strings.ToLower(strings.TrimSpace(c.DefaultRole))
    }
    return role
}

func (c *ExportController) normalizeBucket(raw string) string {
    bucket := strings.TrimSpace(raw)
    if bucket == "" {
        bucket = c.DefaultBucket
    }
    return bucket
}

func writeCSV(w http.ResponseWriter, entity, role, totalHeader string, result *service.ExportResult) {
    filename := fmt.Sprintf("%s-%s-cvs-%s.csv", entity, role, time.Now().UTC().Format("2006-01-02"))

    w.Header().Set("Content-Type", "text/csv; charset=utf-8")
    w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
    w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
    w.Header().Set(totalHeader, strconv.Itoa(result.TotalFetched))
    w.Header().Set("X-Total-Exported", strconv.Itoa(result.TotalExported))
    w.WriteHeader(http.StatusOK)
    w.Write([]byte(result.CSV))
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
