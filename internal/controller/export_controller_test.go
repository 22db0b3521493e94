package controller_test

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/unclebandit/recruitbase-backend/internal/auth"
    "github.com/unclebandit/recruitbase-backend/internal/controller"
    appErrors "github.com/unclebandit/recruitbase-backend/internal/errors"
    "github.com/unclebandit/recruitbase-backend/internal/model"
    "github.com/unclebandit/recruitbase-backend/internal/service"
)

// --- Mocks ---

type MockApplicationRepo struct {
    apps     []*model.CampaignApplication
    err      error
    gotQuery string
}

func (m *MockApplicationRepo) ListByPosition(position string) ([]*model.CampaignApplication, error) {
    m.gotQuery = position
    if m.err != nil {
        return nil, m.err
    }
    return m.apps, nil
}

type MockCandidateRepo struct {
    candidates []*model.Candidate
    gotQuery   string
}

func (m *MockCandidateRepo) ListByRole(role string) ([]*model.Candidate, error) {
    m.gotQuery = role
    return m.candidates, nil
}

type MockSigner struct{}

func (m *MockSigner) SignedURL(bucket, key string, expiresIn time.Duration) (string, error) {
    return fmt.Sprintf("https://signed.example.com/%s/%s", bucket, key), nil
}

func newController(appRepo *MockApplicationRepo, candRepo *MockCandidateRepo, authz *auth.Authorizer) *controller.ExportController {
    return &controller.ExportController{
        ExportService: &service.ExportService{
            ApplicationRepo: appRepo,
            CandidateRepo:   candRepo,
            Signer:          &MockSigner{},
        },
        Auth:          authz,
        DefaultRole:   "elektriker",
        DefaultBucket: "candidate-cvs",
    }
}

// --- Tests ---

func TestExportForbiddenWithoutSecret(t *testing.T) {
    ctrl := newController(&MockApplicationRepo{}, &MockCandidateRepo{}, auth.NewAuthorizer(false, "abc"))

    req := httptest.NewRequest("GET", "/exports/campaign-applications", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCampaignApplications(w, req)

    resp := w.Result()
    if resp.StatusCode != http.StatusForbidden {
        t.Fatalf("expected 403, got %d", resp.StatusCode)
    }

    var body map[string]string
    if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
        t.Fatalf("failed to decode body: %v", err)
    }
    if body["error"] != "Forbidden" {
        t.Errorf("expected Forbidden error body, got %q", body["error"])
    }
}

func TestExportAuthorizedInDevMode(t *testing.T) {
    ctrl := newController(&MockApplicationRepo{}, &MockCandidateRepo{}, auth.NewAuthorizer(true, ""))

    req := httptest.NewRequest("GET", "/exports/campaign-applications", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCampaignApplications(w, req)

    if w.Result().StatusCode != http.StatusOK {
        t.Fatalf("expected 200 in dev mode, got %d", w.Result().StatusCode)
    }
}

func TestExportMissingPosition(t *testing.T) {
    ctrl := newController(&MockApplicationRepo{}, &MockCandidateRepo{}, auth.NewAuthorizer(true, ""))
    ctrl.DefaultRole = ""

    req := httptest.NewRequest("GET", "/exports/campaign-applications", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCampaignApplications(w, req)

    resp := w.Result()
    if resp.StatusCode != http.StatusBadRequest {
        t.Fatalf("expected 400, got %d", resp.StatusCode)
    }

    var body map[string]string
    json.NewDecoder(resp.Body).Decode(&body)
    if body["error"] != "Missing position" {
        t.Errorf("expected Missing position, got %q", body["error"])
    }
}

func TestExportApplicationsEndToEnd(t *testing.T) {
    appRepo := &MockApplicationRepo{apps: []*model.CampaignApplication{
        {ID: "a1", Name: "Alice", Position: "elektriker", CVKey: "abc.pdf"},
        {ID: "a2", Name: "Bob", Position: "elektriker", CVKey: ""},
    }}
    ctrl := newController(appRepo, &MockCandidateRepo{}, auth.NewAuthorizer(false, "abc"))

    req := httptest.NewRequest("GET", "/exports/campaign-applications?secret=abc&position=Elektriker%20", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCampaignApplications(w, req)

    resp := w.Result()
    if resp.StatusCode != http.StatusOK {
        t.Fatalf("expected 200, got %d", resp.StatusCode)
    }

    if appRepo.gotQuery != "elektriker" {
        t.Errorf("expected normalized position, repo got %q", appRepo.gotQuery)
    }

    if ct := resp.Header.Get("Content-Type"); ct != "text/csv; charset=utf-8" {
        t.Errorf("unexpected content type %q", ct)
    }
    if cc := resp.Header.Get("Cache-Control"); cc != "no-store, no-cache, must-revalidate" {
        t.Errorf("unexpected cache control %q", cc)
    }
    wantDisposition := fmt.Sprintf(`attachment; filename="applications-elektriker-cvs-%s.csv"`, time.Now().UTC().Format("2006-01-02"))
    if cd := resp.Header.Get("Content-Disposition"); cd != wantDisposition {
        t.Errorf("unexpected disposition %q, want %q", cd, wantDisposition)
    }
    if got := resp.Header.Get("X-Total-Applications"); got != "2" {
        t.Errorf("expected X-Total-Applications 2, got %q", got)
    }
    if got := resp.Header.Get("X-Total-Exported"); got != "1" {
        t.Errorf("expected X-Total-Exported 1, got %q", got)
    }

    lines := strings.Split(w.Body.String(), "\n")
    if len(lines) != 2 {
        t.Fatalf("expected header + 1 data row, got %d lines", len(lines))
    }
    wantHeader := "application_id,name,email,phone,position,segment,status,created_at,cv_key,cv_filename,cv_download_url,cv_error"
    if lines[0] != wantHeader {
        t.Errorf("unexpected header line %q", lines[0])
    }
    if !strings.Contains(lines[1], "https://signed.example.com/candidate-cvs/abc.pdf") {
        t.Errorf("expected signed URL in data row, got %q", lines[1])
    }
}

func TestExportApplicationsFetchFailure(t *testing.T) {
    appRepo := &MockApplicationRepo{err: appErrors.NewFetchError("campaign_applications", fmt.Errorf("boom"))}
    ctrl := newController(appRepo, &MockCandidateRepo{}, auth.NewAuthorizer(true, ""))

    req := httptest.NewRequest("GET", "/exports/campaign-applications", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCampaignApplications(w, req)

    resp := w.Result()
    if resp.StatusCode != http.StatusInternalServerError {
        t.Fatalf("expected 500, got %d", resp.StatusCode)
    }

    var body map[string]string
    json.NewDecoder(resp.Body).Decode(&body)
    if body["error"] != "Kunne ikke hente søknader" {
        t.Errorf("unexpected error message %q", body["error"])
    }
    if strings.Contains(w.Body.String(), "boom") {
        t.Error("internal error detail leaked to caller")
    }
}

func TestExportCandidatesPrefersRoleOverPosition(t *testing.T) {
    candRepo := &MockCandidateRepo{candidates: []*model.Candidate{}}
    ctrl := newController(&MockApplicationRepo{}, candRepo, auth.NewAuthorizer(true, ""))

    req := httptest.NewRequest("GET", "/exports/candidates?role=Tømrer&position=elektriker", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCandidates(w, req)

    if candRepo.gotQuery != "tømrer" {
        t.Errorf("expected role param to win, repo got %q", candRepo.gotQuery)
    }

    if got := w.Result().Header.Get("X-Total-Candidates"); got != "0" {
        t.Errorf("expected X-Total-Candidates 0, got %q", got)
    }
}

func TestExportCandidatesAcceptsPositionSynonym(t *testing.T) {
    candRepo := &MockCandidateRepo{candidates: []*model.Candidate{}}
    ctrl := newController(&MockApplicationRepo{}, candRepo, auth.NewAuthorizer(true, ""))

    req := httptest.NewRequest("GET", "/exports/candidates?position=maler", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCandidates(w, req)

    if candRepo.gotQuery != "maler" {
        t.Errorf("expected position synonym used, repo got %q", candRepo.gotQuery)
    }
}

func TestExportIncludeMissingRequiresExactTrue(t *testing.T) {
    appRepo := &MockApplicationRepo{apps: []*model.CampaignApplication{
        {ID: "a1", CVKey: ""},
    }}
    ctrl := newController(appRepo, &MockCandidateRepo{}, auth.NewAuthorizer(true, ""))

    for _, v := range []string{"TRUE", "1", "yes", ""} {
        req := httptest.NewRequest("GET", "/exports/campaign-applications?includeMissing="+v, nil)
        w := httptest.NewRecorder()
        ctrl.ExportCampaignApplications(w, req)
        if got := w.Result().Header.Get("X-Total-Exported"); got != "0" {
            t.Errorf("includeMissing=%q: expected 0 exported, got %q", v, got)
        }
    }

    req := httptest.NewRequest("GET", "/exports/campaign-applications?includeMissing=true", nil)
    w := httptest.NewRecorder()
    ctrl.ExportCampaignApplications(w, req)
    if got := w.Result().Header.Get("X-Total-Exported"); got != "1" {
        t.Errorf("includeMissing=true: expected 1 exported, got %q", got)
    }
}
