package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"hireall/internal/delivery/http/handler"
	"hireall/internal/delivery/http/middleware"
	"hireall/internal/delivery/http/routes"
	"hireall/internal/pkg/jwt"
	"hireall/internal/posting"
	"hireall/internal/repository"
	"hireall/internal/resume"
	"hireall/internal/soc"
	"hireall/internal/usecase"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type memUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]repository.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]repository.User{}}
}

func (r *memUserRepo) Create(_ context.Context, email, passwordHash, fullName string) (repository.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return repository.User{}, repository.ErrEmailTaken
	}
	u := repository.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash, FullName: fullName, CreatedAt: time.Now()}
	r.byEmail[email] = u
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (repository.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]repository.StoredJob
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[uuid.UUID]repository.StoredJob{}}
}

func (r *memJobRepo) Upsert(_ context.Context, rec *posting.JobRecord, source string, match *soc.Match) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := repository.StoredJob{
		ID:          uuid.New(),
		Title:       rec.Title,
		Company:     rec.Company,
		Location:    rec.Location,
		URL:         rec.URL,
		Source:      source,
		Description: rec.Description,
		NormTitle:   rec.NormalizedTitle,
		Keywords:    rec.Keywords,
		CreatedAt:   time.Now(),
	}
	if match != nil {
		j.SOCCode = match.Code
		j.SOCConfidence = match.Confidence
	}
	r.jobs[j.ID] = j
	return j.ID, nil
}

func (r *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (repository.StoredJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return repository.StoredJob{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (r *memJobRepo) List(_ context.Context, limit, _ int) ([]repository.StoredJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.StoredJob, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	if len(out) > limit && limit > 0 {
		out = out[:limit]
	}
	return out, nil
}

type memOccupationRepo struct{}

func (memOccupationRepo) ListAll(_ context.Context) ([]soc.OccupationCode, error) {
	return []soc.OccupationCode{
		{
			Code:          "2134",
			Title:         "Programmers and software development professionals",
			RelatedTitles: []string{"software engineer", "backend engineer"},
		},
	}, nil
}

type memResumeRepo struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]repository.StoredResume
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{resumes: map[uuid.UUID]repository.StoredResume{}}
}

func (r *memResumeRepo) Insert(_ context.Context, userID uuid.UUID, result resume.ParseResult) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sr := repository.StoredResume{
		ID:              uuid.New(),
		UserID:          userID,
		Parsed:          result,
		ParseConfidence: result.ParseConfidence,
		WordCount:       result.WordCount,
		CreatedAt:       time.Now(),
	}
	r.resumes[sr.ID] = sr
	return sr.ID, nil
}

func (r *memResumeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.StoredResume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sr, ok := r.resumes[id]
	if !ok {
		return repository.StoredResume{}, repository.ErrResumeNotFound
	}
	return sr, nil
}

func (r *memResumeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]repository.StoredResume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.StoredResume, 0)
	for _, sr := range r.resumes {
		if sr.UserID == userID {
			out = append(out, sr)
		}
	}
	return out, nil
}

type memStatsRepo struct {
	jobs *memJobRepo
}

func (r memStatsRepo) GetPipelineSummary(_ context.Context) (repository.PipelineSummary, error) {
	r.jobs.mu.Lock()
	defer r.jobs.mu.Unlock()
	out := repository.PipelineSummary{TotalJobs: len(r.jobs.jobs)}
	for _, j := range r.jobs.jobs {
		if j.SOCCode != "" {
			out.ClassifiedJobs++
		}
	}
	return out, nil
}

func newTestApp(t *testing.T) (*fiber.App, *memJobRepo) {
	t.Helper()

	users := newMemUserRepo()
	jobs := newMemJobRepo()
	resumes := newMemResumeRepo()

	jwtSvc := jwt.NewHMACService("integration-test-secret", "hireall", time.Hour)
	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobs, memOccupationRepo{}, nil)
	resumeUC := usecase.NewResumeUsecase(resumes)
	statusUC := usecase.NewStatusUsecase(memStatsRepo{jobs: jobs}, nil)

	f := fiber.New(fiber.Config{})
	f.Use(middleware.NewErrorMiddleware().Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler("hireall-test"),
		handler.NewAuthHandler(authUC),
		handler.NewJobsHandler(jobUC),
		handler.NewResumesHandler(resumeUC),
		handler.NewStatusHandler(statusUC),
		middleware.NewAuthMiddleware(jwtSvc),
	)
	registry.Register(f)

	return f, jobs
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, semanticResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func TestAPI_RegisterExtractListFlow(t *testing.T) {
	app, _ := newTestApp(t)

	status, reg := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "dev@example.com",
		"password": "password123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d", status)
	}
	var regData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(reg.Data, &regData); err != nil || regData.AccessToken == "" {
		t.Fatalf("register data = %s err = %v", reg.Data, err)
	}
	token := regData.AccessToken

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/jobs/extract", "", map[string]string{
		"title": "Backend Engineer",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("unauthenticated extract status = %d", status)
	}

	status, ext := doJSON(t, app, http.MethodPost, "/api/v1/jobs/extract", token, map[string]string{
		"title":            "Senior Backend Engineer",
		"company":          "Acme Ltd",
		"description_html": "<p>Go services at scale.</p>",
	})
	if status != http.StatusCreated {
		t.Fatalf("extract status = %d body = %s", status, ext.Data)
	}
	var extData struct {
		JobID uuid.UUID  `json:"job_id"`
		Match *soc.Match `json:"match"`
	}
	if err := json.Unmarshal(ext.Data, &extData); err != nil {
		t.Fatalf("extract data: %v", err)
	}
	if extData.JobID == uuid.Nil {
		t.Fatalf("expected a job id")
	}
	if extData.Match == nil || extData.Match.Code != "2134" {
		t.Fatalf("match = %+v", extData.Match)
	}

	status, list := doJSON(t, app, http.MethodGet, "/api/v1/jobs", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(list.Data, &items); err != nil {
		t.Fatalf("list data: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("listed %d jobs, want 1", len(items))
	}

	status, st := doJSON(t, app, http.MethodGet, "/api/v1/status", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status endpoint = %d", status)
	}
	var summary repository.PipelineSummary
	if err := json.Unmarshal(st.Data, &summary); err != nil {
		t.Fatalf("status data: %v", err)
	}
	if summary.TotalJobs != 1 || summary.ClassifiedJobs != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestAPI_ResumeParseFlow(t *testing.T) {
	app, _ := newTestApp(t)

	_, reg := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})
	var regData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(reg.Data, &regData); err != nil || regData.AccessToken == "" {
		t.Fatalf("register data = %s err = %v", reg.Data, err)
	}

	status, parsed := doJSON(t, app, http.MethodPost, "/api/v1/resumes/parse", regData.AccessToken, map[string]string{
		"text": "Jane Doe\njane.doe@example.com\n\nEXPERIENCE\nAcme Ltd | Software Engineer | 2020 - Present\n- Built Go services",
	})
	if status != http.StatusCreated {
		t.Fatalf("parse status = %d body = %s", status, parsed.Data)
	}
	var parseData struct {
		ResumeID uuid.UUID `json:"resume_id"`
	}
	if err := json.Unmarshal(parsed.Data, &parseData); err != nil || parseData.ResumeID == uuid.Nil {
		t.Fatalf("parse data = %s err = %v", parsed.Data, err)
	}

	status, listed := doJSON(t, app, http.MethodGet, "/api/v1/resumes", regData.AccessToken, nil)
	if status != http.StatusOK {
		t.Fatalf("resume list status = %d", status)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(listed.Data, &items); err != nil || len(items) != 1 {
		t.Fatalf("resume list = %s err = %v", listed.Data, err)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/resumes/parse", regData.AccessToken, map[string]string{"text": "   "})
	if status != http.StatusBadRequest {
		t.Fatalf("empty parse status = %d", status)
	}
}
