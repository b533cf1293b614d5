package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"memory-agent/internal/model"
	"memory-agent/internal/project"
	"memory-agent/pkg/hateoas"
	"memory-agent/pkg/log"
)

type fakeUseCase struct {
	project.UseCase
	projects []model.Project
	thread   model.Thread
	err      error
}

func (f *fakeUseCase) ListProjects(context.Context) ([]model.Project, error) {
	return f.projects, f.err
}

func (f *fakeUseCase) CreateThread(_ context.Context, in project.CreateThreadInput) (model.Thread, error) {
	if in.ProjectID == "" {
		return model.Thread{}, project.ErrProjectIDRequired
	}
	if f.err != nil {
		return model.Thread{}, f.err
	}
	return model.Thread{ID: "t1", ProjectID: in.ProjectID, Name: in.Name}, nil
}

func (f *fakeUseCase) DetailThread(context.Context, string) (model.Thread, error) {
	return f.thread, f.err
}

func newRouter(uc project.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, "/api/v1", false))
	return r
}

func decodeData[T any](t *testing.T, body []byte) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, body)
	}
	return env.Data
}

func TestListProjectsWithLinks(t *testing.T) {
	uc := &fakeUseCase{projects: []model.Project{{ID: "p1", Name: "Alpha"}}}
	w := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/projects/hateoas", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	got := decodeData[[]projectLinkResp](t, w.Body.Bytes())
	want := []projectLinkResp{{
		ID:   "p1",
		Name: "Alpha",
		Links: []hateoas.Link{
			{Href: "/api/v1/projects/p1", Rel: "self", Method: "GET"},
			{Href: "/api/v1/threads/project/p1", Rel: "threads", Method: "GET"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestDetailThread(t *testing.T) {
	uc := &fakeUseCase{thread: model.Thread{ID: "t9", ProjectID: "p1", Name: "Main"}}
	w := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/threads/t9", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	got := decodeData[threadResp](t, w.Body.Bytes())
	want := []hateoas.Link{
		{Href: "/api/v1/threads/t9", Rel: "self", Method: "GET"},
		{Href: "/api/v1/projects/p1", Rel: "project", Method: "GET"},
	}
	if diff := cmp.Diff(want, got.Links); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateThread(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{"ok", `{"projectId":"p1","name":"Research"}`, nil, http.StatusOK},
		{"missing project id", `{"name":"Research"}`, nil, http.StatusBadRequest},
		{"unknown project", `{"projectId":"ghost"}`, project.ErrProjectNotFound, http.StatusNotFound},
		{"malformed json", `{`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/threads", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			newRouter(&fakeUseCase{err: tt.ucErr}).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
