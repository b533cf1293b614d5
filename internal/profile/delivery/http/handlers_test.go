package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"memory-agent/internal/model"
	"memory-agent/internal/profile"
	"memory-agent/pkg/log"
)

type fakeUseCase struct {
	profile.UseCase
	created *profile.CreateInput
	err     error
}

func (f *fakeUseCase) Create(_ context.Context, in profile.CreateInput) (model.PromptProfile, error) {
	f.created = &in
	if f.err != nil {
		return model.PromptProfile{}, f.err
	}
	return model.PromptProfile{ID: "1", AgentType: profile.NormalizeAgentType(in.AgentType), Template: in.Template}, nil
}

func (f *fakeUseCase) Detail(_ context.Context, agentType string) (model.PromptProfile, error) {
	if f.err != nil {
		return model.PromptProfile{}, f.err
	}
	return model.PromptProfile{ID: "1", AgentType: agentType}, nil
}

func newRouter(uc profile.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, false))
	return r
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCalled bool
	}{
		{"ok", `{"agentType":"Writer","template":"w {prompt}"}`, nil, http.StatusOK, true},
		{"missing template", `{"agentType":"Writer"}`, nil, http.StatusBadRequest, false},
		{"malformed json", `{`, nil, http.StatusBadRequest, false},
		{"duplicate", `{"agentType":"Writer","template":"w"}`, profile.ErrDuplicateProfile, http.StatusConflict, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			newRouter(uc).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if (uc.created != nil) != tt.wantCalled {
				t.Errorf("use case called = %v, want %v", uc.created != nil, tt.wantCalled)
			}
		})
	}
}

func TestDetail_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/ghost", nil)

	newRouter(&fakeUseCase{err: profile.ErrProfileNotFound}).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "prompt profile not found" {
		t.Errorf("message = %v", body["message"])
	}
}
