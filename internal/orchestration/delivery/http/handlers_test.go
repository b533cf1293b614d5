package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"memory-agent/internal/agent"
	"memory-agent/internal/orchestration"
	"memory-agent/pkg/log"
)

type fakeUseCase struct {
	in  *orchestration.RunPlanInput
	err error
}

func (f *fakeUseCase) RunPlan(_ context.Context, in orchestration.RunPlanInput) (orchestration.RunPlanOutput, error) {
	f.in = &in
	if f.err != nil {
		return orchestration.RunPlanOutput{}, f.err
	}
	return orchestration.RunPlanOutput{
		FinalOutput: "report",
		Tasks:       []orchestration.TaskResult{{AgentType: "DataGatherer", Output: "data"}, {AgentType: "Communicator", Output: "report"}},
	}, nil
}

func TestRunPlan(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{"ok", `{"threadId":"t1","prompt":"status"}`, nil, http.StatusOK},
		{"missing prompt", `{"threadId":"t1"}`, nil, http.StatusBadRequest},
		{"thread not found", `{"threadId":"t1","prompt":"p"}`, fmt.Errorf("%w: %w", orchestration.ErrStepFailed, agent.ErrThreadNotFound), http.StatusNotFound},
		{"step failure", `{"threadId":"t1","prompt":"p"}`, fmt.Errorf("%w: %w", orchestration.ErrStepFailed, agent.ErrValidationExhausted), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), &fakeUseCase{err: tt.ucErr}, false))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orchestration/run-plan", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				Data runPlanResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Data.FinalOutput != "report" || len(body.Data.Tasks) != 2 || body.Data.Tasks[0].AgentType != "DataGatherer" {
				t.Errorf("body = %+v", body.Data)
			}
		})
	}
}
