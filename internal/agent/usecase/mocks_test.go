package usecase

import (
	"context"
	"errors"
	"sync"

	memRepo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
	"memory-agent/pkg/llmprovider"
)

// fakeRepo keeps committed rows in memory and records staged writes per
// unit of work.
type fakeRepo struct {
	mu        sync.Mutex
	threads   map[string]model.Thread
	entries   []model.MemoryEntry
	semantic  []model.SemanticMemoryEntry
	similar   []model.ScoredMemory
	failStage error // returned by InsertSemantic
	begins    int
}

func newFakeRepo(threadIDs ...string) *fakeRepo {
	r := &fakeRepo{threads: map[string]model.Thread{}}
	for _, id := range threadIDs {
		r.threads[id] = model.Thread{ID: id, ProjectID: "p1", Name: id}
	}
	return r
}

func (r *fakeRepo) GetThread(_ context.Context, id string) (model.Thread, error) {
	return r.threads[id], nil
}

func (r *fakeRepo) ListEntries(_ context.Context, opt memRepo.ListEntriesOptions) ([]model.MemoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MemoryEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].ThreadID == opt.ThreadID {
			out = append(out, r.entries[i])
		}
	}
	if opt.Offset >= len(out) {
		return []model.MemoryEntry{}, nil
	}
	out = out[opt.Offset:]
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *fakeRepo) SearchSimilar(_ context.Context, opt memRepo.SearchSimilarOptions) ([]model.ScoredMemory, error) {
	if len(r.similar) > opt.TopN {
		return r.similar[:opt.TopN], nil
	}
	return r.similar, nil
}

func (r *fakeRepo) ListSemantic(context.Context, memRepo.ListSemanticOptions) ([]model.SemanticMemoryEntry, error) {
	return r.semantic, nil
}

func (r *fakeRepo) UpdateEmbedding(context.Context, memRepo.UpdateEmbeddingOptions) error {
	return nil
}

func (r *fakeRepo) Begin(context.Context) (memRepo.UnitOfWork, error) {
	r.mu.Lock()
	r.begins++
	r.mu.Unlock()
	return &fakeUoW{r: r}, nil
}

type fakeUoW struct {
	r        *fakeRepo
	entries  []model.MemoryEntry
	semantic []model.SemanticMemoryEntry
	done     bool
}

func (u *fakeUoW) AppendEntry(_ context.Context, opt memRepo.AppendEntryOptions) error {
	u.entries = append(u.entries, model.MemoryEntry{ThreadID: opt.ThreadID, Role: opt.Role, Content: opt.Content})
	return nil
}

func (u *fakeUoW) InsertSemantic(_ context.Context, opt memRepo.InsertSemanticOptions) error {
	if u.r.failStage != nil {
		return u.r.failStage
	}
	u.semantic = append(u.semantic, model.SemanticMemoryEntry{ThreadID: opt.ThreadID, Content: opt.Content, Embedding: opt.Embedding})
	return nil
}

func (u *fakeUoW) Commit() error {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()
	u.r.entries = append(u.r.entries, u.entries...)
	u.r.semantic = append(u.r.semantic, u.semantic...)
	u.done = true
	return nil
}

func (u *fakeUoW) Rollback() error {
	u.entries, u.semantic = nil, nil
	return nil
}

// fakeProfiles resolves templates from a static map keyed by agent type.
type fakeProfiles struct {
	templates map[string]string
	err       error
}

func (p *fakeProfiles) GetTemplate(_ context.Context, agentType string) (string, bool, error) {
	if p.err != nil {
		return "", false, p.err
	}
	t, ok := p.templates[agentType]
	return t, ok, nil
}

// reply is one scripted model outcome.
type reply struct {
	text string
	err  error
}

// fakeLLM returns scripted replies in order and records requests.
type fakeLLM struct {
	mu       sync.Mutex
	replies  []reply
	requests []*llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(f.replies) == 0 {
		return nil, errors.New("no scripted reply")
	}
	r := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	if r.err != nil {
		return nil, r.err
	}
	return &llmprovider.Response{Content: llmprovider.NewTextMessage(llmprovider.RoleAssistant, r.text)}, nil
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// fakeEmbedder returns a constant vector and records the embedded texts.
type fakeEmbedder struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (e *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.texts = append(e.texts, texts...)
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func userText(req *llmprovider.Request) string {
	return req.Messages[len(req.Messages)-1].Text()
}
