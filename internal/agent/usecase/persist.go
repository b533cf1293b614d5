package usecase

import (
	"context"
	"fmt"

	"memory-agent/internal/agent"
	memRepo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
	"memory-agent/pkg/embedding"
)

// turn is the user/assistant pair written by one successful run.
type turn struct {
	threadID  string
	user      string
	assistant string
}

// persist commits both history entries and the semantic entry of the
// answer atomically. The answer is embedded before the transaction opens.
func (uc *implUseCase) persist(ctx context.Context, t turn) error {
	vec, err := embedding.EmbedOne(ctx, uc.embedder, t.assistant)
	if err != nil {
		uc.l.Errorf(ctx, "agent.usecase.persist: embed answer: %v", err)
		return fmt.Errorf("%w: embed answer: %w", agent.ErrProviderFailed, err)
	}

	uow, err := uc.repo.Begin(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "agent.usecase.persist: begin: %v", err)
		return fmt.Errorf("%w: %w", agent.ErrPersistenceFailed, err)
	}

	if err := stage(ctx, uow, t, vec); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			uc.l.Errorf(ctx, "agent.usecase.persist: rollback: %v", rbErr)
		}
		uc.l.Errorf(ctx, "agent.usecase.persist: transaction rolled back for thread %s: %v", t.threadID, err)
		return fmt.Errorf("%w: %w", agent.ErrPersistenceFailed, err)
	}

	uc.l.Infof(ctx, "agent.usecase.persist: transaction committed for thread %s", t.threadID)
	return nil
}

func stage(ctx context.Context, uow memRepo.UnitOfWork, t turn, vec []float32) error {
	if err := uow.AppendEntry(ctx, memRepo.AppendEntryOptions{ThreadID: t.threadID, Role: model.RoleUser, Content: t.user}); err != nil {
		return err
	}
	if err := uow.AppendEntry(ctx, memRepo.AppendEntryOptions{ThreadID: t.threadID, Role: model.RoleAssistant, Content: t.assistant}); err != nil {
		return err
	}
	if err := uow.InsertSemantic(ctx, memRepo.InsertSemanticOptions{ThreadID: t.threadID, Content: t.assistant, Embedding: vec}); err != nil {
		return err
	}
	return uow.Commit()
}
