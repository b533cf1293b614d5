package usecase

import (
	"context"
	"fmt"
	"math"

	"memory-agent/internal/agent"
	memRepo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, input agent.HistoryInput) (agent.HistoryOutput, error) {
	if _, err := uc.loadThread(ctx, input.ThreadID); err != nil {
		uc.l.Warnf(ctx, "agent.usecase.History: %v", err)
		return agent.HistoryOutput{}, err
	}

	page := max(input.Page, 1)
	size := uc.opts.PageSize

	// No thread holds math.MaxInt entries; skip the query instead of
	// overflowing the offset.
	if page-1 > math.MaxInt/size {
		return agent.HistoryOutput{Messages: []model.MemoryEntry{}, Page: page, PageSize: size}, nil
	}

	entries, err := uc.repo.ListEntries(ctx, memRepo.ListEntriesOptions{
		ThreadID: input.ThreadID,
		Limit:    size,
		Offset:   (page - 1) * size,
	})
	if err != nil {
		return agent.HistoryOutput{}, fmt.Errorf("%w: %w", agent.ErrPersistenceFailed, err)
	}

	uc.l.Infof(ctx, "agent.usecase.History: fetched %d entries for thread %s", len(entries), input.ThreadID)
	return agent.HistoryOutput{Messages: entries, Page: page, PageSize: size}, nil
}
