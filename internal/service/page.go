package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

// fetchPage runs the page slice fetch and the total count in parallel and
// assembles the page-shaped result. req must already be clamped.
func fetchPage[T any](
	ctx context.Context,
	req domain.PageRequest,
	q repository.ListQuery,
	findAll func(context.Context, repository.ListQuery) ([]T, error),
	count func(context.Context, repository.ListQuery) (int64, error),
) (domain.Page[T], error) {
	var (
		items []T
		total int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = findAll(gCtx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gCtx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[T]{}, err
	}

	return domain.Page[T]{
		Data: items,
		Meta: domain.NewPageMeta(req, total),
	}, nil
}
