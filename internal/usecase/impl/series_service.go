package impl

import (
	"context"
	"log/slog"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// seriesService implements the SeriesUsecase interface.
type seriesService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSeriesService is the constructor for seriesService.
func NewSeriesService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SeriesUsecase {
	return &seriesService{
		txManager: txManager,
		logger:    logger,
	}
}

// List returns all series, newest first.
func (srv *seriesService) List(ctx context.Context) ([]*entity.Series, error) {
	var list []*entity.Series

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		list, err = repoFactory.SeriesRepo().List(ctx)

		return errors.Wrap(err, "failed to list series")
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

// GetBySlug returns one series with its published posts in curated order.
func (srv *seriesService) GetBySlug(ctx context.Context, slug string) (*entity.Series, error) {
	var series *entity.Series

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		series, err = repoFactory.SeriesRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrSeriesNotFound) {
				return domainerrors.ErrSeriesNotFound.WrapMessage("series not found")
			}

			return errors.Wrap(err, "failed to find series")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// Create persists a new series.
func (srv *seriesService) Create(ctx context.Context, input *usecase.SeriesInput) (*entity.Series, error) {
	series := &entity.Series{
		Title:         input.Title,
		Slug:          normalizeSlug(input.Slug),
		Description:   input.Description,
		CoverImageURL: input.CoverImageURL,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SeriesRepo().Create(ctx, series); err != nil {
			if errors.Is(err, repository.ErrSlugTaken) {
				return domainerrors.ErrSlugTaken.WrapMessage("series slug already in use")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to create series", "error", err, "slug", series.Slug)

		return nil, err
	}
	srv.logger.Info("Series created", "seriesID", series.ID, "slug", series.Slug)

	return series, nil
}

// Update modifies an existing series.
func (srv *seriesService) Update(ctx context.Context, id uuid.UUID, input *usecase.SeriesInput) (*entity.Series, error) {
	var series *entity.Series

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seriesRepo := repoFactory.SeriesRepo()

		existing, err := seriesRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSeriesNotFound) {
				return domainerrors.ErrSeriesNotFound.WrapMessage("series not found")
			}

			return errors.Wrap(err, "failed to find series")
		}

		existing.Title = input.Title
		existing.Slug = normalizeSlug(input.Slug)
		existing.Description = input.Description
		existing.CoverImageURL = input.CoverImageURL

		if err := seriesRepo.Update(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrSlugTaken) {
				return domainerrors.ErrSlugTaken.WrapMessage("series slug already in use")
			}

			return errors.WithStack(err)
		}
		series = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// Delete removes a series; member posts survive detached.
func (srv *seriesService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SeriesRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSeriesNotFound) {
				return domainerrors.ErrSeriesNotFound.WrapMessage("series not found")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.logger.Info("Series deleted", "seriesID", id)

	return nil
}
