package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quill/config"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultPostsPerPage = 10

// postService implements the PostUsecase interface.
type postService struct {
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	cfg            *config.Config
	logger         *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	eventPublisher service.EventPublisher,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		txManager:      txManager,
		eventPublisher: eventPublisher,
		qrcodeService:  qrcodeService,
		cfg:            cfg,
		logger:         logger,
	}
}

// ListPublished returns a page of published posts with counts attached.
func (srv *postService) ListPublished(ctx context.Context, input *usecase.ListPostsInput) (*usecase.ListPostsOutput, error) {
	perPage := input.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = defaultPostsPerPage
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	var posts []*entity.Post
	var total int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		filter := repository.PostFilter{
			PublishedOnly: true,
			Limit:         perPage,
			Offset:        (page - 1) * perPage,
		}

		if input.SeriesSlug != "" {
			series, err := repoFactory.SeriesRepo().FindBySlug(ctx, input.SeriesSlug)
			if err != nil {
				if errors.Is(err, repository.ErrSeriesNotFound) {
					return domainerrors.ErrSeriesNotFound.WrapMessage("unknown series filter")
				}

				return errors.Wrap(err, "failed to resolve series filter")
			}
			filter.SeriesID = &series.ID
		}

		var err error
		posts, err = repoFactory.PostRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list posts")
		}

		total, err = repoFactory.PostRepo().Count(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to count posts")
		}

		return srv.attachCounts(ctx, repoFactory, posts, nil)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ListPostsOutput{Posts: posts, Total: total}, nil
}

// GetBySlug fetches one post and records a view for authenticated readers.
func (srv *postService) GetBySlug(ctx context.Context, slug string, viewerID *uuid.UUID, includeDrafts bool) (*entity.Post, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		post, err = repoFactory.PostRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		// Drafts look like missing posts to the public.
		if !post.Published && !includeDrafts {
			return domainerrors.ErrPostNotFound.WrapMessage("post not published")
		}

		if viewerID != nil && post.Published {
			if err := repoFactory.ReactionRepo().RecordView(ctx, post.ID, *viewerID); err != nil {
				// A lost view must not fail the read.
				srv.logger.Warn("Failed to record view", "error", err, "postID", post.ID)
			}
		}

		return srv.attachCounts(ctx, repoFactory, []*entity.Post{post}, viewerID)
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Create persists a new draft post.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:         input.Title,
		Slug:          normalizeSlug(input.Slug),
		Summary:       input.Summary,
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
		SeriesID:      input.SeriesID,
		SeriesOrder:   input.SeriesOrder,
		AuthorID:      input.AuthorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkSeries(ctx, repoFactory, post.SeriesID); err != nil {
			return err
		}

		if err := repoFactory.PostRepo().Create(ctx, post); err != nil {
			if errors.Is(err, repository.ErrSlugTaken) {
				return domainerrors.ErrSlugTaken.WrapMessage("post slug already in use")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to create post", "error", err, "slug", post.Slug)

		return nil, err
	}
	srv.logger.Info("Post created", "postID", post.ID, "slug", post.Slug)

	return post, nil
}

// Update modifies an existing post, keeping its publication state.
func (srv *postService) Update(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		existing, err := postRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		if err := srv.checkSeries(ctx, repoFactory, input.SeriesID); err != nil {
			return err
		}

		existing.Title = input.Title
		existing.Slug = normalizeSlug(input.Slug)
		existing.Summary = input.Summary
		existing.Content = input.Content
		existing.CoverImageURL = input.CoverImageURL
		existing.SeriesID = input.SeriesID
		existing.SeriesOrder = input.SeriesOrder

		if err := postRepo.Update(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrSlugTaken) {
				return domainerrors.ErrSlugTaken.WrapMessage("post slug already in use")
			}

			return errors.WithStack(err)
		}
		post = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes a post and its reactions.
func (srv *postService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PostRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post not found")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.logger.Info("Post deleted", "postID", id)

	return nil
}

// SetPublished flips the publication state. The first publish stamps
// PublishedAt; republishing keeps the original timestamp.
func (srv *postService) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*entity.Post, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		existing, err := postRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		if existing.Published == published {
			post = existing

			return nil
		}

		existing.Published = published
		if published && existing.PublishedAt == nil {
			now := time.Now()
			existing.PublishedAt = &now
		}

		if err := postRepo.Update(ctx, existing); err != nil {
			return errors.WithStack(err)
		}
		post = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := service.PostUnpublished
	if published {
		eventType = service.PostPublished
	}
	event := service.PostEvent{
		Type:       eventType,
		PostID:     post.ID,
		Slug:       post.Slug,
		Title:      post.Title,
		OccurredAt: time.Now(),
	}
	if err := srv.eventPublisher.PublishPostEvent(ctx, event); err != nil {
		// The state change is committed; a lost event only delays downstream
		// consumers.
		srv.logger.Warn("Failed to publish post event", "error", err, "postID", post.ID)
	}

	srv.logger.Info("Post publication state changed", "postID", post.ID, "published", published)

	return post, nil
}

// ToggleLike flips the caller's like and returns the new state and count.
func (srv *postService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, int64, error) {
	var liked bool
	var likeCount int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		post, err := repoFactory.PostRepo().FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}
		if !post.Published {
			return domainerrors.ErrPostNotFound.WrapMessage("post not published")
		}

		reactionRepo := repoFactory.ReactionRepo()

		liked, err = reactionRepo.ToggleLike(ctx, postID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to toggle like")
		}

		likeCount, err = reactionRepo.CountByPost(ctx, postID, entity.ReactionLike)

		return errors.Wrap(err, "failed to count likes")
	})
	if err != nil {
		return false, 0, err
	}

	return liked, likeCount, nil
}

// ShareQR renders a PNG QR code of the post's canonical URL.
func (srv *postService) ShareQR(ctx context.Context, slug string) ([]byte, error) {
	post, err := srv.GetBySlug(ctx, slug, nil, false)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/posts/%s", strings.TrimSuffix(srv.cfg.Site.BaseURL, "/"), post.Slug)

	png, err := srv.qrcodeService.GenerateShareQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// attachCounts fills the computed like/view fields on each post, and the
// viewer's own like state when a viewer is known.
func (srv *postService) attachCounts(ctx context.Context, repoFactory repository.RepositoryFactory, posts []*entity.Post, viewerID *uuid.UUID) error {
	reactionRepo := repoFactory.ReactionRepo()

	for _, post := range posts {
		likes, err := reactionRepo.CountByPost(ctx, post.ID, entity.ReactionLike)
		if err != nil {
			return errors.Wrap(err, "failed to count likes")
		}
		views, err := reactionRepo.CountByPost(ctx, post.ID, entity.ReactionView)
		if err != nil {
			return errors.Wrap(err, "failed to count views")
		}
		post.LikeCount = likes
		post.ViewCount = views

		if viewerID != nil {
			liked, err := reactionRepo.HasReaction(ctx, post.ID, *viewerID, entity.ReactionLike)
			if err != nil {
				return errors.Wrap(err, "failed to check like state")
			}
			post.Liked = liked
		}
	}

	return nil
}

// checkSeries verifies a series reference before attaching a post to it.
func (srv *postService) checkSeries(ctx context.Context, repoFactory repository.RepositoryFactory, seriesID *uuid.UUID) error {
	if seriesID == nil {
		return nil
	}

	if _, err := repoFactory.SeriesRepo().FindByID(ctx, *seriesID); err != nil {
		if errors.Is(err, repository.ErrSeriesNotFound) {
			return domainerrors.ErrSeriesNotFound.WrapMessage("series does not exist")
		}

		return errors.Wrap(err, "failed to check series")
	}

	return nil
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
