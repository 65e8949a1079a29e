package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"quill/config"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSiteConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			BaseURL: "https://quill.example.com",
		},
	}
}

// expectExecute wires the transaction manager mock to run the closure against
// a factory prepared by setup, propagating whatever error the closure returns.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
