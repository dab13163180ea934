package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"notepress/internal/config"
	"notepress/internal/domain"
	"notepress/internal/service/mocks"
	"notepress/internal/source/ghost"
	"notepress/internal/transform"
)

type GhostSyncTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client      *mocks.MockGhostClient
	blogs       *mocks.MockBlogStore
	posts       *mocks.MockPostStore
	transformer *mocks.MockTransformer
	txManager   *mocks.MockTransactionManager
	publisher   *mocks.MockPublisher

	service *GhostSyncService
}

func (s *GhostSyncTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockGhostClient(s.ctrl)
	s.blogs = mocks.NewMockBlogStore(s.ctrl)
	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.transformer = mocks.NewMockTransformer(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewGhostSyncService(
		s.client,
		s.blogs,
		s.posts,
		s.transformer,
		s.txManager,
		s.publisher,
		logger,
		config.SyncConfig{MinSyncInterval: time.Minute, ExcerptLength: 280},
	)
}

func (s *GhostSyncTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGhostSyncTestSuite(t *testing.T) {
	suite.Run(t, new(GhostSyncTestSuite))
}

func (s *GhostSyncTestSuite) TestSync_MirrorsPublishedPost() {
	ctx := context.Background()
	updated := time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)
	published := updated.Add(-time.Hour)

	blog := &domain.Blog{ID: 2, OwnerID: "owner-2", SourceKind: domain.SourceGhost}
	s.blogs.EXPECT().Get(ctx, int64(2)).Return(blog, nil)

	s.client.EXPECT().FetchPostsUpdatedSince(ctx, gomock.Any()).Return([]ghost.Post{
		{
			ID:          "gp-1",
			Title:       "Hosted Post",
			HTML:        `<p>text</p><img src="https://cdn.example.com/a.jpg">`,
			Status:      "published",
			UpdatedAt:   updated,
			PublishedAt: &published,
		},
	}, nil)

	s.posts.EXPECT().
		FindBySource(ctx, int64(2), domain.PostSource{Kind: domain.SourceGhost, ID: "gp-1"}).
		Return(nil, nil)

	s.transformer.EXPECT().
		Transform(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in transform.Input) (*transform.Result, error) {
			s.Equal(domain.SourceGhost, in.Kind)
			return &transform.Result{HTML: `<p>text</p><img src="https://assets.local/a.jpg"/>`, Excerpt: "text"}, nil
		})

	s.posts.EXPECT().SlugTaken(ctx, int64(2), "hosted-post", "").Return(false, nil)
	s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	s.posts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, post *domain.Post) error {
			s.True(post.Published)
			s.Equal(&published, post.PublishedAt)
			return nil
		})
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "create").Return(nil)

	s.blogs.EXPECT().MarkAttempt(ctx, int64(2), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.service.Sync(ctx, 2, false)
	s.NoError(err)
	s.Equal(1, result.Created)
}

func (s *GhostSyncTestSuite) TestSync_UnpublishesDraftedPost() {
	ctx := context.Background()
	updated := time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)

	blog := &domain.Blog{ID: 2, OwnerID: "owner-2", SourceKind: domain.SourceGhost}
	s.blogs.EXPECT().Get(ctx, int64(2)).Return(blog, nil)

	s.client.EXPECT().FetchPostsUpdatedSince(ctx, gomock.Any()).Return([]ghost.Post{
		{ID: "gp-1", Title: "Now a Draft", Status: "draft", UpdatedAt: updated},
	}, nil)

	existing := &domain.Post{
		ID:        "p1",
		BlogID:    2,
		Published: true,
		Source:    domain.PostSource{Kind: domain.SourceGhost, ID: "gp-1"},
	}
	s.posts.EXPECT().
		FindBySource(ctx, int64(2), domain.PostSource{Kind: domain.SourceGhost, ID: "gp-1"}).
		Return(existing, nil)

	s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	s.posts.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, post *domain.Post) error {
			s.False(post.Published)
			s.Nil(post.PublishedAt)
			return nil
		})
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), "unpublish").Return(nil)

	s.blogs.EXPECT().MarkAttempt(ctx, int64(2), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.service.Sync(ctx, 2, false)
	s.NoError(err)
	s.Equal(1, result.Unpublished)
}
