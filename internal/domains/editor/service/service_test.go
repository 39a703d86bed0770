package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"folio/config"
	otelMocks "folio/infras/otel/mocks"
	articleMocks "folio/internal/domains/article/mocks"
	articleDto "folio/internal/domains/article/model/dto"
	"folio/internal/domains/editor/model"
	"folio/internal/domains/editor/model/dto"
	"folio/internal/domains/editor/service"
	"folio/internal/domains/editor/spool"
	portfolioMocks "folio/internal/domains/portfolio/mocks"
	portfolioDto "folio/internal/domains/portfolio/model/dto"
	uploadMocks "folio/internal/domains/upload/mocks"
	uploadModel "folio/internal/domains/upload/model"
	"folio/shared/constant"
	"folio/shared/failure"
)

type memFile struct {
	name string
	body []byte
}

func (f memFile) Name() string                 { return f.name }
func (f memFile) ContentType() string          { return "image/jpeg" }
func (f memFile) Size() int64                  { return int64(len(f.body)) }
func (f memFile) Open() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(f.body)), nil }

type fixture struct {
	portfolio *portfolioMocks.MockPortfolioService
	article   *articleMocks.MockArticleService
	uploader  *uploadMocks.MockUploader
	spoolDir  string
	editor    service.Editor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	sp, err := spool.New(dir, 1)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Editor.DraftTTLMinutes = 30

	f := fixture{
		portfolio: portfolioMocks.NewMockPortfolioService(ctrl),
		article:   articleMocks.NewMockArticleService(ctrl),
		uploader:  uploadMocks.NewMockUploader(ctrl),
		spoolDir:  dir,
	}
	f.editor = service.New(cfg, f.portfolio, f.article, f.uploader, sp, otelMocks.NewOtel())

	return f
}

func (f fixture) spooled(t *testing.T) int {
	t.Helper()

	entries, err := os.ReadDir(f.spoolDir)
	require.NoError(t, err)

	return len(entries)
}

func session(id string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	return context.WithValue(ctx, constant.ContextKeyTokenID, id)
}

func ptr(s string) *string { return &s }

func uploadedAs(urls ...string) func(context.Context, []uploadModel.File) ([]uploadModel.Asset, error) {
	return func(_ context.Context, files []uploadModel.File) ([]uploadModel.Asset, error) {
		assets := make([]uploadModel.Asset, len(files))
		for i := range files {
			assets[i] = uploadModel.Asset{URL: urls[i], PublicID: urls[i]}
		}

		return assets, nil
	}
}

func TestEditor_AddProjectScenario(t *testing.T) {
	f := newFixture(t)
	ctx := session("sess-1")

	draft, err := f.editor.OpenAdd(ctx, model.KindPortfolio)
	require.NoError(t, err)
	assert.Equal(t, model.StateOpen, draft.State)
	assert.Equal(t, model.ModeAdd, draft.Mode)

	_, err = f.editor.SetFields(ctx, draft.ID, dto.FieldsPatch{
		Title:    ptr("Durbar 2025"),
		Category: ptr("Documentary"),
		Content:  ptr("Morning at the square."),
	})
	require.NoError(t, err)

	draft, err = f.editor.AddLocalImages(ctx, draft.ID, []uploadModel.File{
		memFile{name: "first.jpg", body: []byte("one")},
		memFile{name: "second.jpg", body: []byte("two")},
	})
	require.NoError(t, err)
	require.Len(t, draft.Images, 2)
	assert.Equal(t, model.ProvenanceLocal, draft.Images[0].Provenance)
	assert.Equal(t, 2, f.spooled(t))

	first, second := "https://cdn.example.com/first.jpg", "https://cdn.example.com/second.jpg"

	f.uploader.EXPECT().UploadMany(gomock.Any(), gomock.Len(2)).DoAndReturn(func(ctx context.Context, files []uploadModel.File) ([]uploadModel.Asset, error) {
		assert.Equal(t, "first.jpg", files[0].Name())
		assert.Equal(t, "second.jpg", files[1].Name())

		return uploadedAs(first, second)(ctx, files)
	})
	f.portfolio.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req portfolioDto.SectionPayload) (portfolioDto.SectionResponse, error) {
		assert.Equal(t, "Durbar 2025", req.Title)
		assert.Equal(t, "Documentary", req.Category)
		assert.Equal(t, []string{first, second}, req.Images)
		assert.Nil(t, req.Location)

		return portfolioDto.SectionResponse{ID: "sec-new", Title: req.Title, ImageURL: &first, Images: req.Images}, nil
	})
	f.portfolio.EXPECT().GetAll(gomock.Any(), portfolioDto.SectionFilter{}).Return(portfolioDto.GetSectionsResponse{
		Sections:  []portfolioDto.SectionResponse{{ID: "sec-new", Title: "Durbar 2025", ImageURL: &first}, {ID: "sec-old"}},
		TotalData: 2,
	}, nil)

	res, err := f.editor.Save(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "sec-new", res.RecordID)
	require.NotNil(t, res.Portfolio)
	assert.Equal(t, 2, res.Portfolio.TotalData)
	assert.Equal(t, first, *res.Portfolio.Sections[0].ImageURL)

	assert.Equal(t, 0, f.spooled(t))

	_, err = f.editor.Get(ctx, draft.ID)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestEditor_SaveFailures(t *testing.T) {
	open := func(t *testing.T, f fixture, ctx context.Context) string {
		t.Helper()

		draft, err := f.editor.OpenAdd(ctx, model.KindPortfolio)
		require.NoError(t, err)

		_, err = f.editor.SetFields(ctx, draft.ID, dto.FieldsPatch{Title: ptr("t"), Category: ptr("c"), Content: ptr("x")})
		require.NoError(t, err)

		_, err = f.editor.AddLocalImages(ctx, draft.ID, []uploadModel.File{
			memFile{name: "f1.jpg", body: []byte("1")},
			memFile{name: "f2.jpg", body: []byte("2")},
			memFile{name: "f3.jpg", body: []byte("3")},
		})
		require.NoError(t, err)

		return draft.ID
	}

	t.Run("upload failure keeps the draft open", func(t *testing.T) {
		f := newFixture(t)
		ctx := session("sess-1")
		id := open(t, f, ctx)

		f.uploader.EXPECT().UploadMany(gomock.Any(), gomock.Len(3)).
			Return(nil, failure.Upload(failure.UploadNetwork, "failed to upload f2.jpg", errors.New("reset")))

		_, err := f.editor.Save(ctx, id)
		require.Error(t, err)
		assert.True(t, failure.IsUploadKind(err, failure.UploadNetwork))

		draft, err := f.editor.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.StateOpen, draft.State)
		assert.Equal(t, "failed to upload f2.jpg", draft.LastError)
		assert.Len(t, draft.Images, 3)
		assert.Equal(t, 3, f.spooled(t))
	})

	t.Run("store failure removes uploaded images", func(t *testing.T) {
		f := newFixture(t)
		ctx := session("sess-1")
		id := open(t, f, ctx)

		f.uploader.EXPECT().UploadMany(gomock.Any(), gomock.Any()).DoAndReturn(uploadedAs("u1", "u2", "u3"))
		f.portfolio.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(portfolioDto.SectionResponse{}, failure.Store(failure.StoreTransient, "timeout", nil))
		f.uploader.EXPECT().Remove(gomock.Any(), gomock.Len(3))

		_, err := f.editor.Save(ctx, id)
		assert.True(t, failure.IsStoreKind(err, failure.StoreTransient))

		draft, err := f.editor.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.StateOpen, draft.State)
		assert.Equal(t, 3, f.spooled(t))
	})

	t.Run("missing fields never reach the uploader", func(t *testing.T) {
		f := newFixture(t)
		ctx := session("sess-1")

		draft, err := f.editor.OpenAdd(ctx, model.KindPortfolio)
		require.NoError(t, err)

		_, err = f.editor.Save(ctx, draft.ID)
		assert.Equal(t, 400, failure.GetCode(err))

		got, err := f.editor.Get(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StateOpen, got.State)
	})
}

func TestEditor_EditSection(t *testing.T) {
	f := newFixture(t)
	ctx := session("sess-1")

	f.portfolio.EXPECT().Get(gomock.Any(), "sec-1").Return(portfolioDto.SectionResponse{
		ID: "sec-1", Title: "Old", Category: "Travel", Content: "c",
		Images: []string{"https://x/a.jpg", "https://x/b.jpg"},
	}, nil)

	draft, err := f.editor.OpenEdit(ctx, model.KindPortfolio, "sec-1")
	require.NoError(t, err)
	require.Len(t, draft.Images, 2)
	assert.Equal(t, model.ProvenancePersisted, draft.Images[0].Provenance)
	assert.Equal(t, "Old", draft.Fields.Title)

	_, err = f.editor.RemoveImage(ctx, draft.ID, 0)
	require.NoError(t, err)

	_, err = f.editor.AddLocalImages(ctx, draft.ID, []uploadModel.File{memFile{name: "c.jpg", body: []byte("c")}})
	require.NoError(t, err)

	f.uploader.EXPECT().UploadMany(gomock.Any(), gomock.Len(1)).DoAndReturn(uploadedAs("https://x/c.jpg"))
	f.portfolio.EXPECT().Update(gomock.Any(), "sec-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, req portfolioDto.SectionPayload) (portfolioDto.SectionResponse, error) {
		assert.Equal(t, []string{"https://x/b.jpg", "https://x/c.jpg"}, req.Images)

		return portfolioDto.SectionResponse{ID: "sec-1"}, nil
	})
	f.portfolio.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(portfolioDto.GetSectionsResponse{}, errors.New("db down"))

	res, err := f.editor.Save(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "sec-1", res.RecordID)
	assert.Nil(t, res.Portfolio)
}

func TestEditor_ArticleCover(t *testing.T) {
	f := newFixture(t)
	ctx := session("sess-1")

	draft, err := f.editor.OpenAdd(ctx, model.KindArticle)
	require.NoError(t, err)

	published := true
	_, err = f.editor.SetFields(ctx, draft.ID, dto.FieldsPatch{Title: ptr("Notes"), Body: ptr("text"), Published: &published})
	require.NoError(t, err)

	_, err = f.editor.AddLocalImages(ctx, draft.ID, []uploadModel.File{memFile{name: "cover.jpg", body: []byte("c")}})
	require.NoError(t, err)

	f.uploader.EXPECT().UploadMany(gomock.Any(), gomock.Len(1)).DoAndReturn(uploadedAs("https://x/cover.jpg"))
	f.article.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req articleDto.ArticlePayload) (articleDto.ArticleResponse, error) {
		require.NotNil(t, req.CoverImageURL)
		assert.Equal(t, "https://x/cover.jpg", *req.CoverImageURL)
		assert.True(t, *req.Published)

		return articleDto.ArticleResponse{ID: "art-1"}, nil
	})
	f.article.EXPECT().GetAll(gomock.Any(), articleDto.ArticleFilter{}).Return(articleDto.GetArticlesResponse{TotalData: 1}, nil)

	res, err := f.editor.Save(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "art-1", res.RecordID)
	require.NotNil(t, res.Articles)
	assert.Equal(t, 1, res.Articles.TotalData)
}

func TestEditor_CancelAndIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := session("sess-1")

	draft, err := f.editor.OpenAdd(ctx, model.KindPortfolio)
	require.NoError(t, err)

	_, err = f.editor.AddLocalImages(ctx, draft.ID, []uploadModel.File{memFile{name: "a.jpg", body: []byte("a")}})
	require.NoError(t, err)
	assert.Equal(t, 1, f.spooled(t))

	_, err = f.editor.Get(session("sess-2"), draft.ID)
	assert.Equal(t, 404, failure.GetCode(err))

	local, err := f.editor.LocalImage(ctx, draft.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", local.Name())

	require.NoError(t, f.editor.Cancel(ctx, draft.ID))
	assert.Equal(t, 0, f.spooled(t))

	assert.Equal(t, 404, failure.GetCode(f.editor.Cancel(ctx, draft.ID)))
}

func TestEditor_SweepAndClose(t *testing.T) {
	f := newFixture(t)
	ctx := session("sess-1")

	stale, err := f.editor.OpenAdd(ctx, model.KindPortfolio)
	require.NoError(t, err)

	_, err = f.editor.AddLocalImages(ctx, stale.ID, []uploadModel.File{memFile{name: "a.jpg", body: []byte("a")}})
	require.NoError(t, err)

	assert.Equal(t, 0, f.editor.Sweep(time.Now()))
	assert.Equal(t, 1, f.editor.Sweep(time.Now().Add(31*time.Minute)))
	assert.Equal(t, 0, f.spooled(t))

	fresh, err := f.editor.OpenAdd(ctx, model.KindArticle)
	require.NoError(t, err)

	_, err = f.editor.AddLocalImages(ctx, fresh.ID, []uploadModel.File{memFile{name: "b.jpg", body: []byte("b")}})
	require.NoError(t, err)

	f.editor.Close()
	assert.Equal(t, 0, f.spooled(t))

	_, err = f.editor.Get(ctx, fresh.ID)
	assert.Equal(t, 404, failure.GetCode(err))
}
