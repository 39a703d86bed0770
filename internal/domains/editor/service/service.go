package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"folio/config"
	"folio/infras/otel"
	articleDto "folio/internal/domains/article/model/dto"
	articleService "folio/internal/domains/article/service"
	"folio/internal/domains/editor/model"
	"folio/internal/domains/editor/model/dto"
	"folio/internal/domains/editor/spool"
	portfolioDto "folio/internal/domains/portfolio/model/dto"
	portfolioService "folio/internal/domains/portfolio/service"
	uploadModel "folio/internal/domains/upload/model"
	uploadService "folio/internal/domains/upload/service"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/shared/timezone"
	"folio/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const msgDraftNotFound = "draft not found"

// Editor stages record edits per admin session and commits them on save.
type Editor interface {
	OpenAdd(ctx context.Context, kind model.Kind) (dto.DraftResponse, error)
	OpenEdit(ctx context.Context, kind model.Kind, recordID string) (dto.DraftResponse, error)
	Get(ctx context.Context, id string) (dto.DraftResponse, error)
	SetFields(ctx context.Context, id string, patch dto.FieldsPatch) (dto.DraftResponse, error)
	AddLocalImages(ctx context.Context, id string, files []uploadModel.File) (dto.DraftResponse, error)
	RemoveImage(ctx context.Context, id string, index int) (dto.DraftResponse, error)
	LocalImage(ctx context.Context, id string, index int) (uploadModel.LocalFile, error)
	Save(ctx context.Context, id string) (dto.SaveResponse, error)
	Cancel(ctx context.Context, id string) error
	Sweep(now time.Time) int
	Run(ctx context.Context)
	Close()
}

type serviceImpl struct {
	drafts        *registry
	portfolio     portfolioService.Portfolio
	article       articleService.Article
	uploader      uploadService.Uploader
	spool         spool.Spool
	otel          otel.Otel
	sweepInterval time.Duration
}

func New(
	cfg *config.Config,
	portfolio portfolioService.Portfolio,
	article articleService.Article,
	uploader uploadService.Uploader,
	spool spool.Spool,
	otel otel.Otel,
) Editor {
	ttl := time.Duration(cfg.Editor.DraftTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = constant.DefaultDraftTTLMinutes * time.Minute
	}

	interval := time.Duration(cfg.Editor.SweepIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = constant.DefaultSweepInterval
	}

	return &serviceImpl{
		drafts:        newRegistry(ttl),
		portfolio:     portfolio,
		article:       article,
		uploader:      uploader,
		spool:         spool,
		otel:          otel,
		sweepInterval: interval,
	}
}

// owner keys drafts by the admin session, falling back to the user.
func owner(ctx context.Context) string {
	if sessionID, _ := ctx.Value(constant.ContextKeyTokenID).(string); sessionID != constant.Empty {
		return sessionID
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return userID
}

// withDraft runs fn on the caller's draft while holding the registry lock.
func (s *serviceImpl) withDraft(ctx context.Context, id string, fn func(draft *model.Draft) error) (res dto.DraftResponse, err error) {
	s.drafts.mu.Lock()
	defer s.drafts.mu.Unlock()

	draft, ok := s.drafts.lookup(owner(ctx), id)
	if !ok {
		return res, failure.NotFound(msgDraftNotFound)
	}

	if err = fn(draft); err != nil {
		return res, err
	}

	draft.Touch(timezone.Now())
	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) register(draft *model.Draft) dto.DraftResponse {
	s.drafts.mu.Lock()
	defer s.drafts.mu.Unlock()

	s.drafts.drafts[draft.ID] = draft

	log.Info().Str("draft", draft.ID).Str("kind", string(draft.Kind)).Str("mode", string(draft.Mode)).Msg("draft opened")

	var res dto.DraftResponse
	res.FromModel(draft)

	return res
}

func (s *serviceImpl) OpenAdd(ctx context.Context, kind model.Kind) (res dto.DraftResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".editor.OpenAdd")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !kind.Valid() {
		return res, failure.BadRequestFromString(model.ErrUnknownKind.Error())
	}

	draft := model.NewDraft(uuid.NewString(), owner(ctx), kind, model.ModeAdd, timezone.Now())

	return s.register(draft), nil
}

// OpenEdit seeds a draft from the stored record. Its images are staged as
// persisted.
func (s *serviceImpl) OpenEdit(ctx context.Context, kind model.Kind, recordID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".editor.OpenEdit")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := model.NewDraft(uuid.NewString(), owner(ctx), kind, model.ModeEdit, timezone.Now())
	draft.RecordID = recordID

	switch kind {
	case model.KindPortfolio:
		section, getErr := s.portfolio.Get(ctx, recordID)
		if getErr != nil {
			return res, getErr //nolint:wrapcheck
		}

		draft.Fields = dto.FieldsFromSection(section)
		draft.AddPersisted(section.Images...)
	case model.KindArticle:
		article, getErr := s.article.Get(ctx, recordID)
		if getErr != nil {
			return res, getErr //nolint:wrapcheck
		}

		draft.Fields = dto.FieldsFromArticle(article)
		if article.CoverImageURL != nil {
			draft.AddPersisted(*article.CoverImageURL)
		}
	default:
		return res, failure.BadRequestFromString(model.ErrUnknownKind.Error())
	}

	return s.register(draft), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (dto.DraftResponse, error) {
	return s.withDraft(ctx, id, func(*model.Draft) error { return nil })
}

func (s *serviceImpl) SetFields(ctx context.Context, id string, patch dto.FieldsPatch) (dto.DraftResponse, error) {
	if err := validator.ValidateStruct(&patch); err != nil {
		return dto.DraftResponse{}, err //nolint:wrapcheck
	}

	return s.withDraft(ctx, id, func(draft *model.Draft) error {
		if err := draft.Editable(); err != nil {
			return err //nolint:wrapcheck
		}

		patch.Apply(&draft.Fields)

		return nil
	})
}

// AddLocalImages spools the files and stages them as local previews. Nothing
// is uploaded until save.
func (s *serviceImpl) AddLocalImages(ctx context.Context, id string, files []uploadModel.File) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".editor.AddLocalImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(files) == 0 {
		return res, failure.BadRequestFromString("no files given")
	}

	if _, err = s.withDraft(ctx, id, func(draft *model.Draft) error { return draft.Editable() }); err != nil {
		return res, err
	}

	spooled := make([]uploadModel.LocalFile, 0, len(files))

	for _, file := range files {
		local, spoolErr := s.spool.Save(file)
		if spoolErr != nil {
			s.spool.Release(spooled...)
			log.Error().Err(spoolErr).Str("draft", id).Msg("failed to spool local image")

			return res, failure.Upload(failure.UploadInvalid, spoolErr.Error(), spoolErr)
		}

		spooled = append(spooled, local)
	}

	res, err = s.withDraft(ctx, id, func(draft *model.Draft) error {
		return draft.AddLocal(spooled...)
	})
	if err != nil {
		s.spool.Release(spooled...)

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) RemoveImage(ctx context.Context, id string, index int) (dto.DraftResponse, error) {
	var released *uploadModel.LocalFile

	res, err := s.withDraft(ctx, id, func(draft *model.Draft) error {
		file, err := draft.RemoveImage(index)
		released = file

		return err //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	if released != nil {
		s.spool.Release(*released)
	}

	return res, nil
}

// LocalImage returns the spooled file behind a local preview.
func (s *serviceImpl) LocalImage(ctx context.Context, id string, index int) (file uploadModel.LocalFile, err error) {
	_, err = s.withDraft(ctx, id, func(draft *model.Draft) error {
		if index < 0 || index >= len(draft.Images) || draft.Images[index].File == nil {
			return failure.NotFound("local image not found")
		}

		file = *draft.Images[index].File

		return nil
	})

	return file, err
}

// snapshot is what a save needs, copied out of the draft under the lock.
type snapshot struct {
	kind      model.Kind
	mode      model.Mode
	recordID  string
	fields    model.Fields
	persisted []string
	locals    []uploadModel.LocalFile
	draft     *model.Draft
}

func (s *serviceImpl) beginSave(ctx context.Context, id string) (snap snapshot, err error) {
	s.drafts.mu.Lock()
	defer s.drafts.mu.Unlock()

	draft, ok := s.drafts.lookup(owner(ctx), id)
	if !ok {
		return snap, failure.NotFound(msgDraftNotFound)
	}

	if err = draft.BeginSave(); err != nil {
		return snap, err //nolint:wrapcheck
	}

	draft.Touch(timezone.Now())

	return snapshot{
		kind:      draft.Kind,
		mode:      draft.Mode,
		recordID:  draft.RecordID,
		fields:    draft.Fields,
		persisted: draft.Persisted(),
		locals:    draft.Locals(),
		draft:     draft,
	}, nil
}

// finishSave settles the draft and reports whether it is still registered.
// A draft dropped by Close while saving is not.
func (s *serviceImpl) finishSave(snap snapshot, recordID string, err error) bool {
	s.drafts.mu.Lock()
	defer s.drafts.mu.Unlock()

	snap.draft.FinishSave(err)
	snap.draft.Touch(timezone.Now())

	_, registered := s.drafts.drafts[snap.draft.ID]

	if err == nil {
		snap.draft.RecordID = recordID
		delete(s.drafts.drafts, snap.draft.ID)
	}

	return registered
}

// Save validates the draft, uploads its local images, writes the record and
// closes the draft. Any failure returns the draft to open with its staged
// edits intact.
func (s *serviceImpl) Save(ctx context.Context, id string) (res dto.SaveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".editor.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	snap, err := s.beginSave(ctx, id)
	if err != nil {
		return res, err
	}

	recordID, err := s.commit(ctx, snap)
	registered := s.finishSave(snap, recordID, err)

	if err != nil {
		log.Error().Err(err).Str("draft", id).Msg("failed to save draft")

		if !registered {
			s.spool.Release(snap.locals...)
		}

		return res, err
	}

	s.spool.Release(snap.locals...)

	log.Info().Str("draft", id).Str("record", recordID).Msg("draft saved")

	res.RecordID = recordID
	res.Kind = snap.kind
	s.refresh(ctx, &res)

	return res, nil
}

// commit uploads the local images and writes the record. Images uploaded for
// a record that then fails to save are removed again.
func (s *serviceImpl) commit(ctx context.Context, snap snapshot) (string, error) {
	files := make([]uploadModel.File, len(snap.locals))
	for i, local := range snap.locals {
		files[i] = local
	}

	assets, err := s.uploader.UploadMany(ctx, files)
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	uploaded := make([]string, len(assets))
	for i, asset := range assets {
		uploaded[i] = asset.URL
	}

	recordID, err := s.write(ctx, snap, model.MergeURLs(snap.persisted, uploaded))
	if err != nil {
		s.uploader.Remove(context.WithoutCancel(ctx), assets)

		return constant.Empty, err
	}

	return recordID, nil
}

func (s *serviceImpl) write(ctx context.Context, snap snapshot, images []string) (string, error) {
	switch snap.kind {
	case model.KindPortfolio:
		payload := dto.ToSectionPayload(snap.fields, images)

		var (
			section portfolioDto.SectionResponse
			err     error
		)

		if snap.mode == model.ModeAdd {
			section, err = s.portfolio.Create(ctx, payload)
		} else {
			section, err = s.portfolio.Update(ctx, snap.recordID, payload)
		}

		return section.ID, err //nolint:wrapcheck
	case model.KindArticle:
		payload := dto.ToArticlePayload(snap.fields, images)

		var (
			article articleDto.ArticleResponse
			err     error
		)

		if snap.mode == model.ModeAdd {
			article, err = s.article.Create(ctx, payload)
		} else {
			article, err = s.article.Update(ctx, snap.recordID, payload)
		}

		return article.ID, err //nolint:wrapcheck
	default:
		return constant.Empty, failure.BadRequestFromString(model.ErrUnknownKind.Error())
	}
}

// refresh loads the list the saved record belongs to. The save already
// succeeded, so a failing reload is only logged.
func (s *serviceImpl) refresh(ctx context.Context, res *dto.SaveResponse) {
	switch res.Kind {
	case model.KindPortfolio:
		list, err := s.portfolio.GetAll(ctx, portfolioDto.SectionFilter{})
		if err != nil {
			log.Warn().Err(err).Msg("failed to reload portfolio after save")

			return
		}

		res.Portfolio = &list
	case model.KindArticle:
		list, err := s.article.GetAll(ctx, articleDto.ArticleFilter{})
		if err != nil {
			log.Warn().Err(err).Msg("failed to reload articles after save")

			return
		}

		res.Articles = &list
	}
}

// Cancel discards the draft and releases its local files.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	s.drafts.mu.Lock()

	draft, ok := s.drafts.lookup(owner(ctx), id)
	if !ok {
		s.drafts.mu.Unlock()

		return failure.NotFound(msgDraftNotFound)
	}

	if draft.State == model.StateSaving {
		s.drafts.mu.Unlock()

		return failure.Conflict(model.ErrSaving.Error())
	}

	files := draft.Close()
	delete(s.drafts.drafts, id)
	s.drafts.mu.Unlock()

	s.spool.Release(files...)

	log.Info().Str("draft", id).Msg("draft cancelled")

	return nil
}

// Sweep closes drafts idle past the ttl and returns how many were dropped.
func (s *serviceImpl) Sweep(now time.Time) int {
	s.drafts.mu.Lock()
	stale := s.drafts.expired(now)
	s.drafts.mu.Unlock()

	for _, draft := range stale {
		s.spool.Release(draft.Close()...)
	}

	if len(stale) > 0 {
		log.Info().Int("drafts", len(stale)).Msg("expired drafts released")
	}

	return len(stale)
}

// Run sweeps expired drafts until ctx is done.
func (s *serviceImpl) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(timezone.Now())
		}
	}
}

// Close releases every draft. Drafts mid-save keep their files until the
// save returns.
func (s *serviceImpl) Close() {
	s.drafts.mu.Lock()
	drafts := s.drafts.drain()
	s.drafts.mu.Unlock()

	released := 0

	for _, draft := range drafts {
		if draft.State == model.StateSaving {
			continue
		}

		s.spool.Release(draft.Close()...)
		released++
	}

	log.Info().Int("drafts", released).Msg("editor closed")
}
