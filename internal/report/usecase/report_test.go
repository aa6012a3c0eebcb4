package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	healthrepo "lungtracker-srv/internal/healthdata/repository"
	"lungtracker-srv/internal/model"
	"lungtracker-srv/internal/report"
	"lungtracker-srv/internal/report/repository"
	"lungtracker-srv/pkg/log"
	"lungtracker-srv/pkg/minio"
	"lungtracker-srv/pkg/resend"
	"lungtracker-srv/pkg/token"
)

// ----------- fakes -----------

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

var _ log.Logger = noopLogger{}

type fakeExportRepo struct {
	created      []repository.CreateExportOptions
	createErr    error
	byTokenHash  map[string]*model.ReportExport
	findErr      error
	downloaded   []repository.MarkDownloadedOptions
	downloadErr  error
	revoked      []repository.MarkRevokedOptions
	revokeErr    error
	listOpts     []repository.ListByOwnerOptions
	listResult   []*model.ReportExport
	listErr      error
}

func (f *fakeExportRepo) CreateExport(ctx context.Context, opts repository.CreateExportOptions) (*model.ReportExport, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, opts)
	return &model.ReportExport{
		ID:             opts.ID,
		UserID:         opts.UserID,
		RangeStart:     opts.RangeStart,
		RangeEnd:       opts.RangeEnd,
		StorageBucket:  opts.StorageBucket,
		StoragePath:    opts.StoragePath,
		RecipientEmail: opts.RecipientEmail,
		TokenHash:      opts.TokenHash,
		ExpiresAt:      opts.ExpiresAt,
		Status:         model.ExportStatusSent,
		SentAt:         opts.SentAt,
	}, nil
}

func (f *fakeExportRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.ReportExport, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	export, ok := f.byTokenHash[tokenHash]
	if !ok {
		return nil, repository.ErrExportNotFound
	}
	return export, nil
}

func (f *fakeExportRepo) MarkDownloaded(ctx context.Context, opts repository.MarkDownloadedOptions) error {
	if f.downloadErr != nil {
		return f.downloadErr
	}
	f.downloaded = append(f.downloaded, opts)
	return nil
}

func (f *fakeExportRepo) MarkRevoked(ctx context.Context, opts repository.MarkRevokedOptions) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, opts)
	return nil
}

func (f *fakeExportRepo) ListByOwner(ctx context.Context, opts repository.ListByOwnerOptions) ([]*model.ReportExport, error) {
	f.listOpts = append(f.listOpts, opts)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

type fakeHealthRepo struct {
	data model.ReportData
	err  error
}

func (f *fakeHealthRepo) FetchReportData(ctx context.Context, opts healthrepo.FetchReportDataOptions) (model.ReportData, error) {
	if f.err != nil {
		return model.ReportData{}, f.err
	}
	return f.data, nil
}

type fakeStorage struct {
	minio.MinIO
	uploads    []*minio.UploadRequest
	uploadErr  error
	presigns   []*minio.PresignedURLRequest
	presignURL string
	presignErr error
}

func (f *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, req)
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	f.presigns = append(f.presigns, req)
	return &minio.PresignedURLResponse{
		URL:       f.presignURL,
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    minio.MethodGET,
	}, nil
}

type fakeMailer struct {
	sent []resend.SendRequest
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, email resend.SendRequest) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type fakePDF struct {
	err error
}

func (f *fakePDF) HTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeEvents struct {
	published []report.ReportEvent
}

func (f *fakeEvents) Publish(ctx context.Context, event report.ReportEvent) {
	f.published = append(f.published, event)
}

// ----------- fixture -----------

type fixture struct {
	repo    *fakeExportRepo
	health  *fakeHealthRepo
	storage *fakeStorage
	mailer  *fakeMailer
	pdf     *fakePDF
	events  *fakeEvents
	uc      report.UseCase
}

func newFixture(cfg Config) *fixture {
	f := &fixture{
		repo:    &fakeExportRepo{byTokenHash: map[string]*model.ReportExport{}},
		health:  &fakeHealthRepo{},
		storage: &fakeStorage{presignURL: "https://minio.local/signed/report.pdf"},
		mailer:  &fakeMailer{},
		pdf:     &fakePDF{},
		events:  &fakeEvents{},
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://app.example.com"
	}
	f.uc = New(f.repo, f.health, f.storage, f.mailer, f.pdf, f.events, noopLogger{}, cfg)
	return f
}

var testScope = model.Scope{UserID: "user-1", Username: "pat", Role: "user"}

func issueInput() report.EmailReportLinkInput {
	return report.EmailReportLinkInput{
		RangeStart:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		RecipientEmail: "doctor@example.com",
	}
}

// ----------- EmailReportLink -----------

func TestEmailReportLink(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues link with ttl expiry", func(t *testing.T) {
		ttl := 2 * time.Hour
		f := newFixture(Config{Bucket: "reports", LinkTTL: ttl, DevReturnLink: true})

		before := time.Now()
		out, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		after := time.Now()
		if err != nil {
			t.Fatalf("EmailReportLink: %v", err)
		}

		if out.ExpiresAt.Before(before.Add(ttl)) || out.ExpiresAt.After(after.Add(ttl)) {
			t.Errorf("expiresAt %v not within now+ttl window", out.ExpiresAt)
		}
		if len(f.repo.created) != 1 {
			t.Fatalf("created: got %d rows, want 1", len(f.repo.created))
		}
		row := f.repo.created[0]
		if row.UserID != testScope.UserID {
			t.Errorf("row userID: got %s", row.UserID)
		}
		if row.StoragePath != testScope.UserID+"/"+row.ID+".pdf" {
			t.Errorf("storage path: got %s", row.StoragePath)
		}
		if len(f.storage.uploads) != 1 {
			t.Fatalf("uploads: got %d, want 1", len(f.storage.uploads))
		}
		if f.storage.uploads[0].ContentType != "application/pdf" {
			t.Errorf("content type: got %s", f.storage.uploads[0].ContentType)
		}
		if len(f.mailer.sent) != 1 {
			t.Fatalf("emails: got %d, want 1", len(f.mailer.sent))
		}
		if f.mailer.sent[0].To[0] != "doctor@example.com" {
			t.Errorf("recipient: got %s", f.mailer.sent[0].To[0])
		}
		if !strings.Contains(f.mailer.sent[0].HTML, out.DevLink) {
			t.Error("email body should contain the tokenized link")
		}
		if len(f.events.published) != 1 || f.events.published[0].Type != report.EventReportIssued {
			t.Errorf("events: got %+v", f.events.published)
		}
	})

	t.Run("ledger stores hash of the raw token", func(t *testing.T) {
		f := newFixture(Config{DevReturnLink: true})

		out, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		if err != nil {
			t.Fatalf("EmailReportLink: %v", err)
		}

		parts := strings.Split(out.DevLink, "/")
		rawToken := parts[len(parts)-1]
		if f.repo.created[0].TokenHash != token.HashSHA256Hex(rawToken) {
			t.Error("ledger token hash should be sha256 of the raw token")
		}
		if strings.Contains(f.repo.created[0].TokenHash, rawToken) {
			t.Error("raw token must not appear in the ledger")
		}
	})

	t.Run("dev link withheld unless flag set", func(t *testing.T) {
		f := newFixture(Config{})
		out, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		if err != nil {
			t.Fatalf("EmailReportLink: %v", err)
		}
		if out.DevLink != "" {
			t.Error("dev link should be empty without the flag")
		}
	})

	t.Run("validation rejects before side effects", func(t *testing.T) {
		cases := []struct {
			name  string
			input report.EmailReportLinkInput
			want  error
		}{
			{"missing range", report.EmailReportLinkInput{RecipientEmail: "a@b.co"}, report.ErrRangeRequired},
			{"inverted range", report.EmailReportLinkInput{
				RangeStart:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				RangeEnd:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				RecipientEmail: "a@b.co",
			}, report.ErrInvalidRange},
			{"bad email", report.EmailReportLinkInput{
				RangeStart:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				RangeEnd:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
				RecipientEmail: "not-an-email",
			}, report.ErrInvalidRecipient},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(Config{})
				_, err := f.uc.EmailReportLink(ctx, testScope, tc.input)
				if !errors.Is(err, tc.want) {
					t.Errorf("got %v, want %v", err, tc.want)
				}
				if len(f.storage.uploads) != 0 || len(f.repo.created) != 0 || len(f.mailer.sent) != 0 {
					t.Error("validation failure must not trigger side effects")
				}
			})
		}
	})

	t.Run("upload failure aborts before insert and email", func(t *testing.T) {
		f := newFixture(Config{})
		f.storage.uploadErr = errors.New("minio down")

		_, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		if err == nil {
			t.Fatal("expected error")
		}
		if len(f.repo.created) != 0 {
			t.Error("no ledger row should exist after upload failure")
		}
		if len(f.mailer.sent) != 0 {
			t.Error("no email should be sent after upload failure")
		}
	})

	t.Run("insert failure aborts before email", func(t *testing.T) {
		f := newFixture(Config{})
		f.repo.createErr = repository.ErrExportCreateFailed

		_, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		if err == nil {
			t.Fatal("expected error")
		}
		if len(f.mailer.sent) != 0 {
			t.Error("no email should be sent after insert failure")
		}
	})

	t.Run("email failure still succeeds", func(t *testing.T) {
		f := newFixture(Config{})
		f.mailer.err = errors.New("resend 503")

		out, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		if err != nil {
			t.Fatalf("EmailReportLink: %v", err)
		}
		if out.ExpiresAt.IsZero() {
			t.Error("output should carry expiry despite email failure")
		}
		if len(f.repo.created) != 1 {
			t.Error("ledger row should survive email failure")
		}
	})

	t.Run("pdf failure aborts before upload", func(t *testing.T) {
		f := newFixture(Config{})
		f.pdf.err = errors.New("converter crashed")

		_, err := f.uc.EmailReportLink(ctx, testScope, issueInput())
		if err == nil {
			t.Fatal("expected error")
		}
		if len(f.storage.uploads) != 0 {
			t.Error("no upload should happen after pdf failure")
		}
	})
}

// ----------- ResolveReportLink -----------

func storedExport(rawToken string, mutate func(*model.ReportExport)) *model.ReportExport {
	export := &model.ReportExport{
		ID:            "export-1",
		UserID:        "user-1",
		StorageBucket: "reports",
		StoragePath:   "user-1/export-1.pdf",
		TokenHash:     token.HashSHA256Hex(rawToken),
		ExpiresAt:     time.Now().Add(time.Hour),
		Status:        model.ExportStatusSent,
		SentAt:        time.Now().Add(-time.Minute),
	}
	if mutate != nil {
		mutate(export)
	}
	return export
}

func TestResolveReportLink(t *testing.T) {
	ctx := context.Background()
	const rawToken = "raw-token-abc"

	t.Run("empty token rejected", func(t *testing.T) {
		f := newFixture(Config{})
		_, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: "  "})
		if !errors.Is(err, report.ErrTokenRequired) {
			t.Errorf("got %v, want %v", err, report.ErrTokenRequired)
		}
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		f := newFixture(Config{})
		_, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: "nope"})
		if !errors.Is(err, report.ErrLinkNotFound) {
			t.Errorf("got %v, want %v", err, report.ErrLinkNotFound)
		}
	})

	t.Run("success returns signed url and marks download", func(t *testing.T) {
		signedTTL := 5 * time.Minute
		f := newFixture(Config{SignedURLTTL: signedTTL})
		export := storedExport(rawToken, nil)
		f.repo.byTokenHash[export.TokenHash] = export

		out, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: rawToken})
		if err != nil {
			t.Fatalf("ResolveReportLink: %v", err)
		}
		if out.SignedURL != f.storage.presignURL {
			t.Errorf("signed url: got %s", out.SignedURL)
		}
		if len(f.storage.presigns) != 1 {
			t.Fatalf("presigns: got %d, want 1", len(f.storage.presigns))
		}
		if f.storage.presigns[0].Expiry != signedTTL {
			t.Errorf("presign ttl: got %v, want %v", f.storage.presigns[0].Expiry, signedTTL)
		}
		if f.storage.presigns[0].ObjectName != export.StoragePath {
			t.Errorf("presign object: got %s", f.storage.presigns[0].ObjectName)
		}
		if len(f.repo.downloaded) != 1 || f.repo.downloaded[0].ID != export.ID {
			t.Errorf("download marker: got %+v", f.repo.downloaded)
		}
		if len(f.events.published) != 1 || f.events.published[0].Type != report.EventReportDownloaded {
			t.Errorf("events: got %+v", f.events.published)
		}
	})

	t.Run("resolve is repeatable", func(t *testing.T) {
		f := newFixture(Config{})
		export := storedExport(rawToken, func(e *model.ReportExport) {
			now := time.Now()
			e.DownloadedAt = &now
			e.Status = model.ExportStatusDownloaded
		})
		f.repo.byTokenHash[export.TokenHash] = export

		for i := 0; i < 2; i++ {
			if _, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: rawToken}); err != nil {
				t.Fatalf("resolve %d: %v", i+1, err)
			}
		}
		if len(f.repo.downloaded) != 2 {
			t.Errorf("download markers: got %d, want 2", len(f.repo.downloaded))
		}
	})

	t.Run("revoked link rejected", func(t *testing.T) {
		f := newFixture(Config{})
		export := storedExport(rawToken, func(e *model.ReportExport) {
			now := time.Now()
			e.RevokedAt = &now
			e.Status = model.ExportStatusRevoked
		})
		f.repo.byTokenHash[export.TokenHash] = export

		_, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: rawToken})
		if !errors.Is(err, report.ErrLinkRevoked) {
			t.Errorf("got %v, want %v", err, report.ErrLinkRevoked)
		}
		if len(f.repo.downloaded) != 0 {
			t.Error("closed link must not record a download")
		}
	})

	t.Run("expired link rejected", func(t *testing.T) {
		f := newFixture(Config{})
		export := storedExport(rawToken, func(e *model.ReportExport) {
			e.ExpiresAt = time.Now().Add(-time.Minute)
		})
		f.repo.byTokenHash[export.TokenHash] = export

		_, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: rawToken})
		if !errors.Is(err, report.ErrLinkExpired) {
			t.Errorf("got %v, want %v", err, report.ErrLinkExpired)
		}
	})

	t.Run("revocation wins over expiry", func(t *testing.T) {
		f := newFixture(Config{})
		export := storedExport(rawToken, func(e *model.ReportExport) {
			past := time.Now().Add(-time.Hour)
			e.RevokedAt = &past
			e.ExpiresAt = time.Now().Add(-time.Minute)
			e.Status = model.ExportStatusRevoked
		})
		f.repo.byTokenHash[export.TokenHash] = export

		_, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: rawToken})
		if !errors.Is(err, report.ErrLinkRevoked) {
			t.Errorf("got %v, want %v (revoked must win)", err, report.ErrLinkRevoked)
		}
	})

	t.Run("presign failure does not mark download", func(t *testing.T) {
		f := newFixture(Config{})
		f.storage.presignErr = errors.New("minio down")
		export := storedExport(rawToken, nil)
		f.repo.byTokenHash[export.TokenHash] = export

		_, err := f.uc.ResolveReportLink(ctx, report.ResolveReportLinkInput{Token: rawToken})
		if !errors.Is(err, report.ErrResolveFailed) {
			t.Errorf("got %v, want %v", err, report.ErrResolveFailed)
		}
		if len(f.repo.downloaded) != 0 {
			t.Error("failed resolve must not record a download")
		}
	})
}

// ----------- RevokeReportLink -----------

func TestRevokeReportLink(t *testing.T) {
	ctx := context.Background()

	t.Run("success records revocation for owner", func(t *testing.T) {
		f := newFixture(Config{})
		if err := f.uc.RevokeReportLink(ctx, testScope, report.RevokeReportLinkInput{ReportID: "export-1"}); err != nil {
			t.Fatalf("RevokeReportLink: %v", err)
		}
		if len(f.repo.revoked) != 1 {
			t.Fatalf("revocations: got %d, want 1", len(f.repo.revoked))
		}
		if f.repo.revoked[0].UserID != testScope.UserID {
			t.Error("revocation must be ownership-scoped")
		}
		if len(f.events.published) != 1 || f.events.published[0].Type != report.EventReportRevoked {
			t.Errorf("events: got %+v", f.events.published)
		}
	})

	t.Run("missing id is not found", func(t *testing.T) {
		f := newFixture(Config{})
		err := f.uc.RevokeReportLink(ctx, testScope, report.RevokeReportLinkInput{})
		if !errors.Is(err, report.ErrExportNotFound) {
			t.Errorf("got %v, want %v", err, report.ErrExportNotFound)
		}
	})

	t.Run("unknown or foreign export is not found", func(t *testing.T) {
		f := newFixture(Config{})
		f.repo.revokeErr = repository.ErrExportNotFound
		err := f.uc.RevokeReportLink(ctx, testScope, report.RevokeReportLinkInput{ReportID: "other"})
		if !errors.Is(err, report.ErrExportNotFound) {
			t.Errorf("got %v, want %v", err, report.ErrExportNotFound)
		}
		if len(f.events.published) != 0 {
			t.Error("failed revoke must not publish an event")
		}
	})
}

// ----------- ListReportExports -----------

func TestListReportExports(t *testing.T) {
	ctx := context.Background()

	t.Run("limit clamped into range", func(t *testing.T) {
		cases := []struct {
			requested int
			want      int
		}{
			{0, 1},
			{-3, 1},
			{20, 20},
			{100, 100},
			{5000, 100},
		}
		for _, tc := range cases {
			f := newFixture(Config{})
			if _, err := f.uc.ListReportExports(ctx, testScope, report.ListReportExportsInput{Limit: tc.requested}); err != nil {
				t.Fatalf("ListReportExports(%d): %v", tc.requested, err)
			}
			if got := f.repo.listOpts[0].Limit; got != tc.want {
				t.Errorf("limit %d: repo got %d, want %d", tc.requested, got, tc.want)
			}
		}
	})

	t.Run("outputs are sanitized", func(t *testing.T) {
		f := newFixture(Config{})
		now := time.Now()
		f.repo.listResult = []*model.ReportExport{{
			ID:             "export-1",
			UserID:         testScope.UserID,
			StorageBucket:  "reports",
			StoragePath:    "user-1/export-1.pdf",
			RecipientEmail: "doctor@example.com",
			TokenHash:      "deadbeef",
			ExpiresAt:      now.Add(time.Hour),
			Status:         model.ExportStatusSent,
			SentAt:         now,
		}}

		out, err := f.uc.ListReportExports(ctx, testScope, report.ListReportExportsInput{Limit: 10})
		if err != nil {
			t.Fatalf("ListReportExports: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("outputs: got %d, want 1", len(out))
		}
		if out[0].ID != "export-1" || out[0].RecipientEmail != "doctor@example.com" {
			t.Errorf("output: got %+v", out[0])
		}
		if out[0].Status != model.ExportStatusSent {
			t.Errorf("status: got %s", out[0].Status)
		}
	})

	t.Run("repository failure surfaces as list error", func(t *testing.T) {
		f := newFixture(Config{})
		f.repo.listErr = errors.New("db down")
		_, err := f.uc.ListReportExports(ctx, testScope, report.ListReportExportsInput{Limit: 10})
		if !errors.Is(err, report.ErrListFailed) {
			t.Errorf("got %v, want %v", err, report.ErrListFailed)
		}
	})
}
