package runnerimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nberlot/menu-du-jour-bot/internal/dedup"
	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/nberlot/menu-du-jour-bot/internal/repositories/lastpost"
	"github.com/nberlot/menu-du-jour-bot/internal/runner"
	"github.com/nberlot/menu-du-jour-bot/pkg/config"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	posts []domain.PostRecord
	err   error
	calls int
}

func (f *fakeFetcher) FetchPosts(_ context.Context, _ string) ([]domain.PostRecord, error) {
	f.calls++
	return f.posts, f.err
}

type fakeTransport struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeTransport) Download(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type sentPhoto struct {
	chatID   int64
	filename string
	caption  string
}

type fakeNotifier struct {
	chatID     int64
	resolveErr error
	sendErr    error
	sent       []sentPhoto
}

func (f *fakeNotifier) ResolveChannel(_ string) (int64, error) {
	if f.resolveErr != nil {
		return 0, f.resolveErr
	}
	return f.chatID, nil
}

func (f *fakeNotifier) SendPhoto(chatID int64, _ []byte, filename, _, caption string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentPhoto{chatID: chatID, filename: filename, caption: caption})
	return nil
}

type fakeRepo struct {
	marker *domain.LastPost
	setErr error
}

func (f *fakeRepo) Get(_ context.Context) (*domain.LastPost, error) {
	if f.marker == nil {
		return nil, lastpost.ErrNotFound
	}
	return f.marker, nil
}

func (f *fakeRepo) Set(_ context.Context, marker domain.LastPost) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.marker = &marker
	return nil
}

// 2025-11-03 is a Monday; 10:00 is inside the default window.
var testNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

func menuPosts() []domain.PostRecord {
	return []domain.PostRecord{
		{RawText: "Concert samedi !", CandidateDateText: "hier", ImageRef: "img-concert"},
		{RawText: "Menu du jour: poulet basquaise", CandidateDateText: "2h", ImageRef: "img-menu"},
	}
}

type fixture struct {
	runner    *RunnerImpl
	fetcher   *fakeFetcher
	transport *fakeTransport
	notifier  *fakeNotifier
	repo      *fakeRepo
}

func newFixture(t *testing.T, at time.Time) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Page.URL = "https://example.com/page"
	cfg.Telegram.Channel = "menuchannel"
	cfg.Run.Timezone = "UTC"
	cfg.Run.WindowStartHour = 9
	cfg.Run.WindowEndHour = 12

	log := logger.New(logger.Opts{Env: "development"})

	f := &fixture{
		fetcher:   &fakeFetcher{posts: menuPosts()},
		transport: &fakeTransport{data: []byte("jpegbytes")},
		notifier:  &fakeNotifier{chatID: -1001234567890},
		repo:      &fakeRepo{},
	}
	f.runner = New(Opts{
		Fetcher:   f.fetcher,
		Transport: f.transport,
		Notifier:  f.notifier,
		Gate:      dedup.NewGate(f.repo, log),
		Logger:    log,
		Config:    cfg,
		Clock:     clockwork.NewFakeClockAt(at),
	})
	return f
}

func TestRun_DeliversAndCommits(t *testing.T) {
	f := newFixture(t, testNow)

	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, int64(-1001234567890), f.notifier.sent[0].chatID)
	assert.Equal(t, "menu-2025-11-03.jpg", f.notifier.sent[0].filename)
	assert.Equal(t, "lundi 3 novembre", f.notifier.sent[0].caption)

	require.NotNil(t, f.repo.marker)
	assert.Equal(t, domain.Date{Year: 2025, Month: time.November, Day: 3}, f.repo.marker.Date)
	assert.Equal(t, "img-menu", f.repo.marker.ImageRef)
}

func TestRun_SecondInvocationIsNoOp(t *testing.T) {
	f := newFixture(t, testNow)

	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))

	// The gate closed after the first commit: exactly one delivery, and
	// the second run never even fetched.
	assert.Len(t, f.notifier.sent, 1)
	assert.Equal(t, 1, f.fetcher.calls)
}

func TestRun_OutsideWindowSkips(t *testing.T) {
	f := newFixture(t, time.Date(2025, time.November, 3, 14, 0, 0, 0, time.UTC))

	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))

	assert.Zero(t, f.fetcher.calls)
	assert.Empty(t, f.notifier.sent)
}

func TestRun_ForceBypassesWindowNotGate(t *testing.T) {
	afterWindow := time.Date(2025, time.November, 3, 14, 0, 0, 0, time.UTC)
	f := newFixture(t, afterWindow)

	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{Force: true}))
	require.Len(t, f.notifier.sent, 1)

	// Forcing again the same day still hits the dedup gate.
	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{Force: true}))
	assert.Len(t, f.notifier.sent, 1)
}

func TestRun_TargetDateBypassesGate(t *testing.T) {
	f := newFixture(t, testNow)

	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	require.Len(t, f.notifier.sent, 1)

	target := domain.Date{Year: 2025, Month: time.November, Day: 3}
	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{TargetDate: &target}))
	assert.Len(t, f.notifier.sent, 2)
}

func TestRun_FetchFailureAbortsCleanly(t *testing.T) {
	f := newFixture(t, testNow)
	f.fetcher.err = errors.New("navigation timeout")
	f.fetcher.posts = nil

	assert.Error(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	assert.Zero(t, f.transport.calls)
	assert.Empty(t, f.notifier.sent)
	assert.Nil(t, f.repo.marker)
}

func TestRun_NothingFoundIsSuccess(t *testing.T) {
	f := newFixture(t, testNow)
	f.fetcher.posts = []domain.PostRecord{
		{RawText: "Concert vendredi", CandidateDateText: "hier", ImageRef: "img"},
	}

	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	assert.Empty(t, f.notifier.sent)
	assert.Nil(t, f.repo.marker)
}

func TestRun_DownloadFailureLeavesGateOpen(t *testing.T) {
	f := newFixture(t, testNow)
	f.transport.err = errors.New("connection reset")

	assert.Error(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	assert.Empty(t, f.notifier.sent)
	assert.Nil(t, f.repo.marker)

	// Next tick retries and succeeds.
	f.transport.err = nil
	require.NoError(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	assert.Len(t, f.notifier.sent, 1)
	require.NotNil(t, f.repo.marker)
}

func TestRun_DeliveryFailureLeavesGateOpen(t *testing.T) {
	f := newFixture(t, testNow)
	f.notifier.sendErr = errors.New("telegram 502")

	assert.Error(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	assert.Nil(t, f.repo.marker)
}

func TestRun_CommitFailureSurfaces(t *testing.T) {
	f := newFixture(t, testNow)
	f.repo.setErr = errors.New("disk full")

	// Delivery happened but the marker write failed; the error is
	// surfaced rather than swallowed.
	assert.Error(t, f.runner.Run(context.Background(), runner.RunOptions{}))
	assert.Len(t, f.notifier.sent, 1)
}
