package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct{}

func (stubClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return "초안", nil
}
func (stubClient) GetModel(llm.ModelTier) string { return "stub" }
func (stubClient) Close() error                  { return nil }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration, deps Deps) (*Store, *clock) {
	c := &clock{now: time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)}
	s := NewStore(deps, ttl)
	s.now = c.Now
	return s, c
}

func TestCreate_FreshDocument(t *testing.T) {
	s, _ := newTestStore(time.Hour, Deps{})

	sess := s.Create(CreateOptions{Type: types.ResumeTypeCareer, Locale: locale.Japanese})
	require.NotEmpty(t, sess.ID)
	assert.Nil(t, sess.Assistant, "no LLM client disables the assistant")
	assert.Equal(t, locale.Japanese, sess.Formatter.Locale())
	assert.Equal(t, 0, sess.Controller.CurrentStep())
	assert.Equal(t, 100, sess.Zoom.Percent())

	doc := sess.Controller.Document()
	assert.Equal(t, types.ResumeTypeCareer, doc.Type)
	require.NotNil(t, doc.BasicInfo.ResumeDate)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.May, Day: 1}, *doc.BasicInfo.ResumeDate)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestCreate_FromInitialDocument(t *testing.T) {
	s, _ := newTestStore(time.Hour, Deps{LLM: stubClient{}})

	initial := &types.ResumeDocument{
		Type:      types.ResumeTypeStandard,
		BasicInfo: types.BasicInfo{Name: "홍길동"},
		Career:    []types.CareerEntry{{CompanyName: "A"}, {CompanyName: "B"}},
	}
	sess := s.Create(CreateOptions{Type: types.ResumeTypeFreeForm, Initial: initial})

	doc := sess.Controller.Document()
	assert.Equal(t, types.ResumeTypeFreeForm, doc.Type, "the requested type wins")
	assert.Equal(t, "홍길동", doc.BasicInfo.Name)
	assert.Equal(t, 2, doc.Career.Len())
	assert.Equal(t, 1, doc.Education.Len(), "empty sections keep one entry")
	assert.NotNil(t, doc.BasicInfo.ResumeDate)
	assert.NotNil(t, sess.Assistant)
	assert.Equal(t, locale.Korean, sess.Formatter.Locale())
}

func TestGet_Unknown(t *testing.T) {
	s, _ := newTestStore(time.Hour, Deps{})
	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_ExpiresIdleSession(t *testing.T) {
	s, c := newTestStore(30*time.Minute, Deps{})
	sess := s.Create(CreateOptions{Type: types.ResumeTypeStandard})

	c.Advance(20 * time.Minute)
	_, err := s.Get(sess.ID)
	require.NoError(t, err, "access refreshes the idle timer")

	c.Advance(20 * time.Minute)
	_, err = s.Get(sess.ID)
	require.NoError(t, err)

	c.Advance(31 * time.Minute)
	_, err = s.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestSweep(t *testing.T) {
	s, c := newTestStore(10*time.Minute, Deps{})
	old := s.Create(CreateOptions{Type: types.ResumeTypeStandard})
	c.Advance(8 * time.Minute)
	fresh := s.Create(CreateOptions{Type: types.ResumeTypeStandard})
	c.Advance(5 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	_, err := s.Get(old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSweep_NoTTL(t *testing.T) {
	s, c := newTestStore(0, Deps{})
	s.Create(CreateOptions{Type: types.ResumeTypeStandard})
	c.Advance(24 * time.Hour)
	assert.Equal(t, 0, s.Sweep())
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(time.Hour, Deps{LLM: stubClient{}})
	sess := s.Create(CreateOptions{Type: types.ResumeTypeStandard})

	assert.True(t, s.Delete(sess.ID))
	assert.False(t, s.Delete(sess.ID))
	_, err := s.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunJanitor_StopsOnCancel(t *testing.T) {
	s, _ := newTestStore(time.Hour, Deps{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.RunJanitor(ctx, time.Millisecond) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSession_PreviewHTML(t *testing.T) {
	s, _ := newTestStore(time.Hour, Deps{})
	sess := s.Create(CreateOptions{Type: types.ResumeTypeStandard})

	sess.Lock()
	defer sess.Unlock()
	sess.Controller.Document().BasicInfo.Name = "홍길동"
	html, err := sess.PreviewHTML()
	require.NoError(t, err)
	assert.Contains(t, html, `id="resume-preview"`)
	assert.Contains(t, html, "홍길동")
}
