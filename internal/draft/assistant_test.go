package draft

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient answers each call with the next queued reply. A nil release
// channel answers immediately.
type fakeClient struct {
	mu      sync.Mutex
	replies []reply
	prompts []string
	release chan struct{}
}

type reply struct {
	text string
	err  error
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	r := reply{text: "기본 초안"}
	if len(f.replies) > 0 {
		r, f.replies = f.replies[0], f.replies[1:]
	}
	release := f.release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return r.text, r.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                  { return nil }

func validRequest(ft FieldType) Request {
	return Request{CompanyName: "카카오", Position: "백엔드 개발자", FieldType: ft}
}

func await(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("generation did not settle")
		return State{}
	}
}

func newDoc() *form.Document {
	return form.NewDocument(types.ResumeTypeStandard, civil.Date{Year: 2024, Month: time.May, Day: 1})
}

func TestGenerate_DisabledWithoutCompanyOrPosition(t *testing.T) {
	a := NewAssistant(&fakeClient{}, 0)

	for _, req := range []Request{
		{Position: "PM", FieldType: FieldMotivation},
		{CompanyName: "카카오", FieldType: FieldMotivation},
		{CompanyName: "   ", Position: "PM", FieldType: FieldMotivation},
		{CompanyName: "카카오", Position: "PM", FieldType: "essay"},
	} {
		_, err := a.Generate(context.Background(), req)
		assert.ErrorIs(t, err, ErrDisabled)
	}
	assert.Equal(t, StatusIdle, a.State().Status)
}

func TestGenerate_ApplyWritesOnlyTargetField(t *testing.T) {
	client := &fakeClient{replies: []reply{{text: "성장 의지가 강합니다."}}}
	a := NewAssistant(client, 0)
	doc := newDoc()
	doc.SelfIntro = types.SelfIntro{Motivation: "기존 동기", Hobbies: "등산"}

	ch, err := a.Generate(context.Background(), validRequest(FieldStrengths))
	require.NoError(t, err)
	s := await(t, ch)
	require.Equal(t, StatusReady, s.Status)
	assert.Equal(t, "성장 의지가 강합니다.", s.Text)
	assert.Equal(t, "strengths", s.Target)

	require.NoError(t, a.Edit("수정된 강점"))
	target, err := a.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "strengths", target)

	assert.Equal(t, types.SelfIntro{Motivation: "기존 동기", Strengths: "수정된 강점", Hobbies: "등산"}, doc.SelfIntro)
	assert.Equal(t, StatusIdle, a.State().Status)
}

func TestGenerate_SelfIntroTargetsMotivation(t *testing.T) {
	a := NewAssistant(&fakeClient{replies: []reply{{text: "자기소개 초안"}}}, 0)
	doc := newDoc()

	ch, err := a.Generate(context.Background(), validRequest(FieldSelfIntro))
	require.NoError(t, err)
	await(t, ch)

	_, err = a.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "자기소개 초안", doc.SelfIntro.Motivation)
	assert.Empty(t, doc.SelfIntro.Strengths)
}

func TestCancel_LeavesFieldUnchanged(t *testing.T) {
	a := NewAssistant(&fakeClient{}, 0)
	doc := newDoc()
	doc.SelfIntro.Motivation = "원래 내용"

	ch, err := a.Generate(context.Background(), validRequest(FieldMotivation))
	require.NoError(t, err)
	await(t, ch)

	a.Cancel()
	assert.Equal(t, "원래 내용", doc.SelfIntro.Motivation)
	_, err = a.Apply(doc)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestGenerate_BusyWhilePending(t *testing.T) {
	client := &fakeClient{release: make(chan struct{})}
	a := NewAssistant(client, 0)

	ch, err := a.Generate(context.Background(), validRequest(FieldMotivation))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.State().Status)

	_, err = a.Generate(context.Background(), validRequest(FieldStrengths))
	assert.ErrorIs(t, err, ErrBusy)
	_, err = a.Regenerate(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(client.release)
	assert.Equal(t, StatusReady, await(t, ch).Status)
}

func TestCancel_DiscardsInFlightResult(t *testing.T) {
	client := &fakeClient{release: make(chan struct{})}
	a := NewAssistant(client, 0)

	ch, err := a.Generate(context.Background(), validRequest(FieldMotivation))
	require.NoError(t, err)

	a.Cancel()
	s := await(t, ch)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Text)
	assert.Equal(t, StatusIdle, a.State().Status)
}

func TestGenerate_SupersededRunIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	client := &fakeClient{release: release, replies: []reply{{text: "첫 번째"}, {text: "두 번째"}}}
	a := NewAssistant(client, 0)

	first, err := a.Generate(context.Background(), validRequest(FieldMotivation))
	require.NoError(t, err)
	a.Cancel()
	await(t, first)

	client.mu.Lock()
	client.release = nil
	client.mu.Unlock()

	second, err := a.Generate(context.Background(), validRequest(FieldMotivation))
	require.NoError(t, err)
	s := await(t, second)
	assert.Equal(t, StatusReady, s.Status)
	assert.Equal(t, "두 번째", s.Text)
	assert.Equal(t, uint64(3), s.Seq)
}

func TestGenerate_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		text    string
		kind    FailureKind
		message string
	}{
		{"rate limited", &llm.APIError{Provider: llm.ProviderGemini, Class: llm.ErrRateLimited, Cause: errors.New("429")}, "", FailureRateLimited, MessageRateLimited},
		{"unauthorized", &llm.APIError{Provider: llm.ProviderGemini, Class: llm.ErrUnauthorized, Cause: errors.New("403")}, "", FailureUnauthorized, MessageUnauthorized},
		{"generic", errors.New("boom"), "", FailureGeneric, MessageGeneric},
		{"empty", nil, "", FailureGeneric, MessageGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssistant(&fakeClient{replies: []reply{{text: tt.text, err: tt.err}}}, 0)
			doc := newDoc()

			ch, err := a.Generate(context.Background(), validRequest(FieldMotivation))
			require.NoError(t, err)
			s := await(t, ch)

			assert.Equal(t, StatusFailed, s.Status)
			require.NotNil(t, s.Failure)
			assert.Equal(t, tt.kind, s.Failure.Kind)
			assert.Equal(t, tt.message, s.Failure.Message)

			_, err = a.Apply(doc)
			assert.ErrorIs(t, err, ErrNoDraft, "a failed result is never applied")
			assert.Empty(t, doc.SelfIntro.Motivation)
		})
	}
}

func TestGenerate_Timeout(t *testing.T) {
	a := NewAssistant(&fakeClient{release: make(chan struct{})}, 20*time.Millisecond)

	ch, err := a.Generate(context.Background(), validRequest(FieldMotivation))
	require.NoError(t, err)
	s := await(t, ch)
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, FailureGeneric, s.Failure.Kind)
}

func TestRegenerate(t *testing.T) {
	client := &fakeClient{replies: []reply{{text: "초안 1"}, {text: "초안 2"}}}
	a := NewAssistant(client, 0)

	_, err := a.Regenerate(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)

	ch, err := a.Generate(context.Background(), Request{CompanyName: "토스", Position: "PO", FieldType: FieldMotivation, AdditionalInfo: "핀테크 경험"})
	require.NoError(t, err)
	assert.Equal(t, "초안 1", await(t, ch).Text)
	require.NoError(t, a.Edit("편집본"))

	ch, err = a.Regenerate(context.Background())
	require.NoError(t, err)
	s := await(t, ch)
	assert.Equal(t, "초안 2", s.Text)

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.prompts, 2)
	assert.Equal(t, client.prompts[0], client.prompts[1])
	assert.Contains(t, client.prompts[0], "- 추가 정보: 핀테크 경험")
}

func TestEdit_RequiresReadyDraft(t *testing.T) {
	a := NewAssistant(&fakeClient{}, 0)
	assert.ErrorIs(t, a.Edit("x"), ErrNoDraft)
}

func TestGenerate_OutlivesRequestContext(t *testing.T) {
	client := &fakeClient{release: make(chan struct{})}
	a := NewAssistant(client, 0)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := a.Generate(ctx, validRequest(FieldMotivation))
	require.NoError(t, err)
	cancel()
	close(client.release)

	assert.Equal(t, StatusReady, await(t, ch).Status)
}
