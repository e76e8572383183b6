package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

type fakeAnalyzer struct {
	mu      sync.Mutex
	calls   []Request
	body    json.RawMessage
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req Request) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.body, f.err
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

const resultBody = `{"globalScore":64,"globalLabel":"Good","globalAnalysis":"Solid profile.","criteria":[{"key":"headline","name":"Headline","score":70,"weight":24,"explanation":"Clear.","actions":["Add keywords"]}],"roadmap":[{"priority":1,"title":"Rewrite summary","description":"Lead with outcomes."}]}`

func pdfFile() *File {
	return &File{Name: "profile.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
}

func pngFile(name string) *File {
	return &File{Name: name, ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
}

// readyWorkflow returns a workflow with every readiness condition met.
func readyWorkflow(t *testing.T, a Analyzer) *Workflow {
	t.Helper()
	w := New(a, Config{Language: scoring.LanguageEnglish, VerificationEnabled: true})
	require.NoError(t, w.SetPDF(pdfFile()))
	require.NoError(t, w.SetObjective(scoring.ObjectiveClients))
	require.NoError(t, w.SetToken("turnstile-token"))
	require.NoError(t, w.SetConsent(true))
	require.NoError(t, w.SetBanner(pngFile("banner.png")))
	require.NoError(t, w.SetSkipPhoto(true))
	require.True(t, w.Ready())
	return w
}

func TestNew_StartsInUpload(t *testing.T) {
	w := New(&fakeAnalyzer{}, Config{})
	assert.Equal(t, PhaseUpload, w.Phase())
	assert.False(t, w.Ready())
	assert.ElementsMatch(t, []Condition{
		ConditionPDF, ConditionObjective, ConditionConsent, ConditionBanner, ConditionPhoto,
	}, w.Missing())
}

func TestSubmit_EachConditionBlocks(t *testing.T) {
	tests := []struct {
		condition Condition
		unset     func(w *Workflow) error
	}{
		{ConditionPDF, func(w *Workflow) error { return w.SetPDF(nil) }},
		{ConditionObjective, func(w *Workflow) error { return w.SetObjective("") }},
		{ConditionToken, func(w *Workflow) error { return w.SetToken("") }},
		{ConditionConsent, func(w *Workflow) error { return w.SetConsent(false) }},
		{ConditionBanner, func(w *Workflow) error { return w.SetBanner(nil) }},
		{ConditionPhoto, func(w *Workflow) error { return w.SetSkipPhoto(false) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
			w := readyWorkflow(t, analyzer)
			require.NoError(t, tt.unset(w))

			err := w.Submit(context.Background())

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, []Condition{tt.condition}, vErr.Missing)
			assert.Equal(t, PhaseUpload, w.Phase())
			assert.Equal(t, 0, analyzer.callCount())
			assert.Empty(t, w.Err())
		})
	}
}

func TestSubmit_TokenNotRequiredWithoutVerification(t *testing.T) {
	analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
	w := New(analyzer, Config{})
	require.NoError(t, w.SetPDF(pdfFile()))
	require.NoError(t, w.SetObjective(scoring.ObjectiveTalents))
	require.NoError(t, w.SetConsent(true))
	require.NoError(t, w.SetSkipBanner(true))
	require.NoError(t, w.SetSkipPhoto(true))

	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, PhaseResults, w.Phase())
}

func TestSubmit_NoPDFWithSkippedImages(t *testing.T) {
	analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
	w := New(analyzer, Config{VerificationEnabled: true})
	require.NoError(t, w.SetObjective(scoring.ObjectiveClients))
	require.NoError(t, w.SetConsent(true))
	require.NoError(t, w.SetToken("tok"))
	require.NoError(t, w.SetSkipBanner(true))
	require.NoError(t, w.SetSkipPhoto(true))

	err := w.Submit(context.Background())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []Condition{ConditionPDF}, vErr.Missing)
	assert.Equal(t, PhaseUpload, w.Phase())
	assert.Equal(t, 0, analyzer.callCount())
}

func TestSubmit_SuccessHoldsResultVerbatim(t *testing.T) {
	analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
	w := readyWorkflow(t, analyzer)

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, PhaseResults, w.Phase())
	assert.Equal(t, resultBody, string(w.Result()))
	assert.Equal(t, 1, analyzer.callCount())

	analysis, err := w.Analysis()
	require.NoError(t, err)
	assert.Equal(t, 64, analysis.GlobalScore)
	assert.Equal(t, "headline", analysis.Criteria[0].Key)
}

func TestSubmit_FreezesRequest(t *testing.T) {
	analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
	w := readyWorkflow(t, analyzer)
	require.NoError(t, w.SetPhoto(pngFile("photo.png")))

	require.NoError(t, w.Submit(context.Background()))

	require.Equal(t, 1, analyzer.callCount())
	req := analyzer.calls[0]
	assert.Equal(t, "profile.pdf", req.PDF.Name)
	require.NotNil(t, req.Banner)
	assert.Equal(t, "banner.png", req.Banner.Name)
	assert.Nil(t, req.Photo, "skipped photo must not be sent")
	assert.True(t, req.SkipPhoto)
	assert.False(t, req.SkipBanner)
	assert.Equal(t, scoring.ObjectiveClients, req.Objective)
	assert.Equal(t, scoring.LanguageEnglish, req.Language)
	assert.Equal(t, "turnstile-token", req.Token)
}

func TestSubmit_ServiceErrorReturnsToUpload(t *testing.T) {
	analyzer := &fakeAnalyzer{err: &ServiceError{Status: 500, Message: "X"}}
	w := readyWorkflow(t, analyzer)

	err := w.Submit(context.Background())

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, PhaseUpload, w.Phase())
	assert.Equal(t, "X", w.Err())
	assert.Nil(t, w.Result())

	// selections survive a failed attempt
	snap := w.Snapshot()
	assert.True(t, snap.HasPDF)
	assert.True(t, snap.HasBanner)
	assert.True(t, snap.SkipPhoto)
	assert.Equal(t, scoring.ObjectiveClients, snap.Objective)
	assert.True(t, snap.Consent)
	assert.True(t, w.Ready())
}

func TestSubmit_ErrorMessages(t *testing.T) {
	msgs := DefaultMessages(scoring.LanguageEnglish)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"service without message", &ServiceError{Status: 502}, msgs.Generic},
		{"transport", &TransportError{Err: errors.New("connection refused")}, msgs.Connection},
		{"malformed", &MalformedResponseError{Err: errors.New("unexpected EOF")}, msgs.Generic},
		{"unclassified", errors.New("boom"), msgs.Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := readyWorkflow(t, &fakeAnalyzer{err: tt.err})
			require.Error(t, w.Submit(context.Background()))
			assert.Equal(t, PhaseUpload, w.Phase())
			assert.Equal(t, tt.want, w.Err())
		})
	}
}

func TestSubmit_RetryAfterErrorClearsMessage(t *testing.T) {
	analyzer := &fakeAnalyzer{err: &ServiceError{Status: 429, Message: "slow down"}}
	w := readyWorkflow(t, analyzer)
	require.Error(t, w.Submit(context.Background()))
	assert.Equal(t, "slow down", w.Err())

	analyzer.err = nil
	analyzer.body = json.RawMessage(resultBody)
	require.NoError(t, w.Submit(context.Background()))
	assert.Empty(t, w.Err())
	assert.Equal(t, PhaseResults, w.Phase())
	assert.Equal(t, 2, analyzer.callCount())
}

func TestSubmit_SecondSubmitWhileLoadingHasNoEffect(t *testing.T) {
	analyzer := &fakeAnalyzer{
		body:    json.RawMessage(resultBody),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	w := readyWorkflow(t, analyzer)

	done := make(chan error, 1)
	go func() { done <- w.Submit(context.Background()) }()

	select {
	case <-analyzer.started:
	case <-time.After(2 * time.Second):
		t.Fatal("analysis call never started")
	}
	assert.Equal(t, PhaseLoading, w.Phase())

	assert.ErrorIs(t, w.Submit(context.Background()), ErrBusy)
	assert.ErrorIs(t, w.SetConsent(false), ErrNotEditable)
	assert.Equal(t, 1, analyzer.callCount())

	close(analyzer.release)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseResults, w.Phase())
	assert.Equal(t, 1, analyzer.callCount())
}

func TestSubmit_InResultsIsBusy(t *testing.T) {
	analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
	w := readyWorkflow(t, analyzer)
	require.NoError(t, w.Submit(context.Background()))

	assert.ErrorIs(t, w.Submit(context.Background()), ErrBusy)
	assert.Equal(t, 1, analyzer.callCount())
}

func TestReset_ClearsEverything(t *testing.T) {
	analyzer := &fakeAnalyzer{body: json.RawMessage(resultBody)}
	w := readyWorkflow(t, analyzer)
	require.NoError(t, w.SetPhoto(pngFile("photo.png")))
	require.NoError(t, w.Submit(context.Background()))
	require.Equal(t, PhaseResults, w.Phase())

	w.Reset()

	assert.Equal(t, Snapshot{Phase: PhaseUpload}, w.Snapshot())
	assert.Nil(t, w.Result())
	assert.Empty(t, w.Err())
	assert.False(t, w.Ready())
}

func TestReset_AfterErrorClearsMessage(t *testing.T) {
	w := readyWorkflow(t, &fakeAnalyzer{err: &ServiceError{Status: 400, Message: "bad pdf"}})
	require.Error(t, w.Submit(context.Background()))

	w.Reset()
	assert.Empty(t, w.Err())
	assert.Equal(t, Snapshot{Phase: PhaseUpload}, w.Snapshot())
}

func TestReset_DuringLoadingOrphansCall(t *testing.T) {
	analyzer := &fakeAnalyzer{
		body:    json.RawMessage(resultBody),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	w := readyWorkflow(t, analyzer)

	done := make(chan error, 1)
	go func() { done <- w.Submit(context.Background()) }()
	<-analyzer.started

	w.Reset()
	assert.Equal(t, PhaseUpload, w.Phase())

	close(analyzer.release)
	assert.ErrorIs(t, <-done, ErrOrphaned)
	assert.Equal(t, PhaseUpload, w.Phase())
	assert.Nil(t, w.Result())
}

func TestSetters_RejectInvalidFiles(t *testing.T) {
	w := New(&fakeAnalyzer{}, Config{MaxPDFSize: 8, MaxImageSize: 2})

	var fErr *FileError
	require.ErrorAs(t, w.SetPDF(&File{ContentType: "text/plain"}), &fErr)
	assert.Equal(t, ConditionPDF, fErr.Field)

	require.ErrorAs(t, w.SetPDF(&File{ContentType: "application/pdf", Data: make([]byte, 9)}), &fErr)

	require.ErrorAs(t, w.SetBanner(&File{ContentType: "image/gif"}), &fErr)
	assert.Equal(t, ConditionBanner, fErr.Field)

	require.ErrorAs(t, w.SetPhoto(&File{ContentType: "image/jpeg", Data: make([]byte, 3)}), &fErr)
	assert.Equal(t, ConditionPhoto, fErr.Field)

	assert.False(t, w.Snapshot().HasPDF)
	assert.False(t, w.Snapshot().HasBanner)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Missing: []Condition{ConditionPDF, ConditionConsent}}
	assert.Equal(t, "workflow: submission not ready, missing pdf, consent", err.Error())
}
