// Package workflow drives one profile analysis from the client side: it
// collects the submission, gates it on readiness, issues a single analysis
// request and holds the outcome until the user resets.
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

type Phase string

const (
	PhaseUpload  Phase = "upload"
	PhaseLoading Phase = "loading"
	PhaseResults Phase = "results"
)

// Condition names one readiness requirement of a submission.
type Condition string

const (
	ConditionPDF       Condition = "pdf"
	ConditionObjective Condition = "objective"
	ConditionToken     Condition = "token"
	ConditionConsent   Condition = "consent"
	ConditionBanner    Condition = "banner"
	ConditionPhoto     Condition = "photo"
)

const (
	DefaultMaxPDFSize   = 10 * 1024 * 1024
	DefaultMaxImageSize = 5 * 1024 * 1024
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileError rejects a file before it becomes part of the submission.
type FileError struct {
	Field  Condition
	Reason string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("invalid %s file: %s", e.Field, e.Reason)
}

// Request is the frozen submission sent to the analysis service.
type Request struct {
	PDF        File
	Banner     *File
	Photo      *File
	Objective  scoring.Objective
	SkipBanner bool
	SkipPhoto  bool
	Language   scoring.Language
	Token      string
}

// Analyzer performs the analysis call. It returns the response body of a
// successful analysis, or one of TransportError, ServiceError,
// MalformedResponseError.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (json.RawMessage, error)
}

type Messages struct {
	Generic    string
	Connection string
}

func DefaultMessages(lang scoring.Language) Messages {
	if lang == scoring.LanguageEnglish {
		return Messages{
			Generic:    "An error occurred. Please try again.",
			Connection: "A connection error occurred. Check your connection and try again.",
		}
	}
	return Messages{
		Generic:    "Une erreur est survenue. Veuillez réessayer.",
		Connection: "Une erreur de connexion est survenue. Vérifiez votre connexion et réessayez.",
	}
}

type Config struct {
	Language scoring.Language
	// VerificationEnabled makes a verification token part of readiness.
	VerificationEnabled bool
	Messages            Messages
	MaxPDFSize          int
	MaxImageSize        int
}

type submission struct {
	pdf        *File
	banner     *File
	skipBanner bool
	photo      *File
	skipPhoto  bool
	objective  scoring.Objective
	token      string
	consent    bool
}

type Workflow struct {
	analyzer Analyzer
	cfg      Config

	mu         sync.Mutex
	phase      Phase
	sub        submission
	result     json.RawMessage
	errMsg     string
	generation uint64
}

func New(analyzer Analyzer, cfg Config) *Workflow {
	if cfg.Language == "" {
		cfg.Language = scoring.LanguageFrench
	}
	defaults := DefaultMessages(cfg.Language)
	if cfg.Messages.Generic == "" {
		cfg.Messages.Generic = defaults.Generic
	}
	if cfg.Messages.Connection == "" {
		cfg.Messages.Connection = defaults.Connection
	}
	if cfg.MaxPDFSize <= 0 {
		cfg.MaxPDFSize = DefaultMaxPDFSize
	}
	if cfg.MaxImageSize <= 0 {
		cfg.MaxImageSize = DefaultMaxImageSize
	}

	return &Workflow{
		analyzer: analyzer,
		cfg:      cfg,
		phase:    PhaseUpload,
	}
}

func (w *Workflow) edit(fn func(s *submission) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseUpload {
		return ErrNotEditable
	}
	return fn(&w.sub)
}

// SetPDF selects the profile export. A nil file clears the selection.
func (w *Workflow) SetPDF(f *File) error {
	if f != nil {
		if f.ContentType != "application/pdf" {
			return &FileError{Field: ConditionPDF, Reason: "not a PDF"}
		}
		if len(f.Data) > w.cfg.MaxPDFSize {
			return &FileError{Field: ConditionPDF, Reason: fmt.Sprintf("larger than %d bytes", w.cfg.MaxPDFSize)}
		}
	}
	return w.edit(func(s *submission) error {
		s.pdf = f
		return nil
	})
}

func (w *Workflow) checkImage(field Condition, f *File) error {
	if f == nil {
		return nil
	}
	if !slices.Contains(allowedImageTypes, f.ContentType) {
		return &FileError{Field: field, Reason: "must be JPEG, PNG or WebP"}
	}
	if len(f.Data) > w.cfg.MaxImageSize {
		return &FileError{Field: field, Reason: fmt.Sprintf("larger than %d bytes", w.cfg.MaxImageSize)}
	}
	return nil
}

func (w *Workflow) SetBanner(f *File) error {
	if err := w.checkImage(ConditionBanner, f); err != nil {
		return err
	}
	return w.edit(func(s *submission) error {
		s.banner = f
		return nil
	})
}

func (w *Workflow) SetSkipBanner(skip bool) error {
	return w.edit(func(s *submission) error {
		s.skipBanner = skip
		return nil
	})
}

func (w *Workflow) SetPhoto(f *File) error {
	if err := w.checkImage(ConditionPhoto, f); err != nil {
		return err
	}
	return w.edit(func(s *submission) error {
		s.photo = f
		return nil
	})
}

func (w *Workflow) SetSkipPhoto(skip bool) error {
	return w.edit(func(s *submission) error {
		s.skipPhoto = skip
		return nil
	})
}

func (w *Workflow) SetObjective(o scoring.Objective) error {
	return w.edit(func(s *submission) error {
		s.objective = o
		return nil
	})
}

func (w *Workflow) SetToken(token string) error {
	return w.edit(func(s *submission) error {
		s.token = token
		return nil
	})
}

func (w *Workflow) SetConsent(consent bool) error {
	return w.edit(func(s *submission) error {
		s.consent = consent
		return nil
	})
}

// Missing returns the readiness conditions that currently fail.
func (w *Workflow) Missing() []Condition {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.missingLocked()
}

func (w *Workflow) missingLocked() []Condition {
	var missing []Condition
	s := w.sub
	if s.pdf == nil {
		missing = append(missing, ConditionPDF)
	}
	if s.objective == "" {
		missing = append(missing, ConditionObjective)
	}
	if w.cfg.VerificationEnabled && s.token == "" {
		missing = append(missing, ConditionToken)
	}
	if !s.consent {
		missing = append(missing, ConditionConsent)
	}
	if s.banner == nil && !s.skipBanner {
		missing = append(missing, ConditionBanner)
	}
	if s.photo == nil && !s.skipPhoto {
		missing = append(missing, ConditionPhoto)
	}
	return missing
}

func (w *Workflow) Ready() bool {
	return len(w.Missing()) == 0
}

// Submit moves the workflow from upload to loading and performs the
// analysis call. It blocks until the call returns. On success the workflow
// ends in the results phase; on any failure it returns to upload with an
// error message and the selections untouched.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.phase != PhaseUpload {
		w.mu.Unlock()
		return ErrBusy
	}
	if missing := w.missingLocked(); len(missing) > 0 {
		w.mu.Unlock()
		return &ValidationError{Missing: missing}
	}

	req := w.requestLocked()
	w.errMsg = ""
	w.phase = PhaseLoading
	gen := w.generation
	w.mu.Unlock()

	body, err := w.analyzer.Analyze(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generation != gen {
		return ErrOrphaned
	}
	if err != nil {
		w.phase = PhaseUpload
		w.errMsg = w.messageFor(err)
		return err
	}

	w.result = body
	w.phase = PhaseResults
	return nil
}

func (w *Workflow) requestLocked() Request {
	s := w.sub
	req := Request{
		PDF:        *s.pdf,
		Objective:  s.objective,
		SkipBanner: s.skipBanner,
		SkipPhoto:  s.skipPhoto,
		Language:   w.cfg.Language,
		Token:      s.token,
	}
	if s.banner != nil && !s.skipBanner {
		banner := *s.banner
		req.Banner = &banner
	}
	if s.photo != nil && !s.skipPhoto {
		photo := *s.photo
		req.Photo = &photo
	}
	return req
}

func (w *Workflow) messageFor(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return w.cfg.Messages.Connection
	}
	return w.cfg.Messages.Generic
}

// Reset discards every selection, the result and the error, and returns to
// the upload phase. An analysis still in flight is not cancelled; its
// outcome is ignored when it arrives.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.phase = PhaseUpload
	w.sub = submission{}
	w.result = nil
	w.errMsg = ""
}

func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Err returns the message shown after the last failed submission.
func (w *Workflow) Err() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Result returns the response body held in the results phase.
func (w *Workflow) Result() json.RawMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func (w *Workflow) Analysis() (*models.AnalysisResult, error) {
	raw := w.Result()
	if raw == nil {
		return nil, errors.New("workflow: no result available")
	}
	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}

// Snapshot is a read-only view of the workflow for rendering.
type Snapshot struct {
	Phase      Phase
	HasPDF     bool
	HasBanner  bool
	SkipBanner bool
	HasPhoto   bool
	SkipPhoto  bool
	Objective  scoring.Objective
	HasToken   bool
	Consent    bool
	HasResult  bool
	Error      string
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := w.sub
	return Snapshot{
		Phase:      w.phase,
		HasPDF:     s.pdf != nil,
		HasBanner:  s.banner != nil,
		SkipBanner: s.skipBanner,
		HasPhoto:   s.photo != nil,
		SkipPhoto:  s.skipPhoto,
		Objective:  s.objective,
		HasToken:   s.token != "",
		Consent:    s.consent,
		HasResult:  w.result != nil,
		Error:      w.errMsg,
	}
}
