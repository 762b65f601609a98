package services

import (
	"errors"
	"sort"
	"sync"

	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/observability"
)

type SubmissionState string

const (
	SubmissionDrafted    SubmissionState = "DRAFTED"
	SubmissionSubmitting SubmissionState = "SUBMITTING"
	SubmissionConfirmed  SubmissionState = "CONFIRMED"
	SubmissionFailed     SubmissionState = "FAILED"
)

// DefaultCreateAccountFailure is shown when the remote service gives no reason.
const DefaultCreateAccountFailure = "Error creating account. Please try again."

// submissionTracker holds create-account submissions that are waiting on the
// remote service, keyed by correlation id. Entries exist only while
// SUBMITTING; a terminal state removes them so the intent can be resubmitted.
type submissionTracker struct {
	mu      sync.Mutex
	pending map[string]SubmissionState
	waiters map[string]int
}

func newSubmissionTracker() *submissionTracker {
	return &submissionTracker{
		pending: make(map[string]SubmissionState),
		waiters: make(map[string]int),
	}
}

// attach counts a caller that is waiting on the submission for correlationID.
func (t *submissionTracker) attach(correlationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.waiters[correlationID]++
}

func (t *submissionTracker) detach(correlationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.waiters[correlationID] <= 1 {
		delete(t.waiters, correlationID)
		return
	}
	t.waiters[correlationID]--
}

func (t *submissionTracker) waiting(correlationID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.waiters[correlationID]
}

func (t *submissionTracker) begin(correlationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[correlationID] = SubmissionSubmitting
	observability.InflightSubmissions.Inc()
}

func (t *submissionTracker) end(correlationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[correlationID]; ok {
		delete(t.pending, correlationID)
		observability.InflightSubmissions.Dec()
	}
}

func (t *submissionTracker) state(correlationID string) (SubmissionState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.pending[correlationID]
	return s, ok
}

func (t *submissionTracker) ids() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.pending))
	for id := range t.pending {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func validationProblems(err error) []string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Problems) > 0 {
		return verr.Problems
	}
	return []string{err.Error()}
}

func transportMessage(err error) string {
	var terr *domain.TransportError
	if errors.As(err, &terr) && terr.Message != "" {
		return terr.Message
	}
	return DefaultCreateAccountFailure
}
