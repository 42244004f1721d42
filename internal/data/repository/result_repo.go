package repository

import (
	"sync"
	"time"

	"hotel-storefront/internal/data/entity"

	"github.com/google/uuid"
)

// ResultRepository is the one-shot channel between the verification stage
// and the result pages. A verification result is stored under a fresh
// nonce, claimed at most once, and never persisted anywhere else — the
// result pages are therefore unreachable without having gone through
// verification.
type ResultRepository interface {
	// Put stores the result and returns its nonce.
	Put(result *entity.VerificationResult) string
	// Claim removes and returns the result for the nonce. A second claim
	// for the same nonce, an unknown nonce, or an expired entry all
	// report false.
	Claim(nonce string) (*entity.VerificationResult, bool)
}

type resultEntry struct {
	result    *entity.VerificationResult
	expiresAt time.Time
}

type resultRepository struct {
	mu      sync.Mutex
	entries map[string]resultEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewResultRepository(ttl time.Duration) ResultRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &resultRepository{
		entries: make(map[string]resultEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *resultRepository) Put(result *entity.VerificationResult) string {
	nonce := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	r.entries[nonce] = resultEntry{
		result:    result,
		expiresAt: r.now().Add(r.ttl),
	}

	return nonce
}

func (r *resultRepository) Claim(nonce string) (*entity.VerificationResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[nonce]
	if !ok {
		return nil, false
	}

	// Single-use: gone regardless of expiry
	delete(r.entries, nonce)

	if r.now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.result, true
}

// sweepLocked drops expired entries so abandoned verifications do not
// accumulate. Called under the mutex.
func (r *resultRepository) sweepLocked() {
	now := r.now()
	for nonce, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, nonce)
		}
	}
}
