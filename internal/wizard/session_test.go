package wizard

import (
	"errors"
	"sync"
	"testing"
	"time"

	"bannerval/internal/domain"
)

func TestStoreCreateGetDelete(t *testing.T) {
	store := NewStore(4, time.Minute)
	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("session id should not be empty")
	}
	if got := sess.State().Step; got != StepUpload {
		t.Fatalf("new session step = %s, want UPLOAD", got)
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != sess {
		t.Fatal("Get returned a different session")
	}

	store.Delete(sess.ID)
	if _, err := store.Get(sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get after Delete error = %v, want ErrNotFound", err)
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	store := NewStore(2, time.Minute)
	first := store.Create()
	store.Create()
	store.Create()
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}
	if _, err := store.Get(first.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("oldest session should be evicted, got %v", err)
	}
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	store := NewStore(4, 20*time.Millisecond)
	sess := store.Create()
	time.Sleep(60 * time.Millisecond)
	if _, err := store.Get(sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expired session error = %v, want ErrNotFound", err)
	}
}

func TestSessionApplyRejectedKeepsState(t *testing.T) {
	sess := newSession("s1")
	before := sess.UpdatedAt()
	st, err := sess.Apply(ValidationSucceeded{Attempt: 1, Result: validResult()})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("error = %v, want ErrInvalidTransition", err)
	}
	if st.Step != StepUpload || !sess.UpdatedAt().Equal(before) {
		t.Fatalf("rejected event changed the session: %+v", st)
	}
}

func TestSessionConcurrentUploadsOnlyOneWins(t *testing.T) {
	sess := newSession("s1")
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := sess.Apply(UploadStarted{Upload: Upload{Filename: "b.png"}}); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if accepted != 1 {
		t.Fatalf("accepted uploads = %d, want 1", accepted)
	}
	if st := sess.State(); st.Step != StepValidating || st.Attempt != 1 {
		t.Fatalf("unexpected state: %+v", st)
	}
}
