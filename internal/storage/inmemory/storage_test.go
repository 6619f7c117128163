package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	storageErrors "github.com/Igbinosa-Christian/scissorapp/internal/storage/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/modelstorage"
)

func newLink(owner, url, shortURL string) modelstorage.LinkEntry {
	return modelstorage.LinkEntry{Owner: owner, OriginalURL: url, ShortURL: shortURL, ImgName: "0011223344556677.png"}
}

// Tests

func TestAddLinkAndRetrieve(t *testing.T) {
	s := InitStorage(zap.NewNop())
	entry, err := s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.False(t, entry.DateCreated.IsZero())

	got, err := s.GetLinkByShortURL(context.Background(), "ab0De")
	assert.NoError(t, err)
	assert.Equal(t, "https://www.some-url.com", got.OriginalURL)

	byID, err := s.GetLinkByID(context.Background(), entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ab0De", byID.ShortURL)
}

func TestAddLink_Conflict(t *testing.T) {
	s := InitStorage(zap.NewNop())
	_, err := s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))
	assert.NoError(t, err)
	_, err = s.AddLink(context.Background(), newLink("bob", "https://www.other-url.com", "ab0De"))
	var exists *storageErrors.AlreadyExistsError
	assert.ErrorAs(t, err, &exists)
}

func TestGetLinkByShortURL_NotFound(t *testing.T) {
	s := InitStorage(zap.NewNop())
	_, err := s.GetLinkByShortURL(context.Background(), "nope0")
	var notFound *storageErrors.LinkNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetLinkByOwnerAndURL(t *testing.T) {
	s := InitStorage(zap.NewNop())
	_, err := s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))
	assert.NoError(t, err)

	got, err := s.GetLinkByOwnerAndURL(context.Background(), "alice", "https://www.some-url.com")
	assert.NoError(t, err)
	assert.Equal(t, "ab0De", got.ShortURL)

	_, err = s.GetLinkByOwnerAndURL(context.Background(), "bob", "https://www.some-url.com")
	var notFound *storageErrors.LinkNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetLinksByOwner(t *testing.T) {
	s := InitStorage(zap.NewNop())
	_, _ = s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))
	_, _ = s.AddLink(context.Background(), newLink("alice", "https://www.other-url.com", "alice.docs"))
	_, _ = s.AddLink(context.Background(), newLink("bob", "https://www.third-url.com", "xY9z1"))
	links, err := s.GetLinksByOwner(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestRegisterVisit(t *testing.T) {
	s := InitStorage(zap.NewNop())
	entry, _ := s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))

	assert.NoError(t, s.RegisterVisit(context.Background(), entry.ID, "Lagos, Nigeria"))
	assert.NoError(t, s.RegisterVisit(context.Background(), entry.ID, "Lagos, Nigeria"))
	assert.NoError(t, s.RegisterVisit(context.Background(), entry.ID, "Unknown"))

	link, err := s.GetLinkByID(context.Background(), entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), link.Visits)

	rows, err := s.GetVisitsByLinkID(context.Background(), entry.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		if row.Location == "Lagos, Nigeria" {
			assert.Equal(t, int64(2), row.NumberOfVisits)
		} else {
			assert.Equal(t, int64(1), row.NumberOfVisits)
		}
	}
}

func TestRegisterVisit_UnknownLink(t *testing.T) {
	s := InitStorage(zap.NewNop())
	err := s.RegisterVisit(context.Background(), 42, "Unknown")
	var notFound *storageErrors.LinkIDNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteLink(t *testing.T) {
	s := InitStorage(zap.NewNop())
	entry, _ := s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))
	assert.NoError(t, s.RegisterVisit(context.Background(), entry.ID, "Lagos, Nigeria"))

	assert.NoError(t, s.DeleteLink(context.Background(), entry.ID))

	_, err := s.GetLinkByShortURL(context.Background(), "ab0De")
	var notFound *storageErrors.LinkNotFoundError
	assert.ErrorAs(t, err, &notFound)

	// visit rows go with the link
	rows, err := s.GetVisitsByLinkID(context.Background(), entry.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 0)

	err = s.DeleteLink(context.Background(), entry.ID)
	var idNotFound *storageErrors.LinkIDNotFoundError
	assert.ErrorAs(t, err, &idNotFound)
}

func TestAddUser(t *testing.T) {
	s := InitStorage(zap.NewNop())
	user, err := s.AddUser(context.Background(), modelstorage.UserEntry{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	got, err := s.GetUserByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = s.GetUserByUsername(context.Background(), "bob")
	var notFound *storageErrors.UserNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestContextCancellation(t *testing.T) {
	s := InitStorage(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.AddLink(ctx, newLink("alice", "https://www.some-url.com", "ab0De"))
	var timeout *storageErrors.ContextTimeoutExceededError
	assert.ErrorAs(t, err, &timeout)
}

func TestStorageUsableAfterCancelledContext(t *testing.T) {
	s := InitStorage(zap.NewNop())
	entry, err := s.AddLink(context.Background(), newLink("alice", "https://www.some-url.com", "ab0De"))
	assert.NoError(t, err)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	var timeout *storageErrors.ContextTimeoutExceededError
	_, err = s.GetLinkByShortURL(cancelled, "ab0De")
	assert.ErrorAs(t, err, &timeout)
	err = s.RegisterVisit(cancelled, entry.ID, "Lagos, Nigeria")
	assert.ErrorAs(t, err, &timeout)

	// the mutex must be free again, completion of these calls proves it
	done := make(chan struct{})
	go func() {
		defer close(done)
		link, err := s.GetLinkByID(context.Background(), entry.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), link.Visits)
		assert.NoError(t, s.RegisterVisit(context.Background(), entry.ID, "Lagos, Nigeria"))
		_, err = s.GetLinkByShortURL(context.Background(), "ab0De")
		assert.NoError(t, err)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("storage blocked after a cancelled-context call")
	}
}

func TestPingAndClose(t *testing.T) {
	s := InitStorage(zap.NewNop())
	assert.NoError(t, s.PingDB())
	assert.NoError(t, s.CloseDB())
}
