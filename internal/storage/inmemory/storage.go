// Package inmemory provides data types and methods for in-memory storage operations.
package inmemory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
	storageErrors "github.com/Igbinosa-Christian/scissorapp/internal/storage/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu         sync.Mutex
	log        *zap.Logger
	users      map[string]modelstorage.UserEntry           // keyed by username
	links      map[string]modelstorage.LinkEntry           // keyed by short URL
	visits     map[int64][]modelstorage.VisitLocationEntry // keyed by link ID
	nextUserID int64
	nextLinkID int64
	nextRowID  int64
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(logger *zap.Logger) *Storage {
	return &Storage{
		log:    logger,
		users:  make(map[string]modelstorage.UserEntry),
		links:  make(map[string]modelstorage.LinkEntry),
		visits: make(map[int64][]modelstorage.VisitLocationEntry),
	}
}

// AddUser stores a new user entry unless its username or email is already taken.
func (s *Storage) AddUser(ctx context.Context, user modelstorage.UserEntry) (modelstorage.UserEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return modelstorage.UserEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	if _, ok := s.users[user.Username]; ok {
		return modelstorage.UserEntry{}, &storageErrors.DuplicateUsernameError{Username: user.Username}
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return modelstorage.UserEntry{}, &storageErrors.DuplicateEmailError{Email: user.Email}
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.Username] = user
	s.log.Info("Added user", zap.String("username", user.Username))
	return user, nil
}

// GetUserByUsername returns a user entry stored under the given username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (modelstorage.UserEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return modelstorage.UserEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	user, ok := s.users[username]
	if !ok {
		return modelstorage.UserEntry{}, &storageErrors.UserNotFoundError{Username: username}
	}
	return user, nil
}

// AddLink stores a new link entry unless its short URL is already taken.
func (s *Storage) AddLink(ctx context.Context, link modelstorage.LinkEntry) (modelstorage.LinkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return modelstorage.LinkEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	if _, ok := s.links[link.ShortURL]; ok {
		return modelstorage.LinkEntry{}, &storageErrors.AlreadyExistsError{ShortURL: link.ShortURL}
	}
	s.nextLinkID++
	link.ID = s.nextLinkID
	if link.DateCreated.IsZero() {
		link.DateCreated = time.Now()
	}
	s.links[link.ShortURL] = link
	s.log.Info("Added link", zap.String("shortURL", link.ShortURL), zap.String("owner", link.Owner))
	return link, nil
}

// GetLinkByShortURL returns a link entry stored under the given short URL.
func (s *Storage) GetLinkByShortURL(ctx context.Context, shortURL string) (modelstorage.LinkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		s.log.Warn("Retrieving link", zap.Error(err))
		return modelstorage.LinkEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	link, ok := s.links[shortURL]
	if !ok {
		return modelstorage.LinkEntry{}, &storageErrors.LinkNotFoundError{ShortURL: shortURL}
	}
	return link, nil
}

// GetLinkByID returns a link entry stored under the given ID.
func (s *Storage) GetLinkByID(ctx context.Context, id int64) (modelstorage.LinkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return modelstorage.LinkEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	for _, link := range s.links {
		if link.ID == id {
			return link, nil
		}
	}
	return modelstorage.LinkEntry{}, &storageErrors.LinkIDNotFoundError{ID: id}
}

// GetLinkByOwnerAndURL returns a link entry matching both the owner and the original URL.
func (s *Storage) GetLinkByOwnerAndURL(ctx context.Context, owner string, originalURL string) (modelstorage.LinkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return modelstorage.LinkEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	for _, link := range s.links {
		if link.Owner == owner && link.OriginalURL == originalURL {
			return link, nil
		}
	}
	return modelstorage.LinkEntry{}, &storageErrors.LinkNotFoundError{ShortURL: originalURL}
}

// GetLinksByOwner returns all link entries created by one owner.
func (s *Storage) GetLinksByOwner(ctx context.Context, owner string) ([]modelstorage.LinkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	var links []modelstorage.LinkEntry
	for _, link := range s.links {
		if link.Owner == owner {
			links = append(links, link)
		}
	}
	return links, nil
}

// DeleteLink removes a link entry and all of its visit location rows.
func (s *Storage) DeleteLink(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	for shortURL, link := range s.links {
		if link.ID == id {
			delete(s.links, shortURL)
			delete(s.visits, id)
			s.log.Info("Deleted link", zap.String("shortURL", shortURL))
			return nil
		}
	}
	return &storageErrors.LinkIDNotFoundError{ID: id}
}

// RegisterVisit increments the link visit counter and upserts the location row in one lock scope.
func (s *Storage) RegisterVisit(ctx context.Context, linkID int64, location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		s.log.Warn("Registering visit", zap.Error(err))
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	var shortURL string
	found := false
	for key, link := range s.links {
		if link.ID == linkID {
			shortURL = key
			found = true
			break
		}
	}
	if !found {
		return &storageErrors.LinkIDNotFoundError{ID: linkID}
	}
	link := s.links[shortURL]
	link.Visits++
	s.links[shortURL] = link
	rows := s.visits[linkID]
	for i := range rows {
		if rows[i].Location == location {
			rows[i].NumberOfVisits++
			s.visits[linkID] = rows
			return nil
		}
	}
	s.nextRowID++
	s.visits[linkID] = append(rows, modelstorage.VisitLocationEntry{
		ID:             s.nextRowID,
		LinkID:         linkID,
		Location:       location,
		NumberOfVisits: 1,
	})
	return nil
}

// GetVisitsByLinkID returns all visit location rows aggregated for one link.
func (s *Storage) GetVisitsByLinkID(ctx context.Context, linkID int64) ([]modelstorage.VisitLocationEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	rows := s.visits[linkID]
	out := make([]modelstorage.VisitLocationEntry, len(rows))
	copy(out, rows)
	return out, nil
}

// PingDB is a mock for PSQL DB pinger for in-memory DB handling.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer for in-memory DB handling.
func (s *Storage) CloseDB() error {
	return nil
}
