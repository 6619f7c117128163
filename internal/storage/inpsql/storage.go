// Package inpsql provides data types and methods for PSQL storage operations.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/config"
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
	log *zap.Logger
	Cfg *config.StorageConfig
	DB  *sqlx.DB
}

// InitStorage initializes a Storage object, sets its attributes and starts a listener for DB closure upon ctx cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, logger *zap.Logger, cfg *config.StorageConfig) (*Storage, error) {
	db, err := sqlx.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	st := Storage{
		log: logger,
		Cfg: cfg,
		DB:  db,
	}
	if err := st.createTables(ctx); err != nil {
		return nil, err
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.DB.Close(); err != nil {
			logger.Error("PSQL DB connection closure failed", zap.Error(err))
			return
		}
		logger.Info("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// AddUser stores a new user entry unless its username or email is already taken.
func (s *Storage) AddUser(ctx context.Context, user modelstorage.UserEntry) (modelstorage.UserEntry, error) {
	query := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	err := s.DB.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "users_email_key" {
				return modelstorage.UserEntry{}, &storageErrors.DuplicateEmailError{Email: user.Email, Err: err}
			}
			return modelstorage.UserEntry{}, &storageErrors.DuplicateUsernameError{Username: user.Username, Err: err}
		}
		return modelstorage.UserEntry{}, &storageErrors.ExecutionPSQLError{Err: err}
	}
	return user, nil
}

// GetUserByUsername returns a user entry stored under the given username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (modelstorage.UserEntry, error) {
	query := `SELECT id, username, email, password_hash FROM users WHERE username = $1`
	var user modelstorage.UserEntry
	err := s.DB.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelstorage.UserEntry{}, &storageErrors.UserNotFoundError{Username: username, Err: err}
		}
		return modelstorage.UserEntry{}, &storageErrors.ScanningPSQLError{Err: err}
	}
	return user, nil
}

// AddLink stores a new link entry unless its short URL is already taken.
func (s *Storage) AddLink(ctx context.Context, link modelstorage.LinkEntry) (modelstorage.LinkEntry, error) {
	query := `INSERT INTO links (owner, original_url, short_url, visits, img_name)
		VALUES ($1, $2, $3, 0, $4) RETURNING id, visits, date_created`
	err := s.DB.QueryRowContext(ctx, query, link.Owner, link.OriginalURL, link.ShortURL, link.ImgName).
		Scan(&link.ID, &link.Visits, &link.DateCreated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return modelstorage.LinkEntry{}, &storageErrors.AlreadyExistsError{ShortURL: link.ShortURL, Err: err}
		}
		return modelstorage.LinkEntry{}, &storageErrors.ExecutionPSQLError{Err: err}
	}
	return link, nil
}

// GetLinkByShortURL returns a link entry stored under the given short URL.
func (s *Storage) GetLinkByShortURL(ctx context.Context, shortURL string) (modelstorage.LinkEntry, error) {
	query := `SELECT * FROM links WHERE short_url = $1`
	var link modelstorage.LinkEntry
	err := s.DB.GetContext(ctx, &link, query, shortURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelstorage.LinkEntry{}, &storageErrors.LinkNotFoundError{ShortURL: shortURL, Err: err}
		}
		return modelstorage.LinkEntry{}, &storageErrors.ScanningPSQLError{Err: err}
	}
	return link, nil
}

// GetLinkByID returns a link entry stored under the given ID.
func (s *Storage) GetLinkByID(ctx context.Context, id int64) (modelstorage.LinkEntry, error) {
	query := `SELECT * FROM links WHERE id = $1`
	var link modelstorage.LinkEntry
	err := s.DB.GetContext(ctx, &link, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelstorage.LinkEntry{}, &storageErrors.LinkIDNotFoundError{ID: id, Err: err}
		}
		return modelstorage.LinkEntry{}, &storageErrors.ScanningPSQLError{Err: err}
	}
	return link, nil
}

// GetLinkByOwnerAndURL returns a link entry matching both the owner and the original URL.
func (s *Storage) GetLinkByOwnerAndURL(ctx context.Context, owner string, originalURL string) (modelstorage.LinkEntry, error) {
	query := `SELECT * FROM links WHERE owner = $1 AND original_url = $2`
	var link modelstorage.LinkEntry
	err := s.DB.GetContext(ctx, &link, query, owner, originalURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelstorage.LinkEntry{}, &storageErrors.LinkNotFoundError{ShortURL: originalURL, Err: err}
		}
		return modelstorage.LinkEntry{}, &storageErrors.ScanningPSQLError{Err: err}
	}
	return link, nil
}

// GetLinksByOwner returns all link entries created by one owner.
func (s *Storage) GetLinksByOwner(ctx context.Context, owner string) ([]modelstorage.LinkEntry, error) {
	query := `SELECT * FROM links WHERE owner = $1 ORDER BY date_created`
	var links []modelstorage.LinkEntry
	err := s.DB.SelectContext(ctx, &links, query, owner)
	if err != nil {
		return nil, &storageErrors.ScanningPSQLError{Err: err}
	}
	return links, nil
}

// DeleteLink removes a link entry and all of its visit location rows in one transaction.
func (s *Storage) DeleteLink(ctx context.Context, id int64) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return &storageErrors.StatementPSQLError{Err: err}
	}
	defer tx.Rollback()
	// visit rows are removed by the parent link ID, not by their own primary key
	if _, err := tx.ExecContext(ctx, `DELETE FROM visit_locations WHERE link_id = $1`, id); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	if affected == 0 {
		return &storageErrors.LinkIDNotFoundError{ID: id}
	}
	if err := tx.Commit(); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return nil
}

// RegisterVisit increments the link visit counter and upserts the location row in one transaction.
func (s *Storage) RegisterVisit(ctx context.Context, linkID int64, location string) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return &storageErrors.StatementPSQLError{Err: err}
	}
	defer tx.Rollback()
	res, err := tx.ExecContext(ctx, `UPDATE links SET visits = visits + 1 WHERE id = $1`, linkID)
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	if affected == 0 {
		return &storageErrors.LinkIDNotFoundError{ID: linkID}
	}
	query := `INSERT INTO visit_locations (link_id, location, number_of_visits) VALUES ($1, $2, 1)
		ON CONFLICT ON CONSTRAINT visit_locations_link_id_location_key
		DO UPDATE SET number_of_visits = visit_locations.number_of_visits + 1`
	if _, err := tx.ExecContext(ctx, query, linkID, location); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return nil
}

// GetVisitsByLinkID returns all visit location rows aggregated for one link.
func (s *Storage) GetVisitsByLinkID(ctx context.Context, linkID int64) ([]modelstorage.VisitLocationEntry, error) {
	query := `SELECT * FROM visit_locations WHERE link_id = $1 ORDER BY number_of_visits DESC`
	var rows []modelstorage.VisitLocationEntry
	err := s.DB.SelectContext(ctx, &rows, query, linkID)
	if err != nil {
		return nil, &storageErrors.ScanningPSQLError{Err: err}
	}
	return rows, nil
}

// PingDB verifies the PSQL DB connection.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the PSQL DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

// createTables creates tables for PSQL DB storage if not exist.
func (s *Storage) createTables(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS users (
		id bigserial primary key,
		username text not null,
		email text not null,
		password_hash text not null,
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	);
	CREATE TABLE IF NOT EXISTS links (
		id bigserial primary key,
		owner text not null,
		original_url text not null,
		short_url text not null,
		visits bigint not null default 0,
		date_created timestamptz not null default now(),
		img_name text not null default '',
		CONSTRAINT links_short_url_key UNIQUE (short_url)
	);
	CREATE TABLE IF NOT EXISTS visit_locations (
		id bigserial primary key,
		link_id bigint not null references links (id),
		location text not null,
		number_of_visits bigint not null default 0,
		CONSTRAINT visit_locations_link_id_location_key UNIQUE (link_id, location)
	);`
	_, err := s.DB.ExecContext(ctx, query)
	return err
}
