// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import "time"

type UserEntry struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

type LinkEntry struct {
	ID          int64     `db:"id"`
	Owner       string    `db:"owner"`
	OriginalURL string    `db:"original_url"`
	ShortURL    string    `db:"short_url"`
	Visits      int64     `db:"visits"`
	DateCreated time.Time `db:"date_created"`
	ImgName     string    `db:"img_name"`
}

type VisitLocationEntry struct {
	ID             int64  `db:"id"`
	LinkID         int64  `db:"link_id"`
	Location       string `db:"location"`
	NumberOfVisits int64  `db:"number_of_visits"`
}
