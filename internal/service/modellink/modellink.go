// Package modellink provides locally used types and their structure for link handling between modules.
package modellink

import "time"

type Link struct {
	ID          int64
	Owner       string
	OriginalURL string
	ShortURL    string
	Visits      int64
	DateCreated time.Time
	ImgName     string
}

type VisitLocation struct {
	Location       string
	NumberOfVisits int64
}

type User struct {
	ID       int64
	Username string
	Email    string
}
