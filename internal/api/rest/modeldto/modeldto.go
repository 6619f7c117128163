// Package modeldto provides locally used types and their structure for page view data.
package modeldto

type (
	Flash struct {
		Message  string
		Category string
	}

	PageView struct {
		Username string
		Flash    Flash
	}

	LinkView struct {
		ID           int64
		OriginalURL  string
		ShortURL     string
		FullShortURL string
		Visits       int64
		DateCreated  string
		ImgName      string
	}

	DashboardView struct {
		PageView
		Link *LinkView
	}

	HistoryView struct {
		PageView
		Owner string
		Links []LinkView
	}

	VisitRowView struct {
		Location       string
		NumberOfVisits int64
	}

	AnalyticsView struct {
		PageView
		Link   LinkView
		Visits []VisitRowView
	}
)
