// Package ledger provides interfaces for types to be in compliance with.
package ledger

import (
	"context"

	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
)

// Recorder defines a set of methods for types implementing Recorder.
type Recorder interface {
	RecordVisit(ctx context.Context, linkID int64, location string) error
}

// Reporter defines a set of methods for types implementing Reporter.
type Reporter interface {
	VisitsByLink(ctx context.Context, linkID int64) ([]modellink.VisitLocation, error)
}

// Processor defines a set of embedded interfaces for types implementing Processor.
type Processor interface {
	Recorder
	Reporter
}
