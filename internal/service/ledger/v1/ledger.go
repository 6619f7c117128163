// Package ledger provides functionality for aggregating link visits by resolved location.
package ledger

import (
	"context"

	"go.uber.org/zap"

	serviceErrors "github.com/Igbinosa-Christian/scissorapp/internal/service/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/ledger"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
)

// Check interface implementation explicitly
var (
	_ ledger.Processor = (*Ledger)(nil)
)

// Ledger struct defines data structure handling and provides support for adding new implementations.
type Ledger struct {
	log          *zap.Logger
	VisitStorage storage.VisitStorage
}

// InitLedger initializes a Ledger object and sets its attributes.
func InitLedger(s storage.VisitStorage, logger *zap.Logger) (*Ledger, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Ledger{
		log:          logger,
		VisitStorage: s,
	}, nil
}

// RecordVisit increments the link total and its per-location counter as one atomic unit.
func (l *Ledger) RecordVisit(ctx context.Context, linkID int64, location string) error {
	if err := l.VisitStorage.RegisterVisit(ctx, linkID, location); err != nil {
		return err
	}
	l.log.Info("Recorded visit", zap.Int64("linkID", linkID), zap.String("location", location))
	return nil
}

// VisitsByLink returns the per-location visit breakdown for one link.
func (l *Ledger) VisitsByLink(ctx context.Context, linkID int64) ([]modellink.VisitLocation, error) {
	entries, err := l.VisitStorage.GetVisitsByLinkID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	rows := make([]modellink.VisitLocation, len(entries))
	for i, entry := range entries {
		rows[i] = modellink.VisitLocation{
			Location:       entry.Location,
			NumberOfVisits: entry.NumberOfVisits,
		}
	}
	return rows, nil
}
