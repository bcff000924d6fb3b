package authz

import (
	"context"
	"errors"
)

var ErrUnauthorized = errors.New("not authorized")

// Capability names a guarded operation. Policy evaluation itself lives
// outside this service; the core only asks yes/no.
type Capability string

const (
	CapPromote               Capability = "classification.promote"
	CapCorrect               Capability = "classification.correct"
	CapManageClassifications Capability = "classification.manage"
	CapDeleteClassification  Capability = "classification.delete"
	CapPurgeClassification   Capability = "classification.purge"
)

// Checker is the external capability check consulted before ledger writes
// and destructive lifecycle transitions.
type Checker interface {
	Can(ctx context.Context, performerID string, cap Capability) (bool, error)
}

// AllowAll grants everything; used in tests and local bootstrap.
type AllowAll struct{}

func (AllowAll) Can(context.Context, string, Capability) (bool, error) { return true, nil }
