// Package seqid allocates the human-readable sequential ids used as primary
// keys across all entity types (prod001, usr042, conv003...).
//
// An id is a fixed per-entity prefix followed by a base-10 suffix zero-padded
// to at least three digits. The next suffix is max(existing)+1; gaps left by
// deletes are never refilled. Plain scan-then-insert is racy under concurrent
// writers, so Create re-scans inside the insert transaction and retries on a
// primary-key conflict instead of trusting a single snapshot.
package seqid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// minWidth is the minimum zero-padded width of the numeric suffix. Suffixes
// above 999 grow naturally without re-padding.
const minWidth = 3

// maxAttempts bounds insert retries when concurrent writers collide on the
// same suffix.
const maxAttempts = 3

// Entity is any record keyed by a prefixed sequential id. model.Base provides
// GetID/SetID; each entity declares its own prefix.
type Entity interface {
	GetID() string
	SetID(id string)
	IDPrefix() string
}

// Next computes the next id for prefix given a snapshot of existing ids.
// Ids whose remainder after the prefix does not parse as a base-10 integer
// are ignored. An empty set yields suffix 1.
func Next(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		suffix := strings.TrimPrefix(id, prefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return Format(prefix, max+1)
}

// Format renders prefix plus a zero-padded suffix (minimum three digits).
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, minWidth, n)
}

// NextInTx scans the ids of rec's table through tx and computes the next id.
// Callers that insert afterwards should do both inside the same transaction.
func NextInTx(tx *gorm.DB, rec Entity) (string, error) {
	var ids []string
	if err := tx.Model(rec).Pluck("id", &ids).Error; err != nil {
		return "", fmt.Errorf("scan %s ids: %w", rec.IDPrefix(), err)
	}
	return Next(rec.IDPrefix(), ids), nil
}

// Create persists rec through db. When rec carries no id, one is allocated by
// scanning inside the insert transaction; a duplicate-key conflict (two
// writers reading the same max) triggers a re-scan and retry. An explicitly
// supplied id is used verbatim and never retried.
func Create(db *gorm.DB, rec Entity) error {
	if rec.GetID() != "" {
		return db.Create(rec).Error
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			id, err := NextInTx(tx, rec)
			if err != nil {
				return err
			}
			rec.SetID(id)
			return tx.Create(rec).Error
		})
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
		rec.SetID("")
		lastErr = err
	}
	return fmt.Errorf("allocate %s id: retries exhausted: %w", rec.IDPrefix(), lastErr)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers without error translation enabled.
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
