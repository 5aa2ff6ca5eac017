// Package gormsnap mirrors the snapshot into a relational database. Each
// Save replaces the whole stored snapshot inside one transaction; the engine
// state is small enough that a full rewrite is cheaper than diffing.
package gormsnap

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/snapshot"
)

type Store struct{ db *gorm.DB }

var _ snapshot.Store = (*Store)(nil)

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&metaRow{}, &userRow{}, &accountRow{}, &transactionRow{}, &loanRow{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	var meta metaRow
	if err := s.db.WithContext(ctx).First(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, snapshot.ErrNoSnapshot
		}
		return nil, err
	}

	snap := &snapshot.Snapshot{
		Meta: snapshot.Meta{Format: meta.Format, Version: meta.Version, SavedAt: meta.SavedAt},
	}

	var users []userRow
	if err := s.db.WithContext(ctx).Order("seq").Find(&users).Error; err != nil {
		return nil, err
	}
	for _, r := range users {
		snap.Identities = append(snap.Identities, r.domain())
	}

	var accounts []accountRow
	if err := s.db.WithContext(ctx).Order("seq").Find(&accounts).Error; err != nil {
		return nil, err
	}
	for _, r := range accounts {
		snap.Accounts = append(snap.Accounts, r.domain())
	}

	var transactions []transactionRow
	if err := s.db.WithContext(ctx).Order("seq").Find(&transactions).Error; err != nil {
		return nil, err
	}
	for _, r := range transactions {
		snap.Transactions = append(snap.Transactions, r.domain())
	}

	var loans []loanRow
	if err := s.db.WithContext(ctx).Order("seq").Find(&loans).Error; err != nil {
		return nil, err
	}
	for _, r := range loans {
		snap.Loans = append(snap.Loans, r.domain())
	}

	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"snapshot_meta", "identities", "accounts", "transactions", "loans"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		meta := metaRow{Format: snap.Meta.Format, Version: snap.Meta.Version, SavedAt: snap.Meta.SavedAt}
		if meta.SavedAt.IsZero() {
			meta.SavedAt = time.Now().UTC()
		}
		if err := tx.Create(&meta).Error; err != nil {
			return err
		}

		if rows := userRows(snap.Identities); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := accountRows(snap.Accounts); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := transactionRows(snap.Transactions); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := loanRows(snap.Loans); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func userRows(in []identity.User) []userRow {
	out := make([]userRow, 0, len(in))
	for _, u := range in {
		out = append(out, toUserRow(u))
	}
	return out
}

func accountRows(in []account.Account) []accountRow {
	out := make([]accountRow, 0, len(in))
	for _, a := range in {
		out = append(out, toAccountRow(a))
	}
	return out
}

func transactionRows(in []ledger.Transaction) []transactionRow {
	out := make([]transactionRow, 0, len(in))
	for _, t := range in {
		out = append(out, toTransactionRow(t))
	}
	return out
}

func loanRows(in []loan.Loan) []loanRow {
	out := make([]loanRow, 0, len(in))
	for _, l := range in {
		out = append(out, toLoanRow(l))
	}
	return out
}
