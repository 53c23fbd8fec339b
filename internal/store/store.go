// Package store keeps the authoritative in-memory state and mirrors every
// mutation to the snapshot backend. Reads never touch storage; writes persist
// the whole affected collection.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"logisystem/internal/core"
	"logisystem/internal/seed"
	"logisystem/internal/storage"
)

type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	logger  *slog.Logger
	now     func() time.Time

	employees    []core.Employee
	trucks       []core.Truck
	accounts     []core.Account
	transactions []core.Transaction

	nextEmployeeID int64
	nextTruckID    int64
	nextAccountID  int64
	lastTxID       int64

	authenticated bool
	foldLayout    bool
}

// Open loads every collection from the backend, falling back to the seed
// dataset when a snapshot is missing or cannot be decoded. The session flag is
// always reset so each process start requires a fresh login.
func Open(ctx context.Context, backend storage.Backend, seedData seed.Data, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}

	s.employees = loadCollection(ctx, s, storage.KeyEmployees, seedData.Employees)
	s.trucks = loadCollection(ctx, s, storage.KeyTrucks, seedData.Trucks)
	s.accounts = loadCollection(ctx, s, storage.KeyAccounts, seedData.Accounts)
	s.transactions = loadCollection(ctx, s, storage.KeyTransactions, seedData.Transactions)

	for _, e := range s.employees {
		if e.ID >= s.nextEmployeeID {
			s.nextEmployeeID = e.ID + 1
		}
	}
	for _, t := range s.trucks {
		if t.ID >= s.nextTruckID {
			s.nextTruckID = t.ID + 1
		}
	}
	for _, a := range s.accounts {
		if a.ID >= s.nextAccountID {
			s.nextAccountID = a.ID + 1
		}
	}
	if s.nextEmployeeID == 0 {
		s.nextEmployeeID = 1
	}
	if s.nextTruckID == 0 {
		s.nextTruckID = 1
	}
	if s.nextAccountID == 0 {
		s.nextAccountID = 1
	}
	for _, tx := range s.transactions {
		if tx.ID > s.lastTxID {
			s.lastTxID = tx.ID
		}
	}

	s.foldLayout = s.loadBool(ctx, storage.KeyFoldLayout)

	// Stale sessions never survive a restart.
	if err := s.persistBool(ctx, storage.KeySession, false); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Store opened",
		"employees", len(s.employees),
		"trucks", len(s.trucks),
		"accounts", len(s.accounts),
		"transactions", len(s.transactions))
	return s, nil
}

// loadCollection reads one snapshot and decodes it. A missing snapshot is the
// first-run case and gets the seed silently; a corrupt one is logged and also
// replaced by the seed rather than aborting startup.
func loadCollection[T any](ctx context.Context, s *Store, key string, fallback []T) []T {
	data, err := s.backend.Read(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.WarnContext(ctx, "Cannot read snapshot, using seed", "key", key, "error", err)
		}
		return append([]T(nil), fallback...)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.WarnContext(ctx, "Cannot decode snapshot, using seed", "key", key, "error", err)
		return append([]T(nil), fallback...)
	}
	return items
}

func persistCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Write(ctx, key, data); err != nil {
		s.logger.ErrorContext(ctx, "Cannot persist snapshot", "key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// AddEmployee appends the employee and persists the collection. The created
// record is returned even when persistence fails; memory stays authoritative
// and the error tells the caller the disk copy is behind.
func (s *Store) AddEmployee(ctx context.Context, e core.Employee) (core.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextEmployeeID
	s.nextEmployeeID++
	s.employees = append(s.employees, e)

	return e, persistCollection(ctx, s, storage.KeyEmployees, s.employees)
}

func (s *Store) AddTruck(ctx context.Context, t core.Truck) (core.Truck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextTruckID
	s.nextTruckID++
	s.trucks = append(s.trucks, t)

	return t, persistCollection(ctx, s, storage.KeyTrucks, s.trucks)
}

// DeleteTruck removes the truck with the given ID. Deleting an unknown ID is a
// silent no-op.
func (s *Store) DeleteTruck(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.trucks {
		if t.ID == id {
			s.trucks = append(s.trucks[:i], s.trucks[i+1:]...)
			return persistCollection(ctx, s, storage.KeyTrucks, s.trucks)
		}
	}
	return nil
}

func (s *Store) AddAccount(ctx context.Context, a core.Account) (core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAccountID
	s.nextAccountID++
	a.Active = true
	s.accounts = append(s.accounts, a)

	return a, persistCollection(ctx, s, storage.KeyAccounts, s.accounts)
}

// AddTransaction inserts the transaction at the head of the collection, so the
// newest movement is always first. IDs are derived from the clock but forced
// strictly increasing even when entries land within the same nanosecond.
func (s *Store) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.Status == "" {
		tx.Status = core.StatusActive
	}
	id := s.now().UnixNano()
	if id <= s.lastTxID {
		id = s.lastTxID + 1
	}
	tx.ID = id
	s.lastTxID = id

	s.transactions = append([]core.Transaction{tx}, s.transactions...)

	return tx, persistCollection(ctx, s, storage.KeyTransactions, s.transactions)
}

// VoidTransaction marks an active transaction as voided. Unknown IDs and
// already-voided transactions are silent no-ops, which makes the operation
// idempotent.
func (s *Store) VoidTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID != id {
			continue
		}
		if tx.Voided() {
			return nil
		}
		s.transactions[i].Status = core.StatusVoided
		return persistCollection(ctx, s, storage.KeyTransactions, s.transactions)
	}
	return nil
}

func (s *Store) Employees() []core.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Employee(nil), s.employees...)
}

func (s *Store) Trucks() []core.Truck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Truck(nil), s.trucks...)
}

func (s *Store) Accounts() []core.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...)
}

func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...)
}

func (s *Store) AccountByID(id int64) (core.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return core.Account{}, false
}

func (s *Store) EmployeeByID(id int64) (core.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return core.Employee{}, false
}

// AccountNameExists reports whether any account collides with the name under
// the trimmed, case-insensitive comparison.
func (s *Store) AccountNameExists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if core.SameAccountName(a.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) SetAuthenticated(ctx context.Context, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = v
	return s.persistBool(ctx, storage.KeySession, v)
}

func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Store) SetFoldLayout(ctx context.Context, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.foldLayout = v
	return s.persistBool(ctx, storage.KeyFoldLayout, v)
}

func (s *Store) FoldLayout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foldLayout
}

func (s *Store) loadBool(ctx context.Context, key string) bool {
	data, err := s.backend.Read(ctx, key)
	if err != nil {
		return false
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return false
	}
	return v
}

func (s *Store) persistBool(ctx context.Context, key string, v bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Write(ctx, key, data); err != nil {
		s.logger.ErrorContext(ctx, "Cannot persist snapshot", "key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
