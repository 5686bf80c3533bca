package impl

import (
	"context"
	"sync"
	"time"

	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-memory TransactionManager for the points tables.
// Transactions are serialised and a failing transaction restores the
// snapshot taken when it began, so callers observe the same commit/rollback
// outcomes as against Postgres.
type memoryStore struct {
	mu       sync.Mutex
	codes    map[string]*entity.RedemptionCode // unconsumed codes by text
	consumed []*entity.RedemptionCode
	balances map[uuid.UUID]int
	ledger   []*entity.LedgerEntry

	failLedger error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		codes:    make(map[string]*entity.RedemptionCode),
		balances: make(map[uuid.UUID]int),
	}
}

func (s *memoryStore) addCode(code string) {
	kind, _ := entity.ParseCodeKind(code)
	s.codes[code] = &entity.RedemptionCode{ID: uuid.New(), Code: code, Kind: kind, CreatedAt: time.Now()}
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.snapshot()
	err := fn(memoryFactory{s})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.restore(snapshot)

		return err
	}

	return nil
}

type memorySnapshot struct {
	codes    map[string]*entity.RedemptionCode
	consumed []*entity.RedemptionCode
	balances map[uuid.UUID]int
	ledger   []*entity.LedgerEntry
}

func (s *memoryStore) snapshot() memorySnapshot {
	snap := memorySnapshot{
		codes:    make(map[string]*entity.RedemptionCode, len(s.codes)),
		consumed: append([]*entity.RedemptionCode(nil), s.consumed...),
		balances: make(map[uuid.UUID]int, len(s.balances)),
		ledger:   append([]*entity.LedgerEntry(nil), s.ledger...),
	}
	for k, v := range s.codes {
		snap.codes[k] = v
	}
	for k, v := range s.balances {
		snap.balances[k] = v
	}

	return snap
}

func (s *memoryStore) restore(snap memorySnapshot) {
	s.codes = snap.codes
	s.consumed = snap.consumed
	s.balances = snap.balances
	s.ledger = snap.ledger
}

type memoryFactory struct{ s *memoryStore }

func (f memoryFactory) UserRepo() repository.UserRepository             { return memoryUsers(f) }
func (f memoryFactory) AuthRepo() repository.AuthRepository             { return nil }
func (f memoryFactory) CodeRepo() repository.CodeRepository             { return memoryCodes(f) }
func (f memoryFactory) LedgerRepo() repository.LedgerRepository         { return memoryLedger(f) }
func (f memoryFactory) DishRepo() repository.DishRepository             { return nil }
func (f memoryFactory) OrderRepo() repository.OrderRepository           { return nil }
func (f memoryFactory) SuggestionRepo() repository.SuggestionRepository { return nil }

type memoryCodes struct{ s *memoryStore }

func (r memoryCodes) CreateCode(_ context.Context, code *entity.RedemptionCode) error {
	if _, ok := r.s.codes[code.Code]; ok {
		return repository.ErrDuplicateCode
	}
	r.s.codes[code.Code] = code

	return nil
}

func (r memoryCodes) ConsumeCode(_ context.Context, code string, userID uuid.UUID, at time.Time) (*entity.RedemptionCode, error) {
	row, ok := r.s.codes[code]
	if !ok {
		return nil, repository.ErrCodeNotFound
	}

	updated := *row
	updated.Consumed = true
	updated.ConsumedBy = &userID
	updated.ConsumedAt = &at
	delete(r.s.codes, code)
	r.s.consumed = append(r.s.consumed, &updated)

	return &updated, nil
}

func (r memoryCodes) FindByID(_ context.Context, id uuid.UUID) (*entity.RedemptionCode, error) {
	for _, c := range r.s.codes {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, repository.ErrCodeNotFound
}

func (r memoryCodes) List(_ context.Context, _ repository.CodeFilter) ([]*entity.RedemptionCode, error) {
	list := make([]*entity.RedemptionCode, 0, len(r.s.codes))
	for _, c := range r.s.codes {
		list = append(list, c)
	}

	return list, nil
}

func (r memoryCodes) CountUnused(_ context.Context) (map[entity.CodeKind]int, error) {
	counts := map[entity.CodeKind]int{entity.CodeKindVisit: 0, entity.CodeKindReferral: 0}
	for _, c := range r.s.codes {
		counts[c.Kind]++
	}

	return counts, nil
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	balance, ok := r.s.balances[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &entity.User{ID: id, Points: balance, Role: entity.RoleCustomer}, nil
}

func (r memoryUsers) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r memoryUsers) Create(_ context.Context, user *entity.User) error {
	r.s.balances[user.ID] = user.Points

	return nil
}

func (r memoryUsers) IncrementPoints(_ context.Context, id uuid.UUID, delta int) (int, error) {
	balance, ok := r.s.balances[id]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	r.s.balances[id] = balance + delta

	return balance + delta, nil
}

func (r memoryUsers) DecrementPoints(_ context.Context, id uuid.UUID, amount int) (int, error) {
	balance, ok := r.s.balances[id]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	if balance < amount {
		return 0, repository.ErrInsufficientBalance
	}
	r.s.balances[id] = balance - amount

	return balance - amount, nil
}

func (r memoryUsers) ListByRole(_ context.Context, _ entity.Role) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.s.balances))
	for id, balance := range r.s.balances {
		users = append(users, &entity.User{ID: id, Points: balance, Role: entity.RoleCustomer})
	}

	return users, nil
}

func (r memoryUsers) CountByRoleSince(_ context.Context, _ entity.Role, _ time.Time) (int, error) {
	return len(r.s.balances), nil
}

type memoryLedger struct{ s *memoryStore }

func (r memoryLedger) Append(_ context.Context, entry *entity.LedgerEntry) error {
	if r.s.failLedger != nil {
		return r.s.failLedger
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.s.ledger = append(r.s.ledger, entry)

	return nil
}

func (r memoryLedger) ListByUserSince(_ context.Context, userID uuid.UUID, since time.Time) ([]*entity.LedgerEntry, error) {
	var entries []*entity.LedgerEntry
	for i := len(r.s.ledger) - 1; i >= 0; i-- {
		e := r.s.ledger[i]
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			entries = append(entries, e)
		}
	}

	return entries, nil
}
