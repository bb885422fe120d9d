package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository en memoria.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste una cuenta nueva y le asigna ID.
func (r *UserRepo) Create(a *entity.Account) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.accounts {
		if existing.Username == a.Username {
			return domain.ErrUsernameTaken
		}
	}
	a.ID = r.db.nextID()
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	cp := *a
	r.db.accounts[a.ID] = &cp
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(id int64) (*entity.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	a, ok := r.db.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *a
	return &cp, nil
}

// FindByUsername devuelve nil, nil si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, a := range r.db.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la cuenta completa.
func (r *UserRepo) Update(a *entity.Account) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.accounts[a.ID]; !ok {
		return domain.ErrUserNotFound
	}
	a.UpdatedAt = time.Now()
	cp := *a
	r.db.accounts[a.ID] = &cp
	return nil
}

// List página de cuentas ordenadas por ID, más el total.
func (r *UserRepo) List(limit, offset int) ([]*entity.Account, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	all := make([]*entity.Account, 0, len(r.db.accounts))
	for _, a := range r.db.accounts {
		cp := *a
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), int64(len(all)), nil
}

func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
