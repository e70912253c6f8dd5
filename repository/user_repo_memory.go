package repository

import (
	"errors"
	"sync"
	"time"

	"fleetlink/models"

	"golang.org/x/crypto/bcrypt"
)

type MemoryUserRepo struct {
	mu     sync.RWMutex
	users  map[string]*models.AppUser // keyed by email
	nextID int64
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]*models.AppUser)}
}

func (r *MemoryUserRepo) CreateUser(user *models.AppUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return errors.New("email already exists")
	}
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	r.nextID++
	user.ID = r.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	cp := *user
	r.users[user.Email] = &cp
	return nil
}

func (r *MemoryUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
