package storage

import "logistics-dashboard-service/internal/domain"

// GetUser returns a user by surrogate ID.
func (s *Store) GetUser(id int64) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// GetUserByUsername returns a user by username. Linear scan; fine at
// in-memory scale.
func (s *Store) GetUserByUsername(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

// GetUserByEmail returns a user by email.
func (s *Store) GetUserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email != nil && *u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// GetUserByGoogleID returns a user by Google account ID.
func (s *Store) GetUserByGoogleID(googleID string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, true
		}
	}
	return domain.User{}, false
}

// ListUsers returns all live users, order not guaranteed.
func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// CreateUser assigns the next ID, stamps createdAt and lastLogin, and stores
// the record.
func (s *Store) CreateUser(in domain.InsertUser) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSeq++
	now := s.now()
	u := domain.User{
		ID:             s.userSeq,
		Username:       in.Username,
		Password:       in.Password,
		Email:          in.Email,
		GoogleID:       in.GoogleID,
		Name:           in.Name,
		Role:           in.Role,
		ProfilePicture: in.ProfilePicture,
		CreatedAt:      now,
		LastLogin:      &now,
	}
	s.users[u.ID] = u
	return u
}

// DeleteUser removes a user and reports whether it existed.
func (s *Store) DeleteUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}
