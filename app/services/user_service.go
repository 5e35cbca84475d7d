package services

import (
	"slices"
	"sync"

	"github.com/Rakhulsr/go-restaurant/app/models"
)

const DefaultUserEmail = "user@example.com"

func DefaultUser() models.UserProfile {
	return models.UserProfile{
		Name:    "John Doe",
		Email:   DefaultUserEmail,
		Phone:   "555-123-4567",
		Address: "123 Main St, Anytown, USA",
		Preferences: &models.ProfilePreferences{
			DietaryRestrictions: []string{"gluten-free"},
			FavoriteItems:       []string{"m3", "d2"},
		},
	}
}

// UserService is the in-process profile store for the stubbed single user.
type UserService struct {
	mu       sync.RWMutex
	users    map[string]*models.UserProfile
	notifier Notifier
}

func NewUserService(notifier Notifier, seed ...models.UserProfile) *UserService {
	s := &UserService{
		users:    make(map[string]*models.UserProfile),
		notifier: notifier,
	}
	for _, u := range seed {
		p := cloneProfile(u)
		s.users[u.Email] = &p
	}
	return s
}

func (s *UserService) GetProfile(email string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return models.UserProfile{}, false
	}
	return cloneProfile(*u), true
}

// UpdateProfile merges the non-empty fields of data into the stored profile,
// creating it when missing.
func (s *UserService) UpdateProfile(email string, data models.UserProfile) models.UserProfile {
	s.mu.Lock()
	u := s.profile(email)
	if data.Name != "" {
		u.Name = data.Name
	}
	if data.Phone != "" {
		u.Phone = data.Phone
	}
	if data.Address != "" {
		u.Address = data.Address
	}
	if data.Preferences != nil {
		p := *data.Preferences
		u.Preferences = &p
	}
	out := cloneProfile(*u)
	s.mu.Unlock()

	s.notify("Profile updated successfully", SeveritySuccess)
	return out
}

func (s *UserService) IsFavorite(email, itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok || u.Preferences == nil {
		return false
	}
	return slices.Contains(u.Preferences.FavoriteItems, itemID)
}

func (s *UserService) AddFavorite(email, itemID string) []string {
	s.mu.Lock()
	u := s.profile(email)
	if u.Preferences == nil {
		u.Preferences = &models.ProfilePreferences{}
	}
	added := false
	if !slices.Contains(u.Preferences.FavoriteItems, itemID) {
		u.Preferences.FavoriteItems = append(u.Preferences.FavoriteItems, itemID)
		added = true
	}
	out := slices.Clone(u.Preferences.FavoriteItems)
	s.mu.Unlock()

	if added {
		s.notify("Added to favorites", SeveritySuccess)
	}
	return out
}

func (s *UserService) RemoveFavorite(email, itemID string) []string {
	s.mu.Lock()
	u, ok := s.users[email]
	if !ok || u.Preferences == nil {
		s.mu.Unlock()
		return []string{}
	}
	u.Preferences.FavoriteItems = slices.DeleteFunc(u.Preferences.FavoriteItems, func(id string) bool { return id == itemID })
	out := slices.Clone(u.Preferences.FavoriteItems)
	s.mu.Unlock()

	s.notify("Removed from favorites", SeverityInfo)
	return out
}

// profile must be called with mu held.
func (s *UserService) profile(email string) *models.UserProfile {
	u, ok := s.users[email]
	if !ok {
		u = &models.UserProfile{Email: email}
		s.users[email] = u
	}
	return u
}

func (s *UserService) notify(message string, severity Severity) {
	if s.notifier != nil {
		s.notifier.Notify(message, severity)
	}
}

func cloneProfile(u models.UserProfile) models.UserProfile {
	if u.Preferences != nil {
		p := models.ProfilePreferences{
			DietaryRestrictions: slices.Clone(u.Preferences.DietaryRestrictions),
			FavoriteItems:       slices.Clone(u.Preferences.FavoriteItems),
		}
		u.Preferences = &p
	}
	return u
}
