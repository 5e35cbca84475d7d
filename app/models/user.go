package models

type UserPreferences struct {
	Theme              string   `json:"theme"`
	Notifications      bool     `json:"notifications"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	FavoriteItems      []string `json:"favoriteItems"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:              "light",
		Notifications:      true,
		DietaryPreferences: []string{},
		FavoriteItems:      []string{},
	}
}

type ProfilePreferences struct {
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	FavoriteItems       []string `json:"favoriteItems"`
}

type UserProfile struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Address     string              `json:"address"`
	Preferences *ProfilePreferences `json:"preferences,omitempty"`
}
