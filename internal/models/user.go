package models

// UserType values stored on a user record.
const (
	UserTypeUser  = "user"
	UserTypeAdmin = "admin"
)

// User is the externally visible projection of a user record. Field names
// mirror the Users sheet columns; the credential is held separately by the
// store and is never part of this struct.
type User struct {
	UserID             string `json:"UserID"`
	Name               string `json:"Name"`
	Email              string `json:"Email"`
	ParentAge          int    `json:"ParentAge"`
	PINCode            string `json:"PINCode"`
	BabyBirthDate      string `json:"BabyBirthDate"` // YYYY-MM-DD
	FamilyPreferences  string `json:"FamilyPreferences"`
	RegistrationDate   string `json:"RegistrationDate"`   // RFC 3339
	RegistrationExpiry string `json:"RegistrationExpiry"` // RFC 3339
	UserType           string `json:"userType"`
}

// IsAdmin reports whether the user may access the admin dashboard.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// RegistrationRequest carries the profile fields a user supplies to complete
// a pre-provisioned placeholder record. UserID, userType and the registration
// window are owned by the store and cannot be set by the caller.
type RegistrationRequest struct {
	Name              string `json:"Name" binding:"required"`
	Email             string `json:"Email" binding:"required,email"`
	ParentAge         int    `json:"ParentAge"`
	PINCode           string `json:"PINCode"`
	BabyBirthDate     string `json:"BabyBirthDate"`
	FamilyPreferences string `json:"FamilyPreferences"`
}
