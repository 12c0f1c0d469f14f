package validation

import (
	"fmt"
	"regexp"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 8
	maxBioLen      = 200
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateUsername checks if a username meets format requirements.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return fmt.Errorf("Username must be %d-%d characters", minUsernameLen, maxUsernameLen)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("Username can only contain letters, numbers, underscores, and hyphens")
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) || len(email) > 254 {
		return fmt.Errorf("Invalid email format")
	}
	return nil
}

// ValidatePassword checks the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("Password must be at least %d characters", minPasswordLen)
	}
	if len(password) > 128 {
		return fmt.Errorf("Password must not exceed 128 characters")
	}
	return nil
}

// ValidateRegistration checks a registration payload, collecting every violation.
func ValidateRegistration(username, email, password string) error {
	var v Violations

	if username == "" {
		v.Add("Username is required")
	} else if err := ValidateUsername(username); err != nil {
		v.Add(err.Error())
	}

	if email == "" {
		v.Add("Email is required")
	} else if err := ValidateEmail(email); err != nil {
		v.Add(err.Error())
	}

	if password == "" {
		v.Add("Password is required")
	} else if err := ValidatePassword(password); err != nil {
		v.Add(err.Error())
	}

	return v.Err()
}

// ProfilePayload is the explicit shape of a profile update request.
// Nil fields were absent from the payload and are left unchanged.
type ProfilePayload struct {
	Username *string
	Email    *string
	Bio      *string
}

// ValidateProfileUpdate checks only the fields present in the payload.
func ValidateProfileUpdate(p ProfilePayload) error {
	var v Violations

	if p.Username != nil {
		if err := ValidateUsername(*p.Username); err != nil {
			v.Add(err.Error())
		}
	}
	if p.Email != nil {
		if err := ValidateEmail(*p.Email); err != nil {
			v.Add(err.Error())
		}
	}
	if p.Bio != nil && len(*p.Bio) > maxBioLen {
		v.Add(fmt.Sprintf("Bio cannot exceed %d characters", maxBioLen))
	}

	return v.Err()
}
