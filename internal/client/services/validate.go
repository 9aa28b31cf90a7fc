package services

// MinPasswordLength is enforced locally before registration and admin
// user-creation requests; the server applies the same bound.
const MinPasswordLength = 6

func validateLogin(username, password string) error {
	if username == "" {
		return &ValidationError{Reason: "username is required"}
	}
	if password == "" {
		return &ValidationError{Reason: "password is required"}
	}
	return nil
}

func validateRegistration(username, password, confirm string) error {
	if err := validateLogin(username, password); err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return &ValidationError{Reason: "password must be at least 6 characters long"}
	}
	if password != confirm {
		return &ValidationError{Reason: "passwords do not match"}
	}
	return nil
}
