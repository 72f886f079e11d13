package domain

// Account is one record of the account directory: credentials plus the
// display name captured at registration. The directory is a single
// email-keyed document in the persistent store.
type Account struct {
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
}

// Accounts maps email to account record.
type Accounts map[string]Account
