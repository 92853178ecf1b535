package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host          string
		Port          int
		LogSQLQueries bool
	}
	Auth struct {
		// Secret verifies bearer tokens issued by the auth provider.
		Secret string
		// Issuer, when set, must match the token's iss claim.
		Issuer string
	}
	Blog struct {
		// CategoryMutationRole is "any-authenticated" or "admin-only".
		CategoryMutationRole string
	}
}
