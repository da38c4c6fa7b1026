package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		caseName string
		want     string
	}{
		{"user_accounts", PascalCase, "UserAccounts"},
		{"user_accounts", CamelCase, "userAccounts"},
		{"user_accounts", SnakeCase, "user_accounts"},
		{"user_accounts", KebabCase, "user-accounts"},
		{"user_accounts", ScreamingSnakeCase, "USER_ACCOUNTS"},
		{"user_id", PascalCase, "UserId"},
		{"UserId", SnakeCase, "user_id"},
		{"userId", SnakeCase, "user_id"},
		{"order-items", PascalCase, "OrderItems"},
		{"HTTPServer", SnakeCase, "http_server"},
		{"created_at2", PascalCase, "CreatedAt2"},
		{"", PascalCase, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.caseName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Convert(tt.input, tt.caseName))
		})
	}
}

func TestConvertIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"user_accounts", "UserAccounts", "userAccounts", "order-items", "id"}
	cases := []string{PascalCase, CamelCase, SnakeCase, KebabCase, ScreamingSnakeCase}
	for _, in := range inputs {
		for _, c := range cases {
			once := Convert(in, c)
			assert.Equal(t, once, Convert(once, c), "case %s on %q", c, in)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_accounts", Convert(Convert("user_accounts", PascalCase), SnakeCase))
	assert.Equal(t, "UserAccounts", Convert(Convert("UserAccounts", SnakeCase), PascalCase))
}

func TestConvertUnknownCasePassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_accounts", Convert("user_accounts", "piglatin"))
}
