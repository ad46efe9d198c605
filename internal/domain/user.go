package domain

// User identifies the bearer of an API token. The service ships with a single
// demo identity; the ledger itself never inspects it beyond authentication.
type User struct {
	ID       int64
	Username string
	Email    string
}

// DemoUser is the identity embedded in demo tokens.
var DemoUser = User{
	ID:       1,
	Username: "demo",
	Email:    "demo@example.com",
}
