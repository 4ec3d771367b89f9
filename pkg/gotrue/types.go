package gotrue

// User is the identity the backend associates with an account or token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the credential pair plus identity returned by a successful
// sign-in. This service never stores it beyond one request/response cycle.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
