package responses

type LoginUser struct {
	NeedPasswordChange bool   `json:"needPasswordChange"`
	AccessToken        string `json:"accessToken"`
}

// LoginResult is what the auth usecase hands back to the controller; the
// refresh token only travels as a cookie.
type LoginResult struct {
	LoginUser
	RefreshToken string `json:"-"`
}
