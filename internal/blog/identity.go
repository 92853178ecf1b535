package blog

// RoleAdmin is the role claim value that marks administrator tokens.
const RoleAdmin = "admin"

// Identity is the authenticated caller as established by the auth
// provider's token. The zero value is an anonymous caller.
type Identity struct {
	UserID string
	Role   string
}

func (id Identity) Authenticated() bool {
	return id.UserID != ""
}

// ownerOnly allows a mutation only for the stored owner of a resource.
// A missing identity and an identity mismatch are distinct failures:
// the caller needs to tell "not logged in" apart from "not the owner".
func ownerOnly(caller Identity, ownerID string) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if caller.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}
