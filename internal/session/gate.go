package session

// Route is where the client sends the user next.
type Route int

const (
	RouteLogin Route = iota
	RouteUser
	RouteAdmin
)

func (r Route) String() string {
	switch r {
	case RouteUser:
		return "user dashboard"
	case RouteAdmin:
		return "admin dashboard"
	default:
		return "login"
	}
}

// Gate decides whether a protected surface may be used at all, and which one.
type Gate struct {
	store *Store
}

func NewGate(store *Store) *Gate {
	return &Gate{store: store}
}

// Route inspects the stored credential. Missing credential routes to login.
// An undecodable credential also destroys the stored session, so the next
// call starts from a clean unauthorized state.
func (g *Gate) Route() (Route, *Claims) {
	credential, ok := g.store.Get()
	if !ok {
		return RouteLogin, nil
	}
	claims, err := Decode(credential)
	if err != nil {
		_ = g.store.Clear()
		return RouteLogin, nil
	}
	if claims.Role == RoleAdmin {
		return RouteAdmin, claims
	}
	return RouteUser, claims
}

// Authorized reports whether a credential is present and decodable.
func (g *Gate) Authorized() bool {
	r, _ := g.Route()
	return r != RouteLogin
}
