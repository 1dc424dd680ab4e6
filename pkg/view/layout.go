package view

// NavUser is the header's slice of the session: enough to greet the user and
// decide which links to show.
type NavUser struct {
	Name    string
	IsAdmin bool
}

// Layout carries everything the shared shell needs on every page.
type Layout struct {
	Title      string
	Flash      *Flash
	User       *NavUser
	Categories []string
	Query      string
	Category   string
	CartCount  int
}
