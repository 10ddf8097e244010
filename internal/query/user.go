package query

// UserOptions narrows a user lookup.
type UserOptions struct {
	ID      *string
	Email   *string
	Page    *int
	PerPage *int
}

var userColumns = []string{
	"users.id",
	"users.username",
	"users.email",
	"users.password_hash",
	"users.access_level",
	"users.created_at",
	"users.updated_at",
}

// BuildUser constructs the user lookup statement.
func BuildUser(o UserOptions) (string, []any) {
	s := newStatement("users", userColumns...)

	if o.ID != nil {
		s.and("users.id = " + s.arg(*o.ID))
	}
	if o.Email != nil {
		s.and("users.email = " + s.arg(*o.Email))
	}

	s.paginate(o.Page, o.PerPage)
	return s.SQL(), s.args
}
