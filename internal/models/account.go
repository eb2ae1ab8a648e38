package models

// AccountClass identifies one of the three disjoint account tables.
type AccountClass string

const (
	ClassPatient AccountClass = "patient"
	ClassDoctor  AccountClass = "doctor"
	ClassAdmin   AccountClass = "admin"
)

// AccountClasses lists every class in a stable order.
var AccountClasses = []AccountClass{ClassPatient, ClassDoctor, ClassAdmin}

// Table is the name of the table holding accounts of this class.
func (c AccountClass) Table() string {
	switch c {
	case ClassPatient:
		return Patient{}.TableName()
	case ClassDoctor:
		return Doctor{}.TableName()
	case ClassAdmin:
		return Admin{}.TableName()
	}
	return ""
}

// IdentifyingColumn is the uniquely constrained column used as the login key.
func (c AccountClass) IdentifyingColumn() string {
	if c == ClassAdmin {
		return "username"
	}
	return "email"
}

// LoginPath is the login entry point a caller of this class is sent to.
func (c AccountClass) LoginPath() string {
	return "/api/v1/auth/" + string(c) + "/login"
}

// DashboardPath is where a caller of this class lands after logging in.
func (c AccountClass) DashboardPath() string {
	return "/api/v1/" + string(c) + "/dashboard"
}

// Credential is the projection read when verifying a login.
type Credential struct {
	ID           uint64
	PasswordHash string
}

// LoginInput is shared by the three login forms. Identifier carries the
// email for patients and doctors, the username for admins.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Identifier returns the identifying value for the given class.
func (in LoginInput) Identifier(c AccountClass) string {
	if c == ClassAdmin {
		return in.Username
	}
	return in.Email
}
