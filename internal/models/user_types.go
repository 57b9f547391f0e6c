package models

// User is the model for the 'users' table.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Fullname string `json:"fullname" db:"fullname"`
	Nickname string `json:"nickname" db:"nickname"`
}

func (User) TableName() string { return "users" }
func (User) Label() string     { return "User" }

func (User) Columns() []string {
	return []string{"name", "fullname", "nickname"}
}

func (u *User) Values() []any {
	return []any{u.Name, u.Fullname, u.Nickname}
}

func (u *User) ScanTargets() []any {
	return []any{&u.ID, &u.Name, &u.Fullname, &u.Nickname}
}

func (u *User) SetID(id int64) { u.ID = id }

// Address is the model for the 'addresses' table. Every address belongs to
// exactly one user.
type Address struct {
	ID           int64  `json:"id" db:"id"`
	EmailAddress string `json:"email_address" db:"email_address"`
	UserID       int64  `json:"user_id" db:"user_id"`
}

func (Address) TableName() string { return "addresses" }
func (Address) Label() string     { return "Address" }

func (Address) Columns() []string {
	return []string{"email_address", "user_id"}
}

func (a *Address) Values() []any {
	return []any{a.EmailAddress, a.UserID}
}

func (a *Address) ScanTargets() []any {
	return []any{&a.ID, &a.EmailAddress, &a.UserID}
}

func (a *Address) SetID(id int64) { a.ID = id }
