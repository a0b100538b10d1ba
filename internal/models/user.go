package models

type User struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Password           string `json:"password,omitempty"`
	FullName           string `json:"fullName"`
	DateOfBirth        string `json:"dateOfBirth,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Country            string `json:"country,omitempty"`
	ReceiveNewsLetters bool   `json:"receiveNewsLetters"`
	Role               string `json:"role"`
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Country is an entry of the fixed country list offered on registration.
type Country struct {
	ID   int
	Name string
}

func Countries() []Country {
	return []Country{
		{ID: 1, Name: "India"},
		{ID: 2, Name: "USA"},
		{ID: 3, Name: "UK"},
		{ID: 4, Name: "Japan"},
		{ID: 5, Name: "France"},
		{ID: 6, Name: "Brazil"},
		{ID: 7, Name: "Mexico"},
		{ID: 8, Name: "Canada"},
	}
}
