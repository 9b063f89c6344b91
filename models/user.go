package models

import "time"

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"passwordHash"` // Simulated, compared verbatim
	IsAdmin          bool      `json:"isAdmin"`
	IsCreator        bool      `json:"isCreator"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// CreatorSignupData is the payload of the creator signup form.
type CreatorSignupData struct {
	FullName            string          `json:"fullName" binding:"required"`
	Email               string          `json:"email" binding:"required,email"`
	Password            string          `json:"password" binding:"required"`
	PortfolioLink       string          `json:"portfolioLink"`
	Softwares           map[string]bool `json:"softwares"`
	Specialization      string          `json:"specialization"`
	OtherSpecialization string          `json:"otherSpecialization"`
	TermsAccepted       bool            `json:"termsAccepted"`
}
