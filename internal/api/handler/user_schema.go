package handler

// --- Request types ---

type signUpRequest struct {
	Name           string   `json:"name"            validate:"required,min=3"`
	Email          string   `json:"email"           validate:"required,email"`
	Password       string   `json:"password"        validate:"required,min=6"`
	Phone          string   `json:"phone"           validate:"omitempty"`
	DocumentType   string   `json:"document_type"   validate:"omitempty,oneof=CPF CNPJ"`
	DocumentNumber string   `json:"document_number" validate:"omitempty"`
	IsAdmin        bool     `json:"is_admin"`
	Roles          []string `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is the explicit partial-update shape: nil means "leave
// unchanged". Arbitrary keys in the body are ignored by binding.
type updateUserRequest struct {
	Name           *string   `json:"name"            validate:"omitempty,min=3"`
	Email          *string   `json:"email"           validate:"omitempty,email"`
	Password       *string   `json:"password"        validate:"omitempty,min=6"`
	Phone          *string   `json:"phone"`
	DocumentType   *string   `json:"document_type"   validate:"omitempty,oneof=CPF CNPJ"`
	DocumentNumber *string   `json:"document_number"`
	IsAdmin        *bool     `json:"is_admin"`
	Roles          *[]string `json:"roles"`
}
