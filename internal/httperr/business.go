package httperr

import "errors"

// BusinessError carrega um código estável de regra de negócio, traduzido para
// status HTTP apenas na borda (handlers).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Códigos usados pelo domínio de usuários.
const (
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeEmailTaken   = "email_taken"
	CodeNameRequired = "name_required"
	CodeLastAdmin    = "last_admin"
)
