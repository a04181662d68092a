package pkg

import "net/http"

// AppError is the error shape returned by the HTTP layer.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError hides the wrapped cause; it is only meant for logs.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Status: e.HTTPStatus}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return NewDomainError(code, message, nil, status)
}
