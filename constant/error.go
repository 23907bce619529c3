package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidReference
	ErrInvalidQuantity
	ErrInvalidTransition
	ErrOutOfStock
	ErrMedicineUnavailable
	ErrReconciliationConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrForbidden:              "operation not allowed for this caller",
	ErrInvalidReference:       "referenced entity does not exist",
	ErrInvalidQuantity:        "quantity must be greater than zero",
	ErrInvalidTransition:      "order status transition not allowed",
	ErrOutOfStock:             "medicine out of stock",
	ErrMedicineUnavailable:    "medicine not available in institute inventory",
	ErrReconciliationConflict: "order already reconciled",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrForbidden:              http.StatusForbidden,
	ErrInvalidReference:       http.StatusNotFound,
	ErrInvalidQuantity:        http.StatusBadRequest,
	ErrInvalidTransition:      http.StatusConflict,
	ErrOutOfStock:             http.StatusUnprocessableEntity,
	ErrMedicineUnavailable:    http.StatusUnprocessableEntity,
	ErrReconciliationConflict: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrForbidden:              "0005",
	ErrInvalidReference:       "1001",
	ErrInvalidQuantity:        "1002",
	ErrInvalidTransition:      "1003",
	ErrOutOfStock:             "2001",
	ErrMedicineUnavailable:    "2002",
	ErrReconciliationConflict: "2003",
}
