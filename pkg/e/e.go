package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrCustomerNameRequired   = fmt.Errorf("customer name is required")
	ErrCustomerEmailRequired  = fmt.Errorf("customer email is required")
	ErrEmptyOrder             = fmt.Errorf("order must contain at least one item")
	ErrQuantityMustBePositive = fmt.Errorf("quantity must be positive")
	ErrProductNameRequired    = fmt.Errorf("product name is required")
	ErrCategoryNameRequired   = fmt.Errorf("category name is required")
	ErrInvalidSlug            = fmt.Errorf("slug must be url-safe")
	ErrSlugTaken              = fmt.Errorf("category slug already exists")
	ErrInvalidPrice           = fmt.Errorf("invalid price")
	ErrPricePrecision         = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidOrderStatus     = fmt.Errorf("invalid order status")
	ErrMissingFields          = fmt.Errorf("missing required fields")
	ErrExpectedMultipart      = fmt.Errorf("expected multipart/form-data")
	ErrFileTooLarge           = fmt.Errorf("file too large")
	ErrUnsupportedMediaType   = fmt.Errorf("unsupported media type")
	ErrStatusBadRequest       = fmt.Errorf("bad request")

	// 404 Not Found
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
