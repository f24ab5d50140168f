package order

// ConfirmationMessage is the fixed text returned for every accepted order.
const ConfirmationMessage = "You placed the order successfully. Thanks for using our services. Enjoy your food :)"

// OrderRequest is the transient payload of a single order attempt. Nothing in
// it is persisted.
type OrderRequest struct {
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// InvalidOrderError is returned by the validation pipeline when a business
// rule on the request itself is violated. Reason is user-facing.
type InvalidOrderError struct {
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return e.Reason
}
