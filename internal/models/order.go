package models

// OrderStatus is the fixed upstream status code set. The UI offers every
// status from every status; the upstream decides whether a transition is
// acceptable.
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusPlaced    OrderStatus = 2
	OrderStatusShipping  OrderStatus = 3
	OrderStatusDelivered OrderStatus = 4
	OrderStatusReceived  OrderStatus = 5
	OrderStatusCancelled OrderStatus = 6
)

// IsValid checks the code is one of the six known statuses.
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

// Label returns the display name for a status code.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusPlaced:
		return "Placed"
	case OrderStatusShipping:
		return "Shipping"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusReceived:
		return "Received"
	case OrderStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Order is the flat list-view record returned by GetAllOrderAdmin.
type Order struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	Phone       string  `json:"phone"`
	UserName    string  `json:"userName"`
}

// OrderItem is a line item inside an order detail.
type OrderItem struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"finalPrice"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	Variant    string  `json:"variant"`
}

// TimelineEntry is one status-change record in an order's history.
type TimelineEntry struct {
	Status      string `json:"status"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// OrderDetail is the full record returned by Get-Order-history.
type OrderDetail struct {
	ID              int             `json:"id"`
	Date            string          `json:"date"`
	Status          string          `json:"status"`
	StatusCode      OrderStatus     `json:"statusCode"`
	ShippingMethod  string          `json:"shippingMethod"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress string          `json:"shippingAdress"`
	PhoneNumber     string          `json:"phoneNumber"`
	ReceiverName    string          `json:"receiverName"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	Timeline        []TimelineEntry `json:"timeLine"`
}
