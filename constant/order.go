package constant

// OrderStatus is shared by the manufacturer and institute sides of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// IsTerminal reports whether no further transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusRejected || s == OrderStatusDelivered
}

const (
	RemarksCreated              = "No remarks"
	RemarksApproved             = "Approved and ready for dispatch"
	RemarksRejected             = "Rejected by manufacturer"
	RemarksManufacturerDelivery = "Delivered by manufacturer, awaiting institute confirmation"
	RemarksInstituteDelivery    = "Delivery confirmed by institute, awaiting manufacturer"
	RemarksCompleted            = "Delivered and reconciled into institute inventory"
	RemarksStaleApproval        = "Approval withdrawn: manufacturer rejected the order"
)
