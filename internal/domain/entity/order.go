package entity

import "github.com/shopspring/decimal"

// Estados de pedido.
const (
	OrderUnpaid    = "UNPAID"
	OrderPaid      = "PAID"
	OrderShipped   = "SHIPPED"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// Métodos de pago.
const (
	PaymentAlipay  = "ALIPAY"
	PaymentWechat  = "WECHAT"
	PaymentBalance = "BALANCE"
)

// OrderItem línea de un pedido.
type OrderItem struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// Order pedido del usuario.
type Order struct {
	OrderNo       string          `json:"orderNo"`
	UserID        int64           `json:"userId"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PayAmount     decimal.Decimal `json:"payAmount"`
	Status        string          `json:"status"`
	ReceiverName  string          `json:"receiverName,omitempty"`
	ReceiverPhone string          `json:"receiverPhone,omitempty"`
	Freight       decimal.Decimal `json:"freight"`
	Address       string          `json:"receiverAddress,omitempty"`
	Remark        string          `json:"remark,omitempty"`
	Items         []OrderItem     `json:"items,omitempty"`
}

// Address dirección de envío. IsDefault viaja como 0/1; la conversión vive en el adaptador del gateway.
type Address struct {
	ID           int64
	ReceiverName string
	Phone        string
	Province     string
	City         string
	District     string
	Detail       string
	IsDefault    bool
}

// Payment resultado de iniciar un pago.
type Payment struct {
	OrderNo       string          `json:"orderNo"`
	PayAmount     decimal.Decimal `json:"payAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Message       string          `json:"message,omitempty"`
	TransactionNo string          `json:"transactionNo,omitempty"`
}
