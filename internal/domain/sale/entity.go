package sale

import (
	"errors"
	"time"
)

var (
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
)

// PaymentMethod é o conjunto fechado de formas de pagamento aceitas
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid verifica se a forma de pagamento pertence ao conjunto aceito
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Item é uma linha de venda com os valores congelados no momento do commit.
// ProductName e Price são cópias: a exclusão posterior do produto não
// altera o histórico.
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Total retorna o valor da linha
func (i Item) Total() float64 {
	return float64(i.Quantity) * i.Price
}

// Sale representa uma venda concluída. É imutável: não existe operação
// de edição ou exclusão sobre uma venda registrada.
type Sale struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Items         []Item        `json:"items"`
	Total         float64       `json:"total"`
	Profit        float64       `json:"profit"`
	CustomerID    string        `json:"customer_id,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}
