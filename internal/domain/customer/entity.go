package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("nome do cliente não pode ser vazio")
	ErrEmptyPhone = errors.New("telefone do cliente não pode ser vazio")
)

// Customer representa um cliente do caderno de fiado.
// Debt é um saldo manual, lançado pelo operador; nunca é derivado das vendas.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	Debt      float64   `json:"debt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft carrega os campos editáveis de um cliente antes da validação
type Draft struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Debt    float64 `json:"debt"`
}

// Validate verifica os campos obrigatórios
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(d.Phone) == "" {
		return ErrEmptyPhone
	}
	return nil
}

// New cria um novo cliente a partir de um draft validado
func New(d Draft) (*Customer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &Customer{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.apply(d, now)
	return c, nil
}

// Apply substitui todos os campos exceto o ID
func (c *Customer) Apply(d Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.apply(d, time.Now())
	return nil
}

func (c *Customer) apply(d Draft, now time.Time) {
	c.Name = strings.TrimSpace(d.Name)
	c.Phone = strings.TrimSpace(d.Phone)
	c.Address = d.Address
	c.Debt = d.Debt
	c.UpdatedAt = now
}
