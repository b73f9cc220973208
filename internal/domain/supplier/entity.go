package supplier

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("nome do fornecedor não pode ser vazio")
	ErrEmptyPhone = errors.New("telefone do fornecedor não pode ser vazio")
)

// Supplier representa um fornecedor.
// Balance é um saldo manual: positivo quando devemos ao fornecedor,
// negativo quando o fornecedor nos deve.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft carrega os campos editáveis de um fornecedor antes da validação
type Draft struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
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

// New cria um novo fornecedor a partir de um draft validado
func New(d Draft) (*Supplier, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Supplier{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.apply(d, now)
	return s, nil
}

// Apply substitui todos os campos exceto o ID
func (s *Supplier) Apply(d Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.apply(d, time.Now())
	return nil
}

func (s *Supplier) apply(d Draft, now time.Time) {
	s.Name = strings.TrimSpace(d.Name)
	s.Phone = strings.TrimSpace(d.Phone)
	s.Address = d.Address
	s.Balance = d.Balance
	s.UpdatedAt = now
}
