package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
)

var (
	ErrEmptyCart     = errors.New("carrinho vazio")
	ErrCartCommitted = errors.New("venda já concluída; inicie uma nova venda")
)

// State é o estado do carrinho
type State string

const (
	// StateBuilding indica que itens ainda estão sendo acumulados
	StateBuilding State = "building"
	// StateCommitted indica que a venda foi concluída e o carrinho está vazio
	StateCommitted State = "committed"
)

// Line é uma linha do carrinho: apenas produto e quantidade pedida.
// Preço e custo não são congelados aqui; a venda usa os valores vivos
// do catálogo no momento do commit.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ItemView é a projeção de uma linha do carrinho com os dados vivos do produto
type ItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Stock     int     `json:"stock"`
	LineTotal float64 `json:"line_total"`
}

// Ledger registra uma venda concluída em um único passo atômico:
// cálculo do lucro com os custos vivos, criação da venda com os
// snapshots de nome e preço, abatimento do estoque e gravação no
// histórico. Retorna os nomes dos produtos cujo abatimento precisou
// ser truncado em zero.
type Ledger interface {
	RecordSale(ctx context.Context, lines []Line, customerID string, method sale.PaymentMethod) (*sale.Sale, []string, error)
}

// Cart é a sessão de checkout em andamento. Existe só em memória e é
// descartado tanto no commit quanto no cancelamento.
type Cart struct {
	mu       sync.Mutex
	catalog  product.Repository
	ledger   Ledger
	state    State
	lines    []Line
	lastSale *sale.Sale
}

// NewCart cria um carrinho vazio em estado Building
func NewCart(catalog product.Repository, ledger Ledger) *Cart {
	return &Cart{
		catalog: catalog,
		ledger:  ledger,
		state:   StateBuilding,
	}
}

// AddItem adiciona uma unidade do produto ao carrinho, respeitando o
// estoque vivo: linha existente só cresce se ainda houver estoque, e
// produto sem estoque não entra. Exceder o limite é um no-op silencioso,
// não um erro (política de admissão de estoque).
func (c *Cart) AddItem(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCommitted {
		return ErrCartCommitted
	}

	p, err := c.catalog.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Quantity < p.Stock {
				c.lines[i].Quantity++
			}
			return nil
		}
	}

	if p.Stock > 0 {
		c.lines = append(c.lines, Line{ProductID: productID, Quantity: 1})
	}
	return nil
}

// SetQuantity define a quantidade de uma linha existente. Valores não
// positivos removem a linha; valores acima do estoque vivo são truncados.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCommitted {
		return ErrCartCommitted
	}

	if quantity <= 0 {
		c.removeLine(productID)
		return nil
	}

	p, err := c.catalog.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if quantity > p.Stock {
				quantity = p.Stock
			}
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// RemoveItem remove a linha do produto, se presente
func (c *Cart) RemoveItem(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCommitted {
		return ErrCartCommitted
	}
	c.removeLine(productID)
	return nil
}

func (c *Cart) removeLine(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Items retorna a projeção do carrinho com nome, preço e estoque vivos.
// Linhas cujo produto foi removido do catálogo são omitidas da projeção.
func (c *Cart) Items(ctx context.Context) ([]ItemView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	views := make([]ItemView, 0, len(c.lines))
	for _, line := range c.lines {
		p, err := c.catalog.FindByID(ctx, line.ProductID)
		if err != nil {
			continue
		}
		views = append(views, ItemView{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
			Stock:     p.Stock,
			LineTotal: float64(line.Quantity) * p.Price,
		})
	}
	return views, nil
}

// Total soma quantidade × preço vivo de todas as linhas. Função pura,
// recalculada a cada chamada.
func (c *Cart) Total(ctx context.Context) (float64, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += item.LineTotal
	}
	return total, nil
}

// Commit conclui a venda: carrinho vazio é rejeitado sem nenhuma
// mutação; caso contrário o Ledger aplica o passo atômico e o carrinho
// transiciona para Committed, vazio.
func (c *Cart) Commit(ctx context.Context, customerID string, method sale.PaymentMethod) (*sale.Sale, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCommitted {
		return nil, nil, ErrCartCommitted
	}
	if len(c.lines) == 0 {
		return nil, nil, ErrEmptyCart
	}
	if !method.Valid() {
		return nil, nil, sale.ErrInvalidPaymentMethod
	}

	committed, clamped, err := c.ledger.RecordSale(ctx, c.lines, customerID, method)
	if err != nil {
		return nil, nil, err
	}

	c.state = StateCommitted
	c.lines = nil
	c.lastSale = committed
	return committed, clamped, nil
}

// Cancel descarta o carrinho sem criar venda e volta para Building.
// Também serve para iniciar uma nova venda depois de um commit.
func (c *Cart) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateBuilding
	c.lines = nil
	c.lastSale = nil
}

// State retorna o estado atual do carrinho
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastSale retorna a venda do último commit, para exibição do recibo
func (c *Cart) LastSale() *sale.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSale
}
