package report

import (
	"context"
	"sort"
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
)

// Aggregator deriva relatórios do histórico de vendas e do catálogo.
// É somente leitura e recalcula tudo sob demanda: com centenas a poucos
// milhares de vendas não há necessidade de agregação incremental.
type Aggregator struct {
	sales    sale.Repository
	products product.Repository
}

// NewAggregator cria um agregador sobre os repositórios informados
func NewAggregator(sales sale.Repository, products product.Repository) *Aggregator {
	return &Aggregator{sales: sales, products: products}
}

// DayTotal é o total vendido em um dia fixo da semana
type DayTotal struct {
	Weekday time.Weekday `json:"weekday"`
	Day     string       `json:"day"`
	Total   float64      `json:"total"`
}

// SalesByDay soma o total de cada venda no balde do dia da semana do
// seu timestamp. Sempre retorna os sete baldes, de domingo a sábado.
func (a *Aggregator) SalesByDay(ctx context.Context) ([]DayTotal, error) {
	sales, err := a.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make([]DayTotal, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		buckets[d] = DayTotal{Weekday: d, Day: d.String()}
	}
	for _, s := range sales {
		buckets[s.Date.Weekday()].Total += s.Total
	}
	return buckets, nil
}

// TopProduct é um produto no ranking de mais vendidos
type TopProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// TopProducts agrupa as linhas de venda por produto, soma as
// quantidades e retorna os cinco mais vendidos. A ordenação é estável:
// empates ficam na ordem de primeira ocorrência no histórico.
func (a *Aggregator) TopProducts(ctx context.Context) ([]TopProduct, error) {
	sales, err := a.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	ranking := make([]TopProduct, 0)
	for _, s := range sales {
		for _, item := range s.Items {
			i, seen := index[item.ProductID]
			if !seen {
				index[item.ProductID] = len(ranking)
				ranking = append(ranking, TopProduct{
					ProductID: item.ProductID,
					Name:      item.ProductName,
				})
				i = index[item.ProductID]
			}
			ranking[i].UnitsSold += item.Quantity
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].UnitsSold > ranking[j].UnitsSold
	})

	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking, nil
}

// CategoryTotal é a receita acumulada de uma categoria
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SalesByCategory resolve cada linha de venda contra o catálogo vivo
// para descobrir a categoria e soma quantidade × preço por categoria.
// Linhas de produtos já removidos não contribuem: a junção falha.
func (a *Aggregator) SalesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	sales, err := a.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := a.products.List(ctx)
	if err != nil {
		return nil, err
	}

	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}

	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	for _, s := range sales {
		for _, item := range s.Items {
			category, ok := categoryOf[item.ProductID]
			if !ok {
				continue
			}
			i, seen := index[category]
			if !seen {
				index[category] = len(totals)
				totals = append(totals, CategoryTotal{Category: category})
				i = index[category]
			}
			totals[i].Total += item.Total()
		}
	}
	return totals, nil
}

// Summary são os indicadores do painel da loja
type Summary struct {
	TotalSales    float64      `json:"total_sales"`
	TotalProfit   float64      `json:"total_profit"`
	LowStockCount int          `json:"low_stock_count"`
	ExpiredCount  int          `json:"expired_count"`
	RecentSales   []*sale.Sale `json:"recent_sales"`
}

// Summarize calcula os indicadores do painel: total vendido, lucro
// acumulado, produtos em estoque baixo, produtos vencidos e as cinco
// vendas mais recentes.
func (a *Aggregator) Summarize(ctx context.Context) (*Summary, error) {
	sales, err := a.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := a.products.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RecentSales: make([]*sale.Sale, 0, 5)}
	for _, s := range sales {
		summary.TotalSales += s.Total
		summary.TotalProfit += s.Profit
	}
	if len(sales) > 5 {
		sales = sales[:5]
	}
	summary.RecentSales = sales

	now := time.Now()
	for _, p := range products {
		if p.IsLowStock() {
			summary.LowStockCount++
		}
		if p.IsExpired(now) {
			summary.ExpiredCount++
		}
	}
	return summary, nil
}
