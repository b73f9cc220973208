package store

import (
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
	"github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
)

// Conjunto de dados inicial da loja, usado quando uma coleção ainda não
// foi persistida e após um reset.

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func seedProducts() []*product.Product {
	now := time.Now()
	return []*product.Product{
		{
			ID: "P1672532400001", Name: "زيت زيتون", Category: "زيوت",
			Price: 85, Cost: 70, Stock: 50, LowStockThreshold: 10,
			ExpiryDate:  date("2025-12-31"),
			ImageURL:    "https://placehold.co/100x100/c7e8c2/6a8f61?text=زيت",
			Description: "زيت زيتون بكر ممتاز، عصرة أولى على البارد.",
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: "P1672532400002", Name: "معجون طماطم", Category: "معلبات",
			Price: 5, Cost: 3.5, Stock: 120, LowStockThreshold: 20,
			ExpiryDate:  date("2024-10-01"),
			ImageURL:    "https://placehold.co/100x100/f8c7c7/a36262?text=طماطم",
			Description: "معجون طماطم مركز، مثالي للصلصات.",
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: "P1672532400003", Name: "سكر", Category: "أساسيات",
			Price: 10, Cost: 8, Stock: 200, LowStockThreshold: 50,
			ImageURL:    "https://placehold.co/100x100/f0f0f0/888?text=سكر",
			Description: "سكر أبيض نقي.",
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: "P1672532400004", Name: "شاي", Category: "مشروبات",
			Price: 25, Cost: 20, Stock: 80, LowStockThreshold: 15,
			ImageURL:    "https://placehold.co/100x100/e0d8c7/8c7d61?text=شاي",
			Description: "شاي أسود فاخر.",
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: "P1672532400005", Name: "قهوة", Category: "مشروبات",
			Price: 45, Cost: 38, Stock: 40, LowStockThreshold: 10,
			ImageURL:    "https://placehold.co/100x100/d4bca9/6b4f3a?text=قهوة",
			Description: "بن قهوة محمص.",
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: "P1672532400006", Name: "حليب", Category: "ألبان",
			Price: 7.5, Cost: 6, Stock: 90, LowStockThreshold: 20,
			ExpiryDate:  date("2024-07-30"),
			ImageURL:    "https://placehold.co/100x100/f5f5f5/555?text=حليب",
			Description: "حليب كامل الدسم.",
			CreatedAt:   now, UpdatedAt: now,
		},
	}
}

func seedCustomers() []*customer.Customer {
	now := time.Now()
	return []*customer.Customer{
		{
			ID: "C1672532400001", Name: "أحمد علي", Phone: "0501234567",
			Address: "123 شارع الملك فهد، الرياض", Debt: 150.75,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "C1672532400002", Name: "فاطمة محمد", Phone: "0557654321",
			Address: "456 طريق الأمير سلطان، جدة", Debt: 0,
			CreatedAt: now, UpdatedAt: now,
		},
		// Cliente "venda à vista": entidade reservada para vendas anônimas
		{
			ID: "C1672532400003", Name: "زبون نقدي", Phone: "N/A",
			Address: "N/A", Debt: 0,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func seedSuppliers() []*supplier.Supplier {
	now := time.Now()
	return []*supplier.Supplier{
		{
			ID: "S1672532400001", Name: "شركة المواد الغذائية المتحدة",
			Phone: "0112345678", Address: "المنطقة الصناعية، الرياض", Balance: 5200,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "S1672532400002", Name: "مزارع الخير",
			Phone: "0128765432", Address: "القصيم", Balance: 0,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func seedSales() []*sale.Sale {
	now := time.Now()
	return []*sale.Sale{
		{
			ID: "SA1672532400003", Date: now,
			Items: []sale.Item{
				{ProductID: "P1672532400004", ProductName: "شاي", Quantity: 1, Price: 25},
				{ProductID: "P1672532400005", ProductName: "قهوة", Quantity: 1, Price: 45},
			},
			Total: 70, Profit: 12, PaymentMethod: sale.PaymentCash,
		},
		{
			ID: "SA1672532400001", Date: now.Add(-24 * time.Hour),
			Items: []sale.Item{
				{ProductID: "P1672532400001", ProductName: "زيت زيتون", Quantity: 1, Price: 85},
				{ProductID: "P1672532400003", ProductName: "سكر", Quantity: 2, Price: 10},
			},
			Total: 105, Profit: 20, CustomerID: "C1672532400002", PaymentMethod: sale.PaymentCard,
		},
		{
			ID: "SA1672532400002", Date: now.Add(-48 * time.Hour),
			Items: []sale.Item{
				{ProductID: "P1672532400002", ProductName: "معجون طماطم", Quantity: 5, Price: 5},
			},
			Total: 25, Profit: 7.5, CustomerID: "C1672532400003", PaymentMethod: sale.PaymentCash,
		},
	}
}
