package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SeedSampleData inserts demo customers, suppliers, and products when the
// customers table is empty. Intended for development environments only.
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	var customerCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&customerCount); err != nil {
		return fmt.Errorf("failed to check for existing customers: %w", err)
	}
	if customerCount > 0 {
		return nil
	}

	now := time.Now().UTC()

	customers := []domain.Customer{
		{Name: "Ahmed Mohamed Ali", Phone: "01012345678", Address: "Cairo, Heliopolis"},
		{Name: "Fatma Ahmed Hassan", Phone: "01098765432", Address: "Alexandria, Raml Station"},
		{Name: "Mohamed Abdelrahman", Phone: "01123456789", Address: "Giza, Dokki"},
	}
	for _, c := range customers {
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (name, phone, address, balance, status, created_date)
			VALUES ($1, $2, $3, 0, 'active', $4);
		`, c.Name, c.Phone, c.Address, now)
		if err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", c.Name, err)
		}
	}

	suppliers := []domain.Supplier{
		{Name: "Pyramid Trading Co.", Phone: "01234567890", Address: "Cairo, Haram Street", ContactPerson: "Amr Ahmed"},
		{Name: "Nile Foodstuffs Est.", Phone: "01987654321", Address: "Alexandria, Berket El Sab", ContactPerson: "Sara Ali"},
	}
	for _, s := range suppliers {
		_, err := pool.Exec(ctx, `
			INSERT INTO suppliers (name, phone, address, contact_person, balance, status, created_date)
			VALUES ($1, $2, $3, $4, 0, 'active', $5);
		`, s.Name, s.Phone, s.Address, s.ContactPerson, now)
		if err != nil {
			return fmt.Errorf("failed to seed supplier %q: %w", s.Name, err)
		}
	}

	products := []domain.Product{
		{Name: "Laptop", Code: "LAP001", Price: decimal.NewFromInt(15000), Cost: decimal.NewFromInt(12000), Quantity: 5, MinStock: 2, Category: "Electronics"},
		{Name: "Wireless Mouse", Code: "MOU001", Price: decimal.NewFromInt(200), Cost: decimal.NewFromInt(150), Quantity: 25, MinStock: 10, Category: "Accessories"},
		{Name: "Mechanical Keyboard", Code: "KBD001", Price: decimal.NewFromInt(800), Cost: decimal.NewFromInt(600), Quantity: 15, MinStock: 5, Category: "Accessories"},
		{Name: "24in Monitor", Code: "MON001", Price: decimal.NewFromInt(3500), Cost: decimal.NewFromInt(2800), Quantity: 8, MinStock: 3, Category: "Electronics"},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (name, code, price, cost, unit, quantity, min_stock, category, created_date)
			VALUES ($1, $2, $3, $4, 'piece', $5, $6, $7, $8);
		`, p.Name, p.Code, p.Price, p.Cost, p.Quantity, p.MinStock, p.Category, now)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Code, err)
		}
	}

	return nil
}
