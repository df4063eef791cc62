package entities

import "github.com/shopspring/decimal"

// CatalogService услуга маркетплейса, на которую оформляется заказ.
type CatalogService struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
