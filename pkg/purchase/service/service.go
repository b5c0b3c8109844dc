package service

import (
	"time"

	"krishi/pkg/purchase"
)

type Service interface {
	Create(in *purchase.Purchase) error
	ListByFarm(farmID uint, from *time.Time, to *time.Time) ([]purchase.Purchase, error)
	UpdatePartial(id uint, patch PurchasePatch) (*purchase.Purchase, error)
}

type PurchasePatch struct {
	Status      *string  `json:"status"`
	InvoiceNo   *string  `json:"invoice_no"`
	ActualQtyKg *float64 `json:"actual_qty_kg"`
	PricePerKg  *float64 `json:"price_per_kg"`
	Notes       *string  `json:"notes"`
	Date        *string  `json:"date"`
	Supplier    *string  `json:"supplier"`
	Fertilizer  *string  `json:"fertilizer"`
	QtyKg       *float64 `json:"qty_kg"`
}
