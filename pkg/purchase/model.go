package purchase

import "gorm.io/gorm"

type Purchase struct {
	gorm.Model                // ID, CreatedAt, UpdatedAt, DeletedAt
	FarmID      uint     `json:"farm_id" gorm:"index"`
	RecID       *uint    `json:"rec_id"` // recommendation that prompted it, if any
	Date        string   `json:"date" gorm:"index"` // YYYY-MM-DD
	Supplier    string   `json:"supplier"`
	Fertilizer  string   `json:"fertilizer"`
	QtyKg       float64  `json:"qty_kg"`
	Notes       string   `json:"notes"`
	Status      string   `json:"status" gorm:"index"` // planned|ordered|delivered|paid
	InvoiceNo   *string  `json:"invoice_no"`
	ActualQtyKg *float64 `json:"actual_qty_kg"`
	PricePerKg  *float64 `json:"price_per_kg"`
	NetAmount   *float64 `json:"net_amount"`
}
