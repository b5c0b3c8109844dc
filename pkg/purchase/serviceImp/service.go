package serviceImp

import (
	"errors"

	"time"

	"krishi/pkg/purchase"
	"krishi/pkg/purchase/repository"
	svc "krishi/pkg/purchase/service"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

func (s *service) Create(p *purchase.Purchase) error {
	if p.Date == "" {
		return errors.New("date is required")
	}
	if p.Status == "" {
		p.Status = "planned"
	}
	return s.repo.Create(p)
}

func (s *service) UpdatePartial(id uint, p svc.PurchasePatch) (*purchase.Purchase, error) {
	cur, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if p.InvoiceNo != nil {
		cur.InvoiceNo = p.InvoiceNo
	}
	if p.ActualQtyKg != nil {
		cur.ActualQtyKg = p.ActualQtyKg
	}
	if p.PricePerKg != nil {
		cur.PricePerKg = p.PricePerKg
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if p.Date != nil {
		cur.Date = *p.Date
	}
	if p.Supplier != nil {
		cur.Supplier = *p.Supplier
	}
	if p.Fertilizer != nil {
		cur.Fertilizer = *p.Fertilizer
	}
	if p.QtyKg != nil {
		cur.QtyKg = *p.QtyKg
	}
	// auto-calc net amount
	if cur.ActualQtyKg != nil && cur.PricePerKg != nil {
		v := (*cur.ActualQtyKg) * (*cur.PricePerKg)
		cur.NetAmount = &v
	}
	return cur, s.repo.Update(cur)
}

func (s *service) ListByFarm(farmID uint, from, to *time.Time) ([]purchase.Purchase, error) {
	return s.repo.ListByFarm(farmID, from, to)
}
