package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/pkg/purchase"
	svc "krishi/pkg/purchase/service"
)

type fakePurchaseRepo struct {
	rows map[uint]*purchase.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{rows: map[uint]*purchase.Purchase{}}
}

func (f *fakePurchaseRepo) Create(p *purchase.Purchase) error {
	p.ID = uint(len(f.rows) + 1)
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePurchaseRepo) Update(p *purchase.Purchase) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePurchaseRepo) FindByID(id uint) (*purchase.Purchase, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePurchaseRepo) ListByFarm(farmID uint, from, to *time.Time) ([]purchase.Purchase, error) {
	var out []purchase.Purchase
	for _, p := range f.rows {
		if p.FarmID == farmID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func sptr(v string) *string   { return &v }
func fptr(v float64) *float64 { return &v }

func TestCreateRequiresDateAndDefaultsStatus(t *testing.T) {
	s := New(newFakePurchaseRepo())

	err := s.Create(&purchase.Purchase{FarmID: 1, Fertilizer: "Urea", QtyKg: 200})
	assert.Error(t, err)

	p := &purchase.Purchase{FarmID: 1, Date: "2026-08-20", Fertilizer: "Urea", QtyKg: 200}
	require.NoError(t, s.Create(p))
	assert.Equal(t, "planned", p.Status)

	// an explicit status is kept
	p2 := &purchase.Purchase{FarmID: 1, Date: "2026-08-21", Fertilizer: "DAP", QtyKg: 100, Status: "ordered"}
	require.NoError(t, s.Create(p2))
	assert.Equal(t, "ordered", p2.Status)
}

func TestUpdatePartialComputesNetAmount(t *testing.T) {
	repo := newFakePurchaseRepo()
	s := New(repo)

	p := &purchase.Purchase{FarmID: 1, Date: "2026-08-20", Fertilizer: "Urea", QtyKg: 200}
	require.NoError(t, s.Create(p))

	// quantity alone leaves the total unset
	got, err := s.UpdatePartial(p.ID, svc.PurchasePatch{ActualQtyKg: fptr(195)})
	require.NoError(t, err)
	assert.Nil(t, got.NetAmount)

	// once the price lands, the total follows from both
	got, err = s.UpdatePartial(p.ID, svc.PurchasePatch{PricePerKg: fptr(6.5), Status: sptr("delivered")})
	require.NoError(t, err)
	require.NotNil(t, got.NetAmount)
	assert.InDelta(t, 1267.5, *got.NetAmount, 1e-9)
	assert.Equal(t, "delivered", got.Status)

	// a later quantity correction recomputes it
	got, err = s.UpdatePartial(p.ID, svc.PurchasePatch{ActualQtyKg: fptr(200)})
	require.NoError(t, err)
	require.NotNil(t, got.NetAmount)
	assert.InDelta(t, 1300, *got.NetAmount, 1e-9)

	// the change is persisted, not just returned
	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.NetAmount)
	assert.InDelta(t, 1300, *stored.NetAmount, 1e-9)
}

func TestUpdatePartialPatchesFields(t *testing.T) {
	s := New(newFakePurchaseRepo())

	p := &purchase.Purchase{FarmID: 1, Date: "2026-08-20", Fertilizer: "Urea", QtyKg: 200}
	require.NoError(t, s.Create(p))

	got, err := s.UpdatePartial(p.ID, svc.PurchasePatch{
		Supplier:  sptr("Agro Depot"),
		InvoiceNo: sptr("INV-042"),
		Notes:     sptr("picked up at the mandi"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Agro Depot", got.Supplier)
	require.NotNil(t, got.InvoiceNo)
	assert.Equal(t, "INV-042", *got.InvoiceNo)
	assert.Equal(t, "picked up at the mandi", got.Notes)
	// untouched fields survive the patch
	assert.Equal(t, "Urea", got.Fertilizer)
	assert.Equal(t, 200.0, got.QtyKg)

	_, err = s.UpdatePartial(999, svc.PurchasePatch{Status: sptr("paid")})
	assert.Error(t, err)
}
