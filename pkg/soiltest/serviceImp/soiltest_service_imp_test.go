package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
)

type fakeSoilTestRepo struct {
	tests []entities.SoilTest
}

func (f *fakeSoilTestRepo) Create(t *entities.SoilTest) error {
	t.TestID = uint(len(f.tests) + 1)
	f.tests = append(f.tests, *t)
	return nil
}

func (f *fakeSoilTestRepo) Recent(farmID uint, days int) ([]entities.SoilTest, error) {
	var out []entities.SoilTest
	for _, st := range f.tests {
		if st.FarmID == farmID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeSoilTestRepo) Latest(farmID uint) (*entities.SoilTest, error) {
	for i := len(f.tests) - 1; i >= 0; i-- {
		if f.tests[i].FarmID == farmID {
			return &f.tests[i], nil
		}
	}
	return nil, nil
}

func fptr(v float64) *float64 { return &v }

func TestSoilTestServiceCreateAndRecent(t *testing.T) {
	svc := NewSoilTestService(&fakeSoilTestRepo{})

	st, err := svc.Create(&entities.SoilTest{FarmID: 1, Date: time.Now(), SoilPH: fptr(6.2)})
	require.NoError(t, err)
	assert.NotZero(t, st.TestID)

	_, err = svc.Create(&entities.SoilTest{FarmID: 2, Date: time.Now(), SoilPH: fptr(7.1)})
	require.NoError(t, err)

	got, err := svc.Recent(1, 365)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].FarmID)
}
