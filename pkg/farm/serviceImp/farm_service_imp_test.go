package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
)

type fakeFarmRepo struct {
	farms []entities.Farm
}

func (f *fakeFarmRepo) Create(fm *entities.Farm) error {
	fm.FarmID = uint(len(f.farms) + 1)
	f.farms = append(f.farms, *fm)
	return nil
}

func (f *fakeFarmRepo) FindByID(id uint, uid string) (*entities.Farm, error) {
	for _, fm := range f.farms {
		if fm.FarmID == id && fm.UserID == uid {
			return &fm, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeFarmRepo) ListByUser(uid string) ([]entities.Farm, error) {
	var out []entities.Farm
	for _, fm := range f.farms {
		if fm.UserID == uid {
			out = append(out, fm)
		}
	}
	return out, nil
}

func TestFarmServiceScopesByUser(t *testing.T) {
	svc := NewFarmService(&fakeFarmRepo{})

	mine, err := svc.CreateFarm(&entities.Farm{UserID: "U1", Name: "North plot", CropType: "Paddy"})
	require.NoError(t, err)
	require.NotZero(t, mine.FarmID)
	_, err = svc.CreateFarm(&entities.Farm{UserID: "U2", Name: "Other plot"})
	require.NoError(t, err)

	got, err := svc.GetFarmByID(mine.FarmID, "U1")
	require.NoError(t, err)
	assert.Equal(t, "North plot", got.Name)

	// another user's id must not resolve the farm
	_, err = svc.GetFarmByID(mine.FarmID, "U2")
	assert.Error(t, err)

	list, err := svc.ListFarms("U1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.FarmID, list[0].FarmID)
}
