package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
)

type fakeScheduleRepo struct {
	tasks   []entities.ApplicationTask
	patched map[uint]string
}

func (f *fakeScheduleRepo) BulkInsert(ts []entities.ApplicationTask) error {
	f.tasks = append(f.tasks, ts...)
	return nil
}

func (f *fakeScheduleRepo) List(farmID uint, from, to string) ([]entities.ApplicationTask, error) {
	var out []entities.ApplicationTask
	for _, tk := range f.tasks {
		if tk.FarmID == farmID {
			out = append(out, tk)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) PatchStatus(taskID uint, status string, qty *float64) error {
	if f.patched == nil {
		f.patched = map[uint]string{}
	}
	f.patched[taskID] = status
	return nil
}

func TestScheduleServiceListAndPatch(t *testing.T) {
	repo := &fakeScheduleRepo{tasks: []entities.ApplicationTask{
		{TaskID: 1, FarmID: 1, Date: time.Now(), Title: "Basal dose", Type: "basal", Status: "todo"},
		{TaskID: 2, FarmID: 2, Date: time.Now(), Title: "Topdress 1", Type: "topdress", Status: "todo"},
	}}
	svc := NewScheduleService(repo)

	got, err := svc.List(1, "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Basal dose", got[0].Title)

	require.NoError(t, svc.Patch(1, "done", nil))
	assert.Equal(t, "done", repo.patched[1])
}
