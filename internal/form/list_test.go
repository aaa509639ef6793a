package form

import (
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCareerList() *List[types.CareerEntry] {
	return NewList(func() types.CareerEntry { return types.CareerEntry{} })
}

func TestNewList_SeedsOneEntry(t *testing.T) {
	l := NewList(NewEducationEntry)
	require.Equal(t, 1, l.Len())
	entry, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, types.StatusGraduated, entry.Status)
}

func TestList_Add(t *testing.T) {
	l := newCareerList()
	assert.Equal(t, 1, l.Add())
	assert.Equal(t, 2, l.Add())
	assert.Equal(t, 3, l.Len())
}

func TestList_RemoveAt_NeverBelowOne(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for idx := -2; idx <= n+1; idx++ {
			l := newCareerList()
			for l.Len() < n {
				l.Add()
			}
			removed := l.RemoveAt(idx)
			assert.GreaterOrEqual(t, l.Len(), 1, "len=%d idx=%d", n, idx)
			if n > 1 && idx >= 0 && idx < n {
				assert.True(t, removed, "len=%d idx=%d", n, idx)
				assert.Equal(t, n-1, l.Len())
			} else {
				assert.False(t, removed, "len=%d idx=%d", n, idx)
				assert.Equal(t, n, l.Len())
			}
		}
	}
}

func TestList_RemoveAt_KeepsOrder(t *testing.T) {
	l := newCareerList()
	l.Add()
	l.Add()
	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, l.Update(i, json.RawMessage(`{"companyName":"`+name+`"}`)))
	}

	require.True(t, l.RemoveAt(1))
	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].CompanyName)
	assert.Equal(t, "C", items[1].CompanyName)
}

func TestList_Update_Merges(t *testing.T) {
	l := newCareerList()
	require.NoError(t, l.Update(0, json.RawMessage(`{"companyName":"Acme","position":"Engineer"}`)))
	require.NoError(t, l.Update(0, json.RawMessage(`{"startDate":"2020-01-15","isCurrent":true}`)))

	entry, _ := l.At(0)
	assert.Equal(t, "Acme", entry.CompanyName)
	assert.Equal(t, "Engineer", entry.Position)
	assert.True(t, entry.IsCurrent)
	require.NotNil(t, entry.StartDate)
	assert.Equal(t, civil.Date{Year: 2020, Month: time.January, Day: 15}, *entry.StartDate)
}

func TestList_Update_Errors(t *testing.T) {
	l := newCareerList()

	err := l.Update(3, json.RawMessage(`{}`))
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 3, idxErr.Index)
	assert.Equal(t, 1, idxErr.Len)

	err = l.Update(0, json.RawMessage(`{"startDate":"not-a-date"}`))
	require.Error(t, err)
	entry, _ := l.At(0)
	assert.Nil(t, entry.StartDate, "failed patch must not partially apply")
}

func TestList_Update_MalformedDate(t *testing.T) {
	for _, value := range []string{`"2024-13-01"`, `"01/05/2024"`, `""`} {
		t.Run(value, func(t *testing.T) {
			l := newCareerList()
			err := l.Update(0, json.RawMessage(`{"companyName":"Acme","startDate":`+value+`}`))

			var patchErr *PatchError
			require.ErrorAs(t, err, &patchErr)
			assert.Equal(t, "entry", patchErr.Target)
			assert.Error(t, patchErr.Unwrap())

			entry, _ := l.At(0)
			assert.Empty(t, entry.CompanyName)
			assert.Nil(t, entry.StartDate)
		})
	}
}

func TestList_Items_IsDeepCopy(t *testing.T) {
	l := newCareerList()
	require.NoError(t, l.Update(0, json.RawMessage(`{"startDate":"2020-01-15"}`)))

	items := l.Items()
	items[0].StartDate.Year = 1999
	items[0].CompanyName = "changed"

	entry, _ := l.At(0)
	assert.Equal(t, 2020, entry.StartDate.Year)
	assert.Empty(t, entry.CompanyName)
}

func TestList_Replace(t *testing.T) {
	l := newCareerList()
	l.Replace([]types.CareerEntry{{CompanyName: "A"}, {CompanyName: "B"}})
	assert.Equal(t, 2, l.Len())

	l.Replace(nil)
	assert.Equal(t, 1, l.Len())
}
