package table

import (
	"testing"

	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Len() int {
	return m.Called().Int(0)
}

func (m *MockStore) Record(row int) (model.Record, error) {
	args := m.Called(row)
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockStore) Cell(row int, col model.Column) (string, error) {
	args := m.Called(row, col)
	return args.String(0), args.Error(1)
}

func (m *MockStore) SetCell(row int, col model.Column, value string) error {
	return m.Called(row, col, value).Error(0)
}

func (m *MockStore) InsertEmpty() int {
	return m.Called().Int(0)
}

func (m *MockStore) RemoveAt(indices ...int) {
	m.Called(indices)
}

func (m *MockStore) FindFirst(match func(model.Record) bool, startAfter int) (int, bool) {
	args := m.Called(match, startAfter)
	return args.Int(0), args.Bool(1)
}

func (m *MockStore) Validate() error {
	return m.Called().Error(0)
}

func (m *MockStore) LoadFile(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockStore) SaveFile(path string) error {
	return m.Called(path).Error(0)
}

func TestSaveAllDelegates(t *testing.T) {
	ms := new(MockStore)
	dup := &store.DuplicateIDError{Row: 2, Conflict: 0, ID: "S001"}
	ms.On("SaveFile", "roster.txt").Return(dup).Once()

	c := New(ms, nil)
	err := c.SaveAll("roster.txt")
	assert.Same(t, dup, err)
	ms.AssertExpectations(t)
}

func TestFailedLoadKeepsViewState(t *testing.T) {
	ms := new(MockStore)
	ms.On("Len").Return(3)
	ms.On("LoadFile", "missing.txt").Return(&store.LoadError{Path: "missing.txt"})
	ms.On("LoadFile", "data.txt").Return(nil)

	c := New(ms, nil)
	c.SetSelection(1, 2)
	c.SetCursor(2, model.ColumnMajor)

	err := c.LoadAll("missing.txt")
	assert.ErrorIs(t, err, store.ErrSourceUnavailable)
	assert.Equal(t, []int{1, 2}, c.Selection())
	assert.Equal(t, Cursor{Row: 2, Col: model.ColumnMajor}, c.Cursor())

	require.NoError(t, c.LoadAll("data.txt"))
	assert.Empty(t, c.Selection())
	assert.Equal(t, Cursor{}, c.Cursor())
	ms.AssertExpectations(t)
}

func TestDeleteSelectedPassesWholeSelection(t *testing.T) {
	ms := new(MockStore)
	ms.On("Len").Return(5).Once()
	ms.On("RemoveAt", []int{0, 3}).Once()
	ms.On("Len").Return(3)

	c := New(ms, nil)
	c.SetSelection(3, 0)

	require.NoError(t, c.DeleteSelected())
	assert.Equal(t, []int{2}, c.Selection())
	ms.AssertExpectations(t)
}

func TestFindSkipsCellLookupOnMiss(t *testing.T) {
	ms := new(MockStore)
	ms.On("FindFirst", mock.Anything, store.NoIndex).Return(store.NoIndex, false)

	c := New(ms, nil)
	out, err := c.Find("nobody")
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Equal(t, model.ColumnID, out.Column)
	ms.AssertNotCalled(t, "Cell", mock.Anything, mock.Anything)
}
