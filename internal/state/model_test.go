package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	customerModel "crew/internal/domains/customer/model"
	"crew/internal/state"
)

func TestUpsert(t *testing.T) {
	collection := []customerModel.Customer{
		{ID: "a", Name: "Anna"},
		{ID: "b", Name: "Bertil"},
	}

	collection = state.Upsert(collection, customerModel.Customer{ID: "b", Name: "Berit"})
	assert.Len(t, collection, 2)
	assert.Equal(t, "Berit", collection[1].Name)

	collection = state.Upsert(collection, customerModel.Customer{ID: "c", Name: "Cecilia"})
	assert.Len(t, collection, 3)
}

func TestRemove(t *testing.T) {
	collection := []customerModel.Customer{
		{ID: "a"},
		{ID: "b"},
	}

	collection = state.Remove(collection, "a")
	assert.Len(t, collection, 1)
	assert.Equal(t, "b", collection[0].ID)

	// Removing an absent id is a no-op.
	collection = state.Remove(collection, "missing")
	assert.Len(t, collection, 1)
}

func TestFindByID(t *testing.T) {
	collection := []customerModel.Customer{{ID: "a", Name: "Anna"}}

	found, ok := state.FindByID(collection, "a")
	assert.True(t, ok)
	assert.Equal(t, "Anna", found.Name)

	_, ok = state.FindByID(collection, "b")
	assert.False(t, ok)
}
