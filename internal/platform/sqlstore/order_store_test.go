package sqlstore_test

import (
	"testing"
	"time"

	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/sqlstore"
	"github.com/phrazzld/demo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStoreCreatePersistsTimestampAndStatus(t *testing.T) {
	s := sqlstore.NewOrderStore(openTestDB(t), discardLogger())

	created := time.Date(2024, 5, 6, 7, 8, 9, 123456000, time.UTC)
	o := &domain.Order{OrderNumber: "ORD-1", CustomerName: "Ana", TotalAmount: ptr(10.5)}
	o.PrepareForCreate(created)
	require.NoError(t, s.Create(ctx(), o))

	got, err := s.GetByID(ctx(), o.ID)
	require.NoError(t, err)
	assert.True(t, created.Equal(got.CreatedAt), "want %v, got %v", created, got.CreatedAt)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	require.NotNil(t, got.Status)
	assert.Equal(t, domain.DefaultOrderStatus, *got.Status)
	assert.Equal(t, 10.5, *got.TotalAmount)
}

func TestOrderStoreUpdateKeepsCreatedAt(t *testing.T) {
	s := sqlstore.NewOrderStore(openTestDB(t), discardLogger())

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o := &domain.Order{OrderNumber: "ORD-1", CustomerName: "Ana"}
	o.PrepareForCreate(created)
	require.NoError(t, s.Create(ctx(), o))

	o.Status = nil
	o.CustomerName = "Bea"
	o.CreatedAt = created.Add(48 * time.Hour)
	require.NoError(t, s.Update(ctx(), o))

	got, err := s.GetByID(ctx(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bea", got.CustomerName)
	assert.Nil(t, got.Status)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestOrderStoreListAndDelete(t *testing.T) {
	s := sqlstore.NewOrderStore(openTestDB(t), discardLogger())

	now := time.Now()
	for _, n := range []string{"ORD-1", "ORD-2"} {
		o := &domain.Order{OrderNumber: n, CustomerName: "c"}
		o.PrepareForCreate(now)
		require.NoError(t, s.Create(ctx(), o))
	}

	list, err := s.List(ctx())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-1", list[0].OrderNumber)

	require.NoError(t, s.Delete(ctx(), list[0].ID))
	assert.ErrorIs(t, s.Delete(ctx(), list[0].ID), store.ErrOrderNotFound)

	_, err = s.GetByID(ctx(), list[0].ID)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
