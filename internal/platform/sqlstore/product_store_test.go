package sqlstore_test

import (
	"testing"

	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/sqlstore"
	"github.com/phrazzld/demo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStoreCRUD(t *testing.T) {
	s := sqlstore.NewProductStore(openTestDB(t), discardLogger())

	p := &domain.Product{Name: "Pen", Category: ptr("office"), Price: ptr(-1.25), Stock: ptr(7)}
	require.NoError(t, s.Create(ctx(), p))

	got, err := s.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	got.Stock = nil
	require.NoError(t, s.Update(ctx(), got))

	updated, err := s.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Stock)
	assert.Equal(t, -1.25, *updated.Price)

	require.NoError(t, s.Delete(ctx(), p.ID))
	_, err = s.GetByID(ctx(), p.ID)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductStoreEmptyList(t *testing.T) {
	s := sqlstore.NewProductStore(openTestDB(t), discardLogger())

	list, err := s.List(ctx())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}
