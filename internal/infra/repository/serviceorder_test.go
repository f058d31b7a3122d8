//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/repository"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/tests/common/builder"
	repositorymock "workshop-quotes/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockServiceOrderWriteQueries, *serviceorder.ServiceOrder, pgsql.DBTX)
		expectKind  infra.RepositoryErrorKind
		expectIsErr error
	}{
		{
			name: "success: order and items written",
			setupMock: func(mock *repositorymock.MockServiceOrderWriteQueries, so *serviceorder.ServiceOrder, db pgsql.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateServiceOrder(ctx, db, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ pgsql.DBTX, row pgsql.ServiceOrder) error {
							assert.Equal(t, so.QuoteID, row.QuoteID)
							assert.Equal(t, int64(15000), row.TotalCents)
							return nil
						}),
					mock.EXPECT().CreateServiceOrderItems(ctx, db, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ pgsql.DBTX, items []pgsql.ServiceOrderItem) error {
							require.Len(t, items, 2)
							for i, it := range items {
								assert.Equal(t, so.ID, it.ServiceOrderID)
								assert.Equal(t, int32(i), it.Position)
							}
							return nil
						}),
				)
			},
		},
		{
			name: "error: quote already converted",
			setupMock: func(mock *repositorymock.MockServiceOrderWriteQueries, so *serviceorder.ServiceOrder, db pgsql.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "service_orders_quote_id_key"}
				mock.EXPECT().CreateServiceOrder(ctx, db, gomock.Any()).Return(dup)
			},
			expectKind:  infra.KindDuplicateKey,
			expectIsErr: quote.ErrConversionConflict,
		},
		{
			name: "error: order number clash is not a conversion conflict",
			setupMock: func(mock *repositorymock.MockServiceOrderWriteQueries, so *serviceorder.ServiceOrder, db pgsql.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "service_orders_tenant_id_number_key"}
				mock.EXPECT().CreateServiceOrder(ctx, db, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: items insert fails",
			setupMock: func(mock *repositorymock.MockServiceOrderWriteQueries, so *serviceorder.ServiceOrder, db pgsql.DBTX) {
				mock.EXPECT().CreateServiceOrder(ctx, db, gomock.Any()).Return(nil)
				mock.EXPECT().CreateServiceOrderItems(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockServiceOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewServiceOrderRepository(mockQueries, mockDB)

			b := builder.NewQuoteBuilder()
			q, err := b.BuildInStatus(quote.StatusAccepted)
			require.NoError(t, err)
			so, err := serviceorder.FromQuote(q, uuid.New(), b.Now)
			require.NoError(t, err)
			tc.setupMock(mockQueries, so, mockDB)

			err = repo.Create(ctx, so)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, tc.expectIsErr != nil, errs.Is(err, quote.ErrConversionConflict))
				return
			}
			assert.NoError(t, err)
		})
	}
}
