package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}), ErrDuplicate)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23503"}), ErrMissingReference)

	tooLong := mapError(&pgconn.PgError{Code: "22001", ColumnName: "pin_code"})
	assert.ErrorIs(t, tooLong, ErrValueTooLong)
	assert.ErrorIs(t, tooLong, apperror.ErrValidation)
	assert.Equal(t, "pin_code is too long", apperror.Message(tooLong, ""))

	unnamed := mapError(&pgconn.PgError{Code: "22001"})
	assert.Equal(t, "a field value is too long", apperror.Message(unnamed, ""))

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
	assert.NoError(t, mapError(nil))
}

func TestAddressRepository_UpdateValueTooLong(t *testing.T) {
	mock := newMock(t)
	repo := NewAddressRepository(mock, zap.NewNop())

	a := &entity.Address{Base: entity.NewBase(), UserID: uuid.New(), PinCode: "560001560001560001560001"}
	mock.ExpectExec("UPDATE addresses").
		WithArgs(a.ID, a.UserID, a.Mobile, a.Flat, a.Landmark, a.Street, a.City, a.State, a.Country, a.PinCode, a.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "22001", ColumnName: "pin_code"})

	err := repo.Update(context.Background(), a)

	assert.ErrorIs(t, err, ErrValueTooLong)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	user := &entity.User{Base: entity.NewBase(), Username: "ann", Email: "a@x.com", PasswordHash: "h"}
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.ImageURL, user.CreatedAt, user.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("a@x.com").
		WillReturnRows(mock.NewRows([]string{"id", "username", "email", "password_hash", "image_url", "created_at", "updated_at"}).
			AddRow(id, "ann", "a@x.com", "hash", "img", now, now))

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("b@x.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)

	missing, err := repo.FindByEmail(context.Background(), "b@x.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	user := &entity.User{Base: entity.NewBase()}
	mock.ExpectExec("UPDATE users").
		WithArgs(user.ID, user.Username, user.ImageURL, user.PasswordHash, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), user)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddressRepository_DeleteScopedToOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewAddressRepository(mock, zap.NewNop())
	id, owner, stranger := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM addresses WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(id, stranger).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM addresses WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(id, owner).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.ErrorIs(t, repo.Delete(context.Background(), id, stranger), ErrNotFound)
	assert.NoError(t, repo.Delete(context.Background(), id, owner))
}

func TestCategoryRepository_CreateSubCategoryAssignsPosition(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock, zap.NewNop())

	sub := &entity.SubCategory{Base: entity.NewBase(), CategoryID: uuid.New(), Name: "Shirts", Description: "d"}
	mock.ExpectQuery("INSERT INTO subcategories").
		WithArgs(sub.ID, sub.CategoryID, sub.Name, sub.Description, sub.CreatedAt, sub.UpdatedAt).
		WillReturnRows(mock.NewRows([]string{"position"}).AddRow(3))

	require.NoError(t, repo.CreateSubCategory(context.Background(), sub))
	assert.Equal(t, 3, sub.Position)
}

func TestCategoryRepository_CreateSubCategoryDuplicateName(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock, zap.NewNop())

	sub := &entity.SubCategory{Base: entity.NewBase(), CategoryID: uuid.New(), Name: "Shirts"}
	mock.ExpectQuery("INSERT INTO subcategories").
		WithArgs(sub.ID, sub.CategoryID, sub.Name, sub.Description, sub.CreatedAt, sub.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "subcategories_name_key"})

	err := repo.CreateSubCategory(context.Background(), sub)

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCategoryRepository_FindAllAssemblesSubCategories(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock, zap.NewNop())
	now := time.Now()
	men, women := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM categories ORDER BY").
		WillReturnRows(mock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}).
			AddRow(men, "Men", "m", now, now).
			AddRow(women, "Women", "w", now, now))
	mock.ExpectQuery("SELECT (.+) FROM subcategories ORDER BY").
		WillReturnRows(mock.NewRows([]string{"id", "category_id", "name", "description", "position", "created_at", "updated_at"}).
			AddRow(uuid.New(), men, "Shirts", "s", 0, now, now).
			AddRow(uuid.New(), men, "Shoes", "s", 1, now, now))

	categories, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	require.Len(t, categories[0].SubCategories, 2)
	assert.Equal(t, "Shirts", categories[0].SubCategories[0].Name)
	assert.Equal(t, "Shoes", categories[0].SubCategories[1].Name)
	assert.Empty(t, categories[1].SubCategories)
	assert.NotNil(t, categories[1].SubCategories)
}

func TestProductRepository_UpdateTitleCollision(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock, zap.NewNop())

	p := &entity.Product{Base: entity.NewBase(), Title: "Taken"}
	mock.ExpectExec("UPDATE products").
		WithArgs(p.ID, p.Title, p.Description, p.ImageURL, p.Brand, p.Price, p.Quantity,
			p.CategoryID, p.SubCategoryID, p.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "products_title_key"})

	err := repo.Update(context.Background(), p)

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestProductRepository_FindAllPaginates(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM products\\s+ORDER BY created_at DESC\\s+LIMIT \\$1 OFFSET \\$2").
		WithArgs(10, 20).
		WillReturnRows(mock.NewRows([]string{"id", "title", "description", "image_url", "brand", "price", "quantity",
			"category_id", "subcategory_id", "user_id", "created_at", "updated_at"}))

	products, err := repo.FindAll(context.Background(), 20, 10)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock, zap.NewNop())
	id := uuid.New()
	at := time.Now()

	mock.ExpectExec("UPDATE orders SET order_status = \\$2, updated_at = \\$3 WHERE id = \\$1").
		WithArgs(id, entity.OrderStatus("Out for delivery"), at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), id, entity.OrderStatus("Out for delivery"), at)

	assert.NoError(t, err)
}

func TestOrderRepository_FindByIDMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	order, err := repo.FindByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestCartRepository_CreateStoresLineItems(t *testing.T) {
	mock := newMock(t)
	repo := NewCartRepository(mock, zap.NewNop())

	cart := &entity.Cart{
		Base:       entity.NewBase(),
		UserID:     uuid.New(),
		Products:   []entity.LineItem{{ProductID: uuid.New(), Count: 2, Price: 9.5}},
		Total:      19,
		Tax:        1,
		GrandTotal: 20,
	}
	mock.ExpectExec("INSERT INTO carts").
		WithArgs(cart.ID, cart.UserID, cart.Products, cart.Total, cart.Tax, cart.GrandTotal, cart.CreatedAt, cart.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), cart))
}
