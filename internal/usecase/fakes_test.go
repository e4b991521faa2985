package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"

	"github.com/google/uuid"
)

// store is an in-memory stand-in for every repository. Methods return
// copies so tests observe only what was written through the interface.
type store struct {
	mu            sync.Mutex
	users         map[uuid.UUID]entity.User
	addresses     map[uuid.UUID]entity.Address
	carts         map[uuid.UUID]entity.Cart
	categories    map[uuid.UUID]entity.Category
	subCategories map[uuid.UUID]entity.SubCategory
	products      map[uuid.UUID]entity.Product
	orders        map[uuid.UUID]entity.Order
	writes        int
}

func newStore() *store {
	return &store{
		users:         map[uuid.UUID]entity.User{},
		addresses:     map[uuid.UUID]entity.Address{},
		carts:         map[uuid.UUID]entity.Cart{},
		categories:    map[uuid.UUID]entity.Category{},
		subCategories: map[uuid.UUID]entity.SubCategory{},
		products:      map[uuid.UUID]entity.Product{},
		orders:        map[uuid.UUID]entity.Order{},
	}
}

func (s *store) repository() *repository.Repository {
	return &repository.Repository{
		User:     fakeUsers{s},
		Address:  fakeAddresses{s},
		Cart:     fakeCarts{s},
		Category: fakeCategories{s},
		Product:  fakeProducts{s},
		Order:    fakeOrders{s},
	}
}

func (s *store) addUser(username, email string) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := entity.User{Base: entity.NewBase(), Username: username, Email: email, PasswordHash: "hash:secret", ImageURL: "img"}
	s.users[u.ID] = u
	return u
}

func (s *store) addClassification(category, sub string) (entity.Category, entity.SubCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := entity.Category{Base: entity.NewBase(), Name: category}
	sc := entity.SubCategory{Base: entity.NewBase(), CategoryID: c.ID, Name: sub, Position: 1}
	s.categories[c.ID] = c
	s.subCategories[sc.ID] = sc
	return c, sc
}

func (s *store) addProduct(title string, owner uuid.UUID, c entity.Category, sc entity.SubCategory) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := entity.Product{
		Base: entity.NewBase(), Title: title, Brand: "acme", Price: 10, Quantity: 5,
		CategoryID: c.ID, SubCategoryID: sc.ID, UserID: owner,
	}
	s.products[p.ID] = p
	return p
}

func (s *store) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

type fakeUsers struct{ s *store }

func (f fakeUsers) Create(_ context.Context, user *entity.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.s.writes++
	f.s.users[user.ID] = *user
	return nil
}

func (f fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if u, ok := f.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f fakeUsers) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*entity.User
	for _, id := range ids {
		if u, ok := f.s.users[id]; ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

func (f fakeUsers) Update(_ context.Context, user *entity.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	f.s.writes++
	f.s.users[user.ID] = *user
	return nil
}

type fakeAddresses struct{ s *store }

func (f fakeAddresses) Create(_ context.Context, address *entity.Address) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.addresses {
		if a.UserID == address.UserID {
			return repository.ErrDuplicate
		}
	}
	f.s.writes++
	f.s.addresses[address.ID] = *address
	return nil
}

func (f fakeAddresses) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Address, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.addresses {
		if a.UserID == userID {
			return &a, nil
		}
	}
	return nil, nil
}

func (f fakeAddresses) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entity.Address, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if a, ok := f.s.addresses[id]; ok && a.UserID == userID {
		return &a, nil
	}
	return nil, nil
}

func (f fakeAddresses) Update(_ context.Context, address *entity.Address) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.addresses[address.ID]; !ok {
		return repository.ErrNotFound
	}
	f.s.writes++
	f.s.addresses[address.ID] = *address
	return nil
}

func (f fakeAddresses) Delete(_ context.Context, id, userID uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if a, ok := f.s.addresses[id]; !ok || a.UserID != userID {
		return repository.ErrNotFound
	}
	f.s.writes++
	delete(f.s.addresses, id)
	return nil
}

func (f fakeAddresses) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for id, a := range f.s.addresses {
		if a.UserID == userID {
			f.s.writes++
			delete(f.s.addresses, id)
		}
	}
	return nil
}

type fakeCarts struct{ s *store }

func (f fakeCarts) Create(_ context.Context, cart *entity.Cart) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.carts {
		if c.UserID == cart.UserID {
			return repository.ErrDuplicate
		}
	}
	f.s.writes++
	f.s.carts[cart.ID] = *cart
	return nil
}

func (f fakeCarts) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.carts {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

func (f fakeCarts) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for id, c := range f.s.carts {
		if c.UserID == userID {
			f.s.writes++
			delete(f.s.carts, id)
		}
	}
	return nil
}

type fakeCategories struct{ s *store }

func (f fakeCategories) Create(_ context.Context, category *entity.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.categories {
		if c.Name == category.Name {
			return repository.ErrDuplicate
		}
	}
	f.s.writes++
	f.s.categories[category.ID] = *category
	return nil
}

func (f fakeCategories) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if c, ok := f.s.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f fakeCategories) FindByName(_ context.Context, name string) (*entity.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (f fakeCategories) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := f.s.categories[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f fakeCategories) FindAll(ctx context.Context) ([]*entity.Category, error) {
	f.s.mu.Lock()
	out := make([]*entity.Category, 0, len(f.s.categories))
	for _, c := range f.s.categories {
		out = append(out, &c)
	}
	f.s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	for _, c := range out {
		c.SubCategories, _ = f.FindSubCategoriesByCategory(ctx, c.ID)
	}
	return out, nil
}

func (f fakeCategories) CreateSubCategory(_ context.Context, sub *entity.SubCategory) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	position := 1
	for _, sc := range f.s.subCategories {
		if sc.Name == sub.Name {
			return repository.ErrDuplicate
		}
		if sc.CategoryID == sub.CategoryID && sc.Position >= position {
			position = sc.Position + 1
		}
	}
	sub.Position = position
	f.s.writes++
	f.s.subCategories[sub.ID] = *sub
	return nil
}

func (f fakeCategories) FindSubCategoryByID(_ context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if sc, ok := f.s.subCategories[id]; ok {
		return &sc, nil
	}
	return nil, nil
}

func (f fakeCategories) FindSubCategoryByName(_ context.Context, name string) (*entity.SubCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, sc := range f.s.subCategories {
		if sc.Name == name {
			return &sc, nil
		}
	}
	return nil, nil
}

func (f fakeCategories) FindSubCategoriesByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.SubCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*entity.SubCategory
	for _, id := range ids {
		if sc, ok := f.s.subCategories[id]; ok {
			out = append(out, &sc)
		}
	}
	return out, nil
}

func (f fakeCategories) FindSubCategoriesByCategory(_ context.Context, categoryID uuid.UUID) ([]entity.SubCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []entity.SubCategory{}
	for _, sc := range f.s.subCategories {
		if sc.CategoryID == categoryID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type fakeProducts struct{ s *store }

func (f fakeProducts) Create(_ context.Context, product *entity.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.products {
		if p.Title == product.Title {
			return repository.ErrDuplicate
		}
	}
	f.s.writes++
	f.s.products[product.ID] = *product
	return nil
}

func (f fakeProducts) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if p, ok := f.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f fakeProducts) FindByTitle(_ context.Context, title string) (*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.products {
		if p.Title == title {
			return &p, nil
		}
	}
	return nil, nil
}

func (f fakeProducts) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.s.products[id]; ok {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (f fakeProducts) sorted() []*entity.Product {
	out := make([]*entity.Product, 0, len(f.s.products))
	for _, p := range f.s.products {
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func (f fakeProducts) FindAll(_ context.Context, offset, limit int) ([]*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	all := f.sorted()
	if offset >= len(all) {
		return []*entity.Product{}, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (f fakeProducts) CountAll(_ context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.products)), nil
}

func (f fakeProducts) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*entity.Product{}
	for _, p := range f.sorted() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeProducts) Update(_ context.Context, product *entity.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.products[product.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, p := range f.s.products {
		if p.ID != product.ID && p.Title == product.Title {
			return repository.ErrDuplicate
		}
	}
	f.s.writes++
	f.s.products[product.ID] = *product
	return nil
}

func (f fakeProducts) Delete(_ context.Context, id uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.products[id]; !ok {
		return repository.ErrNotFound
	}
	f.s.writes++
	delete(f.s.products, id)
	return nil
}

type fakeOrders struct{ s *store }

func (f fakeOrders) Create(_ context.Context, order *entity.Order) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.writes++
	f.s.orders[order.ID] = *order
	return nil
}

func (f fakeOrders) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if o, ok := f.s.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (f fakeOrders) sorted() []*entity.Order {
	out := make([]*entity.Order, 0, len(f.s.orders))
	for _, o := range f.s.orders {
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out
}

func (f fakeOrders) FindAll(_ context.Context, offset, limit int) ([]*entity.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	all := f.sorted()
	if offset >= len(all) {
		return []*entity.Order{}, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (f fakeOrders) CountAll(_ context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.orders)), nil
}

func (f fakeOrders) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*entity.Order{}
	for _, o := range f.sorted() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f fakeOrders) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	o, ok := f.s.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.OrderStatus = status
	o.UpdatedAt = updatedAt
	f.s.writes++
	f.s.orders[id] = o
	return nil
}

// fakeHasher prefixes instead of hashing so tests stay fast.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Verify(hash, password string) bool { return hash == "hash:"+password }

type fakeTokens struct{}

func (fakeTokens) Issue(userID uuid.UUID, _ string) (string, time.Time, error) {
	return "token-" + userID.String(), time.Unix(1_700_000_000, 0).UTC(), nil
}
