package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
)

// In-memory repositories backing the service tests. Listing applies
// substring filters and slices pages in id order, mirroring the SQL
// behavior closely enough for the service-level contracts.

type fakeRoleRepo struct {
	seq   int64
	roles map[int64]*domain.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int64]*domain.Role{}}
}

func (r *fakeRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	copied := *role
	return &copied, nil
}

func (r *fakeRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			copied := *role
			return &copied, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *fakeRoleRepo) List(_ context.Context, filter repository.RoleFilter) ([]domain.Role, int, error) {
	var matched []domain.Role
	for _, role := range r.roles {
		if filter.Name != "" && !containsFold(role.Name, filter.Name) {
			continue
		}
		matched = append(matched, *role)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	return page(matched, filter.Page, filter.PageSize), total, nil
}

func (r *fakeRoleRepo) Create(_ context.Context, role *domain.Role) error {
	r.seq++
	role.ID = r.seq
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *fakeRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *fakeRoleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

func (r *fakeRoleRepo) IsEmpty(context.Context) (bool, error) {
	return len(r.roles) == 0, nil
}

type fakeUserRepo struct {
	seq   int64
	users map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	for _, user := range r.users {
		if user.UserName == userName {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, int, error) {
	var matched []domain.User
	for _, user := range r.users {
		if filter.UserName != "" && !containsFold(user.UserName, filter.UserName) {
			continue
		}
		if filter.Email != "" && !containsFold(user.Email, filter.Email) {
			continue
		}
		if filter.IsActive != nil && user.IsActive != *filter.IsActive {
			continue
		}
		if filter.RoleName != "" && !containsFold(user.Role.Name, filter.RoleName) {
			continue
		}
		matched = append(matched, *user)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	return page(matched, filter.Page, filter.PageSize), total, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = r.seq
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) IsEmpty(context.Context) (bool, error) {
	return len(r.users) == 0, nil
}

type fakeCategoryRepo struct {
	seq        int64
	categories map[int64]*domain.ItemCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int64]*domain.ItemCategory{}}
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.ItemCategory, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*domain.ItemCategory, error) {
	for _, category := range r.categories {
		if category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context, filter repository.CategoryFilter) ([]domain.ItemCategory, int, error) {
	var matched []domain.ItemCategory
	for _, category := range r.categories {
		if filter.Name != "" && !containsFold(category.Name, filter.Name) {
			continue
		}
		matched = append(matched, *category)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	return page(matched, filter.Page, filter.PageSize), total, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.ItemCategory) error {
	r.seq++
	category.ID = r.seq
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.ItemCategory) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) IsEmpty(context.Context) (bool, error) {
	return len(r.categories) == 0, nil
}

type fakeStockItemRepo struct {
	seq   int64
	items map[int64]*domain.StockItem
}

func newFakeStockItemRepo() *fakeStockItemRepo {
	return &fakeStockItemRepo{items: map[int64]*domain.StockItem{}}
}

func (r *fakeStockItemRepo) GetByID(_ context.Context, id int64) (*domain.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrStockItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeStockItemRepo) GetByNameAndCategory(_ context.Context, name string, categoryID int64) (*domain.StockItem, error) {
	for _, item := range r.items {
		if item.Name == name && item.CategoryID == categoryID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, domain.ErrStockItemNotFound
}

func (r *fakeStockItemRepo) List(_ context.Context, filter repository.StockItemFilter) ([]domain.StockItem, int, error) {
	var matched []domain.StockItem
	for _, item := range r.items {
		if filter.Name != "" && !containsFold(item.Name, filter.Name) {
			continue
		}
		if filter.Quantity != nil && item.Quantity != *filter.Quantity {
			continue
		}
		if filter.CategoryName != "" && !containsFold(item.Category.Name, filter.CategoryName) {
			continue
		}
		matched = append(matched, *item)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	return page(matched, filter.Page, filter.PageSize), total, nil
}

func (r *fakeStockItemRepo) Create(_ context.Context, item *domain.StockItem) error {
	r.seq++
	item.ID = r.seq
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeStockItemRepo) Update(_ context.Context, item *domain.StockItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrStockItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeStockItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrStockItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeStockItemRepo) IsEmpty(context.Context) (bool, error) {
	return len(r.items) == 0, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func page[T any](items []T, pageNum, pageSize int) []T {
	offset := (pageNum - 1) * pageSize
	if offset >= len(items) {
		return []T{}
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
