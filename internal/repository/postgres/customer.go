package postgres

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
)

const customerColumns = `customer_id, name, age, city`

type customerRepository struct {
	db sqlx.ExtContext
}

func NewCustomerRepository(db sqlx.ExtContext) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (customer_id, name, age, city) VALUES ($1, $2, $3, $4)`
	logger.DatabaseCall("customers.Create", query, "customer_id", c.ID)
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Age, c.City)
	logger.DatabaseResult("customers.Create", 1, err, "customer_id", c.ID)
	return translateError(err, "customer")
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	if err := sqlx.GetContext(ctx, r.db, c, query, id); err != nil {
		return nil, translateError(err, "customer")
	}
	return c, nil
}

func (r *customerRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 FOR UPDATE`
	if err := sqlx.GetContext(ctx, r.db, c, query, id); err != nil {
		return nil, translateError(err, "customer")
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY customer_id`
	if err := sqlx.SelectContext(ctx, r.db, &customers, query); err != nil {
		return nil, translateError(err, "customer")
	}
	return customers, nil
}

func (r *customerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("customers").
		Select("customer_id", "name", "age", "city").
		Where(goqu.C("name").ILike(containsPattern(query))).
		Order(goqu.C("customer_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	customers := []domain.Customer{}
	if err := sqlx.SelectContext(ctx, r.db, &customers, sql, args...); err != nil {
		return nil, translateError(err, "customer")
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, age = $2, city = $3 WHERE customer_id = $4`
	logger.DatabaseCall("customers.Update", query, "customer_id", c.ID)
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Age, c.City, c.ID)
	return checkAffected("customers.Update", "customer", res, err)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE customer_id = $1`
	logger.DatabaseCall("customers.Delete", query, "customer_id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	return checkAffected("customers.Delete", "customer", res, err)
}
