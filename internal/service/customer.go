package service

import (
	"context"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	logger.EnterMethod("customerService.CreateCustomer", "customerID", customer.ID)

	if err := customer.Validate(); err != nil {
		exitWithError("customerService.CreateCustomer", err)
		return err
	}

	_, err := s.store.Customers().GetByID(ctx, customer.ID)
	switch {
	case err == nil:
		err = domain.Conflictf("customerID is already in use")
	case errors.Is(err, domain.ErrNotFound):
		err = s.store.Customers().Create(ctx, customer)
	}
	if err != nil {
		exitWithError("customerService.CreateCustomer", err, "customerID", customer.ID)
		return err
	}

	logger.ExitMethod("customerService.CreateCustomer", "customerID", customer.ID)
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.store.Customers().GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx)
}

func (s *customerService) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	if query == "" {
		return nil, domain.Validationf("search query is missing")
	}
	return s.store.Customers().Search(ctx, query)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, update domain.CustomerUpdate) (*domain.Customer, error) {
	logger.EnterMethod("customerService.UpdateCustomer", "customerID", id)

	customer, err := s.store.Customers().GetByID(ctx, id)
	if err == nil {
		customer.Apply(update)
		err = customer.Validate()
	}
	if err == nil {
		err = s.store.Customers().Update(ctx, customer)
	}
	if err != nil {
		exitWithError("customerService.UpdateCustomer", err, "customerID", id)
		return nil, err
	}

	logger.ExitMethod("customerService.UpdateCustomer", "customerID", id)
	return customer, nil
}

// DeleteCustomer removes the customer together with their loans. Books the
// customer had on loan become available again in the same transaction.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	logger.EnterMethod("customerService.DeleteCustomer", "customerID", id)

	released := 0
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByIDForUpdate(ctx, id); err != nil {
			return err
		}
		loans, err := tx.Loans().ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		for _, loan := range loans {
			if err := tx.Books().UpdateStatus(ctx, loan.BookID, domain.BookStatusAvailable); err != nil {
				return err
			}
			released++
		}
		return tx.Customers().Delete(ctx, id)
	})
	if err != nil {
		exitWithError("customerService.DeleteCustomer", err, "customerID", id)
		return err
	}

	logger.ExitMethod("customerService.DeleteCustomer", "customerID", id, "releasedBooks", released)
	return nil
}
