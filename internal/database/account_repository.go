package database

import (
	"errors"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) findOne(query string, arg any) (*Account, error) {
	var a Account
	err := r.db.Where(query, arg).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindAccountByTaxID(taxID string) (*Account, error) {
	return r.findOne("tax_id = ?", taxID)
}

func (r *AccountRepository) FindAccountByEmail(email string) (*Account, error) {
	return r.findOne("contact_email = ?", email)
}

func (r *AccountRepository) FindAccountByID(id string) (*Account, error) {
	return r.findOne("id = ?", id)
}

func (r *AccountRepository) AddAccount(a *Account) error {
	return r.db.Create(a).Error
}
