package repository

import (
	"time"

	"cargotrans/internal/app/ds"
)

// Методы для работы с обращениями

func (r *Repository) CreateContact(contact *ds.Contact) error {
	contact.CreatedAt = time.Now()
	return r.db.Create(contact).Error
}

func (r *Repository) GetContacts() ([]ds.Contact, error) {
	var contacts []ds.Contact
	err := r.db.Order("id DESC").Find(&contacts).Error
	return contacts, err
}
