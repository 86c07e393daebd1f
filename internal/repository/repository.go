// Package repository implements the persistent store over gorm. Each
// repository holds the base connection and picks up a transaction handle
// from context when called inside a unit of work.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound reports a lookup by id that matched nothing. Services
// translate it into the resource-specific not-found failure.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
