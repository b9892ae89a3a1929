package modules

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope that filters by user_id.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// PropertyOwnedBy filters rows whose property_id belongs to the user.
func PropertyOwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("property_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Table("properties").Select("id").Where("user_id = ?", userID))
	}
}

// MemberOf filters organizations the user belongs to.
func MemberOf(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Table("organization_members").Select("organization_id").Where("user_id = ?", userID))
	}
}

// Owns reports whether the row id in table belongs to the user.
func Owns(db *gorm.DB, table string, id, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Table(table).Where("id = ? AND user_id = ?", id, userID).Count(&count).Error
	return count > 0, err
}

// LeaseOwnedBy filters rows whose lease_id belongs to one of the user's
// properties.
func LeaseOwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		fresh := db.Session(&gorm.Session{NewDB: true})
		owned := fresh.Table("properties").Select("id").Where("user_id = ?", userID)
		return db.Where("lease_id IN (?)", fresh.Table("leases").Select("id").Where("property_id IN (?)", owned))
	}
}

// DeleteLeases removes the leases whose column equals id, receipts first.
// column is one of lease's foreign keys: "id", "tenant_id" or "property_id".
func DeleteLeases(tx *gorm.DB, column string, id uuid.UUID) error {
	leases := tx.Session(&gorm.Session{NewDB: true}).Table("leases").Select("id").Where(column+" = ?", id)
	if err := tx.Exec("DELETE FROM receipts WHERE lease_id IN (?)", leases).Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM leases WHERE "+column+" = ?", id).Error
}
