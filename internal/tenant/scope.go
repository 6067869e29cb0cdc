package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company's rows. Every payroll table is
// company-scoped, so repositories apply this on every read and delete.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
