package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema. Under Postgres it also installs the
// idx_no_overbooking exclusion constraint: two active bookings of one
// property can never hold intersecting ranges, even if two writers race
// past the engine's overlap query.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&propertyModel{}, &bookingModel{}, &blockingModel{}); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$ BEGIN
    ALTER TABLE bookings ADD CONSTRAINT idx_no_overbooking
        EXCLUDE USING gist (
            property_id WITH =,
            tsrange(start_date, end_date, '[)') WITH &&
        ) WHERE (NOT is_canceled);
EXCEPTION
    WHEN duplicate_object THEN NULL;
    WHEN duplicate_table THEN NULL;
END $$;
`).Error
}
