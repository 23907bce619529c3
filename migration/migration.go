package migration

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the schema for the connected driver. Statements are idempotent.
func Run(db *sqlx.DB) error {
	schema := mysqlSchema
	if db.DriverName() == "sqlite" {
		schema = sqliteSchema
	}

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS institute (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS manufacturer (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS medicine (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		manufacturer_id BIGINT UNSIGNED NOT NULL,
		name VARCHAR(255) NOT NULL,
		threshold BIGINT NOT NULL DEFAULT 0,
		stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		FOREIGN KEY (manufacturer_id) REFERENCES manufacturer(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS employee (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		institute_id BIGINT UNSIGNED NOT NULL,
		name VARCHAR(255) NOT NULL,
		FOREIGN KEY (institute_id) REFERENCES institute(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS family_member (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		employee_id BIGINT UNSIGNED NOT NULL,
		name VARCHAR(255) NOT NULL,
		FOREIGN KEY (employee_id) REFERENCES employee(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS medicine_order (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		institute_id BIGINT UNSIGNED NOT NULL,
		manufacturer_id BIGINT UNSIGNED NOT NULL,
		medicine_id BIGINT UNSIGNED NOT NULL,
		quantity_requested BIGINT NOT NULL CHECK (quantity_requested > 0),
		manufacturer_status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		institute_status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		order_date DATETIME(6) NOT NULL,
		delivery_date DATETIME(6) NULL,
		remarks VARCHAR(255) NOT NULL DEFAULT 'No remarks',
		reconciled TINYINT(1) NOT NULL DEFAULT 0,
		reconciled_quantity BIGINT NOT NULL DEFAULT 0,
		INDEX idx_order_institute (institute_id, order_date),
		INDEX idx_order_manufacturer (manufacturer_id, order_date),
		FOREIGN KEY (institute_id) REFERENCES institute(id),
		FOREIGN KEY (manufacturer_id) REFERENCES manufacturer(id),
		FOREIGN KEY (medicine_id) REFERENCES medicine(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS institute_inventory (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		institute_id BIGINT UNSIGNED NOT NULL,
		medicine_id BIGINT UNSIGNED NOT NULL,
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		UNIQUE KEY uq_inventory_line (institute_id, medicine_id),
		FOREIGN KEY (institute_id) REFERENCES institute(id),
		FOREIGN KEY (medicine_id) REFERENCES medicine(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS prescription (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		institute_id BIGINT UNSIGNED NOT NULL,
		employee_id BIGINT UNSIGNED NOT NULL,
		is_family_member TINYINT(1) NOT NULL DEFAULT 0,
		family_member_id BIGINT UNSIGNED NULL,
		notes TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		INDEX idx_prescription_institute (institute_id, created_at),
		FOREIGN KEY (institute_id) REFERENCES institute(id),
		FOREIGN KEY (employee_id) REFERENCES employee(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS prescription_item (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		prescription_id BIGINT UNSIGNED NOT NULL,
		medicine_id BIGINT UNSIGNED NOT NULL,
		medicine_name VARCHAR(255) NOT NULL,
		quantity_requested BIGINT NOT NULL,
		quantity_deducted BIGINT NOT NULL,
		FOREIGN KEY (prescription_id) REFERENCES prescription(id)
	) ENGINE=InnoDB`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS institute (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS manufacturer (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS medicine (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		manufacturer_id INTEGER NOT NULL REFERENCES manufacturer(id),
		name TEXT NOT NULL,
		threshold INTEGER NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS employee (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		institute_id INTEGER NOT NULL REFERENCES institute(id),
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS family_member (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employee(id),
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS medicine_order (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		institute_id INTEGER NOT NULL REFERENCES institute(id),
		manufacturer_id INTEGER NOT NULL REFERENCES manufacturer(id),
		medicine_id INTEGER NOT NULL REFERENCES medicine(id),
		quantity_requested INTEGER NOT NULL CHECK (quantity_requested > 0),
		manufacturer_status TEXT NOT NULL DEFAULT 'PENDING',
		institute_status TEXT NOT NULL DEFAULT 'PENDING',
		order_date DATETIME NOT NULL,
		delivery_date DATETIME NULL,
		remarks TEXT NOT NULL DEFAULT 'No remarks',
		reconciled INTEGER NOT NULL DEFAULT 0,
		reconciled_quantity INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS institute_inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		institute_id INTEGER NOT NULL REFERENCES institute(id),
		medicine_id INTEGER NOT NULL REFERENCES medicine(id),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		UNIQUE (institute_id, medicine_id)
	)`,
	`CREATE TABLE IF NOT EXISTS prescription (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		institute_id INTEGER NOT NULL REFERENCES institute(id),
		employee_id INTEGER NOT NULL REFERENCES employee(id),
		is_family_member INTEGER NOT NULL DEFAULT 0,
		family_member_id INTEGER NULL,
		notes TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prescription_item (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prescription_id INTEGER NOT NULL REFERENCES prescription(id),
		medicine_id INTEGER NOT NULL REFERENCES medicine(id),
		medicine_name TEXT NOT NULL,
		quantity_requested INTEGER NOT NULL,
		quantity_deducted INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_institute ON medicine_order (institute_id, order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_order_manufacturer ON medicine_order (manufacturer_id, order_date)`,
}
