package migrations

import (
	"github.com/TaskGlass/dreamvault/pkg/infra/database"
	"gorm.io/gorm"
)

// Initial SQL schema.
// Tables: dreams, subscriptions, usage_monthly
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_initial_schema",
		Name: "Create core tables: dreams, subscriptions, usage_monthly",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS dreams (
					id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id         TEXT NOT NULL,
					title           TEXT NOT NULL DEFAULT '',
					content         TEXT NOT NULL,
					mood            TEXT NOT NULL DEFAULT '',
					tags            TEXT NOT NULL DEFAULT '',
					interpretation  TEXT,
					created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_dreams_user_created
					ON dreams (user_id, created_at DESC);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS subscriptions (
					id                      UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id                 TEXT NOT NULL,
					plan                    TEXT NOT NULL,
					status                  TEXT NOT NULL,
					stripe_customer_id      TEXT NOT NULL DEFAULT '',
					stripe_subscription_id  TEXT NOT NULL DEFAULT '',
					current_period_end      TIMESTAMPTZ,
					created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at              TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_subscriptions_user_status
					ON subscriptions (user_id, status, created_at DESC);
			`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_stripe_sub
					ON subscriptions (stripe_subscription_id)
					WHERE stripe_subscription_id <> '';
			`).Error; err != nil {
				return err
			}

			// One ledger row per user per calendar month. Counter columns are
			// only ever incremented by the conditional-consume statement.
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS usage_monthly (
					user_id                    TEXT NOT NULL,
					period_start               DATE NOT NULL,
					period_end                 DATE NOT NULL,
					dream_interpretation_used  INTEGER NOT NULL DEFAULT 0 CHECK (dream_interpretation_used >= 0),
					daily_horoscope_used       INTEGER NOT NULL DEFAULT 0 CHECK (daily_horoscope_used >= 0),
					affirmation_used           INTEGER NOT NULL DEFAULT 0 CHECK (affirmation_used >= 0),
					moon_phase_used            INTEGER NOT NULL DEFAULT 0 CHECK (moon_phase_used >= 0),
					created_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					PRIMARY KEY (user_id, period_start)
				);
			`).Error; err != nil {
				return err
			}

			return nil
		},

		Down: func(db *gorm.DB) error {
			for _, stmt := range []string{
				`DROP TABLE IF EXISTS usage_monthly;`,
				`DROP TABLE IF EXISTS subscriptions;`,
				`DROP TABLE IF EXISTS dreams;`,
			} {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
