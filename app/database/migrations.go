package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and seeds reference data. Every
// statement is idempotent so this runs unconditionally at startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedSections(db); err != nil {
		return err
	}
	if err := seedRuleTables(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			badge VARCHAR(20) UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(30) UNIQUE NOT NULL,
			name TEXT NOT NULL,
			kind VARCHAR(10) NOT NULL,
			fallback VARCHAR(10) NOT NULL DEFAULT 'zero',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS scoring_rules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			section_id UUID NOT NULL REFERENCES sections(id),
			category VARCHAR(50),
			threshold DECIMAL(8,2) NOT NULL,
			score INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			note TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scoring_rules_section ON scoring_rules(section_id, category)`,
		`CREATE TABLE IF NOT EXISTS kpi_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			entry_date DATE NOT NULL,
			worker_id UUID NOT NULL REFERENCES users(id),
			approver_id UUID REFERENCES users(id),
			section_id UUID NOT NULL REFERENCES sections(id),
			category VARCHAR(50),
			shift VARCHAR(20) NOT NULL DEFAULT '',
			line VARCHAR(30) NOT NULL DEFAULT '',
			input_hours DECIMAL(6,2) NOT NULL DEFAULT 0,
			stop_hours DECIMAL(6,2) NOT NULL DEFAULT 0,
			defect_count INT NOT NULL DEFAULT 0,
			metric DECIMAL(8,2) NOT NULL DEFAULT 0,
			compliance_code VARCHAR(40) NOT NULL DEFAULT 'NONE',
			p_score INT NOT NULL DEFAULT 0,
			q_score INT NOT NULL DEFAULT 0,
			c_score INT NOT NULL DEFAULT 0,
			day_score INT NOT NULL DEFAULT 0,
			overflow INT NOT NULL DEFAULT 0,
			violations INT NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			note TEXT NOT NULL DEFAULT '',
			approved_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_kpi_entries_date ON kpi_entries(entry_date)`,
		`CREATE INDEX IF NOT EXISTS idx_kpi_entries_worker ON kpi_entries(worker_id, entry_date)`,
		`CREATE INDEX IF NOT EXISTS idx_kpi_entries_status ON kpi_entries(status)`,
		`CREATE TABLE IF NOT EXISTS incident_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			entry_id UUID REFERENCES kpi_entries(id),
			section_id UUID NOT NULL REFERENCES sections(id),
			reporter_id UUID NOT NULL REFERENCES users(id),
			description TEXT NOT NULL,
			photo_key VARCHAR(120),
			status VARCHAR(10) NOT NULL DEFAULT 'open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_summaries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			worker_id UUID NOT NULL REFERENCES users(id),
			month VARCHAR(7) NOT NULL,
			total_score INT NOT NULL DEFAULT 0,
			penalized_score DECIMAL(8,2) NOT NULL DEFAULT 0,
			violations INT NOT NULL DEFAULT 0,
			entry_count INT NOT NULL DEFAULT 0,
			generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (worker_id, month)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}
	return nil
}

func seedRoles(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO roles (name) VALUES ('worker'), ('approver'), ('manager'), ('admin')
		ON CONFLICT (name) DO NOTHING
	`)
	if err != nil {
		log.Printf("Failed to seed roles: %v", err)
	}
	return err
}

func seedSections(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO sections (code, name, kind, fallback) VALUES
			('assembly',   'Assembly Line',  'standard', 'zero'),
			('cutting',    'Cutting',        'standard', 'zero'),
			('molding',    'Molding',        'molding',  'lowest'),
			('lamination', 'Lamination',     'hybrid',   'zero'),
			('prefitting', 'Prefitting',     'hybrid',   'zero')
		ON CONFLICT (code) DO NOTHING
	`)
	if err != nil {
		log.Printf("Failed to seed sections: %v", err)
	}
	return err
}

// seedRuleTables installs the default productivity tables the first time.
// Sections that already have any rules are left alone, so admin edits are
// never overwritten on restart.
func seedRuleTables(db *sql.DB) error {
	type seed struct {
		section   string
		category  string
		threshold float64
		score     int
	}

	var seeds []seed
	// Standard lines: utilization percentage bands.
	standard := []struct {
		t float64
		s int
	}{{112, 10}, {108, 9}, {104, 8}, {100, 7}, {98, 6}, {96, 4}, {94, 2}, {92, 0}}
	for _, sec := range []string{"assembly", "cutting"} {
		for _, b := range standard {
			seeds = append(seeds, seed{sec, "", b.t, b.s})
		}
	}
	// Molding: per-category output/hour tables on the 5-point scale.
	molding := []struct {
		t float64
		s int
	}{{60, 5}, {52, 4}, {45, 3}, {38, 2}, {30, 1}}
	for _, cat := range []string{"EVA", "PU", "RUBBER"} {
		for _, b := range molding {
			seeds = append(seeds, seed{"molding", cat, b.t, b.s})
		}
	}
	// Hybrid sections: 7-point productivity component.
	hybrid := []struct {
		t float64
		s int
	}{{110, 7}, {106, 6}, {102, 5}, {100, 4}, {98, 3}, {96, 2}, {94, 1}, {92, 0}}
	for _, sec := range []string{"lamination", "prefitting"} {
		for _, b := range hybrid {
			seeds = append(seeds, seed{sec, "", b.t, b.s})
		}
	}

	// Decide up front which sections are still empty; inserting the first
	// seed row must not stop the rest of that section's table.
	seeded := map[string]bool{}
	for _, s := range seeds {
		if _, checked := seeded[s.section]; !checked {
			var n int
			err := db.QueryRow(`
				SELECT COUNT(*) FROM scoring_rules r
				JOIN sections sec ON sec.id = r.section_id
				WHERE sec.code = $1
			`, s.section).Scan(&n)
			if err != nil {
				log.Printf("Failed to check rule table for %s: %v", s.section, err)
				return err
			}
			seeded[s.section] = n > 0
		}
		if seeded[s.section] {
			continue
		}

		var category interface{}
		if s.category != "" {
			category = s.category
		}
		_, err := db.Exec(`
			INSERT INTO scoring_rules (section_id, category, threshold, score)
			SELECT id, $2, $3, $4 FROM sections WHERE code = $1
		`, s.section, category, s.threshold, s.score)
		if err != nil {
			log.Printf("Failed to seed rule table for %s: %v", s.section, err)
			return err
		}
	}
	return nil
}
