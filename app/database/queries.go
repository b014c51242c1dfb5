package database

import (
	"database/sql"

	"factory-kpi/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, COALESCE(badge, ''), is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Badge, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, COALESCE(badge, ''), is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Badge, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

// CreateUser inserts a user with a hashed password and assigns roles.
func CreateUser(db *sql.DB, user *models.User, roleNames []string) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	var badge interface{}
	if user.Badge != "" {
		badge = user.Badge
	}
	err = db.QueryRow(`
		INSERT INTO users (email, password, first_name, last_name, badge)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, user.Email, hashed, user.FirstName, user.LastName, badge).Scan(&user.ID)
	if err != nil {
		return err
	}

	for _, name := range roleNames {
		_, err = db.Exec(`
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, id FROM roles WHERE name = $2
			ON CONFLICT DO NOTHING
		`, user.ID, name)
		if err != nil {
			return err
		}
	}
	return nil
}

// SearchUsers matches name, email or badge for the entry-form autocomplete.
func SearchUsers(db *sql.DB, search string, limit int) ([]*models.User, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	query := `
		SELECT id, email, first_name, last_name, COALESCE(badge, '')
		FROM users
		WHERE is_active = true
		AND (first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR badge ILIKE $1)
		ORDER BY first_name, last_name
		LIMIT $2
	`
	rows, err := db.Query(query, "%"+search+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Badge); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}
