package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Description  string     `json:"description"`
	AvatarURL    string     `json:"avatar_url"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

type Project struct {
	ID           int       `json:"id"`
	OwnerID      int       `json:"owner_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	BuildingType string    `json:"building_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Calculation is one saved engine run attached to a project. The payload is
// the result record as returned by the tool endpoint.
type Calculation struct {
	ID        int             `json:"id"`
	ProjectID int             `json:"project_id"`
	Tool      string          `json:"tool"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (int64, error)
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error
	SetPremium(ctx context.Context, id int, until time.Time) error
	ClearPremium(ctx context.Context, id int) error

	CreateProject(ctx context.Context, ownerID int, name, address, buildingType string) (int, error)
	ListProjects(ctx context.Context, ownerID int) ([]Project, error)
	GetProject(ctx context.Context, ownerID, projectID int) (Project, error)
	DeleteProject(ctx context.Context, ownerID, projectID int) error
	SaveCalculation(ctx context.Context, projectID int, tool string, payload json.RawMessage) (int, error)
	ListCalculations(ctx context.Context, projectID int) ([]Calculation, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := `SELECT id, login, email, COALESCE(description, ''), COALESCE(avatar_url, ''),
		COALESCE(is_premium, false), premium_until FROM users WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Login, &p.Email, &p.Description, &p.AvatarURL, &p.IsPremium, &p.PremiumUntil)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (int64, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	res, err := r.db.ExecContext(ctx, query, id, login, description)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET avatar_url=$2 WHERE id=$1", id, avatarURL)
	return err
}

func (r *PostgresUserRepository) SetPremium(ctx context.Context, id int, until time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET is_premium=true, premium_until=$2 WHERE id=$1", id, until)
	return err
}

func (r *PostgresUserRepository) ClearPremium(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET is_premium=false, premium_until=NULL WHERE id=$1", id)
	return err
}

func (r *PostgresUserRepository) CreateProject(ctx context.Context, ownerID int, name, address, buildingType string) (int, error) {
	var id int
	query := `INSERT INTO projects (owner_id, name, address, building_type, created_at)
		VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, ownerID, name, address, buildingType).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListProjects(ctx context.Context, ownerID int) ([]Project, error) {
	query := `SELECT id, owner_id, name, address, building_type, created_at
		FROM projects WHERE owner_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.BuildingType, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresUserRepository) GetProject(ctx context.Context, ownerID, projectID int) (Project, error) {
	var p Project
	query := `SELECT id, owner_id, name, address, building_type, created_at
		FROM projects WHERE id=$1 AND owner_id=$2`
	err := r.db.QueryRowContext(ctx, query, projectID, ownerID).
		Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.BuildingType, &p.CreatedAt)
	return p, err
}

func (r *PostgresUserRepository) DeleteProject(ctx context.Context, ownerID, projectID int) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id=$1 AND owner_id=$2", projectID, ownerID)
	return err
}

func (r *PostgresUserRepository) SaveCalculation(ctx context.Context, projectID int, tool string, payload json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO calculations (project_id, tool, payload, created_at)
		VALUES ($1, $2, $3, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, projectID, tool, []byte(payload)).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListCalculations(ctx context.Context, projectID int) ([]Calculation, error) {
	query := `SELECT id, project_id, tool, payload, created_at
		FROM calculations WHERE project_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Tool, &c.Payload, &c.CreatedAt); err != nil {
			return nil, err
		}
		calcs = append(calcs, c)
	}
	return calcs, rows.Err()
}
