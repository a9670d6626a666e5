// Package postgres はPostgreSQLを接続先とするアダプタ実装を提供する。
// テーブルは埋め込みマイグレーションで作成される。
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/source"
)

// AuthSource はusersテーブルによる認証アダプタ。
type AuthSource struct {
	db *sql.DB
}

// NewAuthSource はAuthSourceを生成する。
func NewAuthSource(db *sql.DB) *AuthSource {
	return &AuthSource{db: db}
}

// current_roleはPostgreSQLの予約語のため引用符が必要。
const userColumns = `id, email, name, avatar, role, approval_status, provider,
	profile_complete, consultation_date, linkedin, "current_role", target_role,
	industry, experience, goals, bio, company, expertise, motivation, availability`

// scanUser は1行をmodel.Userへ読み取る。
func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var consultationDate sql.NullString
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Avatar, &u.Role, &u.ApprovalStatus,
		&u.Provider, &u.ProfileComplete, &consultationDate, &u.LinkedIn,
		&u.CurrentRole, &u.TargetRole, &u.Industry, &u.Experience,
		pq.Array(&u.Goals), &u.Bio, &u.Company, &u.Expertise,
		&u.Motivation, &u.Availability,
	)
	if err != nil {
		return nil, err
	}
	if consultationDate.Valid {
		u.ConsultationDate = consultationDate.String
	}
	return &u, nil
}

// Login はメールアドレスでユーザーを検索し、bcryptハッシュと照合する。
func (s *AuthSource) Login(ctx context.Context, email, password string) (*model.User, error) {
	var hash []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE lower(email) = lower($1)`,
		email,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return nil, source.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, source.ErrInvalidCredentials
	}

	return s.GetUserByEmail(ctx, email)
}

// Register は新規ユーザー行を作成する。
func (s *AuthSource) Register(ctx context.Context, req source.RegisterRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO users (email, name, role, approval_status, provider, profile_complete, password_hash)
		 VALUES ($1, $2, $3, $4, $5, false, $6)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING `+userColumns,
		req.Email, req.Name, model.RoleMentee, model.ApprovalPending, model.ProviderEmail, hash,
	)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, source.ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail は指定メールアドレスのユーザーを取得する。
// 見つからない場合はnilを返す。
func (s *AuthSource) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`,
		email,
	)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}
