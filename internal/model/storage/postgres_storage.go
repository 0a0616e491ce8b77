package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/entity/user"
	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/customerr"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = runMigrations(db); err != nil {
		return nil, errors.Wrap(err, "cannot migrate database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) CreateUser(ctx context.Context) (user.Record, error) {
	query := psql.Insert("users").
		Columns("api_token", "created_at").
		Values(uuid.NewString(), time.Now()).
		Suffix("RETURNING id, api_token, created_at")

	var res user.Record
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.ID, &res.APIToken, &res.CreatedAt)
	if err != nil {
		return user.Record{}, errors.Wrap(err, "create user")
	}
	return res, nil
}

func (s *PostgresStorage) GetUserByToken(ctx context.Context, token string) (user.Record, error) {
	query := psql.Select("id", "api_token", "telegram_chat_id", "created_at").
		From("users").
		Where(sq.Eq{"api_token": token})

	return s.scanUser(ctx, query)
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int64) (user.Record, error) {
	query := psql.Select("id", "api_token", "telegram_chat_id", "created_at").
		From("users").
		Where(sq.Eq{"id": id})

	return s.scanUser(ctx, query)
}

func (s *PostgresStorage) scanUser(ctx context.Context, query sq.SelectBuilder) (user.Record, error) {
	var res user.Record
	var chatID sql.NullInt64
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&res.ID, &res.APIToken, &chatID, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, &customerr.NotFoundError{Entity: "user"}
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	res.TelegramChatID = chatID.Int64
	return res, nil
}

func (s *PostgresStorage) SetTelegramChat(ctx context.Context, userID, chatID int64) error {
	query := psql.Update("users").
		Set("telegram_chat_id", chatID).
		Where(sq.Eq{"id": userID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	return affectedOrNotFound(res, err, "user", "set telegram chat")
}

func (s *PostgresStorage) SaveCategory(ctx context.Context, rec category.Record) error {
	query := psql.Insert("categories").
		Columns("id", "user_id", "name", "kind", "color", "icon", "created_at").
		Values(rec.ID, rec.UserID, rec.Name, rec.Kind, rec.Color, rec.Icon, rec.CreatedAt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save category")
}

func (s *PostgresStorage) UserCategories(ctx context.Context, userID int64) ([]category.Record, error) {
	query := psql.Select("id", "user_id", "name", "kind", "color", "icon", "created_at").
		From("categories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	defer closeRows(rows)

	cats := make([]category.Record, 0)
	for rows.Next() {
		var c category.Record
		err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Kind, &c.Color, &c.Icon, &c.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get categories")
		}
		cats = append(cats, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	return cats, nil
}

func (s *PostgresStorage) GetCategory(ctx context.Context, userID int64, id string) (category.Record, error) {
	query := psql.Select("id", "user_id", "name", "kind", "color", "icon", "created_at").
		From("categories").
		Where(sq.Eq{"user_id": userID, "id": id})

	var c category.Record
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Kind, &c.Color, &c.Icon, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return category.Record{}, &customerr.NotFoundError{Entity: "category"}
	}
	if err != nil {
		return category.Record{}, errors.Wrap(err, "get category")
	}
	return c, nil
}

// DeleteCategory removes the category and, through the schema's cascading
// foreign keys, every transaction and budget referencing it.
func (s *PostgresStorage) DeleteCategory(ctx context.Context, userID int64, id string) error {
	query := psql.Delete("categories").
		Where(sq.Eq{"user_id": userID, "id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	return affectedOrNotFound(res, err, "category", "delete category")
}

func (s *PostgresStorage) SaveTransaction(ctx context.Context, rec transaction.Record) error {
	query := psql.Insert("transactions").
		Columns("id", "user_id", "category_id", "amount", "kind", "description", "date", "created_at").
		Values(rec.ID, rec.UserID, rec.CategoryID, rec.Amount, rec.Kind, rec.Description, rec.Date, rec.CreatedAt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	if isPqError(err, pqForeignKeyViolation) {
		return &customerr.NotFoundError{Entity: "category"}
	}
	return errors.Wrap(err, "save transaction")
}

func (s *PostgresStorage) UserTransactions(ctx context.Context, userID int64, f transaction.Filter) ([]transaction.Record, error) {
	query := psql.Select("id", "user_id", "category_id", "amount", "kind", "description", "date", "created_at").
		From("transactions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC")

	if f.From != nil {
		query = query.Where(sq.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		query = query.Where(sq.LtOrEq{"date": *f.To})
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get transactions")
	}
	defer closeRows(rows)

	txs := make([]transaction.Record, 0)
	for rows.Next() {
		var t transaction.Record
		err = rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Kind, &t.Description, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get transactions")
		}
		txs = append(txs, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get transactions")
	}
	return txs, nil
}

func (s *PostgresStorage) DeleteTransaction(ctx context.Context, userID int64, id string) error {
	query := psql.Delete("transactions").
		Where(sq.Eq{"user_id": userID, "id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	return affectedOrNotFound(res, err, "transaction", "delete transaction")
}

func (s *PostgresStorage) SaveBudget(ctx context.Context, rec budget.Record) error {
	query := psql.Insert("budgets").
		Columns("id", "user_id", "category_id", "amount", "month", "created_at").
		Values(rec.ID, rec.UserID, rec.CategoryID, rec.Amount, rec.Month, rec.CreatedAt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	if isPqError(err, pqUniqueViolation) {
		return &customerr.DuplicateError{Err: "budget for this category and month already exists"}
	}
	if isPqError(err, pqForeignKeyViolation) {
		return &customerr.NotFoundError{Entity: "category"}
	}
	return errors.Wrap(err, "save budget")
}

func (s *PostgresStorage) UserBudgets(ctx context.Context, userID int64) ([]budget.Record, error) {
	query := psql.Select("id", "user_id", "category_id", "amount", "month", "created_at").
		From("budgets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("month DESC", "created_at DESC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get budgets")
	}
	defer closeRows(rows)

	buds := make([]budget.Record, 0)
	for rows.Next() {
		var b budget.Record
		err = rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Month, &b.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get budgets")
		}
		buds = append(buds, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get budgets")
	}
	return buds, nil
}

func (s *PostgresStorage) DeleteBudget(ctx context.Context, userID int64, id string) error {
	query := psql.Delete("budgets").
		Where(sq.Eq{"user_id": userID, "id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	return affectedOrNotFound(res, err, "budget", "delete budget")
}

func affectedOrNotFound(res sql.Result, err error, entity, op string) error {
	if err != nil {
		return errors.Wrap(err, op)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if affected == 0 {
		return &customerr.NotFoundError{Entity: entity}
	}
	return nil
}

func isPqError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
