package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"daycraft/internal/model"
	repo "daycraft/internal/task/repository"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.TaskItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT payload FROM daycraft_tasks ORDER BY seq ASC`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToLoad
	}
	defer rows.Close()

	tasks := make([]model.TaskItem, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToLoad
		}
		task, err := decodeTask(payload)
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToLoad
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToLoad
	}
	return tasks, nil
}

// GetTask returns a zero TaskItem when not found.
func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.TaskItem, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM daycraft_tasks WHERE id = $1`, opt.ID.String()).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.TaskItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.TaskItem{}, repo.ErrFailedToGet
	}

	task, err := decodeTask(payload)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetTask"), err)
		return model.TaskItem{}, repo.ErrFailedToGet
	}
	return task, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.TaskItem, error) {
	payload, err := encodeTask(opt.Task)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToInsert
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO daycraft_tasks (id, status, payload, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		opt.Task.ID.String(), string(opt.Task.Status), string(payload), opt.Task.CreatedAt, opt.Task.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToInsert
	}
	if tag.RowsAffected() == 0 {
		return model.TaskItem{}, repo.ErrDuplicateID
	}
	return opt.Task, nil
}

// UpdateTask returns a zero TaskItem when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.TaskItem, error) {
	payload, err := encodeTask(opt.Task)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToUpdate
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE daycraft_tasks SET status = $1, payload = $2::jsonb, updated_at = $3
		WHERE id = $4`,
		string(opt.Task.Status), string(payload), opt.Task.UpdatedAt, opt.Task.ID.String())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return model.TaskItem{}, nil
	}
	return opt.Task, nil
}

// ReplaceAll rewrites the table inside one transaction.
func (r *implRepository) ReplaceAll(ctx context.Context, tasks []model.TaskItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceAll"), err)
		return repo.ErrFailedToSave
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM daycraft_tasks`); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceAll"), err)
		return repo.ErrFailedToSave
	}

	batch := &pgx.Batch{}
	for _, t := range tasks {
		payload, err := encodeTask(t)
		if err != nil {
			r.l.Errorf(ctx, "%s encode %s: %v", r.dsn("ReplaceAll"), t.ID, err)
			return repo.ErrFailedToSave
		}
		batch.Queue(`
			INSERT INTO daycraft_tasks (id, status, payload, created_at, updated_at)
			VALUES ($1, $2, $3::jsonb, $4, $5)`,
			t.ID.String(), string(t.Status), string(payload), t.CreatedAt, t.UpdatedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceAll"), err)
		return repo.ErrFailedToSave
	}

	if err := tx.Commit(ctx); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceAll"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
