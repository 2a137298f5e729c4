// File: internal/database/provider.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"workshop-api/internal/apperr"
	"workshop-api/internal/config"
)

// pgxConnect 建立單一連線，測試可覆寫此變數
var pgxConnect = func(ctx context.Context, dsn string) (Conn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// PgProvider opens one PostgreSQL connection per Acquire using the
// credentials it was constructed with.
type PgProvider struct {
	dsn string
	log logrus.FieldLogger
}

func NewProvider(cfg config.Database, log logrus.FieldLogger) *PgProvider {
	return &PgProvider{dsn: cfg.DSN(), log: log}
}

// Acquire 失敗時記錄診斷訊息並回傳 ConnectionFailure，不會回傳 nil 連線
func (p *PgProvider) Acquire(ctx context.Context) (Conn, error) {
	conn, err := pgxConnect(ctx, p.dsn)
	if err != nil {
		p.log.WithError(err).Error("database connection failed")
		return nil, apperr.Wrap(apperr.ConnectionFailure, "connect to database", err)
	}
	p.log.Debug("database connection opened")
	return conn, nil
}

var _ Provider = (*PgProvider)(nil)
