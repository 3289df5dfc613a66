// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	// Statement returns a statement builder bound to the pool, or to the
	// context's transaction when one is present.
	Statement(context.Context) sq.StatementBuilderType
	// WithTx runs fn inside a transaction created lazily on first database
	// access; commit on nil return, rollback otherwise.
	WithTx(context.Context, func(context.Context) error) error
	Close()
}
