// Package txn 包裝 mongo multi-document transaction。
// standalone mongod 不支援 transaction，此時退回直接執行。
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var unsupportedCodes = map[int32]struct{}{
	20:  {}, // IllegalOperation
	51:  {}, // 舊版本的 IllegalOperation
	263: {}, // OperationNotSupportedInTransaction
}

var unsupportedKeywords = []string{
	"transaction",
	"session",
	"replica set",
	"not supported",
	"illegal operation",
}

// IsNotSupported 判斷錯誤是否代表部署環境不支援 transaction
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var commandErr mongo.CommandError
	if errors.As(err, &commandErr) {
		if _, ok := unsupportedCodes[commandErr.Code]; ok {
			return true
		}
	}
	// 只出現一個關鍵字不夠，例如單純的 "transaction failed"
	msg := strings.ToLower(err.Error())
	hits := 0
	for _, keyword := range unsupportedKeywords {
		if strings.Contains(msg, keyword) {
			hits++
		}
	}
	return hits >= 2
}

// Run 在 transaction 內執行 fn；不支援時直接以 ctx 執行 fn
func Run(ctx context.Context, client *mongo.Client, fn func(ctx context.Context) error) error {
	session, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	}, opts)
	if err != nil && IsNotSupported(err) {
		return fn(ctx)
	}
	return err
}
