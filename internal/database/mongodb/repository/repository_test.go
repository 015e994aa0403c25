package repository

import (
	"errors"
	"testing"

	"socialelections/internal/core"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithUpdatedAt(t *testing.T) {
	t.Parallel()

	update := withUpdatedAt(bson.M{"$set": bson.M{"managerEmployeeId": "x"}})
	require.Equal(t, bson.M{"updatedAt": true}, update["$currentDate"])
	require.Contains(t, update, "$set")

	// 保留呼叫端已經放的 $currentDate 欄位
	update = withUpdatedAt(bson.M{"$currentDate": bson.M{"checkedAt": true}})
	require.Equal(t, bson.M{"checkedAt": true, "updatedAt": true}, update["$currentDate"])
}

func TestReportIndexErrorLevels(t *testing.T) {
	t.Parallel()

	observed, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(observed)

	reportIndexError(logger, core.MongoCollectionEmployees, nil, false)
	require.Zero(t, logs.Len())

	reportIndexError(logger, core.MongoCollectionOrMemberships, errors.New("index build aborted"), true)
	reportIndexError(logger, core.MongoCollectionEmployees, errors.New("index build aborted"), false)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "or_memberships", entries[0].ContextMap()["collection"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
