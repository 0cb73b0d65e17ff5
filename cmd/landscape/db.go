package main

import (
	"context"
	"errors"
	"time"

	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/store"
	"github.com/ougirez/landscape/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

var errMissingDSN = errors.New("db.dsn is not set (LANDSCAPE_DB_DSN)")

func connect(ctx context.Context) (store.Pool, error) {
	dsn := viper.GetString(constants.ViperDBDSNKey)
	if dsn == "" {
		return nil, errMissingDSN
	}

	return xpgx.Connect(ctx, dsn, xpgx.Options{
		MaxConns:       viper.GetInt32(constants.ViperDBMaxConnsKey),
		ConnectRetries: viper.GetUint64(constants.ViperDBConnectRetries),
		RetryInterval:  2 * time.Second,
	})
}
