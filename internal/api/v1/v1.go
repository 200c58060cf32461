// Package v1 holds the HTTP handlers for the Devfolio API.
package v1

import (
	"github.com/sashreekm/devfolio/internal/auth"
	"github.com/sashreekm/devfolio/internal/config"
	"github.com/sashreekm/devfolio/pkg/logger"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/gorm"
)

var (
	DB        *gorm.DB
	Redis     *storage.RedisClient
	Logger    *logger.Logger
	Cfg       *config.Config
	AuthOpts  auth.Options
	Validator = utils.NewValidator()
)

// Setup wires the handler package to its collaborators. Must run before any
// route is registered.
func Setup(db *gorm.DB, rclient *storage.RedisClient, log *logger.Logger, cfg *config.Config) {
	DB = db
	Redis = rclient
	Logger = log
	Cfg = cfg
	AuthOpts = auth.Options{
		Rclient:    rclient,
		Logger:     log,
		AdminEmail: cfg.AdminEmail,
	}
}
