// Package autoload configures the global logger from the LOG_* environment
// variables as a side effect of being imported.
package autoload

import (
	configx "github.com/tanpawarit/evo-commerce-agent/pkg/config"
	logx "github.com/tanpawarit/evo-commerce-agent/pkg/logger"
)

func init() {
	conf := configx.MustNew[logx.Config]("LOG")
	logx.Init(*conf)
}
