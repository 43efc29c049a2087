package main

import (
	"fmt"
	"os"

	"github.com/fluffysquirrels/redis-oxide/config"
	"github.com/fluffysquirrels/redis-oxide/server"
	"github.com/fluffysquirrels/redis-oxide/tcp"
	"github.com/hdt3213/godis/lib/logger"
)

const defaultConfigFilename = "redis-oxide.yaml"

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func main() {
	logger.Setup(&logger.Settings{
		Path:       "logs",
		Name:       "redis-oxide",
		Ext:        ".log",
		TimeFormat: "2006-01-02",
	})
	// 从环境变量中获取配置文件路径
	configFilename := os.Getenv("CONFIG")
	if configFilename == "" {
		if fileExists(defaultConfigFilename) {
			config.SetupConfig(defaultConfigFilename)
		}
	} else {
		config.SetupConfig(configFilename)
	}
	err := tcp.ListenAndServeWithSignal(&tcp.Config{
		Address:    fmt.Sprintf("%s:%d", config.Properties.Bind, config.Properties.Port),
		MaxConnect: config.Properties.MaxConnect,
	}, server.MakeHandler())
	if err != nil {
		logger.Error(err)
	}
}
