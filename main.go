package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/penwyp/go-sleep-monitor/commands"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

func main() {
	if err := commands.Execute(); err != nil {
		util.LogErrorf("go-sleep-monitor failed: %v", err)
		os.Exit(1)
	}
}
